// Package autolink scans plain or HTML-marked-up text for URLs, www.
// domains and email addresses and wraps them in anchor tags.
//
// The scanner works on raw bytes in a single pass and never re-parses
// HTML: content of skip-listed tags (links that already exist, code and
// preformatted blocks) is copied through verbatim so nothing gets
// double-linked. Multi-byte sequences pass through untouched since only
// ASCII trigger bytes drive detection.
package autolink

import (
	"bytes"
	"errors"
)

// Mode restricts which link categories are detected during a scan.
type Mode int

const (
	// ModeAll detects URLs, www. domains and email addresses.
	ModeAll Mode = iota
	// ModeURLs detects URLs and www. domains only.
	ModeURLs
	// ModeEmails detects email addresses only.
	ModeEmails
)

// Flags is a bitset of scan options.
type Flags uint32

// ShortDomains relaxes URL domain validation to accept hostnames
// without a dot, e.g. "http://localhost". It has no effect on www. or
// email detection. The value is stable; callers building the bitset
// externally can rely on it.
const ShortDomains Flags = 1 << 0

var (
	// ErrInvalidMode is returned when Options.Mode is not one of
	// ModeAll, ModeURLs or ModeEmails. Nothing is scanned.
	ErrInvalidMode = errors.New("invalid linking mode")

	// ErrInvalidCallbackResult is returned when Options.OnLink returns
	// nil bytes with a nil error. The scan is aborted and no partial
	// output is returned.
	ErrInvalidCallbackResult = errors.New("link callback returned no text")
)

// OnLinkFunc overrides the visible text of a discovered link. It is
// called once per link, in scan order, with the raw matched bytes. The
// returned bytes become the anchor text; the href keeps the raw match.
type OnLinkFunc func(match []byte) ([]byte, error)

// DefaultSkipTags lists the HTML tags whose content is never linked
// when Options.SkipTags is nil.
var DefaultSkipTags = []string{"a", "pre", "code", "kbd", "script"}

// Options configures a single Autolink pass. The zero value scans for
// all link categories with the default skip tags and no extra
// attributes.
type Options struct {
	Mode  Mode
	Flags Flags

	// LinkAttr is inserted verbatim into every generated opening anchor
	// tag, after the href. It is not validated or escaped.
	LinkAttr string

	// SkipTags are the case-insensitive tag names whose content must
	// not be linked. nil means DefaultSkipTags; an empty slice disables
	// skipping entirely.
	SkipTags []string

	// OnLink, if set, replaces the visible text of each link.
	OnLink OnLinkFunc
}

// scan actions, one per trigger byte
type action uint8

const (
	actionNone action = iota
	actionSkipTag
	actionURL
	actionWWW
	actionEmail
)

// Autolink scans text and returns it with every detected link wrapped
// in an anchor tag, along with the number of links found. When no link
// is found the original text slice is returned as-is, so a zero count
// means the result is byte-identical to the input with no copy made.
//
// The input is never mutated and no state is kept between calls, so
// concurrent scans over separate inputs are safe.
func Autolink(text []byte, opts Options) ([]byte, int, error) {
	var triggers [256]action
	triggers['<'] = actionSkipTag

	switch opts.Mode {
	case ModeAll:
		triggers[':'] = actionURL
		triggers['w'] = actionWWW
		triggers['W'] = actionWWW
		triggers['@'] = actionEmail
	case ModeURLs:
		triggers[':'] = actionURL
		triggers['w'] = actionWWW
		triggers['W'] = actionWWW
	case ModeEmails:
		triggers['@'] = actionEmail
	default:
		return nil, 0, ErrInvalidMode
	}

	skipTags := opts.SkipTags
	if skipTags == nil {
		skipTags = DefaultSkipTags
	}

	var out bytes.Buffer
	count := 0

	// i is the copy boundary: everything before it has either been
	// written to out or belongs to an already rendered link. end is the
	// scan cursor hunting for the next trigger byte.
	i, end := 0, 0

	for i < len(text) {
		act := actionNone
		for end < len(text) {
			if act = triggers[text[end]]; act != actionNone {
				break
			}
			end++
		}

		if end == len(text) {
			break
		}

		if act == actionSkipTag {
			end = skipTag(text, end, skipTags)
			continue
		}

		var sp span
		var ok bool
		switch act {
		case actionURL:
			sp, ok = matchURL(text, end, opts.Flags)
		case actionWWW:
			sp, ok = matchWWW(text, end, opts.Flags)
		case actionEmail:
			sp, ok = matchEmail(text, end, opts.Flags)
		}

		// URL and email detection walk backwards from the trigger, so a
		// match could in theory reach into bytes already claimed by a
		// previous link. Those are declined like any other non-match.
		if !ok || sp.start < i {
			end++
			continue
		}

		out.Write(text[i:sp.start])
		if err := renderLink(&out, text[sp.start:sp.end], act, opts.LinkAttr, opts.OnLink); err != nil {
			return nil, 0, err
		}
		count++

		i, end = sp.end, sp.end
	}

	if count == 0 {
		return text, 0, nil
	}

	out.Write(text[i:])
	return out.Bytes(), count, nil
}

// skipTag is called with text[pos] == '<'. If an opening tag from tags
// starts there, it returns the offset just past the matching closing
// tag, or len(text) when the tag is never closed, so the whole region
// is copied verbatim. Anything else (closing tags, unknown tags, stray
// '<') yields pos+1 and scanning simply resumes.
func skipTag(text []byte, pos int, tags []string) int {
	i := pos + 1
	if i < len(text) && text[i] == '/' {
		return pos + 1
	}

	start := i
	for i < len(text) && isAlpha(text[i]) {
		i++
	}

	name := text[start:i]
	if len(name) == 0 || !tagInSet(name, tags) {
		return pos + 1
	}

	for j := i; j+2+len(name) <= len(text); j++ {
		if text[j] != '<' || text[j+1] != '/' {
			continue
		}
		if !bytes.EqualFold(text[j+2:j+2+len(name)], name) {
			continue
		}

		k := j + 2 + len(name)
		for k < len(text) && isSpace(text[k]) {
			k++
		}
		if k < len(text) && text[k] == '>' {
			return k + 1
		}
	}

	// unterminated skip tag extends to the end of the input
	return len(text)
}

func tagInSet(name []byte, tags []string) bool {
	for _, tag := range tags {
		if len(tag) == len(name) && bytes.EqualFold(name, []byte(tag)) {
			return true
		}
	}
	return false
}

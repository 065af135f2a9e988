package autolink

import "bytes"

var wwwPrefix = []byte("www.")

// matchWWW tries to materialize a bare-domain span at a 'w' trigger.
// The trigger must start the literal "www." with nothing but whitespace
// or punctuation before it, so words like "wwwfoo" never match, and the
// domain must be a dotted one regardless of flags.
func matchWWW(data []byte, pos int, _ Flags) (span, bool) {
	if pos > 0 && !isPunct(data[pos-1]) && !isSpace(data[pos-1]) {
		return span{}, false
	}

	if len(data)-pos < len(wwwPrefix) || !bytes.HasPrefix(data[pos:], wwwPrefix) {
		return span{}, false
	}

	link, ok := checkDomain(data, span{start: pos}, false)
	if !ok {
		return span{}, false
	}

	for link.end < len(data) && !isSpace(data[link.end]) {
		link.end++
	}

	return trimDelims(data, link)
}

package autolink

// trimDelims shrinks a candidate link span so it does not swallow the
// punctuation of the surrounding prose. Returns false when trimming
// consumed the whole span.
//
// The rules, applied in order:
//
//  1. A link never crosses embedded markup: truncate at the first '<'.
//  2. Trailing sentence punctuation (? ! . , :) is stripped one byte at
//     a time.
//  3. A trailing ';' that terminates an HTML entity (an '&' followed by
//     letters) strips the whole entity; a lone ';' is stripped like
//     sentence punctuation. Numeric entities like "&#123;" are left
//     alone.
//  4. A trailing closing bracket or quote is kept only when its pair is
//     balanced inside the span; otherwise it was closing something
//     opened before the link and gets stripped.
//
// Rule 4 is how "http://example.com/Pikachu_(Electric)" keeps its ')'
// while "(see http://example.com)" does not.
func trimDelims(data []byte, link span) (span, bool) {
	for i := link.start; i < link.end; i++ {
		if data[i] == '<' {
			link.end = i
			break
		}
	}

loop:
	for link.end > link.start {
		switch c := data[link.end-1]; c {
		case '?', '!', '.', ',', ':':
			link.end--

		case ';':
			newEnd := link.end - 2
			for newEnd > 0 && isAlpha(data[newEnd]) {
				newEnd--
			}

			if newEnd >= 0 && newEnd < link.end-2 && data[newEnd] == '&' {
				link.end = newEnd
			} else {
				link.end--
			}

		default:
			break loop
		}
	}

	if link.end == link.start {
		return link, false
	}

	cclose := data[link.end-1]
	var copen byte

	switch cclose {
	case '"':
		copen = '"'
	case '\'':
		copen = '\''
	case ')':
		copen = '('
	case ']':
		copen = '['
	case '}':
		copen = '{'
	}

	if copen != 0 {
		opening, closing := 0, 0
		for i := link.start; i < link.end; i++ {
			if data[i] == copen {
				opening++
			} else if data[i] == cclose {
				closing++
			}
		}

		if closing != opening {
			link.end--
		}
	}

	return link, link.end > link.start
}

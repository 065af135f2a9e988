package autolink

// matchURL tries to materialize a URL span around a ':' trigger at pos.
// The colon must start a "://"; the scheme is found by walking back
// over letters and the host by walking the domain forward, after which
// everything up to the next whitespace is taken as path/query/fragment.
// Unsafe schemes and dotless hosts (unless ShortDomains is set) are
// declined.
func matchURL(data []byte, pos int, flags Flags) (span, bool) {
	if len(data)-pos < 4 || data[pos+1] != '/' || data[pos+2] != '/' {
		return span{}, false
	}

	link, ok := checkDomain(data, span{start: pos + 3}, flags&ShortDomains != 0)
	if !ok {
		return span{}, false
	}

	for link.end < len(data) && !isSpace(data[link.end]) {
		link.end++
	}

	link.start = pos
	for link.start > 0 && isAlpha(data[link.start-1]) {
		link.start--
	}

	if !isSafeLink(data[link.start:]) {
		return span{}, false
	}

	return trimDelims(data, link)
}

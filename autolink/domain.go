package autolink

// checkDomain consumes a hostname starting at link.start and sets
// link.end past the last valid domain byte. The first byte must be
// alphanumeric; after that alphanumerics, '-' and '.' are consumed.
//
// A strict domain needs at least one dot. With allowShort any non-empty
// run of valid domain bytes qualifies, which is what lets callers link
// single-label hosts like "http://localhost".
func checkDomain(data []byte, link span, allowShort bool) (span, bool) {
	if link.start >= len(data) || !isAlnum(data[link.start]) {
		return link, false
	}

	dots := 0
	i := link.start + 1
	for ; i < len(data)-1; i++ {
		if data[i] == '.' {
			dots++
		} else if !isAlnum(data[i]) && data[i] != '-' {
			break
		}
	}

	link.end = i

	if allowShort {
		return link, true
	}
	return link, dots > 0
}

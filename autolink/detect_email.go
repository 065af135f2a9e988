package autolink

// matchEmail tries to materialize an email span around an '@' trigger
// at pos. The local part is found by walking back over alphanumerics
// and ".+-_"; the forward walk then demands exactly one '@' and at
// least one interior dot in the domain before the first invalid byte.
func matchEmail(data []byte, pos int, _ Flags) (span, bool) {
	link := span{start: pos, end: pos}

	for link.start > 0 {
		c := data[link.start-1]
		if !isAlnum(c) && c != '.' && c != '+' && c != '-' && c != '_' {
			break
		}
		link.start--
	}

	if link.start == pos {
		return span{}, false
	}

	ats, dots := 0, 0
	for link.end < len(data) {
		c := data[link.end]
		switch {
		case isAlnum(c):
		case c == '@':
			ats++
		case c == '.' && link.end < len(data)-1:
			dots++
		case c != '-' && c != '_':
			goto done
		}
		link.end++
	}
done:

	if link.end-pos < 2 || ats != 1 || dots == 0 {
		return span{}, false
	}

	return trimDelims(data, link)
}

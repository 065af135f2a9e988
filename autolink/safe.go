package autolink

import "bytes"

// safePrefixes is the allow-list of URI prefixes that may be
// autolinked. Anything else, e.g. "javascript:", is rejected outright.
var safePrefixes = [][]byte{
	[]byte("/"),
	[]byte("http://"),
	[]byte("https://"),
	[]byte("ftp://"),
	[]byte("mailto:"),
}

// isSafeLink reports whether link starts, case-insensitively, with one
// of the safe prefixes followed by an alphanumeric byte. Requiring a
// byte of substance after the prefix rejects degenerate links like a
// bare "http://".
func isSafeLink(link []byte) bool {
	for _, prefix := range safePrefixes {
		if len(link) > len(prefix) &&
			bytes.EqualFold(link[:len(prefix)], prefix) &&
			isAlnum(link[len(prefix)]) {
			return true
		}
	}
	return false
}

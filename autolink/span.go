package autolink

// span is a half-open byte-offset range [start, end) into the scanned
// text. Spans live only for the duration of one detection attempt: a
// detector produces one, the delimiter pass refines its end, and the
// renderer consumes it.
type span struct {
	start int
	end   int
}

// ASCII byte classes, matching C's ctype over single bytes. Bytes of
// multi-byte UTF-8 sequences all have the high bit set and fall into
// none of these, which is exactly what the scanner needs.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// isPunct reports whether c is a printable ASCII character that is
// neither alphanumeric nor a space.
func isPunct(c byte) bool {
	return c >= '!' && c <= '~' && !isAlnum(c)
}

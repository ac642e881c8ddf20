package ascii

// TrimLeft returns s without leading ASCII whitespace.
func TrimLeft(s string) string {
	i := 0
	for i < len(s) && IsSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimRight returns s without trailing ASCII whitespace.
func TrimRight(s string) string {
	n := len(s)
	for n > 0 && IsSpace(s[n-1]) {
		n--
	}
	return s[:n]
}

// Trim returns s without leading and trailing ASCII whitespace. The
// result shares storage with s; nothing is copied.
func Trim(s string) string {
	return TrimRight(TrimLeft(s))
}

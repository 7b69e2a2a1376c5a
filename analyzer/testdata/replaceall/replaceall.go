package replaceall

import (
	"bytes"
	"strings"
)

func sanitize(s string) string {
	s = strings.Replace(s, "\r\n", "\n", -1) // want `strings.Replace with count -1 can be replaced with strings.ReplaceAll`
	s = strings.Replace(s, " ", "", 1)

	return s
}

func sanitizeBytes(b []byte) []byte {
	return bytes.Replace(b, []byte{0}, nil, -1) // want `bytes.Replace with count -1 can be replaced with bytes.ReplaceAll`
}

func count(s string, n int) string {
	return strings.Replace(s, "a", "b", n) // count is not constant
}

package nolint

import "strings"

func suppressed(ok bool) bool {
	if ok == true { //nolint:prefer
		return true
	}

	return ok == false //nolint:all
}

func listed(s []int) []int {
	return append(s) //nolint:gocritic,prefer
}

func inline(s string) string {
	return strings.Replace(s /* CRLF */, "\r\n", "\n", -1) //nolint:prefer
}

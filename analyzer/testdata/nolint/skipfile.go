//nolint:prefer
package nolint

func ignored(ok bool) bool {
	return ok == true
}

package generated

func flagged(ok bool) bool {
	return ok == true // want `Comparison with 'true' can be simplified`
}

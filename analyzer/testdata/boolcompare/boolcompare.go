package boolcompare

func compare(ok bool, n int) bool {
	if ok == true { // want `Comparison with 'true' can be simplified`
		n++
	}

	if ok == false { // want `Comparison with 'false' can be simplified`
		n--
	}

	positive := n > 0 == true // want `Comparison with 'true' can be simplified`

	return positive != false // want `Comparison with 'false' can be simplified`
}

func negated(done bool) bool {
	return done != true // want `Comparison with 'true' can be simplified`
}

type answer bool

func named(a answer) bool {
	return a == false // want `Comparison with 'false' can be simplified`
}

func untouched(m map[string]bool, n int) bool {
	var yes, no = true, false

	if yes == no { // no literal operand
		return m["x"]
	}

	return n == 1
}

package appendcall

func grow(values, extra []int) []int {
	values = append(values) // want `append with no elements is a no-op; use the slice directly`
	values = append(values, 1)
	values = append(values, extra...)

	return values
}

func shadowed() []int {
	append := func(s []int) []int { return s }

	return append([]int{1})
}

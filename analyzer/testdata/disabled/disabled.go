package disabled

import "fmt"

func quiet(ok bool, s []int) string {
	if ok == false {
		s = append(s)
	}

	return fmt.Sprintf("done")
}

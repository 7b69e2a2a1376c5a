package sprintf

import "fmt"

// No errors import in this file, so there is no rewrite to offer.
func plain() error {
	return fmt.Errorf("no context") // want `fmt.Errorf without formatting verbs; use errors.New`
}

package sprintf

import (
	"errors"
	"fmt"
)

var errTimeout = errors.New("timeout")

func messages(name string) {
	greeting := fmt.Sprintf("hello world") // want `fmt.Sprintf without formatting verbs is a no-op; use the string directly`
	personal := fmt.Sprintf("hello %s", name)
	escaped := fmt.Sprintf("100%%")

	_, _, _ = greeting, personal, escaped
}

func failure() error {
	return fmt.Errorf("connection lost") // want `fmt.Errorf without formatting verbs; use errors.New`
}

func wrapped(err error) error {
	if errors.Is(err, errTimeout) {
		return fmt.Errorf("fetch: %w", err)
	}

	return nil
}

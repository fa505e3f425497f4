package source

import (
	"fmt"
	"os"
)

// ReadLocal reads exam markdown from a file path.
func ReadLocal(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Source: "local", Err: fmt.Errorf("read exam file: %w", err)}
	}
	return string(data), nil
}

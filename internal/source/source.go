// Package source obtains raw exam markdown from a remote repository or the
// local filesystem. Both modes reduce to a single text blob handed to the
// parser; failures surface as *Error and are fatal to the run.
package source

import "fmt"

// Error reports a failure to obtain exam markdown.
type Error struct {
	// Source names the mode that failed ("github" or "local").
	Source string
	Err    error
}

// Error returns a readable message naming the failed source.
func (err *Error) Error() string {
	return fmt.Sprintf("%s source: %v", err.Source, err.Err)
}

// Unwrap exposes the underlying cause.
func (err *Error) Unwrap() error {
	return err.Err
}

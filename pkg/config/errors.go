package config

import (
	"errors"
	"fmt"
)

// FileError signals a configuration file that could not be read, parsed,
// or written.
type FileError struct {
	Path string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// IsFileError checks if an error is a FileError.
func IsFileError(err error) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr)
}

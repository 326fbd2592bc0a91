package fs

import (
	"errors"
	"fmt"
)

var (
	// ErrAccess is matched by every AccessError.
	ErrAccess = errors.New("directory not accessible")

	// ErrMetadataUnavailable marks entries whose size and time could not be read.
	ErrMetadataUnavailable = errors.New("metadata unavailable")
)

// AccessError reports a directory that could not be opened.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrAccess) match any AccessError.
func (e *AccessError) Is(target error) bool {
	return target == ErrAccess
}

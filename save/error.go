package save

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound covers both a missing marker and a marker with no accepted
	// value inside the scan window.
	ErrNotFound = errors.New("progression points not found")
	// ErrOutOfRange is returned when a write would cross the end of the file.
	ErrOutOfRange = errors.New("offset out of file range")
)

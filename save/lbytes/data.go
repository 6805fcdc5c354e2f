package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
)

const (
	// DoubleSize is the width of an IEEE-754 double on disk.
	DoubleSize = 8
)

// Package save stores the code to locate and patch the progression points
// field inside a Craftomation101 save file.
//
// The save format is undocumented. The field is found with a heuristic: the
// first occurrence of Marker, followed within ScanWindow bytes by a
// little-endian double in (0, MaxExpected]. The constants must stay exactly
// as they are, since existing save files are only recognised through them.
package save

import (
	"crafto-editor/save/lbytes"
)

type (
	// Field is a located progression points value. Offset is only valid for
	// the exact file contents it was located in.
	Field struct {
		Value  float64 `json:"value"`
		Offset int64   `json:"offset"`
	}
)

const (
	FieldSize   = lbytes.DoubleSize
	ScanWindow  = 32
	MaxExpected = 1000.0
)

var (
	Marker = []byte("progressionPoints")
)

// IsAccepted reports whether v can be the progression points value.
func IsAccepted(v float64) bool {
	return 0.0 < v && v <= MaxExpected
}

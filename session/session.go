// Package session keeps the editor state shared between locating the
// progression points field and patching it.
package session

import (
	"math"
	"strconv"
	"strings"

	"crafto-editor/ds"
	"crafto-editor/save"
	"github.com/pkg/errors"
)

const (
	SliderMin = 1
	SliderMax = 20
)

var (
	ErrNoFileLoaded = errors.New("no file loaded")
)

// Session is the last selected save file and the field located in it.
// Field is nil until a load succeeds.
type Session struct {
	Path  string
	Field *save.Field
}

func (s *Session) Loaded() bool {
	return s.Path != "" && s.Field != nil
}

func (s *Session) Clear() {
	s.Path = ""
	s.Field = nil
}

// Load selects path and locates the field in it. The previous state is
// dropped first, so a failed load leaves only Path set.
func (s *Session) Load(path string) (*save.Field, error) {
	s.Clear()
	s.Path = path
	field, err := save.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Session.Load error")
	}
	s.Field = field
	return field, nil
}

// Save writes value at the offset located by the last Load.
func (s *Session) Save(value float64) error {
	if !s.Loaded() {
		return errors.Wrap(ErrNoFileLoaded, "Session.Save error")
	}
	if err := save.PatchFile(s.Path, s.Field.Offset, value); err != nil {
		return errors.Wrap(err, "Session.Save error")
	}
	s.Field.Value = value
	return nil
}

// DisplayValue maps a stored value onto the slider. Halves round to even.
func DisplayValue(value float64) int {
	return ds.Clamp(int(math.RoundToEven(value)), SliderMin, SliderMax)
}

// ParseEntry reads a value typed next to the slider. Only whole numbers on
// the slider are taken.
func ParseEntry(text string) (int, bool) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || value < SliderMin || value > SliderMax {
		return 0, false
	}
	return value, true
}

package save

import (
	"bytes"
	"os"

	"crafto-editor/save/lbytes"
	"github.com/pkg/errors"
)

// Locate scans bs for the progression points field. Only the first marker
// occurrence is tried and the first accepted candidate wins.
func Locate(bs []byte) (*Field, error) {
	index := bytes.Index(bs, Marker)
	if index == -1 {
		return nil, errors.Wrap(ErrNotFound, "Locate error: marker absent")
	}

	reader := lbytes.NewBytesReader(bs)
	start := int64(index + len(Marker))
	size := int64(len(bs))
	for offset := start; offset < start+ScanWindow; offset++ {
		if offset+FieldSize > size {
			break
		}
		value, err := reader.ReadDoubleAt(offset)
		if err != nil {
			return nil, errors.Wrap(err, "Locate error")
		}
		if IsAccepted(value) {
			return &Field{Value: value, Offset: offset}, nil
		}
	}

	return nil, errors.Wrapf(
		ErrNotFound,
		"Locate error: no value in (0, %v] within %d bytes after marker at %d",
		MaxExpected, ScanWindow, index,
	)
}

// ReadFile reads the whole file at path and locates the field in it.
func ReadFile(path string) (*Field, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadFile error reading "%s"`, path)
	}
	field, err := Locate(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadFile error in "%s"`, path)
	}
	return field, nil
}

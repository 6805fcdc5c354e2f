package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// DecodeDouble reads the first DoubleSize bytes of bs as a little-endian double.
// The caller makes sure bs is long enough.
func DecodeDouble(bs []byte) float64 {
	bits := binary.LittleEndian.Uint64(bs[:DoubleSize])
	return math.Float64frombits(bits)
}

func (b *Reader) ReadDoubleAt(off int64) (float64, error) {
	bs := make([]byte, DoubleSize)
	n, err := b.ReadAt(bs, off)
	// ReadAt may return io.EOF together with a full read at the very end
	if n == DoubleSize {
		return DecodeDouble(bs), nil
	}
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	return 0, errors.Wrapf(err, "ReadDoubleAt error at offset %d", off)
}

package lbytes

import (
	"encoding/binary"
	"math"
)

func EncodeValueDouble(value float64) []byte {
	bs := make([]byte, DoubleSize)
	binary.LittleEndian.PutUint64(bs, math.Float64bits(value))
	return bs
}

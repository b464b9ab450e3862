package frame

import (
	"encoding/binary"
	"fmt"
)

// Encoder packs tuples into fixed-size frames. The connector itself only
// decodes; the encoder exists for fakes standing in for the engine in tests.
type Encoder struct {
	size int
}

func NewEncoder(size int) *Encoder {
	return &Encoder{size: size}
}

// Encode packs the given tuples into one frame. It panics if the tuples
// plus the offset table do not fit, since fakes control both sides.
func (e *Encoder) Encode(tuples ...string) []byte {
	buf := make([]byte, e.size)
	needed := sizeofInt32 * (len(tuples) + 1)
	offset := 0
	for i, tuple := range tuples {
		offset += len(tuple)
		if offset+needed > e.size {
			panic(fmt.Sprintf("frame: %d tuples of %d total bytes exceed frame size %d",
				len(tuples), offset, e.size,
			))
		}
		copy(buf[offset-len(tuple):], tuple)
		binary.BigEndian.PutUint32(buf[e.size-sizeofInt32*(i+2):], uint32(offset))
	}
	binary.BigEndian.PutUint32(buf[e.size-sizeofInt32:], uint32(len(tuples)))

	return buf
}

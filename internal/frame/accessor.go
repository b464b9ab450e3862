package frame

import (
	"encoding/binary"

	"github.com/asterix-contrib/asterix-go/internal/xerrors"
)

const sizeofInt32 = 4

// Accessor reinterprets a filled frame buffer as a sequence of tuples via
// the tail offset table. Reset validates the table once; the per-tuple
// accessors then cannot fail.
type Accessor struct {
	buf   []byte
	count int
}

// Reset points the accessor at buf and validates its offset table.
func (a *Accessor) Reset(buf []byte) error {
	a.buf = nil
	a.count = 0
	if len(buf) < sizeofInt32 {
		return xerrors.Decode("frame of %d bytes cannot hold a tuple count", len(buf))
	}
	count := int(int32(binary.BigEndian.Uint32(buf[len(buf)-sizeofInt32:])))
	if count < 0 {
		return xerrors.Decode("negative tuple count %d", count)
	}
	tableSize := sizeofInt32 * (count + 1)
	if tableSize > len(buf) {
		return xerrors.Decode("tuple count %d needs a %d byte offset table, frame is %d bytes",
			count, tableSize, len(buf),
		)
	}
	dataLimit := len(buf) - tableSize
	prev := 0
	for i := 0; i < count; i++ {
		end := a.endOffset(buf, i)
		if end < prev || end > dataLimit {
			return xerrors.Decode("tuple %d end offset %d outside [%d, %d]", i, end, prev, dataLimit)
		}
		prev = end
	}
	a.buf = buf
	a.count = count

	return nil
}

// TupleCount returns the number of tuples in the frame.
func (a *Accessor) TupleCount() int {
	return a.count
}

// Tuple returns the byte range of tuple i. The returned slice aliases the
// frame buffer and is only valid until the frame is cleared.
func (a *Accessor) Tuple(i int) []byte {
	start := 0
	if i > 0 {
		start = a.endOffset(a.buf, i-1)
	}

	return a.buf[start:a.endOffset(a.buf, i)]
}

func (a *Accessor) endOffset(buf []byte, i int) int {
	off := len(buf) - sizeofInt32*(i+2)

	return int(int32(binary.BigEndian.Uint32(buf[off : off+sizeofInt32])))
}

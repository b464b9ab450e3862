// Package frame implements the engine's binary result-frame format.
//
// A frame is a fixed-size byte buffer. Tuples are packed at the front, the
// offset table grows from the back: the big-endian int32 tuple count lives
// in the last 4 bytes, and the end offset of tuple i lives 4*(i+1) bytes
// before it. Tuple i spans [end(i-1), end(i)), with end(-1) = 0.
package frame

// Frame is a reusable fixed-capacity buffer holding one encoded frame.
// It is owned by exactly one reader and never resized mid-partition.
type Frame struct {
	buf    []byte
	filled bool
}

func New(size int) *Frame {
	return &Frame{
		buf: make([]byte, size),
	}
}

// Bytes returns the whole backing buffer for the transport to fill.
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Size returns the frame capacity in bytes.
func (f *Frame) Size() int {
	return len(f.buf)
}

// MarkFilled records that the buffer holds one complete undecoded frame.
func (f *Frame) MarkFilled() {
	f.filled = true
}

func (f *Frame) Filled() bool {
	return f.filled
}

// Clear logically empties the frame keeping its capacity, ready for the
// next read.
func (f *Frame) Clear() {
	f.filled = false
}

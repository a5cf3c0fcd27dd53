package wire

import (
	"bytes"
	"encoding/binary"
)

// Encoder is a growable byte buffer with big-endian put operations,
// matching the shapes Decoder reads back.
type Encoder struct {
	buf bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Put8 appends a single byte.
func (e *Encoder) Put8(v uint8) {
	e.buf.WriteByte(v)
}

// Put16 appends a big-endian uint16.
func (e *Encoder) Put16(v uint16) {
	_ = binary.Write(&e.buf, binary.BigEndian, v)
}

// Put32 appends a big-endian uint32.
func (e *Encoder) Put32(v uint32) {
	_ = binary.Write(&e.buf, binary.BigEndian, v)
}

// PutBytes appends b verbatim.
func (e *Encoder) PutBytes(b []byte) {
	e.buf.Write(b)
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Bytes returns the accumulated buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

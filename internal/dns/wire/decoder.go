// Package wire implements RFC 1035-style DNS message encoding and decoding:
// wire primitives, the name codec with compression-pointer support, and the
// per-type resource-record codecs.
package wire

import "fmt"

// Decoder reads a DNS message from a flat byte slice with an absolute
// cursor. It carries a pointer cache mapping an absolute byte offset to the
// domain name suffix already decoded starting at that offset, so
// compression pointers resolve in one step and cannot recur into a loop.
type Decoder struct {
	data         []byte
	cursor       int
	pointerCache map[int]string
}

// NewDecoder returns a Decoder positioned at the start of data.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data:         data,
		pointerCache: make(map[int]string),
	}
}

// Position returns the current absolute byte offset.
func (d *Decoder) Position() int {
	return d.cursor
}

// Len returns the total number of bytes backing this decoder.
func (d *Decoder) Len() int {
	return len(d.data)
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.cursor
}

// Get8 reads one unsigned byte and advances the cursor.
func (d *Decoder) Get8() (uint8, error) {
	if d.Remaining() < 1 {
		return 0, fmt.Errorf("wire: short read: need 1 byte, have %d", d.Remaining())
	}
	v := d.data[d.cursor]
	d.cursor++
	return v, nil
}

// Get16 reads a big-endian uint16 and advances the cursor.
func (d *Decoder) Get16() (uint16, error) {
	if d.Remaining() < 2 {
		return 0, fmt.Errorf("wire: short read: need 2 bytes, have %d", d.Remaining())
	}
	v := uint16(d.data[d.cursor])<<8 | uint16(d.data[d.cursor+1])
	d.cursor += 2
	return v, nil
}

// Get32 reads a big-endian uint32 and advances the cursor.
func (d *Decoder) Get32() (uint32, error) {
	if d.Remaining() < 4 {
		return 0, fmt.Errorf("wire: short read: need 4 bytes, have %d", d.Remaining())
	}
	v := uint32(d.data[d.cursor])<<24 | uint32(d.data[d.cursor+1])<<16 |
		uint32(d.data[d.cursor+2])<<8 | uint32(d.data[d.cursor+3])
	d.cursor += 4
	return v, nil
}

// GetBytes returns a copy of the next n bytes and advances the cursor.
func (d *Decoder) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("wire: negative length %d", n)
	}
	if d.Remaining() < n {
		return nil, fmt.Errorf("wire: short read: need %d bytes, have %d", n, d.Remaining())
	}
	out := make([]byte, n)
	copy(out, d.data[d.cursor:d.cursor+n])
	d.cursor += n
	return out, nil
}

// seek repositions the cursor to an absolute offset. Used only by the name
// codec to move the cursor just past a name it has decoded; following a
// compression pointer reads by offset and never moves the cursor.
func (d *Decoder) seek(offset int) {
	d.cursor = offset
}

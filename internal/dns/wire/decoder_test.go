package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoder_Get8_Get16_Get32(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x04})
	v8, err := d.Get8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)

	v16, err := d.Get16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), v16)

	v32, err := d.Get32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x00000004), v32)
}

func TestDecoder_ShortRead(t *testing.T) {
	d := NewDecoder([]byte{0x01})
	_, err := d.Get16()
	assert.Error(t, err)

	d2 := NewDecoder(nil)
	_, err = d2.Get8()
	assert.Error(t, err)
}

func TestDecoder_GetBytes(t *testing.T) {
	d := NewDecoder([]byte{1, 2, 3, 4, 5})
	b, err := d.GetBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.Equal(t, 3, d.Position())

	_, err = d.GetBytes(10)
	assert.Error(t, err)
}

func TestEncoder_RoundTrip(t *testing.T) {
	e := NewEncoder()
	e.Put8(0xAB)
	e.Put16(0x1234)
	e.Put32(0x89ABCDEF)
	e.PutBytes([]byte{0xFF, 0xEE})

	d := NewDecoder(e.Bytes())
	v8, _ := d.Get8()
	v16, _ := d.Get16()
	v32, _ := d.Get32()
	rest, _ := d.GetBytes(2)

	assert.Equal(t, uint8(0xAB), v8)
	assert.Equal(t, uint16(0x1234), v16)
	assert.Equal(t, uint32(0x89ABCDEF), v32)
	assert.Equal(t, []byte{0xFF, 0xEE}, rest)
}

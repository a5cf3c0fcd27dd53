package wire

import (
	"testing"

	"github.com/haukened/dnsq/internal/dns/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeName_Simple(t *testing.T) {
	e := NewEncoder()
	require.NoError(t, e.EncodeName(domain.Name("www.example.com.")))

	d := NewDecoder(e.Bytes())
	name, err := d.DecodeName()
	require.NoError(t, err)
	assert.Equal(t, domain.Name("www.example.com."), name)
	assert.Equal(t, e.Len(), d.Position())
}

func TestDecodeName_RootLabel(t *testing.T) {
	d := NewDecoder([]byte{0x00})
	name, err := d.DecodeName()
	require.NoError(t, err)
	assert.Equal(t, domain.Name(""), name)
}

func TestDecodeName_CompressionPointer(t *testing.T) {
	// message: [www.example.com.][ptr to offset 0][type][class]
	e := NewEncoder()
	require.NoError(t, e.EncodeName(domain.Name("www.example.com.")))
	firstEnd := e.Len()
	e.PutBytes([]byte{0xC0, 0x00}) // pointer to offset 0

	d := NewDecoder(e.Bytes())
	first, err := d.DecodeName()
	require.NoError(t, err)
	assert.Equal(t, domain.Name("www.example.com."), first)
	assert.Equal(t, firstEnd, d.Position())

	second, err := d.DecodeName()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeName_ForwardPointerRejected(t *testing.T) {
	// A pointer at offset 0 pointing forward to offset 5 must be rejected.
	data := []byte{0xC0, 0x05, 0x03, 'f', 'o', 'o', 0x00}
	d := NewDecoder(data)
	_, err := d.DecodeName()
	assert.Error(t, err)
}

func TestDecodeName_TruncatedLabel(t *testing.T) {
	d := NewDecoder([]byte{0x05, 'a', 'b'})
	_, err := d.DecodeName()
	assert.Error(t, err)
}

func TestDecodeName_ReservedLengthBits(t *testing.T) {
	d := NewDecoder([]byte{0x80}) // top bits 10, reserved
	_, err := d.DecodeName()
	assert.Error(t, err)
}

func TestEncodeName_LabelTooLong(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	e := NewEncoder()
	err := e.EncodeName(domain.Name(string(long) + ".com."))
	assert.Error(t, err)
}

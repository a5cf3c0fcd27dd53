package wire

import "github.com/haukened/dnsq/internal/dns/domain"

// DNSCodec is the seam between the transaction loop and the wire format,
// injectable in tests the way the teacher's upstream resolver injects a
// DialFunc.
type DNSCodec interface {
	EncodeQuery(id uint16, name domain.Name, qtype domain.RRType, ad bool) ([]byte, error)
	DecodeMessage(data []byte) (domain.Message, error)
}

// StdCodec is the production DNSCodec backed by this package's free
// functions.
type StdCodec struct{}

func (StdCodec) EncodeQuery(id uint16, name domain.Name, qtype domain.RRType, ad bool) ([]byte, error) {
	return EncodeQuery(id, name, qtype, ad)
}

func (StdCodec) DecodeMessage(data []byte) (domain.Message, error) {
	return DecodeMessage(data)
}

var _ DNSCodec = StdCodec{}

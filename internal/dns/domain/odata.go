package domain

// OData is the tagged union of EDNS(0) option payloads carried inside an
// OPTRecord's Options list.
type OData interface {
	// Code returns the EDNS option code this payload was decoded as.
	Code() uint16
}

// EDNS(0) option codes this codec recognizes individually.
const (
	OptCodeClientSubnet uint16 = 8 // RFC 7871
)

// ClientSubnetOption carries an EDNS Client Subnet payload (RFC 7871).
// Family 1 means Address holds an IPv4 payload, 2 means IPv6; the address
// octets are left-aligned and right-zero-padded to the full address width
// implied by Family.
type ClientSubnetOption struct {
	Family       uint16
	SourcePrefix uint8
	ScopePrefix  uint8
	Address      []byte
}

func (ClientSubnetOption) Code() uint16 { return OptCodeClientSubnet }

// UnknownOption preserves the raw payload of an EDNS option code this
// codec does not individually parse.
type UnknownOption struct {
	RawCode uint16
	Data    []byte
}

func (u UnknownOption) Code() uint16 { return u.RawCode }

package domain

// RDATA is the tagged union of resource-record payloads. Each concrete
// type below is one variant, keyed by its Type() method; unrecognized wire
// types decode to UnknownRecord instead of failing the whole message.
type RDATA interface {
	// Type returns the RRType this payload was decoded as.
	Type() RRType
}

// ARecord holds a 4-octet IPv4 address.
type ARecord struct {
	Address [4]byte
}

func (ARecord) Type() RRType { return RRTypeA }

// AAAARecord holds a 16-octet IPv6 address.
type AAAARecord struct {
	Address [16]byte
}

func (AAAARecord) Type() RRType { return RRTypeAAAA }

// NSRecord names a delegated name server.
type NSRecord struct {
	NSDName Name
}

func (NSRecord) Type() RRType { return RRTypeNS }

// CNAMERecord names the canonical name an alias points to.
type CNAMERecord struct {
	CName Name
}

func (CNAMERecord) Type() RRType { return RRTypeCNAME }

// PTRRecord names the domain a reverse-lookup address maps to.
type PTRRecord struct {
	PTRDName Name
}

func (PTRRecord) Type() RRType { return RRTypePTR }

// DNAMERecord redirects an entire subtree to another name.
type DNAMERecord struct {
	Target Name
}

func (DNAMERecord) Type() RRType { return RRTypeDNAME }

// MXRecord names a mail exchange and its preference.
type MXRecord struct {
	Preference uint16
	Exchange   Name
}

func (MXRecord) Type() RRType { return RRTypeMX }

// SOARecord describes a zone's start-of-authority parameters.
type SOARecord struct {
	MName   Name
	RName   Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOARecord) Type() RRType { return RRTypeSOA }

// SRVRecord describes a service location (RFC 2782).
type SRVRecord struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Name
}

func (SRVRecord) Type() RRType { return RRTypeSRV }

// TXTRecord holds one or more length-prefixed text strings. Unlike a
// single concatenated blob, Strings preserves each segment's boundary as
// the wire format encodes it.
type TXTRecord struct {
	Strings [][]byte
}

func (TXTRecord) Type() RRType { return RRTypeTXT }

// OPTRecord carries the EDNS(0) pseudo-record's extended header fields and
// its option list (RFC 6891).
type OPTRecord struct {
	UDPPayloadSize uint16
	ExtendedRCode  uint8
	Version        uint8
	DO             bool
	Z              uint16 // remaining 15 bits of the flags word, DO excluded
	Options        []OData
}

func (OPTRecord) Type() RRType { return RRTypeOPT }

// UnknownRecord preserves the raw payload of a record type this codec does
// not individually parse, alongside its numeric type.
type UnknownRecord struct {
	RawType RRType
	Data    []byte
}

func (u UnknownRecord) Type() RRType { return u.RawType }

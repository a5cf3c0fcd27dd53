package domain

// Header is the fixed 12-byte DNS message header. Counts are derived from
// section lengths on encode; on decode, they drive how many records each
// section parses.
type Header struct {
	ID      uint16
	QR      bool // 0 = query, 1 = response
	Opcode  uint8
	AA      bool
	TC      bool
	RD      bool
	RA      bool
	AD      bool
	CD      bool
	RCode   RCode
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// Question is a single entry in a message's question section. Class is
// consumed during decode but never exposed: qclass is fixed to IN for
// every query this codec produces, and a decoded qclass is discarded per
// spec invariant 5.
type Question struct {
	Name Name
	Type RRType
}

// ResourceRecord is a single non-OPT resource record. Class is likewise
// consumed but not exposed.
type ResourceRecord struct {
	Name Name
	Type RRType
	TTL  uint32
	Data RDATA
}

// Message is the complete decoded (or about-to-be-encoded) DNS message:
// header plus the four ordered sections. Messages are immutable values —
// callers get back a fresh Message from every decode, and never mutate one
// in place.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord
}

// OPT returns the OPTRecord present in the additional section, if any, and
// whether one was found. RFC 6891 permits at most one OPT record per
// message; if more than one is present (a malformed message), the first is
// returned.
func (m Message) OPT() (OPTRecord, bool) {
	for _, rr := range m.Additionals {
		if opt, ok := rr.Data.(OPTRecord); ok {
			return opt, true
		}
	}
	return OPTRecord{}, false
}

// ExtendedRCode reassembles the header's 4-bit RCODE with the OPT record's
// extended RCODE octet, if an OPT record is present.
func (m Message) ExtendedRCode() RCode {
	opt, ok := m.OPT()
	if !ok {
		return m.Header.RCode
	}
	return CombineExtended(uint8(m.Header.RCode), opt.ExtendedRCode, true)
}

// AnswersOfType returns the RDATA of every answer-section record whose
// type equals t, preserving wire order. Name filtering is deliberately not
// performed — type is the only projection criterion.
func (m Message) AnswersOfType(t RRType) []RDATA {
	return recordsOfType(m.Answers, t)
}

// AuthoritiesOfType returns the RDATA of every authority-section record
// whose type equals t, preserving wire order.
func (m Message) AuthoritiesOfType(t RRType) []RDATA {
	return recordsOfType(m.Authorities, t)
}

func recordsOfType(rrs []ResourceRecord, t RRType) []RDATA {
	out := make([]RDATA, 0, len(rrs))
	for _, rr := range rrs {
		if rr.Type == t {
			out = append(out, rr.Data)
		}
	}
	return out
}

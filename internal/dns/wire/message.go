package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/common/log"
	"github.com/haukened/dnsq/internal/dns/domain"
)

// headerSize is the fixed 12-byte DNS message header.
const headerSize = 12

// EncodeQuery serializes a single-question query for id, name and qtype.
// RD is always set; QR, OPCODE, and every other flag are zero unless ad
// requests the AD bit. The question's class is always IN. No OPT record
// is appended.
func EncodeQuery(id uint16, name domain.Name, qtype domain.RRType, ad bool) ([]byte, error) {
	e := NewEncoder()

	flags := uint16(0x0100) // RD=1
	if ad {
		flags |= 0x0020
	}

	e.Put16(id)
	e.Put16(flags)
	e.Put16(1) // QDCOUNT
	e.Put16(0) // ANCOUNT
	e.Put16(0) // NSCOUNT
	e.Put16(0) // ARCOUNT

	if err := e.EncodeName(name); err != nil {
		return nil, fmt.Errorf("wire: encode query name: %w", err)
	}
	e.Put16(uint16(qtype))
	e.Put16(uint16(domain.RRClassIN))

	raw := e.Bytes()
	log.Debug(map[string]any{
		"step": "encode_query",
		"id":   id,
		"name": string(name),
		"type": qtype.String(),
		"size": len(raw),
	}, "encoded DNS query")
	return raw, nil
}

// DecodeMessage parses a complete DNS message: header, question section,
// and the three resource-record sections. Every failure is reported as a
// plain error; callers that need the closed DNSError taxonomy (FormatError
// on a malformed message) wrap this at the transaction-loop boundary.
func DecodeMessage(data []byte) (domain.Message, error) {
	d := NewDecoder(data)

	header, err := decodeHeader(d)
	if err != nil {
		return domain.Message{}, fmt.Errorf("wire: decode header: %w", err)
	}

	questions := make([]domain.Question, 0, header.QDCount)
	for i := 0; i < int(header.QDCount); i++ {
		q, err := decodeQuestion(d)
		if err != nil {
			return domain.Message{}, fmt.Errorf("wire: decode question %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	answers, err := decodeRRSection(d, int(header.ANCount))
	if err != nil {
		return domain.Message{}, fmt.Errorf("wire: decode answer section: %w", err)
	}
	authorities, err := decodeRRSection(d, int(header.NSCount))
	if err != nil {
		return domain.Message{}, fmt.Errorf("wire: decode authority section: %w", err)
	}
	additionals, err := decodeRRSection(d, int(header.ARCount))
	if err != nil {
		return domain.Message{}, fmt.Errorf("wire: decode additional section: %w", err)
	}

	msg := domain.Message{
		Header:      header,
		Questions:   questions,
		Answers:     answers,
		Authorities: authorities,
		Additionals: additionals,
	}
	log.Debug(map[string]any{
		"step": "decode_message",
		"id":   header.ID,
		"an":   len(answers),
		"ns":   len(authorities),
		"ar":   len(additionals),
	}, "decoded DNS message")
	return msg, nil
}

// EncodeMessage serializes a full message, including its resource-record
// sections, without name compression. Production code never calls this —
// a stub client only ever encodes queries — but the round-trip property
// tests in §8 need a way to construct arbitrary wire-format messages.
func EncodeMessage(msg domain.Message) ([]byte, error) {
	e := NewEncoder()

	flags := uint16(0)
	if msg.Header.QR {
		flags |= 0x8000
	}
	flags |= uint16(msg.Header.Opcode&0x0F) << 11
	if msg.Header.AA {
		flags |= 0x0400
	}
	if msg.Header.TC {
		flags |= 0x0200
	}
	if msg.Header.RD {
		flags |= 0x0100
	}
	if msg.Header.RA {
		flags |= 0x0080
	}
	if msg.Header.AD {
		flags |= 0x0020
	}
	if msg.Header.CD {
		flags |= 0x0010
	}
	flags |= uint16(msg.Header.RCode) & 0x000F

	e.Put16(msg.Header.ID)
	e.Put16(flags)
	e.Put16(uint16(len(msg.Questions)))
	e.Put16(uint16(len(msg.Answers)))
	e.Put16(uint16(len(msg.Authorities)))
	e.Put16(uint16(len(msg.Additionals)))

	for _, q := range msg.Questions {
		if err := e.EncodeName(q.Name); err != nil {
			return nil, err
		}
		e.Put16(uint16(q.Type))
		e.Put16(uint16(domain.RRClassIN))
	}

	for _, section := range [][]domain.ResourceRecord{msg.Answers, msg.Authorities, msg.Additionals} {
		for _, rr := range section {
			if err := encodeResourceRecord(e, rr); err != nil {
				return nil, err
			}
		}
	}

	return e.Bytes(), nil
}

func encodeResourceRecord(e *Encoder, rr domain.ResourceRecord) error {
	if err := e.EncodeName(rr.Name); err != nil {
		return err
	}
	e.Put16(uint16(rr.Type))

	if opt, ok := rr.Data.(domain.OPTRecord); ok {
		encodeOPT(e, opt)
		return nil
	}

	e.Put16(uint16(domain.RRClassIN))
	e.Put32(rr.TTL)

	body := NewEncoder()
	if err := encodeRDATA(body, rr.Data); err != nil {
		return err
	}
	rdata := body.Bytes()
	e.Put16(uint16(len(rdata)))
	e.PutBytes(rdata)
	return nil
}

func decodeHeader(d *Decoder) (domain.Header, error) {
	if d.Remaining() < headerSize {
		return domain.Header{}, fmt.Errorf("wire: message shorter than header (%d bytes)", d.Remaining())
	}
	id, _ := d.Get16()
	flags, _ := d.Get16()
	qd, _ := d.Get16()
	an, _ := d.Get16()
	ns, _ := d.Get16()
	ar, _ := d.Get16()

	return domain.Header{
		ID:      id,
		QR:      flags&0x8000 != 0,
		Opcode:  uint8(flags>>11) & 0x0F,
		AA:      flags&0x0400 != 0,
		TC:      flags&0x0200 != 0,
		RD:      flags&0x0100 != 0,
		RA:      flags&0x0080 != 0,
		AD:      flags&0x0020 != 0,
		CD:      flags&0x0010 != 0,
		RCode:   domain.RCode(flags & 0x000F),
		QDCount: qd,
		ANCount: an,
		NSCount: ns,
		ARCount: ar,
	}, nil
}

func decodeQuestion(d *Decoder) (domain.Question, error) {
	name, err := d.DecodeName()
	if err != nil {
		return domain.Question{}, err
	}
	qtype, err := d.Get16()
	if err != nil {
		return domain.Question{}, err
	}
	// qclass is consumed but not exposed (spec invariant 5).
	if _, err := d.Get16(); err != nil {
		return domain.Question{}, err
	}
	return domain.Question{Name: name, Type: domain.RRType(qtype)}, nil
}

func decodeRRSection(d *Decoder, count int) ([]domain.ResourceRecord, error) {
	rrs := make([]domain.ResourceRecord, 0, count)
	for i := 0; i < count; i++ {
		rr, err := decodeResourceRecord(d)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		rrs = append(rrs, rr)
	}
	return rrs, nil
}

func decodeResourceRecord(d *Decoder) (domain.ResourceRecord, error) {
	name, err := d.DecodeName()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	typ, err := d.Get16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rrType := domain.RRType(typ)

	if rrType == domain.RRTypeOPT {
		class, err := d.Get16() // UDP payload size
		if err != nil {
			return domain.ResourceRecord{}, err
		}
		ttl, err := d.Get32() // extRCODE:version:flags packed
		if err != nil {
			return domain.ResourceRecord{}, err
		}
		rdlen, err := d.Get16()
		if err != nil {
			return domain.ResourceRecord{}, err
		}
		rdata, err := d.GetBytes(int(rdlen))
		if err != nil {
			return domain.ResourceRecord{}, err
		}
		opt, err := decodeOPT(class, ttl, rdata)
		if err != nil {
			return domain.ResourceRecord{}, err
		}
		return domain.ResourceRecord{Name: name, Type: rrType, Data: opt}, nil
	}

	// class is consumed but not exposed (spec invariant 5).
	if _, err := d.Get16(); err != nil {
		return domain.ResourceRecord{}, err
	}
	ttl, err := d.Get32()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdlen, err := d.Get16()
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	rdata, err := d.decodeRDATA(rrType, int(rdlen))
	if err != nil {
		return domain.ResourceRecord{}, fmt.Errorf("rdata: %w", err)
	}
	return domain.ResourceRecord{Name: name, Type: rrType, TTL: ttl, Data: rdata}, nil
}

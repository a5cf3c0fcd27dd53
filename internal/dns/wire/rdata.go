package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/domain"
)

// decodeRDATA dispatches to the per-type parser named in §3, reading
// exactly rdlen bytes of RDATA starting at the decoder's current position.
// Types not individually handled fall through to UnknownRecord, carrying
// the raw bytes and numeric type forward instead of failing the message.
func (d *Decoder) decodeRDATA(rrType domain.RRType, rdlen int) (rec domain.RDATA, err error) {
	start := d.Position()
	end := start + rdlen
	if end > d.Len() {
		return nil, errShortRDATA(rrType, rdlen, d.Remaining())
	}
	// Name-bearing types are parsed field by field; reject any whose fields
	// did not end exactly at the declared RDATA length.
	defer func() {
		if err == nil && d.Position() != end {
			rec, err = nil, fmt.Errorf("wire: %s RDATA used %d bytes, declared %d", rrType, d.Position()-start, rdlen)
		}
	}()

	switch rrType {
	case domain.RRTypeA:
		b, err := d.GetBytes(rdlen)
		if err != nil {
			return nil, err
		}
		return decodeA(b)
	case domain.RRTypeAAAA:
		b, err := d.GetBytes(rdlen)
		if err != nil {
			return nil, err
		}
		return decodeAAAA(b)
	case domain.RRTypeNS:
		return decodeNS(d)
	case domain.RRTypeCNAME:
		return decodeCNAME(d)
	case domain.RRTypePTR:
		return decodePTR(d)
	case domain.RRTypeDNAME:
		return decodeDNAME(d)
	case domain.RRTypeMX:
		return decodeMX(d)
	case domain.RRTypeSOA:
		return decodeSOA(d)
	case domain.RRTypeSRV:
		return decodeSRV(d)
	case domain.RRTypeTXT:
		b, err := d.GetBytes(rdlen)
		if err != nil {
			return nil, err
		}
		return decodeTXT(b)
	default:
		b, err := d.GetBytes(rdlen)
		if err != nil {
			return nil, err
		}
		return domain.UnknownRecord{RawType: rrType, Data: b}, nil
	}
}

// encodeRDATA writes rec's payload in wire format. Used by tests to build
// synthetic messages for round-trip verification; the production query
// path never encodes RDATA (queries carry no records).
func encodeRDATA(e *Encoder, rec domain.RDATA) error {
	switch rr := rec.(type) {
	case domain.ARecord:
		encodeA(e, rr)
		return nil
	case domain.AAAARecord:
		encodeAAAA(e, rr)
		return nil
	case domain.NSRecord:
		return encodeNS(e, rr)
	case domain.CNAMERecord:
		return encodeCNAME(e, rr)
	case domain.PTRRecord:
		return encodePTR(e, rr)
	case domain.DNAMERecord:
		return encodeDNAME(e, rr)
	case domain.MXRecord:
		return encodeMX(e, rr)
	case domain.SOARecord:
		return encodeSOA(e, rr)
	case domain.SRVRecord:
		return encodeSRV(e, rr)
	case domain.TXTRecord:
		return encodeTXT(e, rr)
	case domain.UnknownRecord:
		e.PutBytes(rr.Data)
		return nil
	default:
		return errUnsupportedRDATA(rec)
	}
}

package wire

import "github.com/haukened/dnsq/internal/dns/domain"

// decodeNSLike decodes the single-Domain RDATA shared by NS, CNAME, PTR,
// and DNAME records.
func (d *Decoder) decodeNSLike() (domain.Name, error) {
	return d.DecodeName()
}

func decodeNS(d *Decoder) (domain.NSRecord, error) {
	n, err := d.decodeNSLike()
	if err != nil {
		return domain.NSRecord{}, err
	}
	return domain.NSRecord{NSDName: n}, nil
}

func decodeCNAME(d *Decoder) (domain.CNAMERecord, error) {
	n, err := d.decodeNSLike()
	if err != nil {
		return domain.CNAMERecord{}, err
	}
	return domain.CNAMERecord{CName: n}, nil
}

func decodePTR(d *Decoder) (domain.PTRRecord, error) {
	n, err := d.decodeNSLike()
	if err != nil {
		return domain.PTRRecord{}, err
	}
	return domain.PTRRecord{PTRDName: n}, nil
}

func decodeDNAME(d *Decoder) (domain.DNAMERecord, error) {
	n, err := d.decodeNSLike()
	if err != nil {
		return domain.DNAMERecord{}, err
	}
	return domain.DNAMERecord{Target: n}, nil
}

func encodeNS(e *Encoder, rec domain.NSRecord) error    { return e.EncodeName(rec.NSDName) }
func encodeCNAME(e *Encoder, rec domain.CNAMERecord) error { return e.EncodeName(rec.CName) }
func encodePTR(e *Encoder, rec domain.PTRRecord) error   { return e.EncodeName(rec.PTRDName) }
func encodeDNAME(e *Encoder, rec domain.DNAMERecord) error { return e.EncodeName(rec.Target) }

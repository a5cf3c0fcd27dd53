package wire

import "github.com/haukened/dnsq/internal/dns/domain"

func decodeSRV(d *Decoder) (domain.SRVRecord, error) {
	priority, err := d.Get16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	weight, err := d.Get16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	port, err := d.Get16()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	target, err := d.DecodeName()
	if err != nil {
		return domain.SRVRecord{}, err
	}
	return domain.SRVRecord{Priority: priority, Weight: weight, Port: port, Target: target}, nil
}

func encodeSRV(e *Encoder, rec domain.SRVRecord) error {
	e.Put16(rec.Priority)
	e.Put16(rec.Weight)
	e.Put16(rec.Port)
	return e.EncodeName(rec.Target)
}

package wire

import "github.com/haukened/dnsq/internal/dns/domain"

func decodeSOA(d *Decoder) (domain.SOARecord, error) {
	mname, err := d.DecodeName()
	if err != nil {
		return domain.SOARecord{}, err
	}
	rname, err := d.DecodeName()
	if err != nil {
		return domain.SOARecord{}, err
	}
	serial, err := d.Get32()
	if err != nil {
		return domain.SOARecord{}, err
	}
	refresh, err := d.Get32()
	if err != nil {
		return domain.SOARecord{}, err
	}
	retry, err := d.Get32()
	if err != nil {
		return domain.SOARecord{}, err
	}
	expire, err := d.Get32()
	if err != nil {
		return domain.SOARecord{}, err
	}
	minimum, err := d.Get32()
	if err != nil {
		return domain.SOARecord{}, err
	}
	return domain.SOARecord{
		MName:   mname,
		RName:   rname,
		Serial:  serial,
		Refresh: refresh,
		Retry:   retry,
		Expire:  expire,
		Minimum: minimum,
	}, nil
}

func encodeSOA(e *Encoder, rec domain.SOARecord) error {
	if err := e.EncodeName(rec.MName); err != nil {
		return err
	}
	if err := e.EncodeName(rec.RName); err != nil {
		return err
	}
	e.Put32(rec.Serial)
	e.Put32(rec.Refresh)
	e.Put32(rec.Retry)
	e.Put32(rec.Expire)
	e.Put32(rec.Minimum)
	return nil
}

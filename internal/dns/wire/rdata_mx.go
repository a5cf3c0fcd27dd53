package wire

import "github.com/haukened/dnsq/internal/dns/domain"

func decodeMX(d *Decoder) (domain.MXRecord, error) {
	pref, err := d.Get16()
	if err != nil {
		return domain.MXRecord{}, err
	}
	exch, err := d.DecodeName()
	if err != nil {
		return domain.MXRecord{}, err
	}
	return domain.MXRecord{Preference: pref, Exchange: exch}, nil
}

func encodeMX(e *Encoder, rec domain.MXRecord) error {
	e.Put16(rec.Preference)
	return e.EncodeName(rec.Exchange)
}

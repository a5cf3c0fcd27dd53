package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/domain"
)

// decodeA parses a 4-octet IPv4 address payload.
func decodeA(data []byte) (domain.ARecord, error) {
	if len(data) != 4 {
		return domain.ARecord{}, fmt.Errorf("wire: A record must be 4 octets, got %d", len(data))
	}
	var rec domain.ARecord
	copy(rec.Address[:], data)
	return rec, nil
}

// decodeAAAA parses a 16-octet IPv6 address payload.
func decodeAAAA(data []byte) (domain.AAAARecord, error) {
	if len(data) != 16 {
		return domain.AAAARecord{}, fmt.Errorf("wire: AAAA record must be 16 octets, got %d", len(data))
	}
	var rec domain.AAAARecord
	copy(rec.Address[:], data)
	return rec, nil
}

func encodeA(e *Encoder, rec domain.ARecord) {
	e.PutBytes(rec.Address[:])
}

func encodeAAAA(e *Encoder, rec domain.AAAARecord) {
	e.PutBytes(rec.Address[:])
}

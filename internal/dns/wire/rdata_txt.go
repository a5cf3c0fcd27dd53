package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/domain"
)

// decodeTXT parses one or more length-prefixed character-strings, keeping
// each segment distinct rather than concatenating them into a single blob.
func decodeTXT(data []byte) (domain.TXTRecord, error) {
	var strs [][]byte
	i := 0
	for i < len(data) {
		l := int(data[i])
		i++
		if i+l > len(data) {
			return domain.TXTRecord{}, fmt.Errorf("wire: truncated TXT segment")
		}
		seg := make([]byte, l)
		copy(seg, data[i:i+l])
		strs = append(strs, seg)
		i += l
	}
	return domain.TXTRecord{Strings: strs}, nil
}

func encodeTXT(e *Encoder, rec domain.TXTRecord) error {
	for _, s := range rec.Strings {
		if len(s) > 255 {
			return fmt.Errorf("wire: TXT segment exceeds 255 octets")
		}
		e.Put8(uint8(len(s)))
		e.PutBytes(s)
	}
	return nil
}

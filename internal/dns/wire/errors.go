package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/domain"
)

func errShortRDATA(rrType domain.RRType, rdlen, remaining int) error {
	return fmt.Errorf("wire: %s record declares %d-byte RDATA but only %d bytes remain", rrType, rdlen, remaining)
}

func errUnsupportedRDATA(rec domain.RDATA) error {
	return fmt.Errorf("wire: no encoder registered for RDATA type %s", rec.Type())
}

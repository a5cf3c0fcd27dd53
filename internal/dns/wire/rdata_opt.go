package wire

import (
	"fmt"

	"github.com/haukened/dnsq/internal/dns/domain"
)

// decodeOPT parses the EDNS(0) pseudo-RR (RFC 6891). Unlike every other RR
// type, OPT replaces (class, ttl) with (udpPayloadSize, extendedRCODE,
// version, flagsWord); rdlen bytes following are a concatenation of
// (optCode:u16, optLen:u16, optData[optLen]) items.
func decodeOPT(class uint16, ttl uint32, rdata []byte) (domain.OPTRecord, error) {
	extRCode := uint8(ttl >> 24)
	version := uint8(ttl >> 16)
	flagsWord := uint16(ttl)
	opt := domain.OPTRecord{
		UDPPayloadSize: class,
		ExtendedRCode:  extRCode,
		Version:        version,
		DO:             flagsWord&0x8000 != 0,
		Z:              flagsWord &^ 0x8000,
	}

	i := 0
	for i < len(rdata) {
		if i+4 > len(rdata) {
			return domain.OPTRecord{}, fmt.Errorf("wire: truncated EDNS option header")
		}
		code := uint16(rdata[i])<<8 | uint16(rdata[i+1])
		length := int(uint16(rdata[i+2])<<8 | uint16(rdata[i+3]))
		i += 4
		if i+length > len(rdata) {
			return domain.OPTRecord{}, fmt.Errorf("wire: truncated EDNS option payload")
		}
		payload := rdata[i : i+length]
		i += length

		opt.Options = append(opt.Options, decodeOption(code, payload))
	}
	return opt, nil
}

func decodeOption(code uint16, payload []byte) domain.OData {
	if code == domain.OptCodeClientSubnet {
		if csOpt, ok := decodeClientSubnet(payload); ok {
			return csOpt
		}
	}
	raw := make([]byte, len(payload))
	copy(raw, payload)
	return domain.UnknownOption{RawCode: code, Data: raw}
}

// decodeClientSubnet parses an EDNS Client Subnet option (RFC 7871).
func decodeClientSubnet(payload []byte) (domain.ClientSubnetOption, bool) {
	if len(payload) < 4 {
		return domain.ClientSubnetOption{}, false
	}
	family := uint16(payload[0])<<8 | uint16(payload[1])
	sourcePrefix := payload[2]
	scopePrefix := payload[3]
	width := len(payload) - 4
	switch {
	case family == 1 && width < 4:
		width = 4
	case family == 2 && width < 16:
		width = 16
	}
	addr := make([]byte, width) // zero-filled past the received octets
	copy(addr, payload[4:])
	return domain.ClientSubnetOption{
		Family:       family,
		SourcePrefix: sourcePrefix,
		ScopePrefix:  scopePrefix,
		Address:      addr,
	}, true
}

// encodeOPT writes the class/ttl/rdlen/rdata fields for an OPT pseudo-RR.
func encodeOPT(e *Encoder, opt domain.OPTRecord) {
	e.Put16(opt.UDPPayloadSize)

	ttl := uint32(opt.ExtendedRCode)<<24 | uint32(opt.Version)<<16
	flagsWord := opt.Z &^ 0x8000
	if opt.DO {
		flagsWord |= 0x8000
	}
	ttl |= uint32(flagsWord)
	e.Put32(ttl)

	body := NewEncoder()
	for _, o := range opt.Options {
		encodeOption(body, o)
	}
	rdata := body.Bytes()
	e.Put16(uint16(len(rdata)))
	e.PutBytes(rdata)
}

func encodeOption(e *Encoder, o domain.OData) {
	switch opt := o.(type) {
	case domain.ClientSubnetOption:
		payload := NewEncoder()
		payload.Put16(opt.Family)
		payload.Put8(opt.SourcePrefix)
		payload.Put8(opt.ScopePrefix)
		payload.PutBytes(opt.Address)
		e.Put16(domain.OptCodeClientSubnet)
		e.Put16(uint16(payload.Len()))
		e.PutBytes(payload.Bytes())
	case domain.UnknownOption:
		e.Put16(opt.RawCode)
		e.Put16(uint16(len(opt.Data)))
		e.PutBytes(opt.Data)
	}
}

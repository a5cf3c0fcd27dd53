// Package lookup exposes the public entry points a caller uses to resolve
// a name against an already-open Resolver: LookupRaw/LookupRawAD hand back
// the full decoded message, Lookup/LookupAuth project the answer or
// authority section into a plain RDATA list after mapping the response's
// RCODE into the closed DNSError taxonomy.
package lookup

import (
	"github.com/haukened/dnsq/internal/dns/domain"
	"github.com/haukened/dnsq/internal/dns/resolver"
)

// LookupRaw performs one transaction and returns the decoded message
// verbatim, or a DNSError if the transaction failed before a message could
// be decoded (timeout, sequence mismatch, illegal domain).
func LookupRaw(r *resolver.Resolver, name domain.Name, qtype domain.RRType) (domain.Message, error) {
	return r.LookupRaw(name, qtype)
}

// LookupRawAD is LookupRaw with the AD bit set on the outgoing query.
func LookupRawAD(r *resolver.Resolver, name domain.Name, qtype domain.RRType) (domain.Message, error) {
	return r.LookupRawAD(name, qtype)
}

// Lookup performs a transaction, maps a non-zero RCODE to a DNSError, and
// otherwise projects the answer section: only records whose type equals
// qtype are returned, in wire order. Name filtering is deliberately not
// performed.
func Lookup(r *resolver.Resolver, name domain.Name, qtype domain.RRType) ([]domain.RDATA, error) {
	return lookupSection(r, name, qtype, false, false)
}

// LookupAuth is Lookup, projecting the authority section instead of the
// answer section.
func LookupAuth(r *resolver.Resolver, name domain.Name, qtype domain.RRType) ([]domain.RDATA, error) {
	return lookupSection(r, name, qtype, true, false)
}

func lookupSection(r *resolver.Resolver, name domain.Name, qtype domain.RRType, authority, ad bool) ([]domain.RDATA, error) {
	var msg domain.Message
	var err error
	if ad {
		msg, err = r.LookupRawAD(name, qtype)
	} else {
		msg, err = r.LookupRaw(name, qtype)
	}
	if err != nil {
		return nil, err
	}

	if rcErr := domain.RCodeToDNSError(msg.ExtendedRCode(), string(name), r.Server()); rcErr != nil {
		return nil, rcErr
	}

	if authority {
		return msg.AuthoritiesOfType(qtype), nil
	}
	return msg.AnswersOfType(qtype), nil
}

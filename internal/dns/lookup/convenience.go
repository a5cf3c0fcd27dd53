package lookup

import (
	"net"

	"github.com/haukened/dnsq/internal/dns/domain"
	"github.com/haukened/dnsq/internal/dns/resolver"
)

// LookupA resolves name to its IPv4 addresses.
func LookupA(r *resolver.Resolver, name domain.Name) ([]net.IP, error) {
	records, err := Lookup(r, name, domain.RRTypeA)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, 0, len(records))
	for _, rec := range records {
		if a, ok := rec.(domain.ARecord); ok {
			ips = append(ips, net.IP(a.Address[:]))
		}
	}
	return ips, nil
}

// LookupAAAA resolves name to its IPv6 addresses.
func LookupAAAA(r *resolver.Resolver, name domain.Name) ([]net.IP, error) {
	records, err := Lookup(r, name, domain.RRTypeAAAA)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, 0, len(records))
	for _, rec := range records {
		if a, ok := rec.(domain.AAAARecord); ok {
			ips = append(ips, net.IP(a.Address[:]))
		}
	}
	return ips, nil
}

// LookupMX resolves name to its mail exchange records.
func LookupMX(r *resolver.Resolver, name domain.Name) ([]domain.MXRecord, error) {
	records, err := Lookup(r, name, domain.RRTypeMX)
	if err != nil {
		return nil, err
	}
	return projectRDATA[domain.MXRecord](records), nil
}

// LookupTXT resolves name to its text records.
func LookupTXT(r *resolver.Resolver, name domain.Name) ([]domain.TXTRecord, error) {
	records, err := Lookup(r, name, domain.RRTypeTXT)
	if err != nil {
		return nil, err
	}
	return projectRDATA[domain.TXTRecord](records), nil
}

// LookupSRV resolves name to its service location records.
func LookupSRV(r *resolver.Resolver, name domain.Name) ([]domain.SRVRecord, error) {
	records, err := Lookup(r, name, domain.RRTypeSRV)
	if err != nil {
		return nil, err
	}
	return projectRDATA[domain.SRVRecord](records), nil
}

// LookupPTR resolves name (typically an in-addr.arpa/ip6.arpa name) to its
// pointer targets.
func LookupPTR(r *resolver.Resolver, name domain.Name) ([]domain.Name, error) {
	records, err := Lookup(r, name, domain.RRTypePTR)
	if err != nil {
		return nil, err
	}
	names := make([]domain.Name, 0, len(records))
	for _, ptr := range projectRDATA[domain.PTRRecord](records) {
		names = append(names, ptr.PTRDName)
	}
	return names, nil
}

// LookupNS resolves name to its authoritative name servers.
func LookupNS(r *resolver.Resolver, name domain.Name) ([]domain.Name, error) {
	records, err := Lookup(r, name, domain.RRTypeNS)
	if err != nil {
		return nil, err
	}
	names := make([]domain.Name, 0, len(records))
	for _, ns := range projectRDATA[domain.NSRecord](records) {
		names = append(names, ns.NSDName)
	}
	return names, nil
}

// LookupCNAME resolves name to its canonical name, if an alias exists.
func LookupCNAME(r *resolver.Resolver, name domain.Name) ([]domain.Name, error) {
	records, err := Lookup(r, name, domain.RRTypeCNAME)
	if err != nil {
		return nil, err
	}
	names := make([]domain.Name, 0, len(records))
	for _, cn := range projectRDATA[domain.CNAMERecord](records) {
		names = append(names, cn.CName)
	}
	return names, nil
}

// projectRDATA narrows a mixed RDATA slice down to the concrete type T,
// silently dropping any record whose Go type doesn't match — which cannot
// happen here since Lookup already filtered by wire type, but a type
// assertion is still required to recover the concrete struct.
func projectRDATA[T domain.RDATA](records []domain.RDATA) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if v, ok := rec.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Package resolver implements the UDP query transaction loop: a Resolver
// owns exactly one connected socket and runs transactions against it
// sequentially, matching replies to queries by transaction id with
// retry-with-timeout.
package resolver

import (
	"net"
	"time"

	"github.com/haukened/dnsq/internal/dns/resolvseed"
	"github.com/haukened/dnsq/internal/dns/wire"
)

// maxDatagramSize is the largest UDP payload a receive buffer must hold,
// covering the full 16-bit UDP length field regardless of what a
// ResolvSeed's obsolete BufSize carries (spec.md §4.4/§6: BufSize is
// accepted for API compatibility but must never truncate a read).
const maxDatagramSize = 65535

// Resolver owns exactly one connected UDP socket. It is not safe for
// concurrent use — every operation must be serialized by the caller — but
// distinct Resolvers may be driven from different goroutines in parallel.
type Resolver struct {
	conn    *net.UDPConn
	timeout time.Duration
	retry   int
	codec   wire.DNSCodec
	server  string
}

// newResolver dials a connected UDP socket to seed's address. The caller
// owns the returned Resolver and must close it exactly once.
func newResolver(seed resolvseed.ResolvSeed, codec wire.DNSCodec) (*Resolver, error) {
	conn, err := net.DialUDP("udp", nil, seed.Addr)
	if err != nil {
		return nil, err
	}
	return &Resolver{
		conn:    conn,
		timeout: time.Duration(seed.Timeout) * time.Microsecond,
		retry:   seed.Retry,
		codec:   codec,
		server:  seed.Addr.String(),
	}, nil
}

// Close closes the resolver's socket. It is called automatically by
// WithResolver/WithResolvers on every scope-exit path.
func (r *Resolver) Close() error {
	return r.conn.Close()
}

// Server returns the address this resolver is connected to.
func (r *Resolver) Server() string {
	return r.server
}

func (r *Resolver) logFields(extra map[string]any) map[string]any {
	fields := map[string]any{"server": r.server}
	for k, v := range extra {
		fields[k] = v
	}
	return fields
}

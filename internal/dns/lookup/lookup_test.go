package lookup

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"

	"github.com/haukened/dnsq/internal/dns/common/log"
	"github.com/haukened/dnsq/internal/dns/domain"
	"github.com/haukened/dnsq/internal/dns/resolver"
	"github.com/haukened/dnsq/internal/dns/resolvseed"
	"github.com/haukened/dnsq/internal/dns/wire"
)

func init() {
	log.SetLogger(log.NewNoopLogger())
}

func seedFor(t *testing.T, pc net.PacketConn, retry int, timeout time.Duration) resolvseed.ResolvSeed {
	t.Helper()
	udpAddr, ok := pc.LocalAddr().(*net.UDPAddr)
	require.True(t, ok)
	return resolvseed.ResolvSeed{
		Addr:    udpAddr,
		Timeout: uint64(timeout.Microseconds()),
		Retry:   retry,
		BufSize: 512,
	}
}

// scenario F: server replies with RCODE=3 (NXDOMAIN); Lookup surfaces a
// NameError without spending any further retry attempts.
func TestLookup_NXDOMAINMapsToNameError(t *testing.T) {
	pc, err := nettest.NewLocalPacketListener("udp")
	require.NoError(t, err)
	defer pc.Close()

	attempts := 0
	go func() {
		buf := make([]byte, 512)
		n, addr, err := pc.ReadFrom(buf)
		if err != nil {
			return
		}
		attempts++
		msg, err := wire.DecodeMessage(buf[:n])
		if err != nil {
			return
		}
		resp := domain.Message{Header: domain.Header{ID: msg.Header.ID, QR: true, RCode: domain.RCodeNameErr}}
		raw, _ := wire.EncodeMessage(resp)
		_, _ = pc.WriteTo(raw, addr)
	}()

	seed := seedFor(t, pc, 3, 500*time.Millisecond)
	_, err = resolver.WithResolver(seed, func(r *resolver.Resolver) (struct{}, error) {
		_, lookupErr := Lookup(r, "nosuchdomain.example.", domain.RRTypeA)
		return struct{}{}, lookupErr
	})

	require.Error(t, err)
	var dnsErr *domain.DNSError
	require.ErrorAs(t, err, &dnsErr)
	assert.Equal(t, domain.NameError, dnsErr.Code)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, attempts, "a definitive RCODE must not be retried")
}

// property 6: Lookup projects only the answer-section records matching the
// requested type, preserving wire order, and ignores unrelated types mixed
// into the same section.
func TestLookup_ProjectsOnlyRequestedType(t *testing.T) {
	pc, err := nettest.NewLocalPacketListener("udp")
	require.NoError(t, err)
	defer pc.Close()

	go func() {
		buf := make([]byte, 512)
		n, addr, err := pc.ReadFrom(buf)
		if err != nil {
			return
		}
		msg, err := wire.DecodeMessage(buf[:n])
		if err != nil {
			return
		}
		resp := domain.Message{
			Header: domain.Header{ID: msg.Header.ID, QR: true},
			Answers: []domain.ResourceRecord{
				{Name: "example.com.", Type: domain.RRTypeCNAME, TTL: 300, Data: domain.CNAMERecord{CName: "alias.example.com."}},
				{Name: "alias.example.com.", Type: domain.RRTypeA, TTL: 300, Data: domain.ARecord{Address: [4]byte{1, 2, 3, 4}}},
				{Name: "alias.example.com.", Type: domain.RRTypeA, TTL: 300, Data: domain.ARecord{Address: [4]byte{5, 6, 7, 8}}},
			},
		}
		raw, _ := wire.EncodeMessage(resp)
		_, _ = pc.WriteTo(raw, addr)
	}()

	seed := seedFor(t, pc, 3, 500*time.Millisecond)
	result, err := resolver.WithResolver(seed, func(r *resolver.Resolver) ([]domain.RDATA, error) {
		return Lookup(r, "example.com.", domain.RRTypeA)
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.ARecord{Address: [4]byte{1, 2, 3, 4}}, result[0])
	assert.Equal(t, domain.ARecord{Address: [4]byte{5, 6, 7, 8}}, result[1])
}

// LookupAuth projects the authority section instead of the answer section.
func TestLookupAuth_ProjectsAuthoritySection(t *testing.T) {
	pc, err := nettest.NewLocalPacketListener("udp")
	require.NoError(t, err)
	defer pc.Close()

	go func() {
		buf := make([]byte, 512)
		n, addr, err := pc.ReadFrom(buf)
		if err != nil {
			return
		}
		msg, err := wire.DecodeMessage(buf[:n])
		if err != nil {
			return
		}
		resp := domain.Message{
			Header: domain.Header{ID: msg.Header.ID, QR: true},
			Authorities: []domain.ResourceRecord{
				{Name: "example.com.", Type: domain.RRTypeSOA, TTL: 300, Data: domain.SOARecord{
					MName: "ns1.example.com.", RName: "hostmaster.example.com.",
					Serial: 1, Refresh: 2, Retry: 3, Expire: 4, Minimum: 5,
				}},
			},
		}
		raw, _ := wire.EncodeMessage(resp)
		_, _ = pc.WriteTo(raw, addr)
	}()

	seed := seedFor(t, pc, 3, 500*time.Millisecond)
	result, err := resolver.WithResolver(seed, func(r *resolver.Resolver) ([]domain.RDATA, error) {
		return LookupAuth(r, "example.com.", domain.RRTypeSOA)
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.RRTypeSOA, result[0].Type())
}

// A transaction-level failure (timeout) surfaces before any RCODE mapping
// or section projection is attempted.
func TestLookup_TransactionErrorPropagates(t *testing.T) {
	pc, err := nettest.NewLocalPacketListener("udp")
	require.NoError(t, err)
	defer pc.Close()

	seed := seedFor(t, pc, 2, 30*time.Millisecond)
	_, err = resolver.WithResolver(seed, func(r *resolver.Resolver) (struct{}, error) {
		_, lookupErr := Lookup(r, "example.com.", domain.RRTypeA)
		return struct{}{}, lookupErr
	})
	require.Error(t, err)
	var dnsErr *domain.DNSError
	require.ErrorAs(t, err, &dnsErr)
	assert.Equal(t, domain.TimeoutExpired, dnsErr.Code)
}

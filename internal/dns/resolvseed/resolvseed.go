// Package resolvseed turns a resolver configuration value — a literal
// address or a path to a resolver config file — into an immutable,
// shareable ResolvSeed describing where and how to reach a nameserver.
package resolvseed

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default configuration values (spec.md §6).
const (
	DefaultPort           = 53
	DefaultTimeoutMicros  = 3_000_000
	DefaultRetry          = 3
	DefaultBufSize        = 512
	DefaultResolvConfPath = "/etc/resolv.conf"
)

// Kind tags which of the three input alternatives a ResolvConf carries.
type Kind int

const (
	// KindLiteral is a literal numeric host, optionally with an explicit
	// port ("1.1.1.1" or "1.1.1.1:5353" or "[::1]:53").
	KindLiteral Kind = iota
	// KindFile is a filesystem path to a resolver configuration file
	// (e.g. /etc/resolv.conf).
	KindFile
)

// ResolvConf is the input to MakeResolvSeed: one of a literal address or a
// resolver config file path, plus the timeout/retry/bufsize parameters
// that travel with a ResolvSeed for its whole lifetime.
type ResolvConf struct {
	Kind    Kind
	Value   string `validate:"required"`
	Timeout uint64 `validate:"gt=0"` // microseconds
	Retry   int    `validate:"gte=1"`
	BufSize int    // accepted but ignored by the socket, retained for API compatibility
}

// DefaultResolvConf returns a ResolvConf pointed at /etc/resolv.conf with
// spec.md §6's default timeout, retry, and bufsize.
func DefaultResolvConf() ResolvConf {
	return ResolvConf{
		Kind:    KindFile,
		Value:   DefaultResolvConfPath,
		Timeout: DefaultTimeoutMicros,
		Retry:   DefaultRetry,
		BufSize: DefaultBufSize,
	}
}

// ResolvSeed is a pure configuration snapshot: a resolved nameserver
// address plus timeout/retry parameters. It is immutable and safe to share
// and reuse across any number of withResolver/withResolvers scopes.
type ResolvSeed struct {
	Addr    *net.UDPAddr
	Timeout uint64 // microseconds
	Retry   int
	BufSize int
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// MakeResolvSeed resolves cfg into a ResolvSeed. For KindFile, it reads the
// file and honors only the first "nameserver" line (spec.md §4.4); for
// KindLiteral, it parses the address directly. Address resolution is
// restricted to numeric form — no DNS lookups are performed to resolve the
// resolver's own address.
func MakeResolvSeed(cfg ResolvConf) (ResolvSeed, error) {
	if err := validate.Struct(&cfg); err != nil {
		return ResolvSeed{}, fmt.Errorf("resolvseed: invalid config: %w", err)
	}

	literal := cfg.Value
	if cfg.Kind == KindFile {
		addr, err := firstNameserverLine(cfg.Value)
		if err != nil {
			return ResolvSeed{}, err
		}
		literal = addr
	}

	udpAddr, err := parseNumericHostPort(literal)
	if err != nil {
		return ResolvSeed{}, fmt.Errorf("resolvseed: %w", err)
	}

	return ResolvSeed{
		Addr:    udpAddr,
		Timeout: cfg.Timeout,
		Retry:   cfg.Retry,
		BufSize: cfg.BufSize,
	}, nil
}

// firstNameserverLine reads path and returns the address on the first line
// beginning with the "nameserver" keyword. It parses the keyword and skips
// any run of whitespace after it, rather than assuming exactly one space
// (spec.md §9's suggested robustness improvement over dropping a fixed 11
// characters).
func firstNameserverLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("resolvseed: read %s: %w", path, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "nameserver")
		if !ok {
			continue
		}
		addr := strings.TrimSpace(rest)
		if addr == "" {
			continue
		}
		return addr, nil
	}
	return "", fmt.Errorf("resolvseed: no nameserver line found in %s", path)
}

// parseNumericHostPort accepts a bare numeric host (default port 53) or a
// host:port pair, and resolves it without performing any DNS lookups.
func parseNumericHostPort(addr string) (*net.UDPAddr, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
		port = strconv.Itoa(DefaultPort)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return nil, fmt.Errorf("nameserver address %q is not a numeric IP", host)
	}
	portNum, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("nameserver port %q is invalid: %w", port, err)
	}
	return &net.UDPAddr{IP: ip, Port: int(portNum)}, nil
}

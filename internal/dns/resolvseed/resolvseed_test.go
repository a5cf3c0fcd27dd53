package resolvseed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeResolvSeed_Literal(t *testing.T) {
	seed, err := MakeResolvSeed(ResolvConf{
		Kind: KindLiteral, Value: "1.1.1.1", Timeout: 1_000_000, Retry: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "1.1.1.1", seed.Addr.IP.String())
	assert.Equal(t, DefaultPort, seed.Addr.Port)
	assert.Equal(t, 3, seed.Retry)
}

func TestMakeResolvSeed_LiteralWithPort(t *testing.T) {
	seed, err := MakeResolvSeed(ResolvConf{
		Kind: KindLiteral, Value: "9.9.9.9:5353", Timeout: 1_000_000, Retry: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "9.9.9.9", seed.Addr.IP.String())
	assert.Equal(t, 5353, seed.Addr.Port)
}

func TestMakeResolvSeed_IPv6Literal(t *testing.T) {
	seed, err := MakeResolvSeed(ResolvConf{
		Kind: KindLiteral, Value: "[::1]:53", Timeout: 1_000_000, Retry: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "::1", seed.Addr.IP.String())
}

func TestMakeResolvSeed_NonNumericHostRejected(t *testing.T) {
	_, err := MakeResolvSeed(ResolvConf{
		Kind: KindLiteral, Value: "resolver.example.com", Timeout: 1_000_000, Retry: 1,
	})
	assert.Error(t, err)
}

func TestMakeResolvSeed_InvalidConfig(t *testing.T) {
	_, err := MakeResolvSeed(ResolvConf{Kind: KindLiteral, Value: "1.1.1.1", Timeout: 0, Retry: 1})
	assert.Error(t, err)

	_, err = MakeResolvSeed(ResolvConf{Kind: KindLiteral, Value: "1.1.1.1", Timeout: 1, Retry: 0})
	assert.Error(t, err)
}

func TestMakeResolvSeed_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nnameserver   8.8.8.8\nnameserver 8.8.4.4\n"), 0o644))

	seed, err := MakeResolvSeed(ResolvConf{Kind: KindFile, Value: path, Timeout: 1_000_000, Retry: 3})
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", seed.Addr.IP.String())
}

func TestMakeResolvSeed_FileMissingNameserver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte("search example.com\noptions ndots:1\n"), 0o644))

	_, err := MakeResolvSeed(ResolvConf{Kind: KindFile, Value: path, Timeout: 1_000_000, Retry: 3})
	assert.Error(t, err)
}

func TestFirstNameserverLine_SkipsRunOfWhitespace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resolv.conf")
	require.NoError(t, os.WriteFile(path, []byte("nameserver\t\t 10.0.0.1\n"), 0o644))

	addr, err := firstNameserverLine(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", addr)
}

func TestDefaultResolvConf(t *testing.T) {
	cfg := DefaultResolvConf()
	assert.Equal(t, KindFile, cfg.Kind)
	assert.Equal(t, DefaultResolvConfPath, cfg.Value)
	assert.EqualValues(t, DefaultTimeoutMicros, cfg.Timeout)
	assert.Equal(t, DefaultRetry, cfg.Retry)
	assert.Equal(t, DefaultBufSize, cfg.BufSize)
}

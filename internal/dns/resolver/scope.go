package resolver

import (
	"go.uber.org/multierr"

	"github.com/haukened/dnsq/internal/dns/resolvseed"
	"github.com/haukened/dnsq/internal/dns/wire"
)

// WithResolver dials a socket from seed, hands it to fn, and guarantees the
// socket is closed on every exit path — success, error, or panic — rather
// than requiring the caller to remember an explicit Close.
func WithResolver[R any](seed resolvseed.ResolvSeed, fn func(*Resolver) (R, error)) (R, error) {
	var zero R
	r, err := newResolver(seed, wire.StdCodec{})
	if err != nil {
		return zero, err
	}
	defer r.Close()
	return fn(r)
}

// WithResolvers dials one socket per seed and hands the whole set to fn.
// Either every socket opens and every socket is closed on exit, or opening
// fails partway through and every socket already opened is closed —
// aggregated with multierr — before the failure is surfaced.
func WithResolvers[R any](seeds []resolvseed.ResolvSeed, fn func([]*Resolver) (R, error)) (result R, err error) {
	var zero R

	resolvers := make([]*Resolver, 0, len(seeds))
	closeAll := func() error {
		var err error
		for _, r := range resolvers {
			err = multierr.Append(err, r.Close())
		}
		return err
	}

	for _, seed := range seeds {
		r, err := newResolver(seed, wire.StdCodec{})
		if err != nil {
			return zero, multierr.Append(err, closeAll())
		}
		resolvers = append(resolvers, r)
	}

	defer func() { err = multierr.Append(err, closeAll()) }()
	return fn(resolvers)
}

// Command dnsq resolves a single name/type pair against a configured
// nameserver and prints the answer section.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/haukened/dnsq/internal/dns/common/log"
	"github.com/haukened/dnsq/internal/dns/config"
	"github.com/haukened/dnsq/internal/dns/domain"
	"github.com/haukened/dnsq/internal/dns/lookup"
	"github.com/haukened/dnsq/internal/dns/resolver"
	"github.com/haukened/dnsq/internal/dns/resolvseed"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "dnsq:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: dnsq <name> <type>")
	}
	name := domain.Name(args[0])
	qtype, ok := domain.RRTypeFromString(strings.ToUpper(args[1]))
	if !ok {
		return fmt.Errorf("unrecognized record type %q", args[1])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := log.Configure(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	seed, err := resolvseed.MakeResolvSeed(resolvConfFromAppConfig(*cfg))
	if err != nil {
		return fmt.Errorf("resolving nameserver config: %w", err)
	}

	records, err := resolver.WithResolver(seed, func(r *resolver.Resolver) ([]domain.RDATA, error) {
		return lookup.Lookup(r, name, qtype)
	})
	if err != nil {
		return err
	}

	for _, rec := range records {
		fmt.Println(formatRDATA(rec))
	}
	return nil
}

// resolvConfFromAppConfig maps the CLI's flat config into a resolvseed.ResolvConf,
// treating any value beginning with "/" as a resolver config file path.
func resolvConfFromAppConfig(cfg config.AppConfig) resolvseed.ResolvConf {
	kind := resolvseed.KindLiteral
	if strings.HasPrefix(cfg.Nameserver, "/") {
		kind = resolvseed.KindFile
	}
	return resolvseed.ResolvConf{
		Kind:    kind,
		Value:   cfg.Nameserver,
		Timeout: cfg.TimeoutUS,
		Retry:   cfg.Retry,
		BufSize: resolvseed.DefaultBufSize,
	}
}

func formatRDATA(rec domain.RDATA) string {
	switch v := rec.(type) {
	case domain.ARecord:
		return fmt.Sprintf("A %d.%d.%d.%d", v.Address[0], v.Address[1], v.Address[2], v.Address[3])
	case domain.AAAARecord:
		return fmt.Sprintf("AAAA %x", v.Address)
	case domain.NSRecord:
		return fmt.Sprintf("NS %s", v.NSDName)
	case domain.CNAMERecord:
		return fmt.Sprintf("CNAME %s", v.CName)
	case domain.PTRRecord:
		return fmt.Sprintf("PTR %s", v.PTRDName)
	case domain.DNAMERecord:
		return fmt.Sprintf("DNAME %s", v.Target)
	case domain.MXRecord:
		return fmt.Sprintf("MX %d %s", v.Preference, v.Exchange)
	case domain.SOARecord:
		return fmt.Sprintf("SOA %s %s %d %d %d %d %d", v.MName, v.RName, v.Serial, v.Refresh, v.Retry, v.Expire, v.Minimum)
	case domain.SRVRecord:
		return fmt.Sprintf("SRV %d %d %d %s", v.Priority, v.Weight, v.Port, v.Target)
	case domain.TXTRecord:
		parts := make([]string, len(v.Strings))
		for i, s := range v.Strings {
			parts[i] = string(s)
		}
		return fmt.Sprintf("TXT %s", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%v", rec)
	}
}

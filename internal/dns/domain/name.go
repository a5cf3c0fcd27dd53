package domain

import "strings"

// Name is a DNS domain name: a dot-joined sequence of labels, preserved
// exactly as given. Comparison is case-insensitive by convention, but this
// type never lowercases or otherwise mutates the value it holds.
type Name string

// MaxNameLength is the maximum encoded length (RFC 1035 §3.1), including
// every length octet and the terminating zero.
const MaxNameLength = 255

// MaxLabelLength is the maximum length of a single label.
const MaxLabelLength = 63

// Validate reports whether n is syntactically legal as a query name, per
// the pre-flight rules a transaction loop must apply before any I/O:
// non-empty, contains a dot, contains neither ':' nor '/', a total length
// of 253 octets or less, and no label longer than 63 octets.
func (n Name) Validate() error {
	s := string(n)
	if s == "" {
		return errIllegalDomain("empty domain name")
	}
	if !strings.Contains(s, ".") {
		return errIllegalDomain("domain name contains no dot")
	}
	if strings.ContainsAny(s, ":/") {
		return errIllegalDomain("domain name contains illegal character")
	}
	if len(s) > 253 {
		return errIllegalDomain("domain name exceeds 253 octets")
	}
	for _, label := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if len(label) > MaxLabelLength {
			return errIllegalDomain("label exceeds 63 octets")
		}
	}
	return nil
}

// String returns the name unchanged.
func (n Name) String() string {
	return string(n)
}

// Labels splits n into its component labels, ignoring a single trailing
// empty label produced by a trailing dot.
func (n Name) Labels() []string {
	s := strings.TrimSuffix(string(n), ".")
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

func errIllegalDomain(reason string) error {
	return &DNSError{
		Code: IllegalDomain,
		Err:  reason,
	}
}

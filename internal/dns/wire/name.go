package wire

import (
	"fmt"
	"strings"

	"github.com/haukened/dnsq/internal/dns/domain"
)

const (
	pointerMask   = 0xC0 // top two bits both 1: a compression pointer
	maxNameLength = domain.MaxNameLength
)

// DecodeName decodes a domain name starting at the decoder's current
// position, following at most one compression-pointer hop chain, and
// returns it as a dot-joined label sequence with a trailing dot
// ("www.example.com."). The root name decodes to the empty string.
//
// The starting offset of every name segment seen — including one reached
// only via a pointer — is recorded in the pointer cache under the full
// suffix from that point forward, so a later pointer to the same offset
// resolves in one step and a cycle cannot cause unbounded recursion.
func (d *Decoder) DecodeName() (domain.Name, error) {
	start := d.cursor
	suffix, err := d.decodeNameSuffix(start, 0)
	if err != nil {
		return "", err
	}
	return domain.Name(suffix), nil
}

func (d *Decoder) decodeNameSuffix(offset int, depth int) (string, error) {
	if depth > 128 {
		return "", fmt.Errorf("wire: name decompression exceeded depth limit")
	}
	if cached, ok := d.pointerCache[offset]; ok {
		return cached, nil
	}

	var labels []string
	pos := offset
	for {
		if pos >= len(d.data) {
			return "", fmt.Errorf("wire: name decode ran past end of message")
		}
		c := d.data[pos]

		if c == 0 {
			pos++
			break
		}

		if c&pointerMask == pointerMask {
			if pos+1 >= len(d.data) {
				return "", fmt.Errorf("wire: truncated compression pointer")
			}
			target := int(c&0x3F)<<8 | int(d.data[pos+1])
			if target >= offset {
				return "", fmt.Errorf("wire: compression pointer does not point strictly backward")
			}
			suffix, err := d.decodeNameSuffix(target, depth+1)
			if err != nil {
				return "", err
			}
			pos += 2
			d.recordSuffix(offset, labels, suffix)
			d.seekIfCurrent(offset, pos)
			return joinLabels(labels) + suffix, nil
		}

		if c&pointerMask != 0 {
			return "", fmt.Errorf("wire: reserved label length bits set")
		}

		length := int(c)
		if length > domain.MaxLabelLength {
			return "", fmt.Errorf("wire: label exceeds 63 octets")
		}
		pos++
		if pos+length > len(d.data) {
			return "", fmt.Errorf("wire: truncated label")
		}
		labels = append(labels, string(d.data[pos:pos+length]))
		pos += length

		if labelsLength(labels) > maxNameLength {
			return "", fmt.Errorf("wire: name exceeds 255 octets")
		}
	}

	suffix := joinLabels(labels)
	d.pointerCache[offset] = suffix
	d.seekIfCurrent(offset, pos)
	return suffix, nil
}

// recordSuffix caches the join of already-decoded labels plus the suffix
// reached through a pointer, so a future pointer to this same offset
// resolves without re-walking the chain.
func (d *Decoder) recordSuffix(offset int, labels []string, suffix string) {
	d.pointerCache[offset] = joinLabels(labels) + suffix
}

// seekIfCurrent advances the shared cursor only when this call is decoding
// the name at the decoder's live position (not a recursive pointer hop),
// so callers see the cursor land just past the name they asked to decode.
func (d *Decoder) seekIfCurrent(offset, newPos int) {
	if d.cursor == offset {
		d.seek(newPos)
	}
}

// joinLabels writes each label followed by a dot, so a non-empty label
// list yields a fully-qualified name and an empty one yields "".
func joinLabels(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return strings.Join(labels, ".") + "."
}

func labelsLength(labels []string) int {
	n := 1 // terminating zero
	for _, l := range labels {
		n += 1 + len(l)
	}
	return n
}

// EncodeName writes name as length-prefixed labels terminated by a zero
// byte. Compression is not performed on encode: spec.md §4.2 notes it is
// not required for correctness, and a stub client only ever encodes a
// single question name per query.
func (e *Encoder) EncodeName(name domain.Name) error {
	s := strings.TrimSuffix(string(name), ".")
	if s == "" {
		e.Put8(0)
		return nil
	}
	for _, label := range strings.Split(s, ".") {
		if len(label) == 0 {
			continue
		}
		if len(label) > domain.MaxLabelLength {
			return fmt.Errorf("wire: label %q exceeds 63 octets", label)
		}
		e.Put8(uint8(len(label)))
		e.PutBytes([]byte(label))
	}
	e.Put8(0)
	return nil
}

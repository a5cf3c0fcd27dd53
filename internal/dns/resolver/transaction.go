package resolver

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"net"
	"time"

	"github.com/haukened/dnsq/internal/dns/common/log"
	"github.com/haukened/dnsq/internal/dns/domain"
)

// newTransactionID draws a transaction id uniformly from [0, 65535] using
// a cryptographically strong source, so an off-path attacker cannot
// predict it from process state alone (spec.md §9).
func newTransactionID() (uint16, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// LookupRaw performs one transaction: pre-flight validation, then send
// with retry-with-timeout until a matching reply arrives or the retry
// budget is exhausted.
func (r *Resolver) LookupRaw(name domain.Name, qtype domain.RRType) (domain.Message, error) {
	return r.lookupRaw(name, qtype, false)
}

// LookupRawAD is LookupRaw with the AD bit set on the outgoing query.
func (r *Resolver) LookupRawAD(name domain.Name, qtype domain.RRType) (domain.Message, error) {
	return r.lookupRaw(name, qtype, true)
}

func (r *Resolver) lookupRaw(name domain.Name, qtype domain.RRType, ad bool) (domain.Message, error) {
	if err := name.Validate(); err != nil {
		return domain.Message{}, err
	}

	id, err := newTransactionID()
	if err != nil {
		return domain.Message{}, err
	}

	query, err := r.codec.EncodeQuery(id, name, qtype, ad)
	if err != nil {
		return domain.Message{}, err
	}

	sawMismatch := false
	buf := make([]byte, maxDatagramSize)

	for attempt := 0; attempt < r.retry; attempt++ {
		log.Debug(r.logFields(map[string]any{
			"step":    "send",
			"id":      id,
			"attempt": attempt,
			"name":    string(name),
			"type":    qtype.String(),
		}), "sending DNS query")

		if _, err := r.conn.Write(query); err != nil {
			return domain.Message{}, err
		}

		if err := r.conn.SetReadDeadline(time.Now().Add(r.timeout)); err != nil {
			return domain.Message{}, err
		}

		n, err := r.conn.Read(buf)
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Debug(r.logFields(map[string]any{"step": "timeout", "id": id, "attempt": attempt}), "no reply before deadline")
				continue
			}
			return domain.Message{}, err
		}

		msg, err := r.codec.DecodeMessage(buf[:n])
		if err != nil {
			log.Warn(r.logFields(map[string]any{"id": id, "attempt": attempt, "err": err.Error()}), "undecodable reply: surfacing without retry")
			return domain.Message{}, &domain.DNSError{Code: domain.FormatError, Name: string(name), Server: r.server, Err: "reply could not be decoded", Cause: err}
		}

		if msg.Header.ID != id {
			log.Debug(r.logFields(map[string]any{"step": "mismatch", "id": id, "got": msg.Header.ID, "attempt": attempt}), "discarding id-mismatched datagram")
			sawMismatch = true
			continue
		}

		log.Debug(r.logFields(map[string]any{"step": "matched", "id": id, "attempt": attempt}), "received matching reply")
		return msg, nil
	}

	if sawMismatch {
		log.Warn(r.logFields(map[string]any{"id": id, "name": string(name)}), "exhausted retries: sequence number mismatch")
		return domain.Message{}, &domain.DNSError{Code: domain.SequenceNumberMismatch, Name: string(name), Server: r.server, Err: "no reply carried the expected transaction id"}
	}
	log.Warn(r.logFields(map[string]any{"id": id, "name": string(name)}), "exhausted retries: timeout")
	return domain.Message{}, &domain.DNSError{Code: domain.TimeoutExpired, Name: string(name), Server: r.server, IsTimeout: true, Err: "no reply received within retry budget"}
}

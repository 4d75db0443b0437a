// Package stats counts header codec outcomes for the HTTP service.
package stats

import (
	"errors"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/jroosing/dnsheader/internal/dns"
)

// CodecStats collects decode and encode statistics.
// All methods are safe for concurrent use.
type CodecStats struct {
	decodesTotal   atomic.Uint64
	decodesFailed  atomic.Uint64
	truncated      atomic.Uint64
	encodesTotal   atomic.Uint64
	encodesFailed  atomic.Uint64
	writeFailures  atomic.Uint64
	invalidByField sync.Map // field name -> *atomic.Uint64
}

// NewCodecStats creates a new codec statistics collector.
func NewCodecStats() *CodecStats {
	return &CodecStats{}
}

// RecordDecode records the outcome of one decode. A nil err counts as success.
func (s *CodecStats) RecordDecode(err error) {
	s.decodesTotal.Add(1)
	if err == nil {
		return
	}
	s.decodesFailed.Add(1)
	if errors.Is(err, dns.ErrTruncatedHeader) {
		s.truncated.Add(1)
	}
	s.recordInvalid(err)
}

// RecordEncode records the outcome of one encode. A nil err counts as success.
func (s *CodecStats) RecordEncode(err error) {
	s.encodesTotal.Add(1)
	if err == nil {
		return
	}
	s.encodesFailed.Add(1)
	if errors.Is(err, dns.ErrHeaderWrite) {
		s.writeFailures.Add(1)
	}
	s.recordInvalid(err)
}

func (s *CodecStats) recordInvalid(err error) {
	var invalid *dns.InvalidValueError
	if !errors.As(err, &invalid) {
		return
	}
	c, _ := s.invalidByField.LoadOrStore(invalid.Field, new(atomic.Uint64))
	c.(*atomic.Uint64).Add(1)
}

// Snapshot is a point-in-time copy of codec statistics.
type Snapshot struct {
	DecodesTotal   uint64
	DecodesFailed  uint64
	Truncated      uint64
	EncodesTotal   uint64
	EncodesFailed  uint64
	WriteFailures  uint64
	InvalidByField map[string]uint64
}

// Snapshot returns the current statistics.
func (s *CodecStats) Snapshot() Snapshot {
	byField := map[string]uint64{}
	s.invalidByField.Range(func(k, v any) bool {
		byField[k.(string)] = v.(*atomic.Uint64).Load()
		return true
	})

	return Snapshot{
		DecodesTotal:   s.decodesTotal.Load(),
		DecodesFailed:  s.decodesFailed.Load(),
		Truncated:      s.truncated.Load(),
		EncodesTotal:   s.encodesTotal.Load(),
		EncodesFailed:  s.encodesFailed.Load(),
		WriteFailures:  s.writeFailures.Load(),
		InvalidByField: byField,
	}
}

// InvalidTotal sums the per-field invalid value counts.
func (s Snapshot) InvalidTotal() uint64 {
	var n uint64
	for v := range maps.Values(s.InvalidByField) {
		n += v
	}
	return n
}

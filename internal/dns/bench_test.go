package dns_test

import (
	"io"
	"testing"

	"github.com/jroosing/dnsheader/internal/dns"
)

// =============================================================================
// Header Codec Benchmarks
// =============================================================================

func BenchmarkDecode(b *testing.B) {
	msg := sampleWire()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := dns.Decode(msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	h := sampleHeader()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := h.Encode(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeTo(b *testing.B) {
	h := sampleHeader()

	b.ReportAllocs()
	for b.Loop() {
		if err := h.EncodeTo(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode_Parallel(b *testing.B) {
	h := sampleHeader()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := h.Encode(); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

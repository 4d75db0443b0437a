package stats_test

import (
	"io"
	"sync"
	"testing"

	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/jroosing/dnsheader/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestCodecStats_Decode(t *testing.T) {
	s := stats.NewCodecStats()

	s.RecordDecode(nil)
	s.RecordDecode(&dns.ReadError{Range: dns.RangeFlags, Err: io.ErrUnexpectedEOF})
	s.RecordDecode(&dns.InvalidValueError{Field: dns.FieldZ, Value: 1})
	s.RecordDecode(&dns.InvalidValueError{Field: dns.FieldOpcode, Value: 3, Reason: dns.ReasonUnassigned})
	s.RecordDecode(&dns.InvalidValueError{Field: dns.FieldZ, Value: 1})

	snap := s.Snapshot()
	assert.Equal(t, uint64(5), snap.DecodesTotal)
	assert.Equal(t, uint64(4), snap.DecodesFailed)
	assert.Equal(t, uint64(1), snap.Truncated)
	assert.Equal(t, map[string]uint64{"Z": 2, "OPCODE": 1}, snap.InvalidByField)
	assert.Equal(t, uint64(3), snap.InvalidTotal())
	assert.Zero(t, snap.EncodesTotal)
}

func TestCodecStats_Encode(t *testing.T) {
	s := stats.NewCodecStats()

	s.RecordEncode(nil)
	s.RecordEncode(&dns.WriteError{Property: dns.PropertyID, Err: io.ErrShortWrite})
	s.RecordEncode(&dns.InvalidValueError{Field: dns.FieldRCode, Value: 16, Reason: dns.ReasonInvalidRange})

	snap := s.Snapshot()
	assert.Equal(t, uint64(3), snap.EncodesTotal)
	assert.Equal(t, uint64(2), snap.EncodesFailed)
	assert.Equal(t, uint64(1), snap.WriteFailures)
	assert.Equal(t, map[string]uint64{"RCODE": 1}, snap.InvalidByField)
}

func TestCodecStats_SnapshotIsCopy(t *testing.T) {
	s := stats.NewCodecStats()
	s.RecordDecode(&dns.InvalidValueError{Field: dns.FieldQR, Value: 2})

	snap := s.Snapshot()
	snap.InvalidByField["QR"] = 100

	assert.Equal(t, uint64(1), s.Snapshot().InvalidByField["QR"])
}

func TestCodecStats_Concurrent(t *testing.T) {
	s := stats.NewCodecStats()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				s.RecordDecode(nil)
				s.RecordDecode(&dns.InvalidValueError{Field: dns.FieldRCode, Value: 12, Reason: dns.ReasonUnassigned})
				s.RecordEncode(nil)
			}
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, uint64(1600), snap.DecodesTotal)
	assert.Equal(t, uint64(800), snap.DecodesFailed)
	assert.Equal(t, uint64(800), snap.InvalidByField["RCODE"])
	assert.Equal(t, uint64(800), snap.EncodesTotal)
}

package dns_test

import (
	"testing"

	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flagCase exercises the shared one-bit contract for a single flag type.
type flagCase[T dns.Flag] struct {
	field string
	zero  T
	one   T
}

func (c flagCase[T]) run(t *testing.T) {
	t.Helper()

	got, err := dns.FlagFromBit[T](0)
	require.NoError(t, err)
	assert.Equal(t, c.zero, got)

	got, err = dns.FlagFromBit[T](1)
	require.NoError(t, err)
	assert.Equal(t, c.one, got)

	for _, raw := range []uint8{2, 3, 0x80, 0xFF} {
		_, err = dns.FlagFromBit[T](raw)
		var invalid *dns.InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, c.field, invalid.Field)
		assert.Equal(t, uint16(raw), invalid.Value)
		assert.Equal(t, dns.ReasonNone, invalid.Reason)
	}

	assert.Equal(t, c.field, c.zero.Field())
	assert.Equal(t, uint8(0), uint8(c.zero))
	assert.Equal(t, uint8(1), uint8(c.one))
}

func TestFlagFromBit(t *testing.T) {
	t.Run("QR", flagCase[dns.QR]{dns.FieldQR, dns.Query, dns.Response}.run)
	t.Run("AA", flagCase[dns.AA]{dns.FieldAA, dns.FromNonAuthority, dns.FromAuthority}.run)
	t.Run("TC", flagCase[dns.TC]{dns.FieldTC, dns.NotTruncated, dns.Truncated}.run)
	t.Run("RD", flagCase[dns.RD]{dns.FieldRD, dns.RecursionUndesired, dns.RecursionDesired}.run)
	t.Run("RA", flagCase[dns.RA]{dns.FieldRA, dns.RecursionUnavailable, dns.RecursionAvailable}.run)
	t.Run("AD", flagCase[dns.AD]{dns.FieldAD, dns.DNSSECUnauthenticated, dns.DNSSECAuthenticated}.run)
	t.Run("CD", flagCase[dns.CD]{dns.FieldCD, dns.DNSSECEnabled, dns.DNSSECForbidden}.run)
}

func TestFlagBooleanView(t *testing.T) {
	assert.True(t, dns.Truncated.Bool())
	assert.False(t, dns.NotTruncated.Bool())
	assert.True(t, dns.RecursionAvailable.Bool())
	assert.False(t, dns.RecursionUnavailable.Bool())
	assert.True(t, dns.DNSSECAuthenticated.Bool())
	assert.False(t, dns.DNSSECUnauthenticated.Bool())
	assert.True(t, dns.DNSSECForbidden.Bool())
	assert.False(t, dns.DNSSECEnabled.Bool())

	assert.Equal(t, dns.Truncated, dns.FlagFromBool[dns.TC](true))
	assert.Equal(t, dns.NotTruncated, dns.FlagFromBool[dns.TC](false))
	assert.Equal(t, dns.RecursionAvailable, dns.FlagFromBool[dns.RA](true))
	assert.Equal(t, dns.RecursionUnavailable, dns.FlagFromBool[dns.RA](false))
	assert.Equal(t, dns.DNSSECAuthenticated, dns.FlagFromBool[dns.AD](true))
	assert.Equal(t, dns.DNSSECUnauthenticated, dns.FlagFromBool[dns.AD](false))
	assert.Equal(t, dns.DNSSECForbidden, dns.FlagFromBool[dns.CD](true))
	assert.Equal(t, dns.DNSSECEnabled, dns.FlagFromBool[dns.CD](false))
}

func TestFlagHexString(t *testing.T) {
	assert.Equal(t, "0", dns.Query.HexString())
	assert.Equal(t, "1", dns.Response.HexString())
	assert.Equal(t, "0", dns.FromNonAuthority.HexString())
	assert.Equal(t, "1", dns.FromAuthority.HexString())
	assert.Equal(t, "1", dns.Truncated.HexString())
	assert.Equal(t, "1", dns.RecursionDesired.HexString())
	assert.Equal(t, "0", dns.RecursionUnavailable.HexString())
	assert.Equal(t, "1", dns.DNSSECAuthenticated.HexString())
	assert.Equal(t, "0", dns.DNSSECEnabled.HexString())
}

func TestFlagString(t *testing.T) {
	assert.Equal(t, "response", dns.Response.String())
	assert.Equal(t, "authoritative", dns.FromAuthority.String())
	assert.Equal(t, "checking-disabled", dns.DNSSECForbidden.String())
	assert.Equal(t, "QR(7)", dns.QR(7).String())
}

func TestZ(t *testing.T) {
	z, err := dns.ZFromBit(0)
	require.NoError(t, err)
	assert.Equal(t, dns.Z{}, z)
	assert.Equal(t, uint8(0), z.Bit())
	assert.Equal(t, "0", z.HexString())

	_, err = dns.ZFromBit(1)
	var invalid *dns.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, dns.FieldZ, invalid.Field)
	assert.Equal(t, uint16(1), invalid.Value)
	assert.EqualError(t, err, "dns wire error: found invalid Z value: 1")
}

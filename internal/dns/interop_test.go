package dns_test

import (
	"testing"

	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/dns/dnsmessage"
)

// =============================================================================
// Cross-checks against golang.org/x/net/dns/dnsmessage
// =============================================================================

func TestInterop_EncodeParsedByDNSMessage(t *testing.T) {
	h := dns.Header{
		ID:     0x4242,
		QR:     dns.Response,
		Opcode: dns.OpcodeNotify,
		AA:     dns.FromAuthority,
		TC:     dns.NotTruncated,
		RD:     dns.RecursionDesired,
		RA:     dns.RecursionUnavailable,
		AD:     dns.DNSSECAuthenticated,
		CD:     dns.DNSSECForbidden,
		RCode:  dns.RCodeNotAuth,
	}
	b, err := h.Encode()
	require.NoError(t, err)

	var p dnsmessage.Parser
	got, err := p.Start(b)
	require.NoError(t, err)

	assert.Equal(t, uint16(h.ID), got.ID)
	assert.True(t, got.Response)
	assert.Equal(t, dnsmessage.OpCode(dns.OpcodeNotify), got.OpCode)
	assert.True(t, got.Authoritative)
	assert.False(t, got.Truncated)
	assert.True(t, got.RecursionDesired)
	assert.False(t, got.RecursionAvailable)
	assert.True(t, got.AuthenticData)
	assert.True(t, got.CheckingDisabled)
	assert.Equal(t, dnsmessage.RCode(dns.RCodeNotAuth), got.RCode)
}

func TestInterop_DecodeBuiltByDNSMessage(t *testing.T) {
	want := dnsmessage.Header{
		ID:                 0xBEEF,
		Response:           false,
		OpCode:             dnsmessage.OpCode(dns.OpcodeUpdate),
		Truncated:          true,
		RecursionDesired:   true,
		RecursionAvailable: true,
		AuthenticData:      false,
		CheckingDisabled:   true,
		RCode:              dnsmessage.RCodeNameError,
	}
	b := dnsmessage.NewBuilder(nil, want)
	msg, err := b.Finish()
	require.NoError(t, err)

	h, err := dns.Decode(msg)
	require.NoError(t, err)

	assert.Equal(t, dns.ID(0xBEEF), h.ID)
	assert.Equal(t, dns.Query, h.QR)
	assert.Equal(t, dns.OpcodeUpdate, h.Opcode)
	assert.Equal(t, dns.FromNonAuthority, h.AA)
	assert.Equal(t, dns.Truncated, h.TC)
	assert.Equal(t, dns.RecursionDesired, h.RD)
	assert.Equal(t, dns.RecursionAvailable, h.RA)
	assert.Equal(t, dns.DNSSECUnauthenticated, h.AD)
	assert.Equal(t, dns.DNSSECForbidden, h.CD)
	assert.Equal(t, dns.RCodeNXDomain, h.RCode)
	assert.Zero(t, h.QDZOCount)
	assert.Zero(t, h.ARCount)
}

package helpers_test

import (
	"encoding/hex"
	"testing"

	"github.com/jroosing/dnsheader/internal/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	want := []byte{0xAB, 0xCD, 0x86, 0xA0}

	tests := []struct {
		name string
		in   string
	}{
		{name: "compact", in: "ABCD86A0"},
		{name: "lowercase", in: "abcd86a0"},
		{name: "spaced", in: "AB CD 86 A0"},
		{name: "colons", in: "ab:cd:86:a0"},
		{name: "dashes", in: "AB-CD-86-A0"},
		{name: "prefixed-groups", in: "0xABCD 0X86A0"},
		{name: "newlines", in: "AB CD\n86 A0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := helpers.ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseHex_Errors(t *testing.T) {
	_, err := helpers.ParseHex("")
	assert.ErrorIs(t, err, helpers.ErrEmptyHex)

	_, err = helpers.ParseHex("  : - ")
	assert.ErrorIs(t, err, helpers.ErrEmptyHex)

	_, err = helpers.ParseHex("ABC")
	assert.ErrorIs(t, err, hex.ErrLength)

	_, err = helpers.ParseHex("ZZ")
	var invalid hex.InvalidByteError
	assert.ErrorAs(t, err, &invalid)
}

func TestFormatHex(t *testing.T) {
	assert.Equal(t, "", helpers.FormatHex(nil))
	assert.Equal(t, "0A", helpers.FormatHex([]byte{0x0A}))
	assert.Equal(t, "AB CD 04 30", helpers.FormatHex([]byte{0xAB, 0xCD, 0x04, 0x30}))
}

func TestCompactHex(t *testing.T) {
	assert.Equal(t, "ABCD0430", helpers.CompactHex([]byte{0xAB, 0xCD, 0x04, 0x30}))
}

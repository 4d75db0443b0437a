// Package helpers provides conversions between hex text and raw header bytes.
//
// The CLI and the HTTP API accept header bytes as free-form hex such as
// "AB CD 86 A0", "abcd:86a0" or "0xABCD 0x86A0". These helpers normalize that
// text before it reaches the codec, and render bytes back in one canonical form.
package helpers

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyHex is returned when the input contains no hex digits at all.
var ErrEmptyHex = errors.New("hex input is empty")

// ParseHex decodes s into bytes.
//
// Whitespace, ':' and '-' separate groups; each group may carry a 0x prefix.
// The total number of digits must be even.
func ParseHex(s string) ([]byte, error) {
	groups := strings.FieldsFunc(s, isSeparator)
	var digits strings.Builder
	digits.Grow(len(s))
	for _, g := range groups {
		g = strings.TrimPrefix(strings.TrimPrefix(g, "0x"), "0X")
		digits.WriteString(g)
	}
	if digits.Len() == 0 {
		return nil, ErrEmptyHex
	}
	b, err := hex.DecodeString(digits.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// FormatHex renders b as uppercase byte pairs separated by single spaces.
func FormatHex(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, v := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", v)
	}
	return sb.String()
}

// CompactHex renders b as uppercase hex without separators.
func CompactHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ':', '-':
		return true
	}
	return false
}

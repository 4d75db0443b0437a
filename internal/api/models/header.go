package models

import (
	"errors"

	"github.com/jroosing/dnsheader/internal/dns"
)

// HeaderFields is the numeric view of a DNS header. Flags are 0 or 1.
type HeaderFields struct {
	ID      uint16 `json:"id"`
	QR      uint8  `json:"qr"`
	Opcode  uint8  `json:"opcode"`
	AA      uint8  `json:"aa"`
	TC      uint8  `json:"tc"`
	RD      uint8  `json:"rd"`
	RA      uint8  `json:"ra"`
	Z       uint8  `json:"z"`
	AD      uint8  `json:"ad"`
	CD      uint8  `json:"cd"`
	RCode   uint16 `json:"rcode"`
	QDCount uint16 `json:"qdcount"`
	ANCount uint16 `json:"ancount"`
	NSCount uint16 `json:"nscount"`
	ARCount uint16 `json:"arcount"`
}

// HeaderNames holds the mnemonic of every field.
type HeaderNames struct {
	ID     string `json:"id"`
	QR     string `json:"qr"`
	Opcode string `json:"opcode"`
	AA     string `json:"aa"`
	TC     string `json:"tc"`
	RD     string `json:"rd"`
	RA     string `json:"ra"`
	AD     string `json:"ad"`
	CD     string `json:"cd"`
	RCode  string `json:"rcode"`
}

// DecodeRequest carries header bytes as hex text.
type DecodeRequest struct {
	Hex string `json:"hex" binding:"required" example:"AB CD 86 A0 00 01 01 02 03 04 05 06"`
}

// DecodeResponse describes a successfully decoded header.
type DecodeResponse struct {
	Hex    string       `json:"hex"`
	Flags  string       `json:"flags"`
	Header HeaderFields `json:"header"`
	Names  HeaderNames  `json:"names"`
}

// EncodeRequest is the header to serialize.
type EncodeRequest = HeaderFields

// EncodeResponse holds the 12 encoded bytes as hex.
type EncodeResponse struct {
	Hex   string `json:"hex"`
	Flags string `json:"flags"`
}

// ErrorDetail classifies a codec failure.
type ErrorDetail struct {
	// Kind is one of "truncated", "invalid_value" or "write".
	Kind     string  `json:"kind"`
	Field    string  `json:"field,omitempty"`
	Value    *uint16 `json:"value,omitempty"`
	Reason   string  `json:"reason,omitempty"`
	Range    string  `json:"range,omitempty"`
	Property string  `json:"property,omitempty"`
}

const (
	KindTruncated    = "truncated"
	KindInvalidValue = "invalid_value"
	KindWrite        = "write"
)

// FieldsFromHeader converts a decoded header to its numeric view.
func FieldsFromHeader(h dns.Header) HeaderFields {
	return HeaderFields{
		ID:      uint16(h.ID),
		QR:      uint8(h.QR),
		Opcode:  h.Opcode.Value(),
		AA:      uint8(h.AA),
		TC:      uint8(h.TC),
		RD:      uint8(h.RD),
		RA:      uint8(h.RA),
		Z:       h.Z.Bit(),
		AD:      uint8(h.AD),
		CD:      uint8(h.CD),
		RCode:   h.RCode.Value(),
		QDCount: uint16(h.QDZOCount),
		ANCount: uint16(h.ANPRCount),
		NSCount: uint16(h.NSUPCount),
		ARCount: uint16(h.ARCount),
	}
}

// NamesFromHeader returns the mnemonic of every field in h.
func NamesFromHeader(h dns.Header) HeaderNames {
	return HeaderNames{
		ID:     h.ID.HexString(),
		QR:     h.QR.String(),
		Opcode: h.Opcode.String(),
		AA:     h.AA.String(),
		TC:     h.TC.String(),
		RD:     h.RD.String(),
		RA:     h.RA.String(),
		AD:     h.AD.String(),
		CD:     h.CD.String(),
		RCode:  h.RCode.String(),
	}
}

// Header converts the numeric view into a header. Only Z is checked here;
// the remaining fields are checked when the header is encoded.
func (f HeaderFields) Header() (dns.Header, error) {
	z, err := dns.ZFromBit(f.Z)
	if err != nil {
		return dns.Header{}, err
	}
	return dns.Header{
		ID:        dns.ID(f.ID),
		QR:        dns.QR(f.QR),
		Opcode:    dns.Opcode(f.Opcode),
		AA:        dns.AA(f.AA),
		TC:        dns.TC(f.TC),
		RD:        dns.RD(f.RD),
		RA:        dns.RA(f.RA),
		Z:         z,
		AD:        dns.AD(f.AD),
		CD:        dns.CD(f.CD),
		RCode:     dns.RCode(f.RCode),
		QDZOCount: dns.QDZOCount(f.QDCount),
		ANPRCount: dns.ANPRCount(f.ANCount),
		NSUPCount: dns.NSUPCount(f.NSCount),
		ARCount:   dns.ARCount(f.ARCount),
	}, nil
}

// ErrorDetailFrom classifies err. It returns nil for errors outside the codec taxonomy.
func ErrorDetailFrom(err error) *ErrorDetail {
	var (
		readErr    *dns.ReadError
		invalidErr *dns.InvalidValueError
		writeErr   *dns.WriteError
	)
	switch {
	case errors.As(err, &readErr):
		return &ErrorDetail{Kind: KindTruncated, Range: readErr.Range.String()}
	case errors.As(err, &invalidErr):
		v := invalidErr.Value
		return &ErrorDetail{
			Kind:   KindInvalidValue,
			Field:  invalidErr.Field,
			Value:  &v,
			Reason: invalidErr.Reason.String(),
		}
	case errors.As(err, &writeErr):
		return &ErrorDetail{Kind: KindWrite, Property: writeErr.Property}
	}
	return nil
}

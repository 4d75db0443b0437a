package dns

import "strconv"

// Flag is a header field that bijects with a single bit.
// The zero value of every Flag type is the variant transmitted as 0.
type Flag interface {
	~uint8
	// Field returns the header field name used in diagnostics.
	Field() string
}

// BoolFlag is a Flag with a natural boolean reading: bit 1 reads as true.
type BoolFlag interface {
	Flag
	Bool() bool
}

// FlagFromBit converts a raw bit into the flag variant it encodes.
// Any raw value other than 0 or 1 is an invalid-value error.
func FlagFromBit[T Flag](raw uint8) (T, error) {
	if raw > 1 {
		var zero T
		return zero, invalidValue(zero.Field(), uint16(raw), ReasonNone)
	}
	return T(raw), nil
}

// FlagFromBool returns the variant whose boolean reading is b.
func FlagFromBool[T BoolFlag](b bool) T {
	if b {
		return T(1)
	}
	return T(0)
}

// flagBit returns the raw bit of v, rejecting values built by direct
// conversion from numbers other than 0 or 1.
func flagBit[T Flag](v T) (uint16, error) {
	if uint8(v) > 1 {
		return 0, invalidValue(v.Field(), uint16(v), ReasonNone)
	}
	return uint16(v), nil
}

func bitHex(v uint8) string {
	return strconv.FormatUint(uint64(v), 16)
}

// QR distinguishes queries from responses.
type QR uint8

const (
	Query    QR = 0
	Response QR = 1
)

func (QR) Field() string { return FieldQR }

func (q QR) HexString() string { return bitHex(uint8(q)) }

func (q QR) String() string {
	switch q {
	case Query:
		return "query"
	case Response:
		return "response"
	}
	return "QR(" + strconv.Itoa(int(q)) + ")"
}

// AA reports whether the responding server is an authority for the question.
type AA uint8

const (
	FromNonAuthority AA = 0
	FromAuthority    AA = 1
)

func (AA) Field() string { return FieldAA }

func (a AA) HexString() string { return bitHex(uint8(a)) }

func (a AA) String() string {
	switch a {
	case FromNonAuthority:
		return "non-authoritative"
	case FromAuthority:
		return "authoritative"
	}
	return "AA(" + strconv.Itoa(int(a)) + ")"
}

// TC reports whether the message was truncated by the transport.
type TC uint8

const (
	NotTruncated TC = 0
	Truncated    TC = 1
)

func (TC) Field() string { return FieldTC }

func (t TC) Bool() bool { return t == Truncated }

func (t TC) HexString() string { return bitHex(uint8(t)) }

func (t TC) String() string {
	switch t {
	case NotTruncated:
		return "not-truncated"
	case Truncated:
		return "truncated"
	}
	return "TC(" + strconv.Itoa(int(t)) + ")"
}

// RD asks the server to pursue the query recursively.
type RD uint8

const (
	RecursionUndesired RD = 0
	RecursionDesired   RD = 1
)

func (RD) Field() string { return FieldRD }

func (r RD) HexString() string { return bitHex(uint8(r)) }

func (r RD) String() string {
	switch r {
	case RecursionUndesired:
		return "recursion-undesired"
	case RecursionDesired:
		return "recursion-desired"
	}
	return "RD(" + strconv.Itoa(int(r)) + ")"
}

// RA reports whether the server supports recursive queries.
type RA uint8

const (
	RecursionUnavailable RA = 0
	RecursionAvailable   RA = 1
)

func (RA) Field() string { return FieldRA }

func (r RA) Bool() bool { return r == RecursionAvailable }

func (r RA) HexString() string { return bitHex(uint8(r)) }

func (r RA) String() string {
	switch r {
	case RecursionUnavailable:
		return "recursion-unavailable"
	case RecursionAvailable:
		return "recursion-available"
	}
	return "RA(" + strconv.Itoa(int(r)) + ")"
}

// AD reports DNSSEC validation of the answer, or AD-bit support in queries (RFC 6840).
type AD uint8

const (
	DNSSECUnauthenticated AD = 0
	DNSSECAuthenticated   AD = 1
)

func (AD) Field() string { return FieldAD }

func (a AD) Bool() bool { return a == DNSSECAuthenticated }

func (a AD) HexString() string { return bitHex(uint8(a)) }

func (a AD) String() string {
	switch a {
	case DNSSECUnauthenticated:
		return "unauthenticated"
	case DNSSECAuthenticated:
		return "authenticated"
	}
	return "AD(" + strconv.Itoa(int(a)) + ")"
}

// CD disables DNSSEC validation on the server when set.
type CD uint8

const (
	DNSSECEnabled   CD = 0
	DNSSECForbidden CD = 1
)

func (CD) Field() string { return FieldCD }

func (c CD) Bool() bool { return c == DNSSECForbidden }

func (c CD) HexString() string { return bitHex(uint8(c)) }

func (c CD) String() string {
	switch c {
	case DNSSECEnabled:
		return "checking-enabled"
	case DNSSECForbidden:
		return "checking-disabled"
	}
	return "CD(" + strconv.Itoa(int(c)) + ")"
}

// Z is the reserved header bit. It carries no information and is always 0 on the wire.
type Z struct{}

// ZFromBit accepts only 0.
func ZFromBit(raw uint8) (Z, error) {
	if raw != 0 {
		return Z{}, invalidValue(FieldZ, uint16(raw), ReasonNone)
	}
	return Z{}, nil
}

// Bit returns the raw bit, which is always 0.
func (Z) Bit() uint8 { return 0 }

func (Z) HexString() string { return "0" }

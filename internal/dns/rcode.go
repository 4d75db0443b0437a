package dns

import (
	"fmt"
	"strconv"
	"strings"
)

// RCode is a DNS response code.
//
// The fixed header carries the low 4 bits. EDNS (RFC 6891) extends the code to
// 12 bits through the OPT record, and the registry is modelled as 16 bits wide
// so that every IANA sub-range, including the private-use block and the
// reserved terminal value, has a representation.
type RCode uint16

const (
	RCodeNoError   RCode = 0  // No error
	RCodeFormErr   RCode = 1  // Format error: query malformed
	RCodeServFail  RCode = 2  // Server failure: internal error
	RCodeNXDomain  RCode = 3  // Non-existent domain
	RCodeNotImp    RCode = 4  // Not implemented: unsupported query type
	RCodeRefused   RCode = 5  // Query refused by policy
	RCodeYXDomain  RCode = 6  // Name exists when it should not (RFC 2136)
	RCodeYXRRSet   RCode = 7  // RR set exists when it should not (RFC 2136)
	RCodeNXRRSet   RCode = 8  // RR set that should exist does not (RFC 2136)
	RCodeNotAuth   RCode = 9  // Server not authoritative for zone (RFC 2136, RFC 8945)
	RCodeNotZone   RCode = 10 // Name not contained in zone (RFC 2136)
	RCodeDSOTypeNI RCode = 11 // DSO-TYPE not implemented (RFC 8490)
	RCodeBadVers   RCode = 16 // Bad OPT version (RFC 6891), also BADSIG (RFC 8945)
	RCodeBadKey    RCode = 17 // Key not recognized (RFC 8945)
	RCodeBadTime   RCode = 18 // Signature out of time window (RFC 8945)
	RCodeBadMode   RCode = 19 // Bad TKEY mode (RFC 2930)
	RCodeBadName   RCode = 20 // Duplicate key name (RFC 2930)
	RCodeBadAlg    RCode = 21 // Algorithm not supported (RFC 2930)
	RCodeBadTrunc  RCode = 22 // Bad truncation (RFC 8945)
	RCodeBadCookie RCode = 23 // Bad/missing server cookie (RFC 7873)

	// RCodeReserved is the reserved terminal value of the registry.
	RCodeReserved RCode = 65535
)

// Private-use block of the registry (RFC 6895 Section 2.3).
const (
	RCodePrivateFirst RCode = 3841
	RCodePrivateLast  RCode = 4095
)

// rcodeHeaderMax is the largest code the 4-bit header field can carry.
const rcodeHeaderMax = 0x0F

// rcodeExtendedMax is the largest code expressible with the EDNS extension.
const rcodeExtendedMax = 0x0FFF

var rcodeNames = map[RCode]string{
	RCodeNoError:   "NOERROR",
	RCodeFormErr:   "FORMERR",
	RCodeServFail:  "SERVFAIL",
	RCodeNXDomain:  "NXDOMAIN",
	RCodeNotImp:    "NOTIMP",
	RCodeRefused:   "REFUSED",
	RCodeYXDomain:  "YXDOMAIN",
	RCodeYXRRSet:   "YXRRSET",
	RCodeNXRRSet:   "NXRRSET",
	RCodeNotAuth:   "NOTAUTH",
	RCodeNotZone:   "NOTZONE",
	RCodeDSOTypeNI: "DSOTYPENI",
	RCodeBadVers:   "BADVERS",
	RCodeBadKey:    "BADKEY",
	RCodeBadTime:   "BADTIME",
	RCodeBadMode:   "BADMODE",
	RCodeBadName:   "BADNAME",
	RCodeBadAlg:    "BADALG",
	RCodeBadTrunc:  "BADTRUNC",
	RCodeBadCookie: "BADCOOKIE",
}

// ParseRCode classifies a raw response code.
//
// Classification order:
//  1. 24-3840 and 4096-65534 are unassigned.
//  2. 3841-4095 are private use and carried as-is.
//  3. 0-11 and 16-23 are the assigned codes.
//  4. 65535 is the reserved terminal value.
//  5. 12-15 are unassigned.
//
// Anything left is reported with ReasonLogicError.
func ParseRCode(v uint16) (RCode, error) {
	rc := RCode(v)
	switch {
	case (v >= 24 && v <= 3840) || (v >= 4096 && v <= 65534):
		return 0, invalidValue(FieldRCode, v, ReasonUnassigned)
	case rc >= RCodePrivateFirst && rc <= RCodePrivateLast:
		return rc, nil
	}
	if _, ok := rcodeNames[rc]; ok {
		return rc, nil
	}
	switch {
	case rc == RCodeReserved:
		return rc, nil
	case v >= 12 && v <= 15:
		return 0, invalidValue(FieldRCode, v, ReasonUnassigned)
	}
	return 0, invalidValue(FieldRCode, v, ReasonLogicError)
}

// PrivateRCode returns the private-use code v.
// It fails with ReasonInvalidRange when v is outside 3841-4095.
func PrivateRCode(v uint16) (RCode, error) {
	rc := RCode(v)
	if rc < RCodePrivateFirst || rc > RCodePrivateLast {
		return 0, invalidValue(FieldRCode, v, ReasonInvalidRange)
	}
	return rc, nil
}

// CombineRCode rebuilds a response code from the 8 extended bits of an OPT
// record and the 4 bits of the fixed header.
func CombineRCode(extended, low uint8) (RCode, error) {
	if low > rcodeHeaderMax {
		return 0, invalidValue(FieldRCode, uint16(low), ReasonInvalidRange)
	}
	return ParseRCode(uint16(extended)<<4 | uint16(low))
}

// Split returns the OPT extended bits and the header bits of r.
// Codes above 4095 cannot be expressed with the EDNS extension.
func (r RCode) Split() (extended, low uint8, err error) {
	if r > rcodeExtendedMax {
		return 0, 0, invalidValue(FieldRCode, uint16(r), ReasonInvalidRange)
	}
	return uint8(r >> 4), uint8(uint16(r) & RCodeMask), nil
}

// Value returns the numeric code.
func (r RCode) Value() uint16 { return uint16(r) }

// IsPrivate reports whether r lies in the private-use block.
func (r RCode) IsPrivate() bool {
	return r >= RCodePrivateFirst && r <= RCodePrivateLast
}

// Assigned reports whether r is one of the named codes.
func (r RCode) Assigned() bool {
	_, ok := rcodeNames[r]
	return ok
}

func (r RCode) HexString() string {
	return fmt.Sprintf("%04X", uint16(r))
}

func (r RCode) String() string {
	if name, ok := rcodeNames[r]; ok {
		return name
	}
	switch {
	case r.IsPrivate():
		return "PRIVATE" + strconv.Itoa(int(r))
	case r == RCodeReserved:
		return "RESERVED"
	}
	return "RCODE" + strconv.Itoa(int(r))
}

// bits validates r for the 4-bit header field.
func (r RCode) bits() (uint16, error) {
	if _, err := ParseRCode(uint16(r)); err != nil {
		return 0, err
	}
	if r > rcodeHeaderMax {
		return 0, invalidValue(FieldRCode, uint16(r), ReasonInvalidRange)
	}
	return uint16(r), nil
}

// RCodeFromFlags extracts the 4-bit response code from the DNS header flags
// without validating it.
func RCodeFromFlags(flags uint16) RCode {
	return RCode(flags & RCodeMask)
}

// RCodeByName looks up an assigned response code by mnemonic, ignoring case.
func RCodeByName(name string) (RCode, bool) {
	for r, n := range rcodeNames {
		if strings.EqualFold(n, name) {
			return r, true
		}
	}
	return 0, false
}

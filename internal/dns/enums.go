package dns

// HeaderSize is the fixed size of a DNS header in bytes.
const HeaderSize = 12

// DNS header flags and masks (RFC 1035 Section 4.1.1)
//
// The DNS header contains a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|AD|CD|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
//
// Bit positions (from MSB):
//   - Bit 15 (0x8000): QR - Query (0) or Response (1)
//   - Bits 14-11 (0x7800): OPCODE - Operation type
//   - Bit 10 (0x0400): AA - Authoritative Answer
//   - Bit 9 (0x0200): TC - Truncation (message was truncated)
//   - Bit 8 (0x0100): RD - Recursion Desired
//   - Bit 7 (0x0080): RA - Recursion Available
//   - Bit 6 (0x0040): Z - Reserved (must be zero)
//   - Bit 5 (0x0020): AD - Authenticated Data (DNSSEC)
//   - Bit 4 (0x0010): CD - Checking Disabled (DNSSEC)
//   - Bits 3-0 (0x000F): RCODE - Response code
const (
	QRFlag     uint16 = 0x8000 // Query/Response: 1 = response, 0 = query
	OpcodeMask uint16 = 0x7800 // Bits 14-11: operation type (use >> 11 to extract)
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	TCFlag     uint16 = 0x0200 // Truncation: message was truncated
	RDFlag     uint16 = 0x0100 // Recursion Desired
	RAFlag     uint16 = 0x0080 // Recursion Available
	ZFlag      uint16 = 0x0040 // Reserved (must be zero)
	ADFlag     uint16 = 0x0020 // Authenticated Data (DNSSEC)
	CDFlag     uint16 = 0x0010 // Checking Disabled (DNSSEC)
	RCodeMask  uint16 = 0x000F // Bits 3-0: response code
)

const (
	qrShift     = 15
	opcodeShift = 11
	aaShift     = 10
	tcShift     = 9
	rdShift     = 8
	raShift     = 7
	zShift      = 6
	adShift     = 5
	cdShift     = 4
)

// Field names used in InvalidValueError.
const (
	FieldQR     = "QR"
	FieldOpcode = "OPCODE"
	FieldAA     = "AA"
	FieldTC     = "TC"
	FieldRD     = "RD"
	FieldRA     = "RA"
	FieldZ      = "Z"
	FieldAD     = "AD"
	FieldCD     = "CD"
	FieldRCode  = "RCODE"
)

// Property names used in WriteError, one per 16-bit header word.
const (
	PropertyID        = "ID"
	PropertyFlags     = "FLAGS"
	PropertyQDZOCount = "QDCOUNT / ZOCOUNT"
	PropertyANPRCount = "ANCOUNT / PRCOUNT"
	PropertyNSUPCount = "NSCOUNT / UPCOUNT"
	PropertyARCount   = "ARCOUNT"
)

// Bit ranges of the six 16-bit header words, in wire order.
var (
	RangeID        = BitRange{First: 1, Last: 16}
	RangeFlags     = BitRange{First: 17, Last: 32}
	RangeQDZOCount = BitRange{First: 33, Last: 48}
	RangeANPRCount = BitRange{First: 49, Last: 64}
	RangeNSUPCount = BitRange{First: 65, Last: 80}
	RangeARCount   = BitRange{First: 81, Last: 96}
)

// bitAt extracts the single bit selected by mask and shifts it down to bit 0.
func bitAt(flags, mask uint16, shift uint) uint8 {
	return uint8((flags & mask) >> shift)
}

package dns

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode selects the kind of operation carried by the message (4-bit field).
//
// The IANA registry is open: codes not listed in opcodeNames are representable
// on the wire but are rejected by ParseOpcode until they are assigned here.
type Opcode uint8

const (
	OpcodeQuery  Opcode = 0 // Standard query (RFC 1035)
	OpcodeIQuery Opcode = 1 // Inverse query, obsolete (RFC 3425)
	OpcodeStatus Opcode = 2 // Server status request (RFC 1035)
	OpcodeNotify Opcode = 4 // Zone change notification (RFC 1996)
	OpcodeUpdate Opcode = 5 // Dynamic update (RFC 2136)
	OpcodeDSO    Opcode = 6 // DNS Stateful Operations (RFC 8490)
)

// opcodeMax is the largest value the 4-bit OPCODE field can hold.
const opcodeMax = 0x0F

var opcodeNames = map[Opcode]string{
	OpcodeQuery:  "QUERY",
	OpcodeIQuery: "IQUERY",
	OpcodeStatus: "STATUS",
	OpcodeNotify: "NOTIFY",
	OpcodeUpdate: "UPDATE",
	OpcodeDSO:    "DSO",
}

// ParseOpcode classifies a raw opcode value.
//
// Values above 15 have no 4-bit representation and fail with ReasonInvalidRange.
// Values that fit but are not assigned (3, 7-15) fail with ReasonUnassigned.
func ParseOpcode(raw uint8) (Opcode, error) {
	if raw > opcodeMax {
		return 0, invalidValue(FieldOpcode, uint16(raw), ReasonInvalidRange)
	}
	op := Opcode(raw)
	if !op.Assigned() {
		return 0, invalidValue(FieldOpcode, uint16(raw), ReasonUnassigned)
	}
	return op, nil
}

// Assigned reports whether o is a currently assigned opcode.
func (o Opcode) Assigned() bool {
	_, ok := opcodeNames[o]
	return ok
}

// Value returns the numeric opcode.
func (o Opcode) Value() uint8 { return uint8(o) }

func (o Opcode) HexString() string {
	return fmt.Sprintf("%02X", uint8(o))
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "OPCODE" + strconv.Itoa(int(o))
}

// bits validates o before it is packed into the flags word.
func (o Opcode) bits() (uint16, error) {
	if _, err := ParseOpcode(uint8(o)); err != nil {
		return 0, err
	}
	return uint16(o), nil
}

// OpcodeByName looks up an assigned opcode by mnemonic, ignoring case.
func OpcodeByName(name string) (Opcode, bool) {
	for o, n := range opcodeNames {
		if strings.EqualFold(n, name) {
			return o, true
		}
	}
	return 0, false
}

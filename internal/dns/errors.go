// Package dns decodes and encodes the fixed 12-byte DNS message header.
//
// Standards Compliance:
//
// The header layout and field domains follow:
//
//   - RFC 1035: Domain Names - Implementation and Specification (header layout)
//   - RFC 1996, RFC 2136: NOTIFY and UPDATE opcodes (ZOCOUNT, PRCOUNT, UPCOUNT)
//   - RFC 4035: DNSSEC Protocol Extensions (AD, CD flags)
//   - RFC 6891: Extension Mechanisms for DNS (extended RCODE)
//   - RFC 6895: DNS IANA Considerations (opcode and rcode registries, private use)
//   - RFC 8490: DNS Stateful Operations (DSO opcode, DSOTYPENI)
//
// Type-Oriented Design:
//
// Every header field has its own Go type. One-bit flags share a generic
// conversion path (Flag), the identifier and the four counters share another
// (Word). Opcode and RCode are open enumerations: new assignments are added to
// their name tables without touching the wire layout.
//
// Error Handling:
//
// Decode and Encode fail fast. Every error they return matches ErrDNSError with
// errors.Is, and one of ErrTruncatedHeader, ErrInvalidValue or ErrHeaderWrite
// for the category. Use errors.As with *ReadError, *InvalidValueError or
// *WriteError to get the bit range, field or property that failed.
package dns

import (
	"errors"
	"fmt"
)

var (
	// ErrDNSError is a sentinel error type for DNS protocol violations.
	// Wrap this with fmt.Errorf("context: %w", ErrDNSError) to add context.
	ErrDNSError = errors.New("dns wire error")

	// ErrTruncatedHeader matches reads that ran past the end of the buffer.
	ErrTruncatedHeader = fmt.Errorf("%w: truncated header", ErrDNSError)

	// ErrInvalidValue matches header fields whose raw value is outside the field domain.
	ErrInvalidValue = fmt.Errorf("%w: invalid header value", ErrDNSError)

	// ErrHeaderWrite matches failures of the output sink during encoding.
	ErrHeaderWrite = fmt.Errorf("%w: header write failed", ErrDNSError)
)

// Reason classifies why an Opcode or RCode value was rejected.
type Reason uint8

const (
	// ReasonNone is used for fields without a richer classification (flags, Z).
	ReasonNone Reason = iota
	// ReasonUnassigned means the value fits the field but no RFC assigns it.
	ReasonUnassigned
	// ReasonInvalidRange means the value has no representation in the field width.
	ReasonInvalidRange
	// ReasonLogicError means the value fell through every known sub-range.
	// Reaching it indicates a bug in the domain boundaries.
	ReasonLogicError
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonUnassigned:
		return "unassigned in RFC"
	case ReasonInvalidRange:
		return "range invalid"
	case ReasonLogicError:
		return "logic error"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// BitRange is an inclusive, 1-based range of header bits as numbered in RFC 1035 diagrams.
type BitRange struct {
	First uint8
	Last  uint8
}

func (r BitRange) String() string {
	return fmt.Sprintf("bits %d-%d", r.First, r.Last)
}

// ReadError reports that a fixed-width read lacked enough remaining bytes.
type ReadError struct {
	Range BitRange
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("%v: cannot read header %s: %v", ErrTruncatedHeader, e.Range, e.Err)
}

func (e *ReadError) Unwrap() []error {
	return []error{ErrTruncatedHeader, e.Err}
}

// InvalidValueError reports a raw field value that maps to no member of the field domain.
type InvalidValueError struct {
	Field  string
	Value  uint16
	Reason Reason
}

func (e *InvalidValueError) Error() string {
	if e.Reason == ReasonNone {
		return fmt.Sprintf("%v: found invalid %s value: %d", ErrDNSError, e.Field, e.Value)
	}
	return fmt.Sprintf("%v: found invalid %s value (%s): %d", ErrDNSError, e.Field, e.Reason, e.Value)
}

func (e *InvalidValueError) Unwrap() error {
	return ErrInvalidValue
}

// WriteError reports that the output sink refused the bytes of a header property.
type WriteError struct {
	Property string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: cannot write header property %s: %v", ErrDNSError, e.Property, e.Err)
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrHeaderWrite, e.Err}
}

func invalidValue(field string, value uint16, reason Reason) *InvalidValueError {
	return &InvalidValueError{Field: field, Value: value, Reason: reason}
}

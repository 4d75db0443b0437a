package dns

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Word is a header field that bijects with the full 16-bit domain.
// The identifier and the four section counters are Words; none of them is validated.
type Word interface {
	~uint16
}

// ID is the transaction identifier copied from a query into its response.
type ID uint16

// HexString renders the identifier as four uppercase hex digits.
func (id ID) HexString() string {
	return fmt.Sprintf("%04X", uint16(id))
}

// QDZOCount is QDCOUNT, or ZOCOUNT for UPDATE messages (RFC 2136).
type QDZOCount uint16

// ANPRCount is ANCOUNT, or PRCOUNT for UPDATE messages.
type ANPRCount uint16

// NSUPCount is NSCOUNT, or UPCOUNT for UPDATE messages.
type NSUPCount uint16

// ARCount is the number of additional records.
type ARCount uint16

// wireReader reads big-endian words from a byte slice.
type wireReader struct {
	buf []byte
	off int
}

func (r *wireReader) uint16(rng BitRange) (uint16, error) {
	remaining := len(r.buf) - r.off
	if remaining < 2 {
		cause := io.ErrUnexpectedEOF
		if remaining <= 0 {
			cause = io.EOF
		}
		return 0, &ReadError{Range: rng, Err: cause}
	}
	v := binary.BigEndian.Uint16(r.buf[r.off : r.off+2])
	r.off += 2
	return v, nil
}

func readWord[T Word](r *wireReader, rng BitRange) (T, error) {
	v, err := r.uint16(rng)
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

// writeWord writes v as one independent 2-byte write to w.
func writeWord[T Word](w io.Writer, v T, property string) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	n, err := w.Write(b[:])
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &WriteError{Property: property, Err: err}
	}
	return nil
}

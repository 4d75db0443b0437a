package dns

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/jroosing/dnsheader/internal/pool"
)

var encodeBuffers = pool.NewBufferPool(HeaderSize)

// Header represents a DNS message header (RFC 1035 Section 4.1.1).
//
// The header is always 12 bytes. Each field has its own validated type, so a
// Header obtained from Decode is valid as a whole: there is no partially
// decoded Header.
type Header struct {
	ID        ID
	QR        QR
	Opcode    Opcode
	AA        AA
	TC        TC
	RD        RD
	RA        RA
	Z         Z
	AD        AD
	CD        CD
	RCode     RCode
	QDZOCount QDZOCount
	ANPRCount ANPRCount
	NSUPCount NSUPCount
	ARCount   ARCount
}

// Decode parses the header at the start of buf. Bytes after the first 12 are ignored.
func Decode(buf []byte) (Header, error) {
	off := 0
	return ParseHeader(buf, &off)
}

// ParseHeader parses a DNS header from the message at the given offset.
// It advances *off by 12 bytes (the header size) on success and leaves it
// untouched on failure.
//
// All six words are read before any field is validated, so a short buffer
// always reports a ReadError. Fields are then validated in wire order
// (QR, OPCODE, AA, TC, RD, RA, Z, AD, CD, RCODE) and the first failure wins.
func ParseHeader(msg []byte, off *int) (Header, error) {
	r := wireReader{buf: msg, off: *off}

	id, err := readWord[ID](&r, RangeID)
	if err != nil {
		return Header{}, err
	}
	flags, err := readWord[uint16](&r, RangeFlags)
	if err != nil {
		return Header{}, err
	}
	qd, err := readWord[QDZOCount](&r, RangeQDZOCount)
	if err != nil {
		return Header{}, err
	}
	an, err := readWord[ANPRCount](&r, RangeANPRCount)
	if err != nil {
		return Header{}, err
	}
	ns, err := readWord[NSUPCount](&r, RangeNSUPCount)
	if err != nil {
		return Header{}, err
	}
	ar, err := readWord[ARCount](&r, RangeARCount)
	if err != nil {
		return Header{}, err
	}

	h, err := unpackFlags(flags)
	if err != nil {
		return Header{}, err
	}
	h.ID = id
	h.QDZOCount = qd
	h.ANPRCount = an
	h.NSUPCount = ns
	h.ARCount = ar

	*off = r.off
	return h, nil
}

// unpackFlags splits the second header word into its validated fields.
func unpackFlags(flags uint16) (Header, error) {
	var (
		h   Header
		err error
	)
	if h.QR, err = FlagFromBit[QR](bitAt(flags, QRFlag, qrShift)); err != nil {
		return Header{}, err
	}
	if h.Opcode, err = ParseOpcode(uint8((flags & OpcodeMask) >> opcodeShift)); err != nil {
		return Header{}, err
	}
	if h.AA, err = FlagFromBit[AA](bitAt(flags, AAFlag, aaShift)); err != nil {
		return Header{}, err
	}
	if h.TC, err = FlagFromBit[TC](bitAt(flags, TCFlag, tcShift)); err != nil {
		return Header{}, err
	}
	if h.RD, err = FlagFromBit[RD](bitAt(flags, RDFlag, rdShift)); err != nil {
		return Header{}, err
	}
	if h.RA, err = FlagFromBit[RA](bitAt(flags, RAFlag, raShift)); err != nil {
		return Header{}, err
	}
	if h.Z, err = ZFromBit(bitAt(flags, ZFlag, zShift)); err != nil {
		return Header{}, err
	}
	if h.AD, err = FlagFromBit[AD](bitAt(flags, ADFlag, adShift)); err != nil {
		return Header{}, err
	}
	if h.CD, err = FlagFromBit[CD](bitAt(flags, CDFlag, cdShift)); err != nil {
		return Header{}, err
	}
	if h.RCode, err = ParseRCode(flags & RCodeMask); err != nil {
		return Header{}, err
	}
	return h, nil
}

// Flags packs QR, OPCODE, AA, TC, RD, RA, Z, AD, CD and RCODE into the second
// header word. It fails if any of those fields holds a value outside its
// domain, checking them in wire order.
func (h Header) Flags() (uint16, error) {
	qr, err := flagBit(h.QR)
	if err != nil {
		return 0, err
	}
	opcode, err := h.Opcode.bits()
	if err != nil {
		return 0, err
	}
	aa, err := flagBit(h.AA)
	if err != nil {
		return 0, err
	}
	tc, err := flagBit(h.TC)
	if err != nil {
		return 0, err
	}
	rd, err := flagBit(h.RD)
	if err != nil {
		return 0, err
	}
	ra, err := flagBit(h.RA)
	if err != nil {
		return 0, err
	}
	ad, err := flagBit(h.AD)
	if err != nil {
		return 0, err
	}
	cd, err := flagBit(h.CD)
	if err != nil {
		return 0, err
	}
	rcode, err := h.RCode.bits()
	if err != nil {
		return 0, err
	}

	return qr<<qrShift |
		opcode<<opcodeShift |
		aa<<aaShift |
		tc<<tcShift |
		rd<<rdShift |
		ra<<raShift |
		uint16(h.Z.Bit())<<zShift |
		ad<<adShift |
		cd<<cdShift |
		rcode, nil
}

// Validate reports the first field, in wire order, that is outside its domain.
// Values only become invalid through direct numeric conversion, e.g. QR(2).
func (h Header) Validate() error {
	_, err := h.Flags()
	return err
}

// Encode serializes the header to wire format (big-endian, 12 bytes).
func (h Header) Encode() ([]byte, error) {
	buf := encodeBuffers.Get()
	defer encodeBuffers.Put(buf)
	if err := h.EncodeTo(buf); err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

// EncodeTo writes the six header words to w in wire order, one write per word.
// A failed or short write is reported as a *WriteError naming the property.
// Nothing is written when the header does not validate.
func (h Header) EncodeTo(w io.Writer) error {
	flags, err := h.Flags()
	if err != nil {
		return err
	}
	if err := writeWord(w, h.ID, PropertyID); err != nil {
		return err
	}
	if err := writeWord(w, flags, PropertyFlags); err != nil {
		return err
	}
	if err := writeWord(w, h.QDZOCount, PropertyQDZOCount); err != nil {
		return err
	}
	if err := writeWord(w, h.ANPRCount, PropertyANPRCount); err != nil {
		return err
	}
	if err := writeWord(w, h.NSUPCount, PropertyNSUPCount); err != nil {
		return err
	}
	return writeWord(w, h.ARCount, PropertyARCount)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.Encode()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// On failure *h is left unchanged.
func (h *Header) UnmarshalBinary(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*h = decoded
	return nil
}

// IsResponse returns true if this is a response (QR=1), false if it's a query (QR=0).
func (h Header) IsResponse() bool {
	return h.QR == Response
}

// LogValue implements slog.LogValuer.
func (h Header) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", h.ID.HexString()),
		slog.String("qr", h.QR.String()),
		slog.String("opcode", h.Opcode.String()),
		slog.String("aa", h.AA.String()),
		slog.String("tc", h.TC.String()),
		slog.String("rd", h.RD.String()),
		slog.String("ra", h.RA.String()),
		slog.String("ad", h.AD.String()),
		slog.String("cd", h.CD.String()),
		slog.String("rcode", h.RCode.String()),
		slog.Int("qdcount", int(h.QDZOCount)),
		slog.Int("ancount", int(h.ANPRCount)),
		slog.Int("nscount", int(h.NSUPCount)),
		slog.Int("arcount", int(h.ARCount)),
	)
}

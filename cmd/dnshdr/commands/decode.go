package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jroosing/dnsheader/internal/api/models"
	"github.com/jroosing/dnsheader/internal/cli/output"
	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/jroosing/dnsheader/internal/helpers"
)

func newDecodeCmd(opts *options) *cobra.Command {
	var (
		fromStdin bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode a 12-byte DNS header",
		Long: `Decode the DNS header at the start of the given bytes and print every field.

Bytes are given as hex, either as arguments or on stdin with --stdin. Spaces,
colons, dashes and 0x prefixes are accepted. Bytes past the first 12 are ignored.`,
		Example: `  dnshdr decode AB CD 86 A0 00 01 01 02 03 04 05 06
  dnshdr decode -o yaml 0xABCD86A0000101020304050607
  echo abcd:86a0:0001:0102:0304:0506 | dnshdr decode --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := decodeInput(cmd.InOrStdin(), args, fromStdin)
			if err != nil {
				return err
			}
			raw, err := helpers.ParseHex(text)
			if err != nil {
				return err
			}

			hdr, err := dns.Decode(raw)
			if err != nil {
				opts.logger.Debug("header decode failed", "err", err, "bytes", len(raw))
				return err
			}
			opts.logger.Debug("header decoded", "header", hdr)

			format := opts.format
			if asJSON {
				format = output.FormatJSON
			}
			if format == output.FormatTable {
				return output.PrintTable(cmd.OutOrStdout(), headerTable(hdr))
			}

			flags, err := hdr.Flags()
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), format, models.DecodeResponse{
				Hex:    helpers.FormatHex(raw[:dns.HeaderSize]),
				Flags:  fmt.Sprintf("%04X", flags),
				Header: models.FieldsFromHeader(hdr),
				Names:  models.NamesFromHeader(hdr),
			})
		},
	}

	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read hex from stdin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Shorthand for --output json")
	return cmd
}

func decodeInput(stdin io.Reader, args []string, fromStdin bool) (string, error) {
	switch {
	case fromStdin && len(args) > 0:
		return "", errors.New("give hex as arguments or --stdin, not both")
	case fromStdin:
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	case len(args) == 0:
		return "", errors.New("no header bytes given")
	}
	return strings.Join(args, " "), nil
}

// headerTable lists one row per header field in wire order.
type headerTable dns.Header

func (headerTable) Headers() []string {
	return []string{"field", "value", "hex", "meaning"}
}

func (t headerTable) Rows() [][]string {
	h := dns.Header(t)
	bit := func(v uint8) string { return strconv.Itoa(int(v)) }
	word := func(v uint16) []string {
		return []string{strconv.Itoa(int(v)), fmt.Sprintf("%04X", v), ""}
	}

	return [][]string{
		{"ID", strconv.Itoa(int(h.ID)), h.ID.HexString(), ""},
		{dns.FieldQR, bit(uint8(h.QR)), h.QR.HexString(), h.QR.String()},
		{dns.FieldOpcode, bit(h.Opcode.Value()), h.Opcode.HexString(), h.Opcode.String()},
		{dns.FieldAA, bit(uint8(h.AA)), h.AA.HexString(), h.AA.String()},
		{dns.FieldTC, bit(uint8(h.TC)), h.TC.HexString(), h.TC.String()},
		{dns.FieldRD, bit(uint8(h.RD)), h.RD.HexString(), h.RD.String()},
		{dns.FieldRA, bit(uint8(h.RA)), h.RA.HexString(), h.RA.String()},
		{dns.FieldZ, bit(h.Z.Bit()), h.Z.HexString(), "reserved"},
		{dns.FieldAD, bit(uint8(h.AD)), h.AD.HexString(), h.AD.String()},
		{dns.FieldCD, bit(uint8(h.CD)), h.CD.HexString(), h.CD.String()},
		{dns.FieldRCode, strconv.Itoa(int(h.RCode.Value())), h.RCode.HexString(), h.RCode.String()},
		append([]string{dns.PropertyQDZOCount}, word(uint16(h.QDZOCount))...),
		append([]string{dns.PropertyANPRCount}, word(uint16(h.ANPRCount))...),
		append([]string{dns.PropertyNSUPCount}, word(uint16(h.NSUPCount))...),
		append([]string{dns.PropertyARCount}, word(uint16(h.ARCount))...),
	}
}

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jroosing/dnsheader/internal/api/models"
	"github.com/jroosing/dnsheader/internal/cli/output"
	"github.com/jroosing/dnsheader/internal/dns"
	"github.com/jroosing/dnsheader/internal/helpers"
)

func newEncodeCmd(opts *options) *cobra.Command {
	var (
		fields models.HeaderFields
		opcode string
		rcode  string
		spaced bool
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode header fields into 12 bytes",
		Long: `Build a DNS header from flags and print its 12 wire bytes as hex.

Flag bits take 0 or 1. --opcode and --rcode take a mnemonic (QUERY, NXDOMAIN)
or a number. Only response codes that fit the 4-bit header field are accepted.`,
		Example: `  dnshdr encode --id 0xABCD --aa 1 --ad 1 --cd 1 --qdcount 258
  dnshdr encode --qr 1 --opcode notify --rcode nxdomain --spaced`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parseOpcode(opcode)
			if err != nil {
				return err
			}
			rc, err := parseRCode(rcode)
			if err != nil {
				return err
			}
			fields.Opcode = op
			fields.RCode = rc

			hdr, err := fields.Header()
			if err != nil {
				return err
			}
			out, err := hdr.Encode()
			if err != nil {
				opts.logger.Debug("header encode failed", "err", err)
				return err
			}
			opts.logger.Debug("header encoded", "header", hdr)

			text := helpers.CompactHex(out)
			if spaced {
				text = helpers.FormatHex(out)
			}
			if opts.format == output.FormatTable {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			return output.Print(cmd.OutOrStdout(), opts.format, models.EncodeResponse{
				Hex:   text,
				Flags: helpers.CompactHex(out[2:4]),
			})
		},
	}

	f := cmd.Flags()
	f.Uint16Var(&fields.ID, "id", 0, "Message identifier")
	f.Uint8Var(&fields.QR, "qr", 0, "QR bit: 0 query, 1 response")
	f.StringVar(&opcode, "opcode", "QUERY", "Opcode mnemonic or number")
	f.Uint8Var(&fields.AA, "aa", 0, "Authoritative answer bit")
	f.Uint8Var(&fields.TC, "tc", 0, "Truncation bit")
	f.Uint8Var(&fields.RD, "rd", 0, "Recursion desired bit")
	f.Uint8Var(&fields.RA, "ra", 0, "Recursion available bit")
	f.Uint8Var(&fields.Z, "z", 0, "Reserved bit, must be 0")
	f.Uint8Var(&fields.AD, "ad", 0, "Authentic data bit")
	f.Uint8Var(&fields.CD, "cd", 0, "Checking disabled bit")
	f.StringVar(&rcode, "rcode", "NOERROR", "Response code mnemonic or number")
	f.Uint16Var(&fields.QDCount, "qdcount", 0, "QDCOUNT / ZOCOUNT")
	f.Uint16Var(&fields.ANCount, "ancount", 0, "ANCOUNT / PRCOUNT")
	f.Uint16Var(&fields.NSCount, "nscount", 0, "NSCOUNT / UPCOUNT")
	f.Uint16Var(&fields.ARCount, "arcount", 0, "ARCOUNT")
	f.BoolVar(&spaced, "spaced", false, "Separate output bytes with spaces")
	return cmd
}

func parseOpcode(s string) (uint8, error) {
	if o, ok := dns.OpcodeByName(s); ok {
		return o.Value(), nil
	}
	n, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid --opcode %q: not a mnemonic or 8-bit number", s)
	}
	return uint8(n), nil
}

func parseRCode(s string) (uint16, error) {
	if r, ok := dns.RCodeByName(s); ok {
		return r.Value(), nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid --rcode %q: not a mnemonic or 16-bit number", s)
	}
	return uint16(n), nil
}

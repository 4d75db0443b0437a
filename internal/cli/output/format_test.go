package output_test

import (
	"bytes"
	"testing"

	"github.com/jroosing/dnsheader/internal/cli/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rows struct{}

func (rows) Headers() []string { return []string{"field", "value"} }
func (rows) Rows() [][]string  { return [][]string{{"QR", "1"}, {"OPCODE", "0"}} }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want output.Format
	}{
		{"", output.FormatTable},
		{"table", output.FormatTable},
		{"TEXT", output.FormatTable},
		{"json", output.FormatJSON},
		{"yml", output.FormatYAML},
		{" YAML ", output.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := output.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := output.ParseFormat("xml")
	assert.ErrorContains(t, err, "invalid output format")
}

func TestPrint_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Print(&buf, output.FormatTable, rows{}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "OPCODE")
	assert.Regexp(t, `QR\s+1`, out)
}

func TestPrint_TableFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Print(&buf, output.FormatTable, map[string]int{"id": 1}))
	assert.JSONEq(t, `{"id":1}`, buf.String())
}

func TestPrint_JSONAndYAML(t *testing.T) {
	data := struct {
		Hex string `json:"hex" yaml:"hex"`
	}{Hex: "ABCD"}

	var buf bytes.Buffer
	require.NoError(t, output.Print(&buf, output.FormatJSON, data))
	assert.Equal(t, "{\n  \"hex\": \"ABCD\"\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, output.Print(&buf, output.FormatYAML, data))
	assert.Equal(t, "hex: ABCD\n", buf.String())

	assert.Error(t, output.Print(&buf, output.Format("xml"), data))
}

package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimfoundation/rostermap/internal/cmd/output"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    output.Format
		wantErr bool
	}{
		{input: "json", want: output.FormatJSON},
		{input: "YAML", want: output.FormatYAML},
		{input: "table", want: output.FormatTable},
		{input: "text", want: output.FormatText},
		{input: "", want: output.Format("")},
		{input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := output.ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, output.FormatYAML, output.DetectFormat("yaml"))
	assert.Equal(t, output.FormatJSON, output.DetectFormat("JSON"))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatJSON)

	err := f.Format(&buf, map[string]string{"name": "吴丽"})
	require.NoError(t, err)

	// Non-ASCII stays literal
	assert.Contains(t, buf.String(), "吴丽")
	assert.Contains(t, buf.String(), "  \"name\"")
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatYAML)

	err := f.Format(&buf, map[string][]string{"tao-jiang": {"plenary"}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tao-jiang:")
	assert.Contains(t, buf.String(), "plenary")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	data := output.Data{
		Headers: []string{"ID", "Tags"},
		Rows: [][]string{
			{"tao-jiang", "plenary"},
		},
	}
	require.NoError(t, f.Format(&buf, data))
	assert.Contains(t, buf.String(), "tao-jiang")
	assert.Contains(t, buf.String(), "plenary")
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := output.NewFormatter(output.FormatTable)

	require.NoError(t, f.Format(&buf, map[string]int{"updated": 3}))
	assert.Contains(t, buf.String(), `"updated": 3`)
}

func TestTitleHeaders(t *testing.T) {
	assert.Equal(t,
		[]string{"Id", "En Name", "Zh Schedule"},
		output.TitleHeaders([]string{"id", "en_name", "zh_schedule"}))
}

package roster_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosimfoundation/rostermap/pkg/roster"
)

func TestTextUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantEN    string
		wantZH    string
		localized bool
	}{
		{
			name:   "plain string",
			input:  `"Alice W."`,
			wantEN: "Alice W.",
			wantZH: "Alice W.", // plain values have no per-language variants
		},
		{
			name:      "language map",
			input:     `{"en": "Alice Wu", "zh": "吴丽"}`,
			wantEN:    "Alice Wu",
			wantZH:    "吴丽",
			localized: true,
		},
		{
			name:      "language map without zh",
			input:     `{"en": "Alice Wu"}`,
			wantEN:    "Alice Wu",
			wantZH:    "",
			localized: true,
		},
		{
			name:   "null",
			input:  `null`,
			wantEN: "",
			wantZH: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text roster.Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &text))
			assert.Equal(t, tt.wantEN, text.Get(roster.LangEN))
			assert.Equal(t, tt.wantZH, text.Get(roster.LangZH))
			assert.Equal(t, tt.localized, text.IsLocalized())
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	// A value parsed from a document must re-serialize in its original
	// raw form, whichever shape it had.
	for _, input := range []string{
		`"Alice W."`,
		`{"en":"Alice Wu","zh":"吴丽"}`,
		`{"zh":"吴丽"}`,
	} {
		var text roster.Text
		require.NoError(t, json.Unmarshal([]byte(input), &text))

		out, err := json.Marshal(text)
		require.NoError(t, err)
		assert.Equal(t, input, string(out))
	}
}

func TestTextConstructors(t *testing.T) {
	plain := roster.NewText("Tao Jiang")
	assert.Equal(t, "Tao Jiang", plain.Get(roster.LangEN))
	assert.False(t, plain.IsLocalized())

	localized := roster.NewLocalizedText("Tao Jiang", "姜涛")
	assert.Equal(t, "Tao Jiang", localized.Get(roster.LangEN))
	assert.Equal(t, "姜涛", localized.Get(roster.LangZH))
	assert.True(t, localized.IsLocalized())

	out, err := json.Marshal(localized)
	require.NoError(t, err)
	assert.JSONEq(t, `{"en":"Tao Jiang","zh":"姜涛"}`, string(out))
}

func TestTextIsZero(t *testing.T) {
	var zero roster.Text
	assert.True(t, zero.IsZero())
	assert.False(t, roster.NewText("x").IsZero())

	var parsed roster.Text
	require.NoError(t, json.Unmarshal([]byte(`""`), &parsed))
	assert.False(t, parsed.IsZero()) // raw form present, still round-trips
}

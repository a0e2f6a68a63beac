package roster

import (
	"encoding/json"
)

// Lang identifies one of the site's two content languages.
type Lang string

const (
	// LangEN is the English variant.
	LangEN Lang = "en"
	// LangZH is the Chinese variant.
	LangZH Lang = "zh"
)

// Text models a JSON value that is either a plain string or a
// {"en": ..., "zh": ...} language map. Unmarshaling keeps the raw form so
// an untouched field re-serializes in the shape it came in, string or map.
type Text struct {
	raw       json.RawMessage
	value     string
	en        string
	zh        string
	localized bool
}

// NewText returns a plain-string Text.
func NewText(s string) Text {
	return Text{value: s}
}

// NewLocalizedText returns a Text carrying per-language variants.
func NewLocalizedText(en, zh string) Text {
	return Text{en: en, zh: zh, localized: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	t.raw = append(t.raw[:0], data...)

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.value = s
		t.en, t.zh = "", ""
		t.localized = false
		return nil
	}

	var variants struct {
		EN string `json:"en"`
		ZH string `json:"zh"`
	}
	if err := json.Unmarshal(data, &variants); err != nil {
		return err
	}
	t.value = ""
	t.en = variants.EN
	t.zh = variants.ZH
	t.localized = true
	return nil
}

// MarshalJSON implements json.Marshaler. Values that came from a document
// are emitted in their original raw form.
func (t Text) MarshalJSON() ([]byte, error) {
	if len(t.raw) > 0 {
		return t.raw, nil
	}
	if t.localized {
		return json.Marshal(struct {
			EN string `json:"en"`
			ZH string `json:"zh"`
		}{EN: t.en, ZH: t.zh})
	}
	return json.Marshal(t.value)
}

// Get returns the variant for the given language. A plain-string Text
// carries no per-language variants and returns its value for any language.
func (t Text) Get(lang Lang) string {
	if !t.localized {
		return t.value
	}
	switch lang {
	case LangZH:
		return t.zh
	default:
		return t.en
	}
}

// IsLocalized reports whether the value was a language map.
func (t Text) IsLocalized() bool {
	return t.localized
}

// IsZero reports whether the Text carries no content at all.
func (t Text) IsZero() bool {
	return !t.localized && t.value == "" && len(t.raw) == 0
}

// String returns the English-preferred rendering, for logs and reports.
func (t Text) String() string {
	return t.Get(LangEN)
}

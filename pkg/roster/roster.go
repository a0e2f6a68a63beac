// Package roster models the conference website's speaker roster files
// (Speakers.json and SpeakersZh.json) and provides load/save with an
// atomic full-file rewrite.
package roster

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// rawField is one key of an original JSON object, in file order.
type rawField struct {
	key string
	raw json.RawMessage
}

// Speaker is one entry in a roster file's speaker list. Unmarshaling keeps
// every field of the original object in file order, so the applier's
// full-file rewrite carries keys it does not recognize (and an explicit
// "tags": []) through unchanged, the same way Text keeps its raw form.
type Speaker struct {
	ID   string
	Name Text
	Tags []string

	fields []rawField
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Speaker) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("speaker entry: expected object, got %v", tok)
	}

	*s = Speaker{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("speaker entry: bad key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch key {
		case "id":
			err = json.Unmarshal(raw, &s.ID)
		case "name":
			err = json.Unmarshal(raw, &s.Name)
		case "tags":
			err = json.Unmarshal(raw, &s.Tags)
		}
		if err != nil {
			return err
		}
		s.fields = append(s.fields, rawField{key: key, raw: raw})
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Fields come back out in their
// original order with the current id, name, and tags patched in; tags
// granted to an entry that had no tags field are appended at the end.
func (s Speaker) MarshalJSON() ([]byte, error) {
	fields := s.fields
	if fields == nil {
		// Constructed in code rather than parsed from a file.
		fields = []rawField{{key: "id"}, {key: "name"}}
		if s.Tags != nil {
			fields = append(fields, rawField{key: "tags"})
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	sawTags := false
	for i, f := range fields {
		raw := f.raw
		var err error
		switch f.key {
		case "id":
			raw, err = marshalNoEscape(s.ID)
		case "name":
			raw, err = marshalNoEscape(s.Name)
		case "tags":
			raw, err = marshalNoEscape(s.Tags)
			sawTags = true
		}
		if err != nil {
			return nil, err
		}
		if err := writeField(&buf, i > 0, f.key, raw); err != nil {
			return nil, err
		}
	}
	if !sawTags && s.fields != nil && s.Tags != nil {
		raw, err := marshalNoEscape(s.Tags)
		if err != nil {
			return nil, err
		}
		if err := writeField(&buf, len(fields) > 0, "tags", raw); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is the top-level shape of a roster file. Like Speaker, it keeps
// any top-level keys beyond "speakers" across a rewrite.
type Document struct {
	Speakers []Speaker

	fields []rawField
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("roster document: expected object, got %v", tok)
	}

	*d = Document{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("roster document: bad key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		if key == "speakers" {
			if err := json.Unmarshal(raw, &d.Speakers); err != nil {
				return err
			}
		}
		d.fields = append(d.fields, rawField{key: key, raw: raw})
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	fields := d.fields
	if fields == nil {
		fields = []rawField{{key: "speakers"}}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fields {
		raw := f.raw
		var err error
		if f.key == "speakers" {
			raw, err = marshalNoEscape(d.Speakers)
		}
		if err != nil {
			return nil, err
		}
		if err := writeField(&buf, i > 0, f.key, raw); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeField appends one key/value pair to a JSON object under construction.
func writeField(buf *bytes.Buffer, comma bool, key string, raw json.RawMessage) error {
	if comma {
		buf.WriteByte(',')
	}
	keyJSON, err := marshalNoEscape(key)
	if err != nil {
		return err
	}
	buf.Write(keyJSON)
	buf.WriteByte(':')
	buf.Write(raw)
	return nil
}

// marshalNoEscape marshals without HTML escaping, so characters like & in
// names come back out the way they went in.
func marshalNoEscape(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Names builds an id → name index for the given language. Entries with an
// empty id carry no stable key and are skipped; the skip count is returned
// so callers can surface malformed entries.
func (d *Document) Names(lang Lang) (map[string]string, int) {
	names := make(map[string]string, len(d.Speakers))
	skipped := 0
	for _, speaker := range d.Speakers {
		if speaker.ID == "" {
			skipped++
			continue
		}
		names[speaker.ID] = speaker.Name.Get(lang)
	}
	return names, skipped
}

package papers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// UnmarshalJSON reads a record without validating it. Fields of an
// unexpected type are coerced to text where that makes sense and dropped
// otherwise, so one odd record never costs the rest of the document.
// It never returns an error; a record that is not an object decodes as an
// empty record with no id.
func (p *Paper) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		*p = Paper{unmatched: true}
		return nil
	}

	*p = Paper{
		Category:        Category(textValue(raw["category"])),
		CategoryDisplay: textValue(raw["category_display"]),
		Title:           textValue(raw["title"]),
		Authors:         textValue(raw["authors"]),
		Journal:         textValue(raw["journal"]),
		DOI:             textValue(raw["doi"]),
		Keywords:        textValue(raw["keywords"]),
		Abstract:        textValue(raw["abstract"]),
		Introduction:    textValue(raw["introduction"]),
		Images:          imageList(raw["images"]),
	}

	id, present := raw["id"]
	if n, ok := integerValue(id); ok {
		p.ID = n
	} else {
		p.unmatched = true
		if present {
			p.rawID = id
		}
	}
	return nil
}

// MarshalJSON writes the record back, keeping an id that was not an
// integer exactly as it was read.
func (p Paper) MarshalJSON() ([]byte, error) {
	type plain Paper
	out := struct {
		ID json.RawMessage `json:"id,omitempty"`
		plain
	}{plain: plain(p)}

	if p.unmatched {
		out.ID = p.rawID
	} else {
		out.ID = strconv.AppendInt(nil, int64(p.ID), 10)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes each category array on its own. A category that
// is missing or not an array is empty.
func (d *PapersDocument) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = PapersDocument{
		Measurement:  paperList(raw[string(CategoryMeasurement)]),
		Analysis:     paperList(raw[string(CategoryAnalysis)]),
		Intervention: paperList(raw[string(CategoryIntervention)]),
	}
	return nil
}

func paperList(raw json.RawMessage) []Paper {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}
	out := make([]Paper, len(records))
	for i, r := range records {
		_ = out[i].UnmarshalJSON(r)
	}
	return out
}

func imageList(raw json.RawMessage) []Image {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []Image
	for _, item := range items {
		var img Image
		if err := img.UnmarshalJSON(item); err == nil {
			out = append(out, img)
		}
	}
	return out
}

// integerValue reports the value of a JSON number that is a whole number
// within int range. Strings are not numbers, so "2" has no integer value.
func integerValue(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return 0, false
	}
	if n, err := strconv.Atoi(string(raw)); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// textValue renders a JSON value as text. Scalars keep their written form
// and arrays join their elements with commas. null and objects are empty.
func textValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return ""
		}
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = textValue(item)
		}
		return strings.Join(parts, ",")
	case '{', 'n':
		return ""
	}
	return string(raw)
}

// Package papers holds the record types served by the site: research papers
// grouped by category and the overview sections shown on the home page and
// at the top of each category page.
package papers

import (
	"encoding/json"
	"strings"
)

// Category identifies one of the three research groupings.
type Category string

const (
	CategoryMeasurement  Category = "measurement"
	CategoryAnalysis     Category = "analysis"
	CategoryIntervention Category = "intervention"
)

// CategoryDescriptor is a category value paired with its display label.
type CategoryDescriptor struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// categories is the fixed display order. Lookups by id scan papers in this order.
var categories = []CategoryDescriptor{
	{Value: CategoryMeasurement, Label: "测量"},
	{Value: CategoryAnalysis, Label: "分析"},
	{Value: CategoryIntervention, Label: "干预"},
}

// Categories returns the fixed category descriptors in display order.
func Categories() []CategoryDescriptor {
	out := make([]CategoryDescriptor, len(categories))
	copy(out, categories)
	return out
}

// Label returns the display label of c, or the raw value for unknown categories.
func (c Category) Label() string {
	for _, d := range categories {
		if d.Value == c {
			return d.Label
		}
	}
	return string(c)
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, d := range categories {
		if d.Value == c {
			return true
		}
	}
	return false
}

// IntroSection is the overview section key that introduces c, e.g. "measurement_intro".
func (c Category) IntroSection() string {
	return string(c) + "_intro"
}

// Paper is a single publication record.
type Paper struct {
	ID              int      `json:"id"`
	Category        Category `json:"category,omitempty"`
	CategoryDisplay string   `json:"category_display,omitempty"`
	Title           string   `json:"title"`
	Authors         string   `json:"authors,omitempty"`
	Journal         string   `json:"journal,omitempty"`
	DOI             string   `json:"doi,omitempty"`
	Keywords        string   `json:"keywords,omitempty"`
	Abstract        string   `json:"abstract,omitempty"`
	Introduction    string   `json:"introduction,omitempty"`
	Images          []Image  `json:"images,omitempty"`

	// unmatched is set when the record's id is missing or not an integer,
	// in which case rawID holds the id as written, if any.
	unmatched bool
	rawID     json.RawMessage
}

// HasID reports whether p carries the integer id n. Records whose id was
// missing or not an integer never match.
func (p Paper) HasID(n int) bool {
	return !p.unmatched && p.ID == n
}

// KeywordList splits the keyword string on ASCII and full-width commas.
// Blank entries are dropped.
func (p Paper) KeywordList() []string {
	fields := strings.FieldsFunc(p.Keywords, func(r rune) bool {
		return r == ',' || r == '，'
	})
	var out []string
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Section is a block of overview text keyed by Section, e.g. "analysis_intro".
type Section struct {
	ID           int    `json:"id,omitempty"`
	Section      string `json:"section"`
	Title        string `json:"title,omitempty"`
	PageTitle    string `json:"page_title,omitempty"`
	Content      string `json:"content,omitempty"`
	ShortContent string `json:"short_content,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// DisplayTitle prefers the page title over the card title.
func (s Section) DisplayTitle() string {
	if s.PageTitle != "" {
		return s.PageTitle
	}
	return s.Title
}

// Summary prefers the short content over the full content.
func (s Section) Summary() string {
	if s.ShortContent != "" {
		return s.ShortContent
	}
	return s.Content
}

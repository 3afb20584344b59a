package papers

// PapersDocument mirrors data/papers.json: one array per category.
type PapersDocument struct {
	Measurement  []Paper `json:"measurement"`
	Analysis     []Paper `json:"analysis"`
	Intervention []Paper `json:"intervention"`
}

// OverviewDocument mirrors data/overview.json.
type OverviewDocument struct {
	Sections []Section `json:"sections"`
}

// Group returns the records stored under category c. A nil document or an
// unknown category yields nil.
func (d *PapersDocument) Group(c Category) []Paper {
	if d == nil {
		return nil
	}
	switch c {
	case CategoryMeasurement:
		return d.Measurement
	case CategoryAnalysis:
		return d.Analysis
	case CategoryIntervention:
		return d.Intervention
	}
	return nil
}

// Normalize flattens the document into a single list in category order,
// tagging every record with the category of the array it came from.
// category_display is filled from the fixed labels when the record has none.
func (d *PapersDocument) Normalize() []Paper {
	if d == nil {
		return nil
	}
	out := make([]Paper, 0, len(d.Measurement)+len(d.Analysis)+len(d.Intervention))
	for _, c := range categories {
		for _, p := range d.Group(c.Value) {
			p.Category = c.Value
			if p.CategoryDisplay == "" {
				p.CategoryDisplay = c.Label
			}
			out = append(out, p)
		}
	}
	return out
}

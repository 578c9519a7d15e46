package types

// Resolution is the outcome of resolving one requested field name
type Resolution struct {
	// Name is the name as requested by the caller
	Name string `json:"name"`

	// Field is the parsed field (nil when the name is not recognized)
	Field *Field `json:"field,omitempty"`

	// Value is the resolved binding, e.g. "image 101"
	Value string `json:"value,omitempty"`

	// Error is the failure detail, e.g. "Error foo"
	Error string `json:"error,omitempty"`
}

// OK reports whether the resolution succeeded
func (r *Resolution) OK() bool {
	return r.Error == ""
}

// Summary contains resolution counts
type Summary struct {
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
	Total    int `json:"total"`
}

// Report holds the resolutions for a batch of requested names
type Report struct {
	Resolutions []*Resolution `json:"resolutions"`
	Summary     Summary       `json:"summary"`
}

// Add appends a resolution and updates the summary
func (r *Report) Add(res *Resolution) {
	r.Resolutions = append(r.Resolutions, res)
	r.Summary.Total++
	if res.OK() {
		r.Summary.Resolved++
	} else {
		r.Summary.Failed++
	}
}

// HasFailures reports whether any resolution failed
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}

package models

// Violation pairs a reported problem with the skill it belongs to.
type Violation struct {
	Label   string `json:"label"`
	Message string `json:"message"`
}

// RunSummary aggregates the outcomes of one validation pass over a root.
// Outcomes are kept in processing order.
type RunSummary struct {
	Root       string    `json:"root"`
	Total      int       `json:"total"`
	Normalized int       `json:"normalized"`
	Outcomes   []Outcome `json:"skills"`
}

// Add appends an outcome and updates the counters.
func (s *RunSummary) Add(o Outcome) {
	s.Total++
	if o.Normalized {
		s.Normalized++
	}
	s.Outcomes = append(s.Outcomes, o)
}

// Violations flattens every outcome's violations in processing order.
// Skipped candidates are rendered as "skipped: <reason>".
func (s *RunSummary) Violations() []Violation {
	var out []Violation
	for _, o := range s.Outcomes {
		for _, msg := range o.Violations {
			if o.Status == StatusSkipped {
				msg = string(StatusSkipped) + ": " + msg
			}
			out = append(out, Violation{Label: o.Label, Message: msg})
		}
	}
	return out
}

// ViolationCount returns the number of violations across all outcomes.
func (s *RunSummary) ViolationCount() int {
	n := 0
	for _, o := range s.Outcomes {
		n += len(o.Violations)
	}
	return n
}

// Failed reports whether the run must exit non-zero: any violation, or
// nothing considered at all.
func (s *RunSummary) Failed() bool {
	return s.Total == 0 || s.ViolationCount() > 0
}

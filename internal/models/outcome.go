package models

// Status represents the outcome status of a single skill.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// MissingDocumentMessage is recorded for candidates without a skill document.
const MissingDocumentMessage = "missing document"

// Outcome is the validation result for one candidate skill directory.
type Outcome struct {
	Label        string   `json:"label"`
	RelPath      string   `json:"path"`
	Dir          string   `json:"-"`
	DocumentPath string   `json:"document,omitempty"`
	Status       Status   `json:"status"`
	Normalized   bool     `json:"normalized"`
	Violations   []string `json:"violations,omitempty"`
}

// NewOKOutcome returns a passing outcome.
func NewOKOutcome(label string) Outcome {
	return Outcome{Label: label, Status: StatusOK}
}

// NewSkippedOutcome returns an outcome for a candidate with no document.
// It carries one synthetic violation so it counts against the run.
func NewSkippedOutcome(label string) Outcome {
	return Outcome{
		Label:      label,
		Status:     StatusSkipped,
		Violations: []string{MissingDocumentMessage},
	}
}

// NewFailedOutcome returns an outcome carrying violations. With no
// violations it degrades to an ok outcome.
func NewFailedOutcome(label string, violations []string) Outcome {
	if len(violations) == 0 {
		return NewOKOutcome(label)
	}
	return Outcome{Label: label, Status: StatusFailed, Violations: violations}
}

// Passed reports whether the outcome has no violations.
func (o Outcome) Passed() bool {
	return len(o.Violations) == 0
}

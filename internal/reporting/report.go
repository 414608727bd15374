package reporting

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/models"
	"github.com/mattn/go-runewidth"
)

// Exit codes returned by the validate command.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

const ruleWidth = 40

// ExitCode returns ExitSuccess only when at least one skill was considered
// and no violations were recorded.
func ExitCode(summary *models.RunSummary) int {
	if summary == nil || summary.Failed() {
		return ExitFailure
	}
	return ExitSuccess
}

// WriteText renders the human-readable report: one entry per skill in
// processing order, then the totals.
func WriteText(w io.Writer, summary *models.RunSummary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\nValidating %d skills in %s/\n\n", len(summary.Outcomes), strings.TrimSuffix(summary.Root, "/"))

	for _, o := range summary.Outcomes {
		if o.Passed() {
			fmt.Fprintf(&b, "  %s: ok\n", o.Label)
			continue
		}
		fmt.Fprintf(&b, "  %s:\n", o.Label)
		for _, v := range o.Violations {
			if o.Status == models.StatusSkipped {
				v = string(models.StatusSkipped) + ": " + v
			}
			fmt.Fprintf(&b, "    - %s\n", v)
		}
	}

	count := summary.ViolationCount()
	rows := [][2]string{
		{"Skills:", fmt.Sprint(summary.Total)},
		{"Normalized:", fmt.Sprint(summary.Normalized)},
		{"Errors:", fmt.Sprint(count)},
	}
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r[0]))
	}

	fmt.Fprintf(&b, "\n%s\n", strings.Repeat("=", ruleWidth))
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", padRight(r[0], labelWidth), r[1])
	}

	switch {
	case summary.Total == 0:
		b.WriteString("\nNo skills were validated.\n")
	case count > 0:
		fmt.Fprintf(&b, "\nValidation failed with %d error(s).\n", count)
	default:
		b.WriteString("\nAll skills valid.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

// JSONReport is the machine-readable form of a run.
type JSONReport struct {
	Timestamp  string             `json:"timestamp"`
	Root       string             `json:"root"`
	Total      int                `json:"total"`
	Normalized int                `json:"normalized"`
	Errors     int                `json:"errors"`
	Passed     bool               `json:"passed"`
	Skills     []models.Outcome   `json:"skills"`
	Violations []models.Violation `json:"violations"`
}

// NewJSONReport builds the JSON view of summary stamped with now.
func NewJSONReport(summary *models.RunSummary, now time.Time) JSONReport {
	violations := summary.Violations()
	if violations == nil {
		violations = []models.Violation{}
	}
	return JSONReport{
		Timestamp:  now.UTC().Format(time.RFC3339),
		Root:       summary.Root,
		Total:      summary.Total,
		Normalized: summary.Normalized,
		Errors:     summary.ViolationCount(),
		Passed:     !summary.Failed(),
		Skills:     summary.Outcomes,
		Violations: violations,
	}
}

// WriteJSON writes the indented JSON report to w.
func WriteJSON(w io.Writer, summary *models.RunSummary, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewJSONReport(summary, now))
}

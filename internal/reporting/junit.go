package reporting

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/models"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Skipped    int              `xml:"skipped,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one validation run over a dist root.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one skill.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure lists the violations reported for a skill.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a skill whose document was not found.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts a RunSummary to JUnit XML form. Skipped skills
// count as skipped test cases here; they still fail the run's exit code.
func ConvertToJUnit(summary *models.RunSummary, now time.Time) *JUnitTestSuites {
	suite := JUnitTestSuite{
		Name:      "skills-dist",
		Tests:     summary.Total,
		Timestamp: now.UTC().Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "root", Value: summary.Root},
			{Name: "normalized", Value: fmt.Sprint(summary.Normalized)},
		},
	}

	for _, o := range summary.Outcomes {
		tc := JUnitTestCase{
			Name:      o.Label,
			Classname: pluginOf(o.Label),
		}
		switch o.Status {
		case models.StatusSkipped:
			tc.Skipped = &JUnitSkipped{Message: strings.Join(o.Violations, "; ")}
			suite.Skipped++
		case models.StatusFailed:
			tc.Failure = &JUnitFailure{
				Message: fmt.Sprintf("%s: %d violation(s)", o.Label, len(o.Violations)),
				Type:    "SpecViolation",
				Body:    strings.Join(o.Violations, "\n"),
			}
			suite.Failures++
		}
		suite.TestCases = append(suite.TestCases, tc)
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Skipped:    suite.Skipped,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func pluginOf(label string) string {
	plugin, _, _ := strings.Cut(label, "/")
	return plugin
}

// WriteJUnit writes the JUnit XML document for summary to w.
func WriteJUnit(w io.Writer, summary *models.RunSummary, now time.Time) error {
	data, err := xml.MarshalIndent(ConvertToJUnit(summary, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

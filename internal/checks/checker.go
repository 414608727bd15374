// Package checks provides the ComplianceChecker interface and the Agent Skills
// spec checks used to validate a skill directory.
package checks

import (
	"errors"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/skill"
)

// CheckResult holds the outcome of a single compliance check.
type CheckResult struct {
	// Name is a stable check identifier used in output and downstream processing.
	Name string
	// Passed indicates whether the check met its acceptance criteria.
	Passed bool
	// Summary is a human-readable one-line result intended for concise display.
	Summary string
}

// ComplianceChecker runs a single compliance check.
type ComplianceChecker interface {
	Name() string
	Check(skill.Skill) (*CheckResult, error)
}

// RunChecks executes each checker against sk, collecting results and errors.
func RunChecks(checkers []ComplianceChecker, sk skill.Skill) ([]*CheckResult, error) {
	var (
		errs    []error
		results []*CheckResult
	)
	for _, c := range checkers {
		r, err := c.Check(sk)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// SpecCheckers returns all spec compliance checkers in display order.
func SpecCheckers() []ComplianceChecker {
	return []ComplianceChecker{
		&SpecFrontmatterChecker{},
		&SpecAllowedFieldsChecker{},
		&SpecNameChecker{},
		&SpecDirMatchChecker{},
		&SpecDescriptionChecker{},
		&SpecCompatibilityChecker{},
		&SpecMetadataChecker{},
	}
}

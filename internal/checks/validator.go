package checks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/skill"
)

//go:generate go tool mockgen -source validator.go -destination mock_checker.go -package checks

// DefaultDocumentNames are the accepted SKILL.md spellings in lookup order.
var DefaultDocumentNames = []string{"SKILL.md", "skill.md"}

// Checker validates the skill stored in dir and returns one human-readable
// message per violation, in a stable order. An empty result means the
// skill conforms.
type Checker interface {
	Validate(dir string) []string
}

// CheckerFunc adapts a plain function to the Checker interface.
type CheckerFunc func(dir string) []string

func (f CheckerFunc) Validate(dir string) []string { return f(dir) }

// FindDocument returns the first of names present as a regular file in dir.
// It returns os.ErrNotExist when none is found.
func FindDocument(dir string, names []string) (string, error) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}
	return "", os.ErrNotExist
}

// SpecValidator checks a skill directory against the base Agent Skills spec.
type SpecValidator struct {
	// DocumentNames overrides DefaultDocumentNames when set.
	DocumentNames []string
	// Checkers overrides SpecCheckers when set.
	Checkers []ComplianceChecker
}

var _ Checker = (*SpecValidator)(nil)

// NewSpecValidator returns a SpecValidator with the default document names
// and spec checkers.
func NewSpecValidator() *SpecValidator {
	return &SpecValidator{}
}

func (v *SpecValidator) Validate(dir string) []string {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return []string{fmt.Sprintf("Path does not exist: %s", dir)}
	case err != nil:
		return []string{fmt.Sprintf("Cannot access %s: %v", dir, err)}
	case !info.IsDir():
		return []string{fmt.Sprintf("Not a directory: %s", dir)}
	}

	names := v.DocumentNames
	if len(names) == 0 {
		names = DefaultDocumentNames
	}
	path, err := FindDocument(dir, names)
	if errors.Is(err, os.ErrNotExist) {
		return []string{fmt.Sprintf("Missing required file: %s", names[0])}
	} else if err != nil {
		return []string{err.Error()}
	}

	sk, err := skill.Load(path)
	if err != nil {
		return []string{err.Error()}
	}

	violations := ValidateFrontmatter(sk.FrontmatterRaw)

	checkers := v.Checkers
	if checkers == nil {
		checkers = SpecCheckers()
	}
	results, err := RunChecks(checkers, *sk)
	for _, r := range results {
		if !r.Passed {
			violations = append(violations, r.Summary)
		}
	}
	if err != nil {
		violations = append(violations, err.Error())
	}
	return violations
}

package checks

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/skill"
	"golang.org/x/text/unicode/norm"
)

const (
	maxNameLength          = 64
	maxDescriptionLength   = 1024
	maxCompatibilityLength = 500
)

// allowedSpecFields lists the top-level frontmatter keys permitted by the agentskills.io spec.
var allowedSpecFields = map[string]bool{
	"name":          true,
	"description":   true,
	"license":       true,
	"allowed-tools": true,
	"metadata":      true,
	"compatibility": true,
}

// normalizeName applies NFKC so visually identical names compare equal.
func normalizeName(name string) string {
	return norm.NFKC.String(strings.TrimSpace(name))
}

func passed(name, summary string) *CheckResult {
	return &CheckResult{Name: name, Passed: true, Summary: summary}
}

func failed(name, summary string) *CheckResult {
	return &CheckResult{Name: name, Passed: false, Summary: summary}
}

// SpecFrontmatterChecker validates that the file has YAML frontmatter with required fields.
type SpecFrontmatterChecker struct{}

var _ ComplianceChecker = (*SpecFrontmatterChecker)(nil)

func (*SpecFrontmatterChecker) Name() string { return "spec-frontmatter" }

func (c *SpecFrontmatterChecker) Check(sk skill.Skill) (*CheckResult, error) {
	if !sk.HasFrontmatter() {
		return failed(c.Name(), "SKILL.md must start with YAML frontmatter (---)"), nil
	}
	var missing []string
	if _, ok := sk.FrontmatterRaw["name"]; !ok || strings.TrimSpace(sk.Frontmatter.Name) == "" {
		missing = append(missing, "name")
	}
	if _, ok := sk.FrontmatterRaw["description"]; !ok || strings.TrimSpace(sk.Frontmatter.Description) == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return failed(c.Name(), fmt.Sprintf("Missing required field in frontmatter: %s", strings.Join(missing, ", "))), nil
	}
	return passed(c.Name(), "Frontmatter structure valid with required fields"), nil
}

// SpecAllowedFieldsChecker ensures all top-level frontmatter keys are spec-allowed.
type SpecAllowedFieldsChecker struct{}

var _ ComplianceChecker = (*SpecAllowedFieldsChecker)(nil)

func (*SpecAllowedFieldsChecker) Name() string { return "spec-allowed-fields" }

func (c *SpecAllowedFieldsChecker) Check(sk skill.Skill) (*CheckResult, error) {
	var unknown []string
	for key := range sk.FrontmatterRaw {
		if !allowedSpecFields[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return passed(c.Name(), "All frontmatter fields are spec-allowed"), nil
	}
	sort.Strings(unknown)

	allowed := make([]string, 0, len(allowedSpecFields))
	for key := range allowedSpecFields {
		allowed = append(allowed, key)
	}
	sort.Strings(allowed)
	return failed(c.Name(), fmt.Sprintf("Unexpected fields in frontmatter: %s. Only %s are allowed.",
		strings.Join(unknown, ", "), strings.Join(allowed, ", "))), nil
}

// SpecNameChecker validates the name field against the spec's naming rules.
type SpecNameChecker struct{}

var _ ComplianceChecker = (*SpecNameChecker)(nil)

func (*SpecNameChecker) Name() string { return "spec-name" }

func (c *SpecNameChecker) Check(sk skill.Skill) (*CheckResult, error) {
	name := normalizeName(sk.Frontmatter.Name)
	if name == "" {
		return passed(c.Name(), "No name to validate (caught by spec-frontmatter)"), nil
	}

	var violations []string
	if n := utf8.RuneCountInString(name); n > maxNameLength {
		violations = append(violations, fmt.Sprintf("exceeds %d characters (%d)", maxNameLength, n))
	}
	if name != strings.ToLower(name) {
		violations = append(violations, "must be lowercase")
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		violations = append(violations, "starts or ends with a hyphen")
	}
	if strings.Contains(name, "--") {
		violations = append(violations, "contains consecutive hyphens")
	}
	if strings.IndexFunc(name, func(r rune) bool {
		return r != '-' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0 {
		violations = append(violations, "contains invalid characters (only letters, digits, and hyphens allowed)")
	}

	if len(violations) > 0 {
		return failed(c.Name(), fmt.Sprintf("Skill name %q violates spec rules: %s", name, strings.Join(violations, "; "))), nil
	}
	return passed(c.Name(), "Name follows spec naming rules"), nil
}

// SpecDirMatchChecker checks that the skill directory's basename matches the name field.
type SpecDirMatchChecker struct{}

var _ ComplianceChecker = (*SpecDirMatchChecker)(nil)

func (*SpecDirMatchChecker) Name() string { return "spec-dir-match" }

func (c *SpecDirMatchChecker) Check(sk skill.Skill) (*CheckResult, error) {
	name := normalizeName(sk.Frontmatter.Name)
	if sk.Path == "" || name == "" {
		return passed(c.Name(), "Cannot validate (missing path or name)"), nil
	}
	dir := normalizeName(filepath.Base(filepath.Dir(sk.Path)))
	if dir != name {
		return failed(c.Name(), fmt.Sprintf("Directory name %q must match skill name %q", dir, name)), nil
	}
	return passed(c.Name(), "Directory name matches skill name"), nil
}

// SpecDescriptionChecker validates the description field.
type SpecDescriptionChecker struct{}

var _ ComplianceChecker = (*SpecDescriptionChecker)(nil)

func (*SpecDescriptionChecker) Name() string { return "spec-description" }

func (c *SpecDescriptionChecker) Check(sk skill.Skill) (*CheckResult, error) {
	desc := strings.TrimSpace(sk.Frontmatter.Description)
	if desc == "" {
		return passed(c.Name(), "No description to validate (caught by spec-frontmatter)"), nil
	}
	if length := utf8.RuneCountInString(desc); length > maxDescriptionLength {
		return failed(c.Name(), fmt.Sprintf("Description exceeds %d character limit (%d chars)", maxDescriptionLength, length)), nil
	}
	return passed(c.Name(), "Description is valid"), nil
}

// SpecCompatibilityChecker validates the optional compatibility field.
type SpecCompatibilityChecker struct{}

var _ ComplianceChecker = (*SpecCompatibilityChecker)(nil)

func (*SpecCompatibilityChecker) Name() string { return "spec-compatibility" }

func (c *SpecCompatibilityChecker) Check(sk skill.Skill) (*CheckResult, error) {
	if length := utf8.RuneCountInString(sk.Frontmatter.Compatibility); length > maxCompatibilityLength {
		return failed(c.Name(), fmt.Sprintf("Compatibility exceeds %d character limit (%d chars)", maxCompatibilityLength, length)), nil
	}
	return passed(c.Name(), "Compatibility field is valid"), nil
}

// SpecMetadataChecker requires metadata to be a string-to-string map.
// Non-map values are reported by the schema check.
type SpecMetadataChecker struct{}

var _ ComplianceChecker = (*SpecMetadataChecker)(nil)

func (*SpecMetadataChecker) Name() string { return "spec-metadata" }

func (c *SpecMetadataChecker) Check(sk skill.Skill) (*CheckResult, error) {
	raw, ok := sk.FrontmatterRaw["metadata"].(map[string]any)
	if !ok {
		return passed(c.Name(), "No metadata map to validate"), nil
	}
	var meta map[string]string
	if err := mapstructure.Decode(raw, &meta); err != nil {
		return failed(c.Name(), fmt.Sprintf("metadata values must be strings: %v", err)), nil
	}
	return passed(c.Name(), "Metadata field is valid"), nil
}

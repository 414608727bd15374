package checks

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/skill"
	"github.com/stretchr/testify/require"
)

func makeSkill(raw map[string]any, path string) skill.Skill {
	str := func(key string) string {
		s, _ := raw[key].(string)
		return s
	}
	return skill.Skill{
		Frontmatter: skill.Frontmatter{
			Name:          str("name"),
			Description:   str("description"),
			Compatibility: str("compatibility"),
		},
		FrontmatterRaw: raw,
		Path:           path,
	}
}

func TestSpecFrontmatterChecker(t *testing.T) {
	tests := []struct {
		name    string
		sk      skill.Skill
		passed  bool
		summary string
	}{
		{
			name:   "valid frontmatter",
			sk:     makeSkill(map[string]any{"name": "my-skill", "description": "A skill"}, ""),
			passed: true,
		},
		{
			name:    "missing frontmatter",
			sk:      skill.Skill{},
			summary: "must start with YAML frontmatter",
		},
		{
			name:    "missing name",
			sk:      makeSkill(map[string]any{"description": "A desc"}, ""),
			summary: "Missing required field in frontmatter: name",
		},
		{
			name:    "blank description",
			sk:      makeSkill(map[string]any{"name": "my-skill", "description": "  "}, ""),
			summary: "Missing required field in frontmatter: description",
		},
		{
			name:    "both missing",
			sk:      makeSkill(map[string]any{}, ""),
			summary: "name, description",
		},
	}
	checker := &SpecFrontmatterChecker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(tt.sk)
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
			require.Equal(t, "spec-frontmatter", result.Name)
			if tt.summary != "" {
				require.Contains(t, result.Summary, tt.summary)
			}
		})
	}
}

func TestSpecAllowedFieldsChecker(t *testing.T) {
	tests := []struct {
		name   string
		sk     skill.Skill
		passed bool
	}{
		{
			name:   "all allowed fields",
			sk:     makeSkill(map[string]any{"name": "s", "description": "d", "license": "MIT", "allowed-tools": "Read"}, ""),
			passed: true,
		},
		{
			name:   "vendor spelling is unknown",
			sk:     makeSkill(map[string]any{"name": "s", "allowed_tools": []any{"Read"}}, ""),
			passed: false,
		},
		{
			name:   "no frontmatter",
			sk:     skill.Skill{},
			passed: true,
		},
	}
	checker := &SpecAllowedFieldsChecker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(tt.sk)
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
		})
	}
}

func TestSpecAllowedFieldsChecker_SortedUnknownFields(t *testing.T) {
	sk := makeSkill(map[string]any{"name": "s", "zeta": 1, "author": "me"}, "")
	result, err := (&SpecAllowedFieldsChecker{}).Check(sk)
	require.NoError(t, err)
	require.False(t, result.Passed)
	require.True(t, strings.HasPrefix(result.Summary, "Unexpected fields in frontmatter: author, zeta."))
}

func TestSpecNameChecker(t *testing.T) {
	tests := []struct {
		name    string
		skill   string
		passed  bool
		summary string
	}{
		{name: "valid", skill: "my-skill", passed: true},
		{name: "digits", skill: "skill2go", passed: true},
		{name: "empty is deferred", skill: "", passed: true},
		{name: "uppercase", skill: "My-Skill", summary: "must be lowercase"},
		{name: "leading hyphen", skill: "-skill", summary: "starts or ends with a hyphen"},
		{name: "trailing hyphen", skill: "skill-", summary: "starts or ends with a hyphen"},
		{name: "consecutive hyphens", skill: "my--skill", summary: "consecutive hyphens"},
		{name: "underscore", skill: "my_skill", summary: "invalid characters"},
		{name: "too long", skill: strings.Repeat("a", 65), summary: "exceeds 64 characters (65)"},
		{name: "max length", skill: strings.Repeat("a", 64), passed: true},
	}
	checker := &SpecNameChecker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeSkill(map[string]any{"name": tt.skill}, ""))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed, result.Summary)
			if tt.summary != "" {
				require.Contains(t, result.Summary, tt.summary)
			}
		})
	}
}

func TestSpecDirMatchChecker(t *testing.T) {
	tests := []struct {
		name   string
		sk     skill.Skill
		passed bool
	}{
		{
			name:   "matching",
			sk:     makeSkill(map[string]any{"name": "my-skill"}, filepath.Join("plugin", "skills", "my-skill", "SKILL.md")),
			passed: true,
		},
		{
			name:   "mismatch",
			sk:     makeSkill(map[string]any{"name": "other"}, filepath.Join("plugin", "skills", "my-skill", "SKILL.md")),
			passed: false,
		},
		{
			name:   "no path",
			sk:     makeSkill(map[string]any{"name": "my-skill"}, ""),
			passed: true,
		},
	}
	checker := &SpecDirMatchChecker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(tt.sk)
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed)
		})
	}
}

func TestSpecDescriptionChecker(t *testing.T) {
	checker := &SpecDescriptionChecker{}

	result, err := checker.Check(makeSkill(map[string]any{"description": "Explains code."}, ""))
	require.NoError(t, err)
	require.True(t, result.Passed)

	result, err = checker.Check(makeSkill(map[string]any{"description": strings.Repeat("é", 1025)}, ""))
	require.NoError(t, err)
	require.False(t, result.Passed)
	require.Contains(t, result.Summary, "(1025 chars)")

	result, err = checker.Check(makeSkill(map[string]any{"description": strings.Repeat("é", 1024)}, ""))
	require.NoError(t, err)
	require.True(t, result.Passed)
}

func TestSpecCompatibilityChecker(t *testing.T) {
	checker := &SpecCompatibilityChecker{}

	result, err := checker.Check(makeSkill(map[string]any{"compatibility": "Requires git"}, ""))
	require.NoError(t, err)
	require.True(t, result.Passed)

	result, err = checker.Check(makeSkill(map[string]any{"compatibility": strings.Repeat("x", 501)}, ""))
	require.NoError(t, err)
	require.False(t, result.Passed)
}

func TestSpecMetadataChecker(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]any
		passed bool
	}{
		{name: "absent", raw: map[string]any{}, passed: true},
		{name: "strings", raw: map[string]any{"metadata": map[string]any{"version": "1.0", "author": "me"}}, passed: true},
		{name: "number value", raw: map[string]any{"metadata": map[string]any{"version": 1}}, passed: false},
		{name: "nested map", raw: map[string]any{"metadata": map[string]any{"extra": map[string]any{"a": "b"}}}, passed: false},
		{name: "not a map", raw: map[string]any{"metadata": "v1"}, passed: true},
	}
	checker := &SpecMetadataChecker{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := checker.Check(makeSkill(tt.raw, ""))
			require.NoError(t, err)
			require.Equal(t, tt.passed, result.Passed, result.Summary)
		})
	}
}

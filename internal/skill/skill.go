// skill parses SKILL.md files
package skill

import (
	"encoding"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/frontmatter"
	"gopkg.in/yaml.v3"
)

var _ encoding.TextUnmarshaler = (*Skill)(nil)

// ErrEmpty is returned when a SKILL.md has no content at all.
var ErrEmpty = errors.New("SKILL.md is empty")

// Frontmatter holds the string-valued fields of the SKILL.md frontmatter.
// Fields whose YAML value is not a string are left empty here; the raw
// value is still available in Skill.FrontmatterRaw.
type Frontmatter struct {
	Name          string
	Description   string
	Compatibility string
}

// Skill represents a parsed SKILL.md.
type Skill struct {
	Frontmatter    Frontmatter
	FrontmatterRaw map[string]any
	Path           string
}

// HasFrontmatter reports whether the document opened with a header block.
func (s *Skill) HasFrontmatter() bool {
	return s.FrontmatterRaw != nil
}

// parseFrontmatter decodes the YAML frontmatter (delimited by ---). A nil
// map means the document has no frontmatter.
func parseFrontmatter(content string) (map[string]any, error) {
	if !strings.HasPrefix(content, frontmatter.Delimiter) {
		return nil, nil
	}

	doc, ok := frontmatter.Split(content)
	if !ok {
		return nil, errors.New("closing frontmatter delimiter not found")
	}

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(doc.Header), &node); err != nil {
		return nil, fmt.Errorf("unmarshalling frontmatter: %w", err)
	}
	if len(node.Content) == 0 {
		return map[string]any{}, nil
	}
	if node.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("frontmatter must be a YAML mapping")
	}

	raw := map[string]any{}
	if err := node.Decode(&raw); err != nil {
		return nil, fmt.Errorf("unmarshalling frontmatter: %w", err)
	}
	return raw, nil
}

func (s *Skill) UnmarshalText(text []byte) error {
	raw := string(text)
	if strings.TrimSpace(raw) == "" {
		return ErrEmpty
	}

	fields, err := parseFrontmatter(raw)
	if err != nil {
		return fmt.Errorf("parsing frontmatter: %w", err)
	}

	s.FrontmatterRaw = fields
	s.Frontmatter = Frontmatter{
		Name:          stringField(fields, "name"),
		Description:   stringField(fields, "description"),
		Compatibility: stringField(fields, "compatibility"),
	}
	return nil
}

// Load reads and parses the SKILL.md at path.
func Load(path string) (*Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s := &Skill{Path: path}
	if err := s.UnmarshalText(data); err != nil {
		return s, err
	}
	return s, nil
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

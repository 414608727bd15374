package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultSkillsDir is the directory inside each plugin that holds skills.
const DefaultSkillsDir = "skills"

// ErrRootNotFound is returned when the directory to scan does not exist.
var ErrRootNotFound = errors.New("root directory does not exist")

// ErrInvalidSkillsDir is returned when the skills directory name would be
// read as a glob pattern.
var ErrInvalidSkillsDir = errors.New("invalid skills directory")

// globMeta holds the characters doublestar treats as pattern syntax.
const globMeta = `*?[]{}\`

// Candidate is a directory expected to hold exactly one skill document,
// laid out as <root>/<plugin>/<skills-dir>/<skill>.
type Candidate struct {
	Plugin  string // top-level unit the skill ships with
	Name    string // skill directory name
	RelPath string // slash-separated path relative to the root
	Dir     string // absolute path to the skill directory
}

// Label identifies the candidate in reports as <plugin>/<skill>.
func (c Candidate) Label() string {
	return c.Plugin + "/" + c.Name
}

// Candidates lists every <root>/*/<skillsDir>/* directory, sorted by path.
// Hidden plugin and skill directories are skipped. An empty skillsDir
// selects DefaultSkillsDir; it must be a literal path, not a pattern.
func Candidates(root, skillsDir string) ([]Candidate, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	} else if err != nil {
		return nil, fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	if skillsDir == "" {
		skillsDir = DefaultSkillsDir
	}
	if strings.ContainsAny(skillsDir, globMeta) {
		return nil, fmt.Errorf("%w: %q contains glob characters", ErrInvalidSkillsDir, skillsDir)
	}
	rel := path.Clean(filepath.ToSlash(skillsDir))
	if !fs.ValidPath(rel) || rel == "." {
		return nil, fmt.Errorf("%w: %q must be a relative path inside each plugin", ErrInvalidSkillsDir, skillsDir)
	}
	pattern := path.Join("*", rel, "*")
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSkillsDir, skillsDir)
	}

	fsys := os.DirFS(absRoot)
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithNoHidden())
	if err != nil {
		return nil, fmt.Errorf("matching %s in %s: %w", pattern, absRoot, err)
	}
	sort.Strings(matches)

	var candidates []Candidate
	for _, m := range matches {
		// Stat follows symlinks, so linked skill directories count too.
		st, err := fs.Stat(fsys, m)
		if err != nil || !st.IsDir() {
			continue
		}
		parts := strings.Split(m, "/")
		candidates = append(candidates, Candidate{
			Plugin:  parts[0],
			Name:    parts[len(parts)-1],
			RelPath: m,
			Dir:     filepath.Join(absRoot, filepath.FromSlash(m)),
		})
	}
	return candidates, nil
}

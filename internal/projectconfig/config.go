// Package projectconfig provides the ProjectConfig struct and loader for
// .skills-dist.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/checks"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/discovery"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up by Load.
const FileName = ".skills-dist.yaml"

// DefaultDistDir is the dist root used when neither the command line nor
// the config file names one.
const DefaultDistDir = "dist/"

const maxSearchDepth = 10

// PathsConfig holds the dist root and the per-plugin skills directory.
type PathsConfig struct {
	Dist   string `yaml:"dist,omitempty"`
	Skills string `yaml:"skills,omitempty"`
}

// DocumentsConfig controls which file in a skill directory is the document.
type DocumentsConfig struct {
	Names []string `yaml:"names,omitempty"`
}

// NormalizeConfig holds header rewrite settings. KeyAliases maps a
// vendor key to its canonical spelling.
type NormalizeConfig struct {
	KeyAliases map[string]string `yaml:"key_aliases,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .skills-dist.yaml.
type ProjectConfig struct {
	Paths     PathsConfig     `yaml:"paths,omitempty"`
	Documents DocumentsConfig `yaml:"documents,omitempty"`
	Normalize NormalizeConfig `yaml:"normalize,omitempty"`

	// Source is the file the config was read from; empty for defaults.
	Source string `yaml:"-"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Dist:   DefaultDistDir,
			Skills: discovery.DefaultSkillsDir,
		},
		Documents: DocumentsConfig{
			Names: append([]string(nil), checks.DefaultDocumentNames...),
		},
	}
}

// Load finds .skills-dist.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	path, data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	mergeConfig(cfg, &fileCfg)
	cfg.Source = path
	return cfg, nil
}

// findConfigFile walks up from dir looking for the config file. Returns
// os.ErrNotExist if none is found and propagates real I/O errors.
func findConfigFile(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for range maxSearchDepth {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Paths.Dist != "" {
		dst.Paths.Dist = src.Paths.Dist
	}
	if src.Paths.Skills != "" {
		dst.Paths.Skills = src.Paths.Skills
	}

	if len(src.Documents.Names) > 0 {
		dst.Documents.Names = src.Documents.Names
	}

	if len(src.Normalize.KeyAliases) > 0 {
		dst.Normalize.KeyAliases = src.Normalize.KeyAliases
	}
}

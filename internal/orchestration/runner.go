package orchestration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/checks"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/discovery"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/frontmatter"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/models"
)

// ErrNoCandidates is returned when the root holds no skill directories.
var ErrNoCandidates = errors.New("no documents found")

// Runner normalizes and validates every skill under a dist root, one at a
// time. A Runner holds no state between runs.
type Runner struct {
	checker       checks.Checker
	normalizer    *frontmatter.Normalizer
	documentNames []string
	skillsDir     string
	dryRun        bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithNormalizer replaces the default header normalizer.
func WithNormalizer(n *frontmatter.Normalizer) RunnerOption {
	return func(r *Runner) {
		r.normalizer = n
	}
}

// WithDocumentNames sets the accepted skill document names in lookup order.
func WithDocumentNames(names ...string) RunnerOption {
	return func(r *Runner) {
		if len(names) > 0 {
			r.documentNames = names
		}
	}
}

// WithSkillsDir sets the per-plugin directory that holds skills.
func WithSkillsDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.skillsDir = dir
	}
}

// WithDryRun reports which documents would be normalized without writing them.
func WithDryRun(dryRun bool) RunnerOption {
	return func(r *Runner) {
		r.dryRun = dryRun
	}
}

// NewRunner creates a Runner that validates skills with checker.
func NewRunner(checker checks.Checker, opts ...RunnerOption) *Runner {
	r := &Runner{
		checker:       checker,
		normalizer:    frontmatter.NewNormalizer(nil),
		documentNames: checks.DefaultDocumentNames,
		skillsDir:     discovery.DefaultSkillsDir,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Run processes every candidate under root in path order. It fails early
// only when root is missing or holds no candidates; per-skill problems are
// recorded in the summary. A canceled ctx stops the run between skills and
// returns the partial summary along with the context error.
func (r *Runner) Run(ctx context.Context, root string) (*models.RunSummary, error) {
	candidates, err := discovery.Candidates(root, r.skillsDir)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCandidates, root)
	}

	slog.Debug("Discovered skills", "root", root, "count", len(candidates))

	summary := &models.RunSummary{Root: root}
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("validation stopped after %d of %d skills: %w", summary.Total, len(candidates), err)
		}
		summary.Add(r.processCandidate(c))
	}
	return summary, nil
}

func (r *Runner) processCandidate(c discovery.Candidate) models.Outcome {
	label := c.Label()

	path, err := checks.FindDocument(c.Dir, r.documentNames)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Skill document missing", "label", label, "dir", c.Dir)
		return withLocation(models.NewSkippedOutcome(label), c, "")
	} else if err != nil {
		slog.Warn("Cannot look up skill document", "label", label, "error", err)
		return withLocation(models.NewFailedOutcome(label, []string{err.Error()}), c, "")
	}

	content, normalized, err := r.normalize(path)
	if err != nil {
		slog.Warn("Normalization failed", "label", label, "error", err)
		return withLocation(models.NewFailedOutcome(label, []string{err.Error()}), c, path)
	}

	checkDir := c.Dir
	if r.dryRun && normalized {
		staged, cleanup, err := stageDocument(c.Name, filepath.Base(path), content)
		if err != nil {
			slog.Warn("Cannot stage normalized document", "label", label, "error", err)
			return withLocation(models.NewFailedOutcome(label, []string{err.Error()}), c, path)
		}
		defer cleanup()
		checkDir = staged
	}

	violations := r.checker.Validate(checkDir)
	slog.Debug("Validated skill", "label", label, "path", path, "normalized", normalized, "violations", len(violations))

	outcome := withLocation(models.NewFailedOutcome(label, violations), c, path)
	outcome.Normalized = normalized
	return outcome
}

// normalize rewrites the document at path into base spec syntax. It returns
// the normalized text and whether it differs from the file. In dry-run mode
// the file is left as it is. Headerless documents are left for the checker.
func (r *Runner) normalize(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, ok := frontmatter.Split(string(data))
	if !ok {
		return string(data), false, nil
	}

	doc, changed := r.normalizer.NormalizeDocument(doc)
	if r.dryRun {
		return doc.String(), changed, nil
	}
	if err := frontmatter.Rewrite(path, doc, changed); err != nil {
		return "", false, err
	}
	return doc.String(), changed, nil
}

// stageDocument writes content as <tmp>/<skill>/<document> so a dry run can
// validate the normalized text under the skill's own directory name. The
// returned cleanup removes the temporary tree.
func stageDocument(skill, document, content string) (string, func(), error) {
	tmp, err := os.MkdirTemp("", "skills-dist-")
	if err != nil {
		return "", nil, fmt.Errorf("staging %s: %w", skill, err)
	}
	cleanup := func() {
		if err := os.RemoveAll(tmp); err != nil {
			slog.Warn("Cannot remove staged document", "dir", tmp, "error", err)
		}
	}

	dir := filepath.Join(tmp, skill)
	if err := os.Mkdir(dir, 0o755); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("staging %s: %w", skill, err)
	}
	if err := os.WriteFile(filepath.Join(dir, document), []byte(content), 0o644); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("staging %s: %w", skill, err)
	}
	return dir, cleanup, nil
}

func withLocation(o models.Outcome, c discovery.Candidate, documentPath string) models.Outcome {
	o.RelPath = c.RelPath
	o.Dir = c.Dir
	o.DocumentPath = documentPath
	return o
}

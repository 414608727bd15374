package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ichabodcole/project-docs-scaffold-template/internal/checks"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/frontmatter"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/models"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/orchestration"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/projectconfig"
	"github.com/ichabodcole/project-docs-scaffold-template/internal/reporting"
	"github.com/spf13/cobra"
)

var version = "dev"

// Report formats accepted by --format.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatJUnit = "junit"
)

type rootOptions struct {
	debug     bool
	dryRun    bool
	format    string
	output    string
	skillsDir string
	configDir string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "validate-skills-dist [dist-dir]",
		Short: "Normalize and validate generated skill documents",
		Long: `Normalize and validate the skill documents in a generated distribution.

Each <plugin>/skills/<skill>/SKILL.md under the dist directory has its
frontmatter rewritten into base Agent Skills syntax (allowed_tools becomes
allowed-tools, flow sequences become block lists) and is then checked
against the Agent Skills spec. The command exits non-zero if any skill has
violations or no skills were found.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report which documents would be normalized without rewriting them")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text | json | junit")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&opts.skillsDir, "skills-dir", "", "Per-plugin directory holding skills (default from config, then \"skills\")")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "Directory to start the "+projectconfig.FileName+" lookup from (default: working directory)")

	return cmd
}

func runValidate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	switch opts.format {
	case formatText, formatJSON, formatJUnit:
	default:
		return fmt.Errorf("unknown format %q: must be one of text, json, junit", opts.format)
	}

	startDir := opts.configDir
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		startDir = wd
	}
	cfg, err := projectconfig.Load(startDir)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		slog.Debug("Loaded project config", "path", cfg.Source)
	}

	root := resolveRoot(cfg, args)
	skillsDir := cfg.Paths.Skills
	if opts.skillsDir != "" {
		skillsDir = opts.skillsDir
	}

	validator := checks.NewSpecValidator()
	validator.DocumentNames = cfg.Documents.Names

	runner := orchestration.NewRunner(validator,
		orchestration.WithNormalizer(frontmatter.NewNormalizer(frontmatter.AliasesFromMap(cfg.Normalize.KeyAliases))),
		orchestration.WithDocumentNames(cfg.Documents.Names...),
		orchestration.WithSkillsDir(skillsDir),
		orchestration.WithDryRun(opts.dryRun),
	)

	summary, err := runner.Run(cmd.Context(), root)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), opts, summary); err != nil {
		return err
	}

	if reporting.ExitCode(summary) != reporting.ExitSuccess {
		return &ValidationFailedError{Violations: summary.ViolationCount()}
	}
	return nil
}

// resolveRoot picks the dist directory: the positional argument, else the
// configured path relative to the config file that set it.
func resolveRoot(cfg *projectconfig.ProjectConfig, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	root := cfg.Paths.Dist
	if cfg.Source != "" && !filepath.IsAbs(root) {
		root = filepath.Join(filepath.Dir(cfg.Source), root)
	}
	return root
}

func writeReport(stdout io.Writer, opts *rootOptions, summary *models.RunSummary) (err error) {
	w := stdout
	if opts.output != "" {
		f, createErr := os.Create(opts.output)
		if createErr != nil {
			return fmt.Errorf("creating report file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	now := time.Now()
	switch opts.format {
	case formatJSON:
		return reporting.WriteJSON(w, summary, now)
	case formatJUnit:
		return reporting.WriteJUnit(w, summary, now)
	default:
		return reporting.WriteText(w, summary)
	}
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

package run

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/expr-lang/expr/vm"

	"github.com/whiskeyjimbo/cellgen/internal/cells"
	"github.com/whiskeyjimbo/cellgen/internal/config"
	"github.com/whiskeyjimbo/cellgen/internal/output"
	"github.com/whiskeyjimbo/cellgen/internal/render"
)

// Options adjust a single run without touching the profile.
type Options struct {
	// InputDir overrides the profile's listing directory.
	InputDir string
	// OutputDir overrides the profile's destination directory.
	OutputDir string
	// FilterProgram optionally restricts records beyond the profile
	// exclusions.
	FilterProgram *vm.Program
	// DryRun renders everything but writes nothing.
	DryRun bool
}

// Generator drives the pipeline: catalog, parse, sort, render, write.
// It is single-use; build one per run.
type Generator struct {
	id        RunID
	filter    *cells.RecordFilter
	renderer  *render.Renderer
	inputDir  string
	outputDir string
	dryRun    bool
	logger    *slog.Logger
}

// New builds a generator from a validated profile. The profile must have
// passed config.Validate; the flag classification check runs again here so
// a caller skipping validation still fails before any I/O.
func New(profile config.Profile, opts Options) (*Generator, error) {
	if err := config.ValidateFlagLists(profile.Flags); err != nil {
		return nil, err
	}

	inputDir := profile.Paths.Input
	if opts.InputDir != "" {
		inputDir = opts.InputDir
	}

	outputDir := profile.Paths.Output
	if opts.OutputDir != "" {
		outputDir = opts.OutputDir
	}
	if outputDir == "" {
		dir, err := output.DefaultDir()
		if err != nil {
			return nil, err
		}
		outputDir = dir
	}

	filter := cells.NewRecordFilter().WithExclusions(profile.Exclusions)
	if opts.FilterProgram != nil {
		filter = filter.WithFilterExpression(opts.FilterProgram)
	}

	id := NewRunID()
	return &Generator{
		id:        id,
		filter:    filter,
		renderer:  render.New(profile.Lighting, profile.Flags),
		inputDir:  inputDir,
		outputDir: outputDir,
		dryRun:    opts.DryRun,
		logger:    slog.Default().With("run_id", id.String()),
	}, nil
}

// ID returns the run identifier.
func (g *Generator) ID() RunID {
	return g.id
}

// Run executes the pipeline sequentially and returns the run summary.
// Filesystem failures abort the run; files already written stay written.
func (g *Generator) Run() (*output.Summary, error) {
	start := time.Now()

	plugins, err := cells.Catalog(g.inputDir)
	if err != nil {
		return nil, err
	}
	g.logger.Info("catalog built", "input", g.inputDir, "plugins", len(plugins))

	records, err := cells.ParseDir(g.inputDir, plugins, g.filter)
	if err != nil {
		return nil, err
	}
	g.logger.Info("listings parsed", "records", len(records))

	// One global sort; per-plugin partitions keep this order.
	cells.SortByEditorID(records)

	summary := &output.Summary{
		RunID:     g.id.String(),
		StartTime: start,
		DryRun:    g.dryRun,
	}

	for _, plugin := range plugins {
		matched := cells.ForPlugin(records, plugin)
		rendered := g.renderer.RenderPlugin(matched)

		pluginSummary := output.PluginSummary{
			Plugin:  plugin,
			Records: len(matched),
		}

		switch {
		case rendered == "":
			g.logger.Debug("no records after filtering, skipping", "plugin", plugin)
		case g.dryRun:
			g.logger.Info("dry run, not writing", "plugin", plugin, "records", len(matched))
		default:
			written, err := output.WritePlugin(g.outputDir, plugin, rendered)
			if err != nil {
				return nil, fmt.Errorf("failed to write config for %s: %w", plugin, err)
			}
			pluginSummary.Written = written
			if written {
				pluginSummary.File = output.ConfigPath(g.outputDir, plugin)
				g.logger.Info("config written", "plugin", plugin, "records", len(matched), "file", pluginSummary.File)
			}
		}

		summary.Plugins = append(summary.Plugins, pluginSummary)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/whiskeyjimbo/cellgen/internal/cells"
	"github.com/whiskeyjimbo/cellgen/internal/config"
	"github.com/whiskeyjimbo/cellgen/internal/output"
	"github.com/whiskeyjimbo/cellgen/internal/run"
)

var (
	inputDir   string
	outputDir  string
	filterExpr string
	dryRun     bool
	format     string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate [profile.yaml]",
	Short: "Generate per-plugin lighting-template configs",
	Long: `Parse the cell-export listings found in the input directory, filter
and sort the records, and write one lighting-template INI per plugin.

Without a profile argument the built-in defaults are used. A profile only
needs to state what it changes; everything else keeps its default.

Filtering:
  Records matching the profile's exclusion substrings are always dropped.
  --filter "edid startsWith 'Whiterun'"   keep only matching records
  --filter "plugin == 'Skyrim.esm'"       variables: plugin, edid, formid`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		profilePath := ""
		if len(args) == 1 {
			profilePath = args[0]
		}
		return runGenerateAction(profilePath)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&inputDir, "input", "i", "", "listing directory (overrides profile)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "destination directory (overrides profile)")
	generateCmd.Flags().StringVar(&filterExpr, "filter", "", "filter expression (e.g. \"edid startsWith 'Whiterun'\")")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "render everything but write nothing")
	generateCmd.Flags().StringVar(&format, "format", "table", "summary format: table, json, yaml")
}

// runGenerateAction implements the core logic for the generate command
func runGenerateAction(profilePath string) error {
	profile := config.Default()
	if profilePath != "" {
		slog.Info("loading profile", "path", profilePath)
		loaded, err := config.LoadProfile(profilePath)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		profile = loaded
		slog.Info("profile loaded", "version", profile.Version)
	}

	opts := run.Options{
		InputDir:  firstNonEmpty(inputDir, viper.GetString("input")),
		OutputDir: firstNonEmpty(outputDir, viper.GetString("output")),
		DryRun:    dryRun,
	}

	if filterExpr != "" {
		program, err := cells.CompileFilterExpression(filterExpr)
		if err != nil {
			return err
		}
		opts.FilterProgram = program
	}

	generator, err := run.New(profile, opts)
	if err != nil {
		return err
	}

	summary, err := generator.Run()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(format, os.Stdout)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

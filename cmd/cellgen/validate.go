package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/whiskeyjimbo/cellgen/internal/config"
)

// validateCmd checks a profile without generating anything.
var validateCmd = &cobra.Command{
	Use:   "validate <profile.yaml>",
	Short: "Validate a generation profile",
	Long: `Load a profile and run every check the generate command would run:
JSON Schema validation of the document, semver version gate, lighting value
checks, and the inherit/override flag classification.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		profile, err := config.LoadProfile(args[0])
		if err != nil {
			return err
		}
		slog.Info("profile valid", "path", args[0], "version", profile.Version)
		fmt.Printf("%s: OK\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// Package cli implements the carbonctl command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// Output formats accepted by --output.
const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// NewRootCmd creates the root Cobra command for carbonctl.
func NewRootCmd(ver string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "carbonctl",
		Short:         "Carbon footprint operator CLI",
		Long:          "carbonctl: inspect emission factors, estimate footprints offline, migrate the database and issue bearer tokens",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			out, _ := cmd.Flags().GetString("output")
			switch out {
			case outputJSON, outputYAML:
				return nil
			default:
				return fmt.Errorf("--output must be %q or %q, got %q", outputJSON, outputYAML, out)
			}
		},
	}

	cmd.PersistentFlags().StringP("output", "o", outputJSON, "output format: json or yaml")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newFactorsCmd(), newCalcCmd(), newMigrateCmd(), newTokenCmd(), newVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Print the emission factor table
  carbonctl factors --output yaml

  # Estimate a household footprint without storing it
  carbonctl calc personal --country Germany --electricity-kwh 250 \
    --weekly-driving-km 100 --annual-flight-hours 4 --public-transport daily \
    --diet vegetarian --monthly-shopping 300

  # Apply pending database migrations
  carbonctl migrate up

  # Issue a bearer token for a user
  carbonctl token --user-id 3f1c0a3e-2b9e-4d6c-9f55-0d8b7a1e4c21`

// newLogger writes to the command's stderr so that stdout stays parseable.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
)

func newFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "Print the emission factor table",
		Long:  "Prints the static emission factor table used by every calculation, in the same shape as GET /api/emission-factors.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeOutput(cmd, engine.StandardFactors())
		},
	}
}

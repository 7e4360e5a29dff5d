// Command runout computes bund, failure volume and catch capacity geometry
// for open-pit slope cross-sections.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "runout",
		Short: "Slope failure runout analysis",
		Long: `Compute the geometry of a slope failure and of the catch capacity
behind a bund at the toe of the slope.

Subcommands:
  compute  - Run one analysis and print or export the result
  serve    - Serve the analysis over HTTP
  init     - Write an example project file`,
		SilenceUsage: true,
	}
	root.AddCommand(newComputeCmd(), newServeCmd(), newInitCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

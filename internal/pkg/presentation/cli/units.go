package cli

import (
	"fmt"

	"github.com/diwise/api-standardnames/internal/pkg/application/units"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units <unit>...",
		Short: "Print the canonical QUDT unit for unit spellings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			for _, unit := range args {
				canonical := units.Canonicalize(unit)
				if units.Known(unit) {
					fmt.Fprintf(w, "%s\t%s\n", unit, color.GreenString(canonical))
				} else {
					fmt.Fprintf(w, "%s\t%s\n", unit, color.YellowString("%s (unknown)", canonical))
				}
			}

			return nil
		},
	}
}

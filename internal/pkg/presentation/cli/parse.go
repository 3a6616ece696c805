package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var (
		flags     sourceFlags
		listNames bool
	)

	cmd := &cobra.Command{
		Use:   "parse <source>",
		Short: "Parse a standard name table and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := flags.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			header(w, "Standard name table: %s", table.Title)
			if table.Version != "" {
				printField(w, "version", table.Version)
			}
			if table.Modified != nil {
				printField(w, "modified", table.Modified.Format(time.RFC3339))
			}
			if table.Contact != nil {
				printField(w, "contact", table.Contact.String())
			}
			for _, d := range table.Distribution {
				printField(w, "distribution", d.String())
			}
			printField(w, "standard names", fmt.Sprintf("%d", len(table.StandardNames)))

			if listNames {
				for _, sn := range table.StandardNames {
					fmt.Fprintf(w, "    %s [%s]\n", color.GreenString(sn.StandardName), sn.CanonicalUnits)
				}
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&listNames, "list", "l", false, "List every standard name")

	return cmd
}

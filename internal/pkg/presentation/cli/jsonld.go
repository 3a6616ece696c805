package cli

import (
	"fmt"

	"github.com/diwise/api-standardnames/internal/pkg/application/jsonld"
	"github.com/spf13/cobra"
)

func newJSONLDCmd() *cobra.Command {
	var (
		flags            sourceFlags
		maxStandardNames int
		contextURL       string
		standardName     string
		nquads           bool
	)

	cmd := &cobra.Command{
		Use:   "jsonld <source>",
		Short: "Print a standard name table, or one of its standard names, as JSON-LD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			table, err := flags.load(ctx, args[0])
			if err != nil {
				return err
			}

			var record any = table
			if standardName != "" {
				sn, ok := table.Lookup(standardName)
				if !ok {
					return fmt.Errorf("%s has no standard name %q", table.Title, standardName)
				}
				record = sn
			}

			opts := []jsonld.Option{
				jsonld.WithMaxStandardNames(maxStandardNames),
				jsonld.WithContext(contextURL),
			}

			var out string
			if nquads {
				out, err = jsonld.NQuads(ctx, record, opts...)
			} else {
				out, err = jsonld.Dump(ctx, record, opts...)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&maxStandardNames, "max-standard-names", "n", -1, "Number of standard names to embed, negative for all")
	cmd.Flags().StringVar(&contextURL, "context", jsonld.SSNOContextURL, "JSON-LD context to import")
	cmd.Flags().StringVar(&standardName, "standard-name", "", "Only print this standard name")
	cmd.Flags().BoolVar(&nquads, "nquads", false, "Print RDF statements in N-Quads syntax instead")

	return cmd
}

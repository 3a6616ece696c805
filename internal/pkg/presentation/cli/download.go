package cli

import (
	"fmt"

	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/cache"
	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/download"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	var (
		overwrite bool
		sha256    string
	)

	cmd := &cobra.Command{
		Use:   "download <url> [dest]",
		Short: "Download a table, by default into the cache directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dest string
			if len(args) == 2 {
				dest = args[1]
			} else {
				var err error
				if dest, err = cache.Path(download.FileName(args[0])); err != nil {
					return err
				}
			}

			opts := []download.Option{download.OverwriteExisting(overwrite)}
			if sha256 != "" {
				opts = append(opts, download.KnownHash(sha256))
			}

			path, err := download.File(cmd.Context(), args[0], dest, opts...)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓"), path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing destination file")
	cmd.Flags().StringVar(&sha256, "sha256", "", "Expected sha256 of the downloaded file")

	return cmd
}

// Package cli implements the sntctl command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diwise/api-standardnames/internal/pkg/application/tables"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/cache"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func SetVersion(v string) {
	version = v
}

// NewRootCmd builds the command tree. Settings are read from flags, from
// SSNO_* environment variables and from an optional config file.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	var (
		flagNoColor bool
		flagVerbose bool
		flagConfig  string
	)

	rootCmd := &cobra.Command{
		Use:   "sntctl",
		Short: "Read standard name tables and project them to JSON-LD",
		Long: `sntctl reads standard name tables (e.g. the CF standard name table XML)
and prints them as validated records, JSON-LD documents or RDF statements.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().String("cache-dir", "", "Directory for downloaded tables (default: $SSNO_CACHE_DIR or the user cache dir)")

	v.SetEnvPrefix("SSNO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag("cache-dir", rootCmd.PersistentFlags().Lookup("cache-dir"))

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		color.NoColor = color.NoColor || flagNoColor

		if flagConfig != "" {
			v.SetConfigFile(flagConfig)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("reading config: %w", err)
			}
		}

		if dir := v.GetString("cache-dir"); dir != "" {
			if err := os.Setenv(cache.DirEnvVar, dir); err != nil {
				return err
			}
		}

		level := zerolog.WarnLevel
		if flagVerbose {
			level = zerolog.DebugLevel
		}
		logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: color.NoColor}).Level(level).With().Timestamp().Logger()
		cmd.SetContext(logging.NewContextWithLogger(cmd.Context(), logger))

		return nil
	}

	rootCmd.AddCommand(
		newParseCmd(),
		newJSONLDCmd(),
		newDownloadCmd(),
		newUnitsCmd(),
	)

	return rootCmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

type sourceFlags struct {
	format    string
	mediaType string
	title     string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "Reader format (default: inferred from the source)")
	cmd.Flags().StringVar(&f.mediaType, "media-type", "", "Media type of a downloaded source, used to pick the reader")
	cmd.Flags().StringVar(&f.title, "title", "", "Table title (default: from the source)")
}

// load parses a local file or broker source directly and treats other
// urls as distributions that are downloaded first.
func (f *sourceFlags) load(ctx context.Context, source string) (*domain.StandardNameTable, error) {
	opts := []tables.Option{}
	if f.title != "" {
		opts = append(opts, tables.WithTitle(f.title))
	}

	if !isURL(source) || strings.EqualFold(f.format, "ngsi-ld") {
		return tables.Parse(ctx, source, f.format, opts...)
	}

	title := f.title
	if title == "" {
		title = source
	}

	dist, err := domain.NewDistribution(domain.Distribution{
		Resource:    domain.Resource{Title: title},
		DownloadURL: source,
		MediaType:   f.mediaType,
	})
	if err != nil {
		return nil, err
	}

	format := f.format
	if format == "" && dist.MediaType == "" {
		if i := strings.LastIndex(source, "."); i >= 0 {
			format = strings.ToLower(source[i+1:])
		}
	}

	return tables.ParseDistribution(ctx, *dist, format, opts...)
}

func isURL(source string) bool {
	for _, scheme := range []string{"http://", "https://", "file://"} {
		if strings.HasPrefix(source, scheme) {
			return true
		}
	}
	return false
}

func printField(w io.Writer, name, value string) {
	fmt.Fprintf(w, "  %-14s %s\n", color.YellowString(name+":"), value)
}

func header(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, color.CyanString(fmt.Sprintf(format, a...)))
}

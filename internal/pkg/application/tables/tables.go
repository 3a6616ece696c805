// Package tables turns external standard name tables into validated records.
package tables

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/diwise/api-standardnames/internal/pkg/application/readers"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/cache"
	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/download"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-standardnames/tables")

// FormatInferenceError is returned when the format guessed from the source
// suffix has no registered reader.
type FormatInferenceError struct {
	Source string
	Format string
}

func (e *FormatInferenceError) Error() string {
	return fmt.Sprintf("no plugin found for %s. The reader was determined based on the suffix: %q. You may overwrite this by providing the format explicitly", e.Source, e.Format)
}

func (e *FormatInferenceError) Unwrap() error {
	return readers.ErrPluginNotFound
}

type options struct {
	title        string
	downloadOpts []download.Option
}

type Option func(*options)

// WithTitle sets the table title, overriding whatever the source says.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithDownloadOptions is passed on when a distribution is materialized.
func WithDownloadOptions(opts ...download.Option) Option {
	return func(o *options) {
		o.downloadOpts = append(o.downloadOpts, opts...)
	}
}

// Parse reads source with the reader registered for format. An empty format
// is inferred from the source suffix.
func Parse(ctx context.Context, source, format string, opts ...Option) (table *domain.StandardNameTable, err error) {
	ctx, span := tracer.Start(ctx, "parse-table")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	o := newOptions(opts)

	var factory readers.Factory

	if format == "" {
		format = strings.ToLower(strings.TrimPrefix(filepath.Ext(source), "."))
		if !readers.Has(format) {
			return nil, &FormatInferenceError{Source: source, Format: format}
		}
	}

	factory, err = readers.Get(format)
	if err != nil {
		return nil, err
	}

	return read(ctx, factory, source, o)
}

// ParseDistribution downloads the distribution to the cache directory and
// parses it. An empty format is derived from the media type.
func ParseDistribution(ctx context.Context, dist domain.Distribution, format string, opts ...Option) (table *domain.StandardNameTable, err error) {
	ctx, span := tracer.Start(ctx, "parse-distribution")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	o := newOptions(opts)

	if format == "" {
		var ok bool
		if format, ok = readers.FormatForMediaType(dist.MediaType); !ok {
			return nil, &readers.PluginNotFoundError{Format: dist.MediaType}
		}
	}

	factory, err := readers.Get(format)
	if err != nil {
		return nil, err
	}

	dest, err := cache.Path(download.FileName(dist.DownloadURL))
	if err != nil {
		return nil, err
	}

	filename, err := download.File(ctx, dist.DownloadURL, dest, append([]download.Option{download.OverwriteExisting(true)}, o.downloadOpts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize distribution %s: %w", dist.DownloadURL, err)
	}

	table, err = read(ctx, factory, filename, o)
	if err != nil {
		return nil, err
	}

	table.Distribution = append(table.Distribution, dist)

	return table, nil
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func read(ctx context.Context, factory readers.Factory, source string, o *options) (*domain.StandardNameTable, error) {
	log := logging.GetFromContext(ctx)

	reader, err := factory(source)
	if err != nil {
		return nil, err
	}

	t, err := reader.Parse(ctx)
	if err != nil {
		return nil, err
	}

	table, err := build(ctx, t, source, o)
	if err != nil {
		return nil, fmt.Errorf("invalid table %s: %w", source, err)
	}

	log.Info().Msgf("parsed %d standard names from %s", len(table.StandardNames), source)

	return table, nil
}

func build(ctx context.Context, t *readers.Table, source string, o *options) (*domain.StandardNameTable, error) {
	log := logging.GetFromContext(ctx)

	title := o.title
	if title == "" {
		title = t.Title
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}

	table := domain.StandardNameTable{}
	table.Title = title
	table.Version = t.Version

	if t.LastModified != "" {
		if err := table.SetModified(t.LastModified); err != nil {
			log.Warn().Str("last_modified", t.LastModified).Msg("ignoring unparseable modification date")
		}
	}

	switch {
	case t.Contact.IsEmpty():
		log.Debug().Str("source", source).Msg("table has no contact")
	case t.Contact.MBox != "":
		table.Contact = &domain.Agent{Kind: domain.AgentKindPerson, MBox: t.Contact.MBox}
	default:
		log.Warn().Str("contact", t.Contact.Raw).Msg("contact is not an email address and is dropped")
	}

	table.StandardNames = make([]domain.StandardName, 0, len(t.Entries))
	for _, e := range t.Entries {
		opts := []domain.StandardNameOption{domain.InTable(title)}
		if len(e.Aliases) > 0 {
			opts = append(opts, domain.WithAliases(e.Aliases...))
		}

		sn, err := domain.NewStandardName(ctx, e.StandardName, e.CanonicalUnits, e.Description, opts...)
		if err != nil {
			return nil, err
		}
		table.StandardNames = append(table.StandardNames, *sn)
	}

	return domain.NewStandardNameTable(table)
}

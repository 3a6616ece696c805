package standardnametables

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/diwise/api-standardnames/internal/pkg/application/dcat"
	"github.com/diwise/api-standardnames/internal/pkg/application/tables"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-standardnames/svcs/standardnametables")

var ErrNoSuchTable = errors.New("no such standard name table")

//go:generate moq -rm -out tablesvc_mock.go . TableService

type TableService interface {
	Catalog() dcat.Catalog

	GetAll() []domain.StandardNameTable
	GetByTitle(title string) (*domain.StandardNameTable, error)

	Start()
	Shutdown()
}

func NewTableService(ctx context.Context, logger zerolog.Logger, cfg Config) TableService {
	svc := &tableSvc{
		ctx:     ctx,
		cfg:     cfg,
		tables:  []domain.StandardNameTable{},
		indices: map[string]int{},
		log:     logger,
		done:    make(chan struct{}),
	}

	return svc
}

type tableSvc struct {
	ctx         context.Context
	cfg         Config
	tablesMutex sync.Mutex
	tables      []domain.StandardNameTable
	indices     map[string]int
	log         zerolog.Logger
	startOnce   sync.Once
	stopOnce    sync.Once
	done        chan struct{}
}

func (svc *tableSvc) Catalog() dcat.Catalog {
	return svc.cfg.Catalog
}

func (svc *tableSvc) GetAll() []domain.StandardNameTable {
	svc.tablesMutex.Lock()
	defer svc.tablesMutex.Unlock()

	return svc.tables
}

func (svc *tableSvc) GetByTitle(title string) (*domain.StandardNameTable, error) {
	svc.tablesMutex.Lock()
	defer svc.tablesMutex.Unlock()

	index, ok := svc.indices[title]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchTable, title)
	}

	return &svc.tables[index], nil
}

func (svc *tableSvc) Start() {
	svc.startOnce.Do(func() {
		svc.log.Info().Msg("starting standard name tables service")
		go svc.run()
	})
}

func (svc *tableSvc) Shutdown() {
	svc.stopOnce.Do(func() {
		svc.log.Info().Msg("shutting down standard name tables service")
		close(svc.done)
	})
}

func (svc *tableSvc) run() {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-svc.done:
			svc.log.Info().Msg("standard name tables service exiting")
			return
		case <-timer.C:
			svc.log.Info().Msg("refreshing standard name tables")
			count, err := svc.refresh()

			if err != nil {
				svc.log.Error().Err(err).Msg("failed to refresh standard name tables")
				// Retry every 10 seconds on error
				timer.Reset(10 * time.Second)
			} else {
				svc.log.Info().Msgf("refreshed %d standard name tables", count)
				timer.Reset(1 * time.Hour)
			}
		}
	}
}

func (svc *tableSvc) refresh() (count int, err error) {
	ctx, span := tracer.Start(svc.ctx, "refresh-standard-name-tables")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	loaded := []domain.StandardNameTable{}
	errs := []error{}

	for _, tc := range svc.cfg.Tables {
		table, loadErr := svc.load(ctx, tc)
		if loadErr != nil {
			errs = append(errs, fmt.Errorf("failed to load table %q: %w", tc.Title, loadErr))
			continue
		}

		log.Debug().Msgf("loaded %d standard names into %s", len(table.StandardNames), table.Title)
		loaded = append(loaded, *table)
	}

	if len(loaded) > 0 || len(errs) == 0 {
		svc.storeTableList(loaded)
	}

	count = len(loaded)
	err = errors.Join(errs...)

	return
}

func (svc *tableSvc) load(ctx context.Context, tc TableConfig) (*domain.StandardNameTable, error) {
	opts := []tables.Option{}
	if tc.Title != "" {
		opts = append(opts, tables.WithTitle(tc.Title))
	}

	if tc.Source != "" {
		return tables.Parse(ctx, tc.Source, tc.Format, opts...)
	}

	dist, err := domain.NewDistribution(domain.Distribution{
		Resource:    domain.Resource{Title: tc.Title},
		DownloadURL: tc.DownloadURL,
		MediaType:   tc.MediaType,
	})
	if err != nil {
		return nil, err
	}

	return tables.ParseDistribution(ctx, *dist, tc.Format, opts...)
}

func (svc *tableSvc) storeTableList(list []domain.StandardNameTable) {
	svc.tablesMutex.Lock()
	defer svc.tablesMutex.Unlock()

	svc.tables = list
	svc.indices = map[string]int{}

	for index := range list {
		svc.indices[list[index].Title] = index
	}
}

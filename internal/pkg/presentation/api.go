package presentation

import (
	"compress/flate"
	"context"
	"net/http"

	services "github.com/diwise/api-standardnames/internal/pkg/application/services/standardnametables"
	"github.com/diwise/api-standardnames/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

type standardnamesAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func NewAPI(r chi.Router, ctx context.Context, svc services.TableService) API {
	return newStandardNamesAPI(r, ctx, svc)
}

func newStandardNamesAPI(r chi.Router, ctx context.Context, svc services.TableService) *standardnamesAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"application/json", "application/ld+json", "application/rdf+xml",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-standardnames", otelchi.WithChiRoutes(r)))

	a := &standardnamesAPI{
		router: r,
		log:    log,
	}

	a.addStandardNameHandlers(r, log, svc)
	a.addProbeHandlers(r)

	a.router.Get("/api/datasets/dcat", handlers.NewRetrieveDatasetsHandler(log, svc))

	return a
}

func (a *standardnamesAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-standardnames on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *standardnamesAPI) addStandardNameHandlers(r chi.Router, log zerolog.Logger, svc services.TableService) {
	r.Get(
		"/api/standardnametables",
		handlers.NewRetrieveStandardNameTablesHandler(log, svc),
	)
	r.Get(
		"/api/standardnametables/{title}",
		handlers.NewRetrieveStandardNameTableHandler(log, svc),
	)
	r.Get(
		"/api/standardnametables/{title}/standardnames/{name}",
		handlers.NewRetrieveStandardNameHandler(log, svc),
	)
	r.Get(
		"/api/units",
		handlers.NewRetrieveUnitHandler(log),
	)
}

func (a *standardnamesAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

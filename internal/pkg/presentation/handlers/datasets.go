package handlers

import (
	"net/http"

	"github.com/diwise/api-standardnames/internal/pkg/application/dcat"
	services "github.com/diwise/api-standardnames/internal/pkg/application/services/standardnametables"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

// NewRetrieveDatasetsHandler serves the DCAT catalog of the currently loaded tables.
func NewRetrieveDatasetsHandler(logger zerolog.Logger, svc services.TableService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-datasets")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		data, err := dcat.Marshal(svc.Catalog(), svc.GetAll())
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal dcat catalog")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", contentTypeRDFXML)
		w.Write(data)
	})
}

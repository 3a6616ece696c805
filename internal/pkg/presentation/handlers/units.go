package handlers

import (
	"fmt"
	"net/http"

	"github.com/diwise/api-standardnames/internal/pkg/application/units"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
)

type unitResponse struct {
	Unit      string `json:"unit"`
	Canonical string `json:"canonical"`
	Known     bool   `json:"known"`
}

func NewRetrieveUnitHandler(logger zerolog.Logger) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-unit")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		unit := r.URL.Query().Get("unit")
		if unit == "" {
			err = fmt.Errorf("no unit supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		writeData(w, log, unitResponse{
			Unit:      unit,
			Canonical: units.Canonicalize(unit),
			Known:     units.Known(unit),
		})
	})
}

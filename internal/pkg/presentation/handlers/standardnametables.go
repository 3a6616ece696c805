package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diwise/api-standardnames/internal/pkg/application/dcat"
	"github.com/diwise/api-standardnames/internal/pkg/application/jsonld"
	services "github.com/diwise/api-standardnames/internal/pkg/application/services/standardnametables"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type tableSummary struct {
	Title    string     `json:"title"`
	Version  string     `json:"version,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
	Count    int        `json:"count"`
	Href     string     `json:"href"`
}

func NewRetrieveStandardNameTablesHandler(logger zerolog.Logger, svc services.TableService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-standard-name-tables")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, _, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		summaries := []tableSummary{}
		for _, t := range svc.GetAll() {
			summaries = append(summaries, tableSummary{
				Title:    t.Title,
				Version:  t.Version,
				Modified: t.Modified,
				Count:    len(t.StandardNames),
				Href:     dcat.TablePath(t.Title),
			})
		}

		writeData(w, log, summaries)
	})
}

func NewRetrieveStandardNameTableHandler(logger zerolog.Logger, svc services.TableService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-standard-name-table")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		title, _ := url.PathUnescape(chi.URLParam(r, "title"))
		if title == "" {
			err = fmt.Errorf("no table title supplied in request")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		table, err := svc.GetByTitle(title)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if !wantsJSONLD(r) {
			writeData(w, log, table.ToDict())
			return
		}

		opts := []jsonld.Option{}
		if limit := r.URL.Query().Get("maxStandardNames"); limit != "" {
			n, convErr := strconv.Atoi(limit)
			if convErr != nil {
				err = fmt.Errorf("invalid maxStandardNames %q: %w", limit, convErr)
				log.Error().Err(err).Msg("bad request")
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			opts = append(opts, jsonld.WithMaxStandardNames(n))
		}

		body, err := jsonld.Dump(ctx, table, opts...)
		if err != nil {
			log.Error().Err(err).Msgf("failed to serialize table %s as json-ld", title)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", contentTypeJSONLD)
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write([]byte(body))
	})
}

func NewRetrieveStandardNameHandler(logger zerolog.Logger, svc services.TableService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-standard-name")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		title, _ := url.PathUnescape(chi.URLParam(r, "title"))
		name, _ := url.PathUnescape(chi.URLParam(r, "name"))

		table, err := svc.GetByTitle(title)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		sn, ok := table.Lookup(name)
		if !ok {
			err = errors.New("no such standard name")
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if !wantsJSONLD(r) {
			writeData(w, log, sn)
			return
		}

		body, err := jsonld.Dump(ctx, sn)
		if err != nil {
			log.Error().Err(err).Msgf("failed to serialize standard name %s as json-ld", name)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", contentTypeJSONLD)
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write([]byte(body))
	})
}

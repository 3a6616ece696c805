package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-standardnames/api")

const (
	contentTypeJSON   string = "application/json"
	contentTypeJSONLD string = "application/ld+json"
	contentTypeRDFXML string = "application/rdf+xml"
)

func wantsJSONLD(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), contentTypeJSONLD)
}

func writeData(w http.ResponseWriter, log zerolog.Logger, data any) {
	responseBody, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response to json")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", contentTypeJSON)
	w.Header().Add("Cache-Control", "max-age=600")
	w.Write(responseBody)
}

package jsonld

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/piprate/json-gold/ld"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-standardnames/jsonld")

//go:embed assets/ssno_context.jsonld
var ssnoContext []byte

// GraphEngine parses a JSON-LD document into a graph and serializes it again.
type GraphEngine interface {
	Serialize(ctx context.Context, doc map[string]any, contextURL string) (string, error)
	NQuads(ctx context.Context, doc map[string]any) (string, error)
}

type goldEngine struct {
	proc   *ld.JsonLdProcessor
	loader ld.DocumentLoader
}

var (
	defaultEngine     GraphEngine
	defaultEngineOnce sync.Once
)

// DefaultGraphEngine returns a shared json-gold engine.
func DefaultGraphEngine() GraphEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewGraphEngine(nil)
	})
	return defaultEngine
}

// NewGraphEngine returns a json-gold backed engine. The SSNO context is
// served from an embedded copy, other contexts are fetched with client.
func NewGraphEngine(client *http.Client) GraphEngine {
	if client == nil {
		client = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	loader := ld.NewCachingDocumentLoader(ld.NewDefaultDocumentLoader(client))

	var ssno map[string]any
	if err := json.Unmarshal(ssnoContext, &ssno); err != nil {
		panic(fmt.Sprintf("embedded ssno context is not valid json: %s", err.Error()))
	}
	loader.AddDocument(SSNOContextURL, ssno)

	return &goldEngine{
		proc:   ld.NewJsonLdProcessor(),
		loader: loader,
	}
}

func (e *goldEngine) options() *ld.JsonLdOptions {
	opts := ld.NewJsonLdOptions("")
	opts.DocumentLoader = e.loader
	return opts
}

// Serialize compacts the document under contextURL and writes it as indented
// JSON with the context given as {"@import": contextURL}.
func (e *goldEngine) Serialize(ctx context.Context, doc map[string]any, contextURL string) (result string, err error) {
	_, span := tracer.Start(ctx, "serialize-jsonld")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	input, err := plain(doc)
	if err != nil {
		return "", err
	}

	compacted, err := e.proc.Compact(input, map[string]any{"@context": contextURL}, e.options())
	if err != nil {
		return "", fmt.Errorf("failed to compact json-ld document: %w", err)
	}

	compacted["@context"] = map[string]any{"@import": contextURL}

	b, err := json.MarshalIndent(compacted, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal json-ld document: %w", err)
	}

	return string(b), nil
}

func (e *goldEngine) NQuads(ctx context.Context, doc map[string]any) (result string, err error) {
	_, span := tracer.Start(ctx, "jsonld-to-nquads")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	input, err := plain(doc)
	if err != nil {
		return "", err
	}

	opts := e.options()
	opts.Format = "application/n-quads"

	rdf, err := e.proc.ToRDF(input, opts)
	if err != nil {
		return "", fmt.Errorf("failed to convert json-ld document to rdf: %w", err)
	}

	nquads, ok := rdf.(string)
	if !ok {
		return "", fmt.Errorf("unexpected rdf serialization %T", rdf)
	}

	return nquads, nil
}

// plain turns the document into generic json values and replaces an
// {"@import": url} context with the url itself.
func plain(doc map[string]any) (map[string]any, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document is not valid json: %w", err)
	}

	var input map[string]any
	if err = json.Unmarshal(b, &input); err != nil {
		return nil, err
	}

	if c, ok := input["@context"].(map[string]any); ok && len(c) == 1 {
		if url, ok := c["@import"].(string); ok {
			input["@context"] = url
		}
	}

	return input, nil
}

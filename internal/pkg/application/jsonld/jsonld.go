// Package jsonld projects standard name records into JSON-LD documents
// using the SSNO ontology context.
package jsonld

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/api-standardnames/internal/pkg/application/units"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/google/uuid"
)

const SSNOContextURL string = "https://raw.githubusercontent.com/matthiasprobst/ssno/main/ssno_context.jsonld"

const (
	TypeStandardName      string = "StandardName"
	TypeStandardNameTable string = "StandardNameTable"
	TypeDataset           string = "Dataset"
	TypeDistribution      string = "Distribution"
)

var ErrUnsupportedRecord = errors.New("record type cannot be projected")

// unitKeys hold unit spellings that are replaced by canonical unit URIs.
var unitKeys = []string{"canonical units"}

// Document builds the JSON-LD document of a record:
//
//	{"@context": {"@import": <context url>}, "@graph": [<node>]}
//
// Supported records are StandardName, StandardNameTable, Dataset,
// Distribution and Agent, by value or by pointer.
func Document(record any, opts ...Option) (map[string]any, error) {
	o := newOptions(opts)

	n, err := rootNode(record, o)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"@context": map[string]any{"@import": o.contextURL},
		"@graph":   []any{n},
	}, nil
}

// Dump serializes the JSON-LD document of a record through the graph engine.
func Dump(ctx context.Context, record any, opts ...Option) (string, error) {
	o := newOptions(opts)

	doc, err := Document(record, opts...)
	if err != nil {
		return "", err
	}

	engine := o.engine
	if engine == nil {
		engine = DefaultGraphEngine()
	}

	return engine.Serialize(ctx, doc, o.contextURL)
}

// NQuads returns the RDF statements of a record in N-Quads syntax.
func NQuads(ctx context.Context, record any, opts ...Option) (string, error) {
	o := newOptions(opts)

	doc, err := Document(record, opts...)
	if err != nil {
		return "", err
	}

	engine := o.engine
	if engine == nil {
		engine = DefaultGraphEngine()
	}

	return engine.NQuads(ctx, doc)
}

func rootNode(record any, o *options) (map[string]any, error) {
	switch r := record.(type) {
	case domain.StandardName:
		return standardNameNode(r, o.id), nil
	case *domain.StandardName:
		return standardNameNode(*r, o.id), nil
	case domain.StandardNameTable:
		return tableNode(r, rootID(o), o), nil
	case *domain.StandardNameTable:
		return tableNode(*r, rootID(o), o), nil
	case domain.Dataset:
		return datasetNode(r, rootID(o)), nil
	case *domain.Dataset:
		return datasetNode(*r, rootID(o)), nil
	case domain.Distribution:
		return distributionNode(r, rootID(o)), nil
	case *domain.Distribution:
		return distributionNode(*r, rootID(o)), nil
	case domain.Agent:
		return agentNode(r, rootID(o)), nil
	case *domain.Agent:
		return agentNode(*r, rootID(o)), nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedRecord, record)
}

func rootID(o *options) string {
	if o.id != "" {
		return o.id
	}
	return blankNode()
}

func blankNode() string {
	return "_:" + uuid.NewString()
}

func standardNameNode(sn domain.StandardName, id string) map[string]any {
	if id == "" {
		id = "_:" + sn.StandardName
	}

	d := sn.ToDict()
	delete(d, "standard_name_table")

	n := newNode(id, TypeStandardName, d)
	for _, key := range unitKeys {
		if unit, ok := n[key].(string); ok {
			n[key] = units.Canonicalize(unit)
		}
	}

	return n
}

func tableNode(t domain.StandardNameTable, id string, o *options) map[string]any {
	n := datasetNode(t.Dataset, id)
	n["@type"] = TypeStandardNameTable

	names := t.StandardNames
	if o.maxStandardNames >= 0 && o.maxStandardNames < len(names) {
		names = names[:o.maxStandardNames]
	}

	if len(names) > 0 {
		nodes := make([]any, 0, len(names))
		for _, sn := range names {
			nodes = append(nodes, standardNameNode(sn, ""))
		}
		n["standard names"] = nodes
	}

	if t.Guideline != nil {
		n["guideline"] = distributionNode(*t.Guideline, blankNode())
	}

	return n
}

func datasetNode(d domain.Dataset, id string) map[string]any {
	dict := map[string]any{}
	putText(dict, "title", d.Title)
	putText(dict, "description", d.Description)
	putText(dict, "version", d.Version)
	putText(dict, "identifier", d.Identifier)

	n := newNode(id, TypeDataset, dict)

	if d.Creator != nil {
		n["creator"] = agentNode(*d.Creator, blankNode())
	}

	if d.Contact != nil {
		n["contact"] = agentNode(*d.Contact, blankNode())
	}

	if d.Modified != nil {
		n["modified"] = d.Modified.UTC().Format(time.RFC3339)
	}

	if len(d.Distribution) > 0 {
		nodes := make([]any, 0, len(d.Distribution))
		for _, dist := range d.Distribution {
			nodes = append(nodes, distributionNode(dist, blankNode()))
		}
		n["distribution"] = nodes
	}

	return n
}

func distributionNode(d domain.Distribution, id string) map[string]any {
	dict := d.ToDict()
	delete(dict, "creator")

	n := newNode(id, TypeDistribution, dict)

	if d.Creator != nil {
		n["creator"] = agentNode(*d.Creator, blankNode())
	}

	return n
}

func agentNode(a domain.Agent, id string) map[string]any {
	kind := a.Kind
	if kind == "" {
		kind = domain.AgentKindAgent
	}
	dict := a.ToDict()
	delete(dict, "type")
	return newNode(id, string(kind), dict)
}

// newNode renames the dict keys to the context terms, i.e. canonical_units
// becomes "canonical units".
func newNode(id, typ string, dict map[string]any) map[string]any {
	n := make(map[string]any, len(dict)+2)
	n["@id"] = id
	n["@type"] = typ

	for k, v := range dict {
		n[strings.ReplaceAll(k, "_", " ")] = v
	}

	return n
}

func putText(d map[string]any, key, value string) {
	if value != "" {
		d[key] = value
	}
}

package domain

import (
	"context"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// StandardName is an ssno:StandardName, one entry of a standard name table.
type StandardName struct {
	StandardName   string   `json:"standard_name"`
	CanonicalUnits string   `json:"canonical_units"`
	Description    string   `json:"description"`                   // dcterms:description
	DBpediaMatch   string   `json:"dbpedia_match,omitempty"`       // ssno:dbpediaMatch
	Aliases        []string `json:"aliases,omitempty"`             // superseded names pointing here
	Table          string   `json:"standard_name_table,omitempty"` // title of the owning table
}

type StandardNameOption func(*StandardName)

func WithDBpediaMatch(url string) StandardNameOption {
	return func(sn *StandardName) {
		sn.DBpediaMatch = url
	}
}

func WithAliases(aliases ...string) StandardNameOption {
	return func(sn *StandardName) {
		sn.Aliases = append(sn.Aliases, aliases...)
	}
}

// InTable records the title of the owning table. The relation is informational only.
func InTable(title string) StandardNameOption {
	return func(sn *StandardName) {
		sn.Table = title
	}
}

// NewStandardName builds a validated standard name. A nil canonicalUnits becomes an
// empty string. A nil description also becomes an empty string, with a warning logged
// through the logger carried by ctx.
func NewStandardName(ctx context.Context, standardName string, canonicalUnits, description *string, opts ...StandardNameOption) (*StandardName, error) {
	sn := StandardName{StandardName: standardName}

	if canonicalUnits != nil {
		sn.CanonicalUnits = *canonicalUnits
	}

	if description != nil {
		sn.Description = *description
	} else {
		log := logging.GetFromContext(ctx)
		log.Warn().Str("standard_name", standardName).Msg("the description should not be empty, using an empty string for now")
	}

	for _, opt := range opts {
		opt(&sn)
	}

	if err := sn.Validate(); err != nil {
		return nil, err
	}

	return &sn, nil
}

func (sn *StandardName) Validate() error {
	v := newValidation("StandardName")
	v.check("standard_name", sn.StandardName, requireText(sn.StandardName))
	v.check("dbpedia_match", sn.DBpediaMatch, validateOptionalHTTPURL(sn.DBpediaMatch))
	return v.err()
}

func (sn StandardName) String() string {
	return sn.StandardName
}

func (sn StandardName) ToDict() map[string]any {
	d := map[string]any{
		"standard_name":   sn.StandardName,
		"canonical_units": sn.CanonicalUnits,
		"description":     sn.Description,
	}
	putText(d, "dbpedia_match", sn.DBpediaMatch)
	if len(sn.Aliases) > 0 {
		d["aliases"] = append([]string{}, sn.Aliases...)
	}
	putText(d, "standard_name_table", sn.Table)
	return d
}

// StandardNameFromDict builds a standard name from its dict form. The keys
// canonical_units and description are required but may hold nil.
func StandardNameFromDict(ctx context.Context, d map[string]any) (*StandardName, error) {
	dr := &dictReader{record: "StandardName", d: d}

	name := dr.text("standard_name")
	if !dr.has("standard_name") {
		dr.fail("standard_name", nil, ErrRequired)
	}

	units, ok := dr.optionalText("canonical_units")
	if !ok {
		dr.fail("canonical_units", nil, ErrRequired)
	}

	description, ok := dr.optionalText("description")
	if !ok {
		dr.fail("description", nil, ErrRequired)
	}

	opts := []StandardNameOption{
		WithDBpediaMatch(dr.text("dbpedia_match")),
		InTable(dr.text("standard_name_table")),
	}
	if aliases := dr.texts("aliases"); len(aliases) > 0 {
		opts = append(opts, WithAliases(aliases...))
	}

	if err := dr.err(); err != nil {
		return nil, err
	}

	return NewStandardName(ctx, name, units, description, opts...)
}

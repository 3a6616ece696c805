package readers

import (
	"context"
	"fmt"
	"net/url"

	contextbroker "github.com/diwise/context-broker/pkg/ngsild/client"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

const (
	StandardNameEntityType string = "StandardName"
	DefaultBrokerTenant    string = "default"
)

type brokerReader struct {
	brokerURL string
	tenant    string
}

// NewBrokerReader returns a reader that fetches StandardName entities from an
// NGSI-LD context broker. The tenant may be given as a query parameter of the
// source url, e.g. http://broker:8080?tenant=cf.
func NewBrokerReader(source string) (TableReader, error) {
	u, err := url.Parse(source)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid context broker url %q", source)
	}

	tenant := u.Query().Get("tenant")
	if tenant == "" {
		tenant = DefaultBrokerTenant
	}

	u.RawQuery = ""

	return &brokerReader{brokerURL: u.String(), tenant: tenant}, nil
}

func (r *brokerReader) Parse(ctx context.Context) (*Table, error) {
	log := logging.GetFromContext(ctx)

	table := &Table{}

	count, err := contextbroker.QueryEntities(ctx, r.brokerURL, r.tenant, StandardNameEntityType, nil, func(sn standardNameDTO) {
		table.Entries = append(table.Entries, Entry{
			StandardName:   sn.Name(),
			CanonicalUnits: sn.CanonicalUnits,
			Description:    sn.Description,
			Aliases:        sn.Aliases,
		})

		if sn.DateModified != nil && sn.DateModified.Value > table.LastModified {
			table.LastModified = sn.DateModified.Value
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve standard names from context broker %s: %w", r.brokerURL, err)
	}

	if count == 0 {
		return nil, &MissingFieldError{Field: "entry", Source: r.brokerURL}
	}

	log.Debug().Msgf("read %d standard names from %s", count, r.brokerURL)

	return table, nil
}

type dateTimeDTO struct {
	Type  string `json:"@type"`
	Value string `json:"@value"`
}

type standardNameDTO struct {
	ID             string       `json:"id"`
	StandardName   string       `json:"standardName"`
	CanonicalUnits *string      `json:"canonicalUnits"`
	Description    *string      `json:"description"`
	Aliases        []string     `json:"alias,omitempty"`
	DateModified   *dateTimeDTO `json:"dateModified,omitempty"`
}

// Name falls back to the last segment of the entity id when the entity has
// no standardName attribute, i.e. urn:ngsi-ld:StandardName:air_temperature.
func (sn standardNameDTO) Name() string {
	if sn.StandardName != "" {
		return sn.StandardName
	}

	for i := len(sn.ID) - 1; i >= 0; i-- {
		if sn.ID[i] == ':' {
			return sn.ID[i+1:]
		}
	}

	return sn.ID
}

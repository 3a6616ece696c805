package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diwise/api-standardnames/internal/pkg/application/dcat"
	services "github.com/diwise/api-standardnames/internal/pkg/application/services/standardnametables"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestInvokeStandardNameTablesHandler(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables", NewRetrieveStandardNameTablesHandler(zerolog.Logger{}, svc))
	response, body := newGetRequest(is, ts, "application/json", "/tables", nil)

	is.Equal(response.StatusCode, http.StatusOK) // response status should be 200 OK
	is.Equal(response.Header.Get("Content-Type"), "application/json")
	is.Equal(len(svc.GetAllCalls()), 1) // GetAll should have been called once
	is.Equal(body, `{"data":[{"title":"CF Standard Name Table","version":"79","count":2,"href":"/api/standardnametables/CF%20Standard%20Name%20Table"}]}`)
}

func TestInvokeStandardNameTableHandler(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables/{title}", NewRetrieveStandardNameTableHandler(zerolog.Logger{}, svc))
	response, body := newGetRequest(is, ts, "application/json", "/tables/CF%20Standard%20Name%20Table", nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(svc.GetByTitleCalls()[0].Title, "CF Standard Name Table")

	result := struct {
		Data map[string]any `json:"data"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(result.Data["title"], "CF Standard Name Table")
	is.Equal(len(result.Data["standard_names"].([]any)), 2)
}

func TestInvokeStandardNameTableHandlerAsJSONLD(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables/{title}", NewRetrieveStandardNameTableHandler(zerolog.Logger{}, svc))
	response, body := newGetRequest(is, ts, "application/ld+json", "/tables/CF%20Standard%20Name%20Table?maxStandardNames=1", nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(response.Header.Get("Content-Type"), "application/ld+json")

	doc := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(body), &doc))
	is.Equal(doc["@type"], "StandardNameTable")
	is.Equal(doc["title"], "CF Standard Name Table")

	sn := doc["standard names"].(map[string]any) // a single embedded standard name is compacted to an object
	is.Equal(sn["standard name"], "air_temperature")
}

func TestThatInvalidLimitIsABadRequest(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables/{title}", NewRetrieveStandardNameTableHandler(zerolog.Logger{}, svc))
	response, _ := newGetRequest(is, ts, "application/ld+json", "/tables/CF%20Standard%20Name%20Table?maxStandardNames=many", nil)

	is.Equal(response.StatusCode, http.StatusBadRequest)
}

func TestThatUnknownTableIsNotFound(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables/{title}", NewRetrieveStandardNameTableHandler(zerolog.Logger{}, svc))
	response, _ := newGetRequest(is, ts, "application/json", "/tables/nope", nil)

	is.Equal(response.StatusCode, http.StatusNotFound)
}

func TestInvokeStandardNameHandler(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/tables/{title}/standardnames/{name}", NewRetrieveStandardNameHandler(zerolog.Logger{}, svc))

	response, body := newGetRequest(is, ts, "application/json", "/tables/CF%20Standard%20Name%20Table/standardnames/northward_wind", nil)
	is.Equal(response.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"standard_name":"northward_wind"`))

	response, body = newGetRequest(is, ts, "application/ld+json", "/tables/CF%20Standard%20Name%20Table/standardnames/air_temperature", nil)
	is.Equal(response.StatusCode, http.StatusOK)
	is.True(strings.Contains(body, `"canonical units": "http://qudt.org/vocab/unit/K"`))

	response, _ = newGetRequest(is, ts, "application/json", "/tables/CF%20Standard%20Name%20Table/standardnames/sea_ice_area", nil)
	is.Equal(response.StatusCode, http.StatusNotFound)
}

func TestInvokeUnitHandler(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	r.Get("/units", NewRetrieveUnitHandler(zerolog.Logger{}))

	response, body := newGetRequest(is, ts, "application/json", "/units?unit=m%20s-1", nil)
	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(body, `{"data":{"unit":"m s-1","canonical":"http://qudt.org/vocab/unit/M-PER-SEC","known":true}}`)

	response, _ = newGetRequest(is, ts, "application/json", "/units", nil)
	is.Equal(response.StatusCode, http.StatusBadRequest)
}

func TestInvokeDatasetsHandler(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()
	svc := defaultTableServiceMock()

	r.Get("/dcat", NewRetrieveDatasetsHandler(zerolog.Logger{}, svc))
	response, body := newGetRequest(is, ts, "application/rdf+xml", "/dcat", nil)

	is.Equal(response.StatusCode, http.StatusOK)
	is.Equal(response.Header.Get("Content-Type"), "application/rdf+xml")
	is.True(strings.Contains(body, `<dcat:dataset rdf:resource="https://api.example.org/api/standardnametables/CF%20Standard%20Name%20Table"></dcat:dataset>`))
	is.Equal(len(svc.CatalogCalls()), 1)
}

func defaultTableServiceMock() *services.TableServiceMock {
	table := domain.StandardNameTable{}
	table.Title = "CF Standard Name Table"
	table.Version = "79"
	table.Contact = &domain.Agent{Kind: domain.AgentKindPerson, MBox: "support@example.org"}
	table.StandardNames = []domain.StandardName{
		{StandardName: "air_temperature", CanonicalUnits: "K", Description: "Air temperature.", Table: table.Title},
		{StandardName: "northward_wind", CanonicalUnits: "m s-1", Description: "Northward wind.", Table: table.Title},
	}

	return &services.TableServiceMock{
		CatalogFunc: func() dcat.Catalog {
			return dcat.Catalog{BaseURL: "https://api.example.org", Title: "Standard name tables"}
		},
		GetAllFunc: func() []domain.StandardNameTable {
			return []domain.StandardNameTable{table}
		},
		GetByTitleFunc: func(title string) (*domain.StandardNameTable, error) {
			if title != table.Title {
				return nil, fmt.Errorf("%w: %s", services.ErrNoSuchTable, title)
			}
			return &table, nil
		},
	}
}

func newGetRequest(is *is.I, ts *httptest.Server, accept, path string, body io.Reader) (*http.Response, string) {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, body)
	is.NoErr(err)

	req.Header.Add("Accept", accept)

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *chi.Mux, *httptest.Server) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	return is, r, ts
}

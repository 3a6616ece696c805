package jsonld

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/matryer/is"
)

func TestThatStandardNameIsDumped(t *testing.T) {
	is := is.New(t)
	sn := airTemperature(t)

	s, err := Dump(context.Background(), sn)
	is.NoErr(err)

	doc := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(s), &doc))

	is.Equal(doc["@context"], map[string]any{"@import": SSNOContextURL})
	is.Equal(doc["@id"], "_:air_temperature")
	is.Equal(doc["@type"], "StandardName")
	is.Equal(doc["standard name"], "air_temperature")
	is.Equal(doc["canonical units"], "http://qudt.org/vocab/unit/K") // units should be canonicalized
	is.Equal(doc["description"], "Bulk air temperature.")
	is.True(strings.Contains(s, "\n    \"@type\"")) // output should be indented with four spaces
}

func TestThatDocumentHasExpectedSkeleton(t *testing.T) {
	is := is.New(t)
	sn := airTemperature(t)

	doc, err := Document(sn, WithID("_:at"))
	is.NoErr(err)

	is.Equal(doc["@context"], map[string]any{"@import": SSNOContextURL})

	graph := doc["@graph"].([]any)
	is.Equal(len(graph), 1)

	node := graph[0].(map[string]any)
	is.Equal(node["@id"], "_:at")
	is.Equal(node["@type"], TypeStandardName)
	is.Equal(node["canonical units"], "http://qudt.org/vocab/unit/K")

	_, hasUnderscoreKey := node["canonical_units"]
	is.True(!hasUnderscoreKey) // keys should use the context terms
}

func TestThatUnknownUnitsArePassedThrough(t *testing.T) {
	is := is.New(t)
	sn, err := domain.NewStandardName(context.Background(), "x", domain.Text("furlong fortnight-1"), domain.Text("x"))
	is.NoErr(err)

	doc, err := Document(sn)
	is.NoErr(err)

	node := doc["@graph"].([]any)[0].(map[string]any)
	is.Equal(node["canonical units"], "furlong fortnight-1")
}

func TestThatStandardNameTableIsProjected(t *testing.T) {
	is := is.New(t)
	table := testTable(t, 3)

	doc, err := Document(table)
	is.NoErr(err)

	node := doc["@graph"].([]any)[0].(map[string]any)
	is.Equal(node["@type"], TypeStandardNameTable)
	is.True(strings.HasPrefix(node["@id"].(string), "_:"))
	is.Equal(node["title"], "CF Standard Name Table")
	is.Equal(node["modified"], "2022-03-19T15:25:54Z")
	is.Equal(len(node["standard names"].([]any)), 3) // all standard names should be embedded by default

	contact := node["contact"].(map[string]any)
	is.True(strings.HasPrefix(contact["@id"].(string), "_:"))
	is.Equal(contact["@type"], "Person")
	is.Equal(contact["mbox"], "support@example.org")

	dist := node["distribution"].([]any)[0].(map[string]any)
	is.Equal(dist["@type"], TypeDistribution)
	is.Equal(dist["mediaType"], domain.IANAMediaTypesPrefix+"application/xml")

	sn := node["standard names"].([]any)[1].(map[string]any)
	is.Equal(sn["@id"], "_:name_1")
	_, hasTable := sn["standard name table"]
	is.True(!hasTable)
}

func TestThatEmbeddedStandardNamesCanBeLimited(t *testing.T) {
	is := is.New(t)
	table := testTable(t, 5)

	s, err := Dump(context.Background(), table, WithMaxStandardNames(2))
	is.NoErr(err)

	doc := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(s), &doc))

	is.Equal(doc["@type"], "StandardNameTable")
	is.Equal(len(doc["standard names"].([]any)), 2)
}

func TestThatTriplesAreWellFormed(t *testing.T) {
	is := is.New(t)
	table := testTable(t, 2)

	nquads, err := NQuads(context.Background(), table)
	is.NoErr(err)

	lines := strings.Split(strings.TrimSpace(nquads), "\n")
	is.True(len(lines) > 10)

	for _, line := range lines {
		parts := strings.SplitN(line, " ", 3)
		is.Equal(len(parts), 3)
		is.True(strings.HasPrefix(parts[0], "<") || strings.HasPrefix(parts[0], "_:")) // subject should be an IRI or a blank node
		is.True(strings.HasPrefix(parts[1], "<"))                                    // predicate should be an IRI
	}

	is.True(strings.Contains(nquads, "<https://matthiasprobst.github.io/ssno#canonicalUnits> \"http://qudt.org/vocab/unit/K\""))
	is.True(strings.Contains(nquads, "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <https://matthiasprobst.github.io/ssno#StandardNameTable>"))
}

func TestThatContactAndStandardNamesAreSeparateNodes(t *testing.T) {
	is := is.New(t)
	table := testTable(t, 1)
	table.StandardNames[0].StandardName = "contact"

	nquads, err := NQuads(context.Background(), table)
	is.NoErr(err)

	typesBySubject := map[string][]string{}
	for _, line := range strings.Split(strings.TrimSpace(nquads), "\n") {
		parts := strings.SplitN(line, " ", 4)
		if len(parts) == 4 && parts[1] == "<http://www.w3.org/1999/02/22-rdf-syntax-ns#type>" {
			typesBySubject[parts[0]] = append(typesBySubject[parts[0]], parts[2])
		}
	}

	persons, standardNames := 0, 0
	for _, types := range typesBySubject {
		is.Equal(len(types), 1) // every node should have exactly one type
		switch types[0] {
		case "<http://www.w3.org/ns/prov#Person>":
			persons++
		case "<https://matthiasprobst.github.io/ssno#StandardName>":
			standardNames++
		}
	}

	is.Equal(persons, 1)
	is.Equal(standardNames, 1)
}

func TestThatAgentsAreProjected(t *testing.T) {
	is := is.New(t)
	person, err := domain.NewPerson(domain.Agent{FirstName: "Ada", LastName: "Lovelace", MBox: "ada@example.org"})
	is.NoErr(err)

	s, err := Dump(context.Background(), person, WithID("_:ada"))
	is.NoErr(err)

	doc := map[string]any{}
	is.NoErr(json.Unmarshal([]byte(s), &doc))
	is.Equal(doc["@type"], "Person")
	is.Equal(doc["first name"], "Ada")
	is.Equal(doc["mbox"], "ada@example.org")
}

func TestThatUnsupportedRecordsAreRejected(t *testing.T) {
	is := is.New(t)

	_, err := Document("air_temperature")
	is.True(errors.Is(err, ErrUnsupportedRecord))
}

type recordingEngine struct {
	contextURL string
}

func (e *recordingEngine) Serialize(_ context.Context, doc map[string]any, contextURL string) (string, error) {
	e.contextURL = contextURL
	return "{}", nil
}

func (e *recordingEngine) NQuads(context.Context, map[string]any) (string, error) {
	return "", nil
}

func TestThatGraphEngineCanBeReplaced(t *testing.T) {
	is := is.New(t)
	engine := &recordingEngine{}

	s, err := Dump(context.Background(), airTemperature(t), WithGraphEngine(engine), WithContext("https://example.org/context.jsonld"))
	is.NoErr(err)
	is.Equal(s, "{}")
	is.Equal(engine.contextURL, "https://example.org/context.jsonld")
}

func airTemperature(t *testing.T) *domain.StandardName {
	sn, err := domain.NewStandardName(context.Background(), "air_temperature", domain.Text("K"), domain.Text("Bulk air temperature."))
	if err != nil {
		t.Fatalf("failed to create standard name: %s", err.Error())
	}
	return sn
}

func testTable(t *testing.T, count int) *domain.StandardNameTable {
	modified := time.Date(2022, 3, 19, 15, 25, 54, 0, time.UTC)

	table := domain.StandardNameTable{}
	table.Title = "CF Standard Name Table"
	table.Version = "79"
	table.Modified = &modified
	table.Contact = &domain.Agent{Kind: domain.AgentKindPerson, MBox: "support@example.org"}
	table.Distribution = []domain.Distribution{{
		Resource:    domain.Resource{Title: "XML Version of cf standard name table"},
		DownloadURL: "https://cfconventions.org/Data/cf-standard-names/79/src/cf-standard-name-table.xml",
		MediaType:   "application/xml",
	}}

	for i := 0; i < count; i++ {
		table.StandardNames = append(table.StandardNames, domain.StandardName{
			StandardName:   fmt.Sprintf("name_%d", i),
			CanonicalUnits: "K",
			Description:    "A temperature.",
			Table:          table.Title,
		})
	}

	result, err := domain.NewStandardNameTable(table)
	if err != nil {
		t.Fatalf("failed to create table: %s", err.Error())
	}
	return result
}

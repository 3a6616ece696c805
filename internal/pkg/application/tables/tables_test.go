package tables

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diwise/api-standardnames/internal/pkg/application/readers"
	"github.com/diwise/api-standardnames/internal/pkg/domain"
	"github.com/diwise/api-standardnames/internal/pkg/infrastructure/cache"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestThatXMLTableIsParsed(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "cf-standard-name-table.xml", cfTable)

	table, err := Parse(ctx, source, "")
	is.NoErr(err)

	is.Equal(table.Title, "cf-standard-name-table") // title should fall back to the file name
	is.Equal(table.Version, "79")
	is.Equal(table.Modified.Year(), 2022)
	is.Equal(table.Contact.Kind, domain.AgentKindPerson)
	is.Equal(table.Contact.MBox, "support@ceda.ac.uk")
	is.Equal(len(table.StandardNames), 2)

	sn, ok := table.Lookup("northward_wind")
	is.True(ok)
	is.Equal(sn.CanonicalUnits, "m s-1")
	is.Equal(sn.Table, table.Title)
	is.Equal(sn.Aliases, []string{"northward_air_velocity"})
}

func TestThatTitleCanBeGiven(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "table.xml", cfTable)

	table, err := Parse(ctx, source, "xml", WithTitle("CF Standard Name Table v79"))
	is.NoErr(err)
	is.Equal(table.String(), "CF Standard Name Table v79")
	is.Equal(table.StandardNames[0].Table, "CF Standard Name Table v79")
}

func TestThatUnknownSuffixIsReported(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "table.csv", "a,b")

	_, err := Parse(ctx, source, "")

	var fie *FormatInferenceError
	is.True(errors.As(err, &fie))
	is.Equal(fie.Format, "csv")
	is.True(strings.Contains(err.Error(), "format explicitly"))
	is.True(errors.Is(err, readers.ErrPluginNotFound))
}

func TestThatUnknownFormatIsReported(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "table.xml", cfTable)

	_, err := Parse(ctx, source, "yaml")

	var pnf *readers.PluginNotFoundError
	is.True(errors.As(err, &pnf))
	is.Equal(pnf.Format, "yaml")
}

func TestThatMissingDescriptionIsWarnedAbout(t *testing.T) {
	is, ctx, logs := testSetup(t)
	source := writeTestFile(t, "table.xml", `<t><contact>support@example.org</contact><entry id="air_temperature"><canonical_units>K</canonical_units></entry></t>`)

	table, err := Parse(ctx, source, "")
	is.NoErr(err)
	is.Equal(table.StandardNames[0].Description, "")
	is.True(strings.Contains(logs.String(), `"level":"warn"`))
	is.True(strings.Contains(logs.String(), "air_temperature"))
}

func TestThatNonEmailContactIsDropped(t *testing.T) {
	is, ctx, logs := testSetup(t)
	source := writeTestFile(t, "table.xml", `<t><contact>the help desk</contact><entry id="a"><canonical_units>1</canonical_units><description>x</description></entry></t>`)

	table, err := Parse(ctx, source, "")
	is.NoErr(err)
	is.Equal(table.Contact, nil)
	is.True(strings.Contains(logs.String(), "the help desk"))
}

func TestThatMissingContactIsNotWarnedAbout(t *testing.T) {
	is, ctx, logs := testSetup(t)
	source := writeTestFile(t, "table.xml", `<t><entry id="a"><canonical_units>1</canonical_units><description>x</description></entry></t>`)

	table, err := Parse(ctx, source, "")
	is.NoErr(err)
	is.Equal(table.Contact, nil)
	is.True(strings.Contains(logs.String(), "table has no contact"))
	is.True(!strings.Contains(logs.String(), `"level":"warn"`))
}

func TestThatDuplicateStandardNamesAreRejected(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "table.xml", `<t><entry id="a"><description>x</description></entry><entry id="a"><description>y</description></entry></t>`)

	_, err := Parse(ctx, source, "")
	is.True(errors.Is(err, domain.ErrDuplicateStandardName))
}

func TestThatSourceIsNotModified(t *testing.T) {
	is, ctx, _ := testSetup(t)
	source := writeTestFile(t, "table.xml", cfTable)

	_, err := Parse(ctx, source, "")
	is.NoErr(err)

	b, _ := os.ReadFile(source)
	is.Equal(string(b), cfTable)
}

func TestThatLocalDistributionIsParsed(t *testing.T) {
	is, ctx, _ := testSetup(t)
	t.Setenv(cache.DirEnvVar, t.TempDir())
	source := writeTestFile(t, "cf-standard-name-table.xml", cfTable)

	dist, err := domain.NewDistribution(domain.Distribution{
		Resource:    domain.Resource{Title: "XML Version of cf standard name table"},
		DownloadURL: "file://" + source,
		MediaType:   "application/xml",
	})
	is.NoErr(err)

	table, err := ParseDistribution(ctx, *dist, "")
	is.NoErr(err)
	is.Equal(len(table.StandardNames), 2)
	is.Equal(len(table.Distribution), 1)
	is.Equal(table.Distribution[0].DownloadURL, "file://"+source)
}

func TestThatDistributionWithUnknownMediaTypeFails(t *testing.T) {
	is, ctx, _ := testSetup(t)

	dist := domain.Distribution{DownloadURL: "https://example.org/table.csv", MediaType: "text/csv"}

	_, err := ParseDistribution(ctx, dist, "")
	is.True(errors.Is(err, readers.ErrPluginNotFound))
}

func testSetup(t *testing.T) (*is.I, context.Context, *bytes.Buffer) {
	is := is.New(t)
	logs := &bytes.Buffer{}
	ctx := logging.NewContextWithLogger(context.Background(), zerolog.New(logs))
	return is, ctx, logs
}

func writeTestFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %s", err.Error())
	}
	return path
}

const cfTable string = `<?xml version="1.0"?>
<standard_name_table>
   <version_number>79</version_number>
   <last_modified>2022-03-19T15:25:54Z</last_modified>
   <institution>Centre for Environmental Data Analysis</institution>
   <contact>support@ceda.ac.uk</contact>
  <entry id="air_temperature">
    <canonical_units>K</canonical_units>
    <description>Air temperature is the bulk temperature of the air, not the surface (skin) temperature.</description>
  </entry>
  <entry id="northward_wind">
    <canonical_units>m s-1</canonical_units>
    <description>"Northward" indicates a vector component which is positive when directed northward (negative southward).</description>
  </entry>
  <alias id="northward_air_velocity">
    <entry_id>northward_wind</entry_id>
  </alias>
</standard_name_table>
`

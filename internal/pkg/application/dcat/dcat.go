// Package dcat describes the loaded standard name tables as a DCAT catalog
// in RDF/XML.
package dcat

import (
	"encoding/xml"
	"net/url"
	"strings"
	"time"

	"github.com/diwise/api-standardnames/internal/pkg/domain"
)

const (
	NamespaceRDF     string = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NamespaceDCTerms string = "http://purl.org/dc/terms/"
	NamespaceVCard   string = "http://www.w3.org/2006/vcard/ns#"
	NamespaceDCAT    string = "http://www.w3.org/ns/dcat#"
	NamespaceFOAF    string = "http://xmlns.com/foaf/0.1/"
	NamespaceSSNO    string = "https://matthiasprobst.github.io/ssno#"
)

// Catalog holds the catalog level metadata.
type Catalog struct {
	BaseURL     string `yaml:"baseURL"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Publisher   string `yaml:"publisher"`
	License     string `yaml:"license"`
	Language    string `yaml:"language"`
}

// TablePath returns the API path of a table.
func TablePath(title string) string {
	return "/api/standardnametables/" + url.PathEscape(title)
}

// New builds the RDF document describing the tables. Datasets are
// identified by their API url below BaseURL.
func New(c Catalog, tables []domain.StandardNameTable) *Rdf_RDF {
	base := strings.TrimSuffix(c.BaseURL, "/")

	rdf := &Rdf_RDF{
		Attr_rdf:     NamespaceRDF,
		Attr_dcterms: NamespaceDCTerms,
		Attr_vcard:   NamespaceVCard,
		Attr_dcat:    NamespaceDCAT,
		Attr_foaf:    NamespaceFOAF,
		Attr_ssno:    NamespaceSSNO,
	}

	catalog := &RdfCatalog{
		Attr_rdf_about: base + "/api/datasets/dcat",
		Dcterms_title:  LangString{XMLLang: c.Language, Text: c.Title},
	}

	if c.Description != "" {
		catalog.Dcterms_description = &LangString{XMLLang: c.Language, Text: c.Description}
	}

	var publisher *Resource
	if c.Publisher != "" {
		agent := &RdfAgent{Attr_rdf_about: base + "/publisher", Foaf_name: c.Publisher}
		rdf.Rdf_Agent = agent
		publisher = &Resource{Attr_rdf_resource: agent.Attr_rdf_about}
		catalog.Dcterms_publisher = publisher
	}

	if c.License != "" {
		catalog.Dcterms_license = &Resource{Attr_rdf_resource: c.License}
	}

	contacts := map[string]struct{}{}
	distributions := map[string]struct{}{}

	for _, t := range tables {
		about := base + TablePath(t.Title)
		catalog.Dcat_dataset = append(catalog.Dcat_dataset, Resource{Attr_rdf_resource: about})

		dataset := RdfDataset{
			Attr_rdf_about:     about,
			Rdf_type:           Resource{Attr_rdf_resource: NamespaceSSNO + "StandardNameTable"},
			Dcterms_title:      LangString{XMLLang: c.Language, Text: t.Title},
			Dcat_version:       t.Version,
			Dcterms_identifier: t.Identifier,
			Dcterms_publisher:  publisher,
			Dcat_landingPage:   &Resource{Attr_rdf_resource: about},
		}

		if t.Description != "" {
			dataset.Dcterms_description = &LangString{XMLLang: c.Language, Text: t.Description}
		}

		if t.Modified != nil {
			dataset.Dcterms_modified = t.Modified.UTC().Format(time.RFC3339)
		}

		if t.Contact != nil && t.Contact.MBox != "" {
			contactAbout := "mailto:" + t.Contact.MBox
			dataset.Dcat_contactPoint = &Resource{Attr_rdf_resource: contactAbout + "#contact"}

			if _, seen := contacts[contactAbout]; !seen {
				contacts[contactAbout] = struct{}{}
				rdf.Rdf_Individuals = append(rdf.Rdf_Individuals, RdfIndividual{
					Attr_rdf_about: contactAbout + "#contact",
					Vcard_fn:       strings.TrimSpace(t.Contact.FirstName + " " + t.Contact.LastName),
					Vcard_hasEmail: Resource{Attr_rdf_resource: contactAbout},
				})
			}
		}

		for _, d := range t.Distribution {
			dataset.Dcat_distribution = append(dataset.Dcat_distribution, Resource{Attr_rdf_resource: d.DownloadURL})

			if _, seen := distributions[d.DownloadURL]; !seen {
				distributions[d.DownloadURL] = struct{}{}
				rdf.Rdf_Distributions = append(rdf.Rdf_Distributions, distribution(d))
			}
		}

		rdf.Rdf_Datasets = append(rdf.Rdf_Datasets, dataset)
	}

	rdf.Rdf_Catalog = catalog

	return rdf
}

func distribution(d domain.Distribution) RdfDistribution {
	dist := RdfDistribution{
		Attr_rdf_about:   d.DownloadURL,
		Dcterms_title:    d.Title,
		Dcat_downloadURL: Resource{Attr_rdf_resource: d.DownloadURL},
		Dcat_accessURL:   Resource{Attr_rdf_resource: d.DownloadURL},
		Dcat_byteSize:    d.ByteSize,
	}

	if d.MediaType != "" {
		dist.Dcat_mediaType = &Resource{Attr_rdf_resource: d.MediaType}
	}

	return dist
}

// Marshal renders the catalog as indented RDF/XML including the xml header.
func Marshal(c Catalog, tables []domain.StandardNameTable) ([]byte, error) {
	data, err := xml.MarshalIndent(New(c, tables), "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), data...), nil
}

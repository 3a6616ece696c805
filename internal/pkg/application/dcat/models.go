package dcat

import "encoding/xml"

type Rdf_RDF struct {
	Attr_rdf          string            `xml:"xmlns:rdf,attr"`
	Attr_dcterms      string            `xml:"xmlns:dcterms,attr"`
	Attr_vcard        string            `xml:"xmlns:vcard,attr"`
	Attr_dcat         string            `xml:"xmlns:dcat,attr"`
	Attr_foaf         string            `xml:"xmlns:foaf,attr"`
	Attr_ssno         string            `xml:"xmlns:ssno,attr"`
	XMLName           xml.Name          `xml:"rdf:RDF"`
	Rdf_Catalog       *RdfCatalog       `xml:"dcat:Catalog,omitempty"`
	Rdf_Agent         *RdfAgent         `xml:"foaf:Agent,omitempty"`
	Rdf_Datasets      []RdfDataset      `xml:"dcat:Dataset,omitempty"`
	Rdf_Distributions []RdfDistribution `xml:"dcat:Distribution,omitempty"`
	Rdf_Individuals   []RdfIndividual   `xml:"vcard:Individual,omitempty"`
}

type Resource struct {
	Attr_rdf_resource string `xml:"rdf:resource,attr"`
}

type LangString struct {
	XMLLang string `xml:"xml:lang,attr,omitempty"`
	Text    string `xml:",chardata"`
}

type RdfCatalog struct {
	XMLName             xml.Name    `xml:"dcat:Catalog"`
	Attr_rdf_about      string      `xml:"rdf:about,attr"`
	Dcterms_title       LangString  `xml:"dcterms:title"`
	Dcterms_description *LangString `xml:"dcterms:description,omitempty"`
	Dcterms_publisher   *Resource   `xml:"dcterms:publisher,omitempty"`
	Dcterms_license     *Resource   `xml:"dcterms:license,omitempty"`
	Dcat_dataset        []Resource  `xml:"dcat:dataset"`
}

type RdfDataset struct {
	XMLName             xml.Name    `xml:"dcat:Dataset"`
	Attr_rdf_about      string      `xml:"rdf:about,attr"`
	Rdf_type            Resource    `xml:"rdf:type"`
	Dcterms_title       LangString  `xml:"dcterms:title"`
	Dcterms_description *LangString `xml:"dcterms:description,omitempty"`
	Dcat_version        string      `xml:"dcat:version,omitempty"`
	Dcterms_modified    string      `xml:"dcterms:modified,omitempty"`
	Dcterms_identifier  string      `xml:"dcterms:identifier,omitempty"`
	Dcterms_publisher   *Resource   `xml:"dcterms:publisher,omitempty"`
	Dcat_contactPoint   *Resource   `xml:"dcat:contactPoint,omitempty"`
	Dcat_distribution   []Resource  `xml:"dcat:distribution"`
	Dcat_landingPage    *Resource   `xml:"dcat:landingPage,omitempty"`
}

type RdfAgent struct {
	XMLName        xml.Name `xml:"foaf:Agent"`
	Attr_rdf_about string   `xml:"rdf:about,attr"`
	Foaf_name      string   `xml:"foaf:name"`
}

type RdfDistribution struct {
	XMLName          xml.Name  `xml:"dcat:Distribution"`
	Attr_rdf_about   string    `xml:"rdf:about,attr"`
	Dcterms_title    string    `xml:"dcterms:title,omitempty"`
	Dcat_downloadURL Resource  `xml:"dcat:downloadURL"`
	Dcat_accessURL   Resource  `xml:"dcat:accessURL"`
	Dcat_mediaType   *Resource `xml:"dcat:mediaType,omitempty"`
	Dcat_byteSize    *int64    `xml:"dcat:byteSize,omitempty"`
}

type RdfIndividual struct {
	XMLName        xml.Name `xml:"vcard:Individual"`
	Attr_rdf_about string   `xml:"rdf:about,attr"`
	Vcard_fn       string   `xml:"vcard:fn,omitempty"`
	Vcard_hasEmail Resource `xml:"vcard:hasEmail"`
}

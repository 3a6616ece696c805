package domain

import (
	"fmt"
	"time"
)

// Resource is a dcat:Resource, the base of every catalog entry.
type Resource struct {
	Title       string `json:"title"`                 // dcterms:title
	Description string `json:"description,omitempty"` // dcterms:description
	Creator     *Agent `json:"creator,omitempty"`     // dcterms:creator
	Version     string `json:"version,omitempty"`     // dcat:version
}

func (r *Resource) validate(v *validation) {
	v.check("title", r.Title, requireText(r.Title))
	if r.Creator != nil {
		v.check("creator", r.Creator, r.Creator.Validate())
	}
}

func (r Resource) toDict(d map[string]any) {
	d["title"] = r.Title
	putText(d, "description", r.Description)
	if r.Creator != nil {
		d["creator"] = r.Creator.ToDict()
	}
	putText(d, "version", r.Version)
}

func (r *Resource) fromDict(dr *dictReader) {
	r.Title = dr.text("title")
	r.Description = dr.text("description")
	r.Version = dr.text("version")

	if creator := dr.dict("creator"); creator != nil {
		a, err := AgentFromDict(creator)
		if err != nil {
			dr.fail("creator", creator, err)
			return
		}
		r.Creator = a
	}
}

// Distribution is a dcat:Distribution, a downloadable form of a dataset.
type Distribution struct {
	Resource
	DownloadURL string `json:"downloadURL"`         // dcat:downloadURL
	MediaType   string `json:"mediaType,omitempty"` // dcat:mediaType
	ByteSize    *int64 `json:"byteSize,omitempty"`  // dcat:byteSize
}

func NewDistribution(d Distribution) (*Distribution, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks all fields and normalizes MediaType in place.
func (d *Distribution) Validate() error {
	v := newValidation("Distribution")
	d.Resource.validate(v)
	v.check("downloadURL", d.DownloadURL, validateURI(d.DownloadURL, "http", "https", "file"))

	mediaType, err := NormalizeMediaType(d.MediaType)
	v.check("mediaType", d.MediaType, err)
	if err == nil {
		d.MediaType = mediaType
	}

	if d.ByteSize != nil && *d.ByteSize < 0 {
		v.check("byteSize", *d.ByteSize, ErrNegative)
	}

	return v.err()
}

func (d Distribution) String() string {
	return fmt.Sprintf("Distribution(%s)", d.DownloadURL)
}

func (d Distribution) ToDict() map[string]any {
	dict := map[string]any{}
	d.Resource.toDict(dict)
	dict["downloadURL"] = d.DownloadURL
	putText(dict, "mediaType", d.MediaType)
	if d.ByteSize != nil {
		dict["byteSize"] = *d.ByteSize
	}
	return dict
}

func DistributionFromDict(dict map[string]any) (*Distribution, error) {
	dr := &dictReader{record: "Distribution", d: dict}
	d := Distribution{}
	d.Resource.fromDict(dr)
	d.DownloadURL = dr.text("downloadURL")
	d.MediaType = dr.text("mediaType")
	d.ByteSize = dr.integer("byteSize")

	if err := dr.err(); err != nil {
		return nil, err
	}
	return NewDistribution(d)
}

// Dataset is a dcat:Dataset.
type Dataset struct {
	Resource
	Identifier   string         `json:"identifier,omitempty"`   // dcterms:identifier
	Contact      *Agent         `json:"contact,omitempty"`      // dcat:contactPoint
	Distribution []Distribution `json:"distribution,omitempty"` // dcat:distribution
	Modified     *time.Time     `json:"modified,omitempty"`     // dcterms:modified
}

func NewDataset(d Dataset) (*Dataset, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Dataset) Validate() error {
	v := newValidation("Dataset")
	d.validate(v)
	return v.err()
}

func (d *Dataset) validate(v *validation) {
	d.Resource.validate(v)
	v.check("identifier", d.Identifier, validateOptionalHTTPURL(d.Identifier))
	if d.Contact != nil {
		v.check("contact", d.Contact, d.Contact.Validate())
	}
	for i := range d.Distribution {
		v.check(fmt.Sprintf("distribution[%d]", i), d.Distribution[i].DownloadURL, d.Distribution[i].Validate())
	}
}

// SetModified parses a free-text date into Modified.
func (d *Dataset) SetModified(text string) error {
	t, err := ParseTimestamp(text)
	if err != nil {
		return &ValidationError{Record: "Dataset", Field: "modified", Value: text, Err: err}
	}
	d.Modified = &t
	return nil
}

func (d Dataset) ToDict() map[string]any {
	dict := map[string]any{}
	d.toDict(dict)
	return dict
}

func (d Dataset) toDict(dict map[string]any) {
	d.Resource.toDict(dict)
	putText(dict, "identifier", d.Identifier)
	if d.Contact != nil {
		dict["contact"] = d.Contact.ToDict()
	}
	if len(d.Distribution) > 0 {
		distributions := make([]map[string]any, 0, len(d.Distribution))
		for _, dist := range d.Distribution {
			distributions = append(distributions, dist.ToDict())
		}
		dict["distribution"] = distributions
	}
	if d.Modified != nil {
		dict["modified"] = *d.Modified
	}
}

func (d *Dataset) fromDict(dr *dictReader) {
	d.Resource.fromDict(dr)
	d.Identifier = dr.text("identifier")
	d.Modified = dr.timestamp("modified")

	if contact := dr.dict("contact"); contact != nil {
		a, err := AgentFromDict(contact)
		if err != nil {
			dr.fail("contact", contact, err)
		} else {
			d.Contact = a
		}
	}

	for _, dist := range dr.dicts("distribution") {
		distribution, err := DistributionFromDict(dist)
		if err != nil {
			dr.fail("distribution", dist, err)
			continue
		}
		d.Distribution = append(d.Distribution, *distribution)
	}
}

func DatasetFromDict(dict map[string]any) (*Dataset, error) {
	dr := &dictReader{record: "Dataset", d: dict}
	d := Dataset{}
	d.fromDict(dr)
	if err := dr.err(); err != nil {
		return nil, err
	}
	return NewDataset(d)
}

// Package readers holds the table reader plugins. Each reader turns one
// external table format into a normalized Table.
package readers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	ErrPluginNotFound  = errors.New("no reader plugin found")
	ErrMissingField    = errors.New("missing required field")
	ErrNotARegularFile = errors.New("not a regular file")
)

type TableReader interface {
	Parse(ctx context.Context) (*Table, error)
}

// Factory creates a reader for a source. What a source is depends on the
// format, e.g. a file path for xml or a broker url for ngsi-ld.
type Factory func(source string) (TableReader, error)

// Table is the normalized result of reading an external table.
type Table struct {
	Title        string
	Version      string
	LastModified string
	Institution  string
	Contact      Contact
	Entries      []Entry
}

// Contact holds MBox when the contact text looked like an email address,
// otherwise the text is kept unparsed in Raw.
type Contact struct {
	MBox string
	Raw  string
}

func (c Contact) IsEmpty() bool {
	return c.MBox == "" && c.Raw == ""
}

// Entry is one standard name. Nil pointers mark values absent from the source.
type Entry struct {
	StandardName   string
	CanonicalUnits *string
	Description    *string
	Aliases        []string
}

type PluginNotFoundError struct {
	Format string
}

func (e *PluginNotFoundError) Error() string {
	return fmt.Sprintf("no reader plugin found for format %q", e.Format)
}

func (e *PluginNotFoundError) Is(target error) bool {
	return target == ErrPluginNotFound
}

type MissingFieldError struct {
	Field  string
	Source string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("expected key %q in %s", e.Field, e.Source)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

type plugin struct {
	factory    Factory
	mediaTypes []string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]plugin{}
)

func init() {
	Register("xml", []string{"application/xml", "text/xml"}, NewXMLReader)
	Register("ngsi-ld", []string{"application/ld+json"}, NewBrokerReader)
}

// Register adds (or replaces) the reader for a format. Media types are bare
// type/subtype strings used to pick a format for distributions.
func Register(format string, mediaTypes []string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry[strings.ToLower(format)] = plugin{factory: f, mediaTypes: mediaTypes}
}

func Get(format string) (Factory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := registry[strings.ToLower(format)]
	if !ok {
		return nil, &PluginNotFoundError{Format: format}
	}
	return p.factory, nil
}

func Has(format string) bool {
	_, err := Get(format)
	return err == nil
}

// Formats returns the registered format names in sorted order.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return sortedFormats()
}

// FormatForMediaType finds the format whose reader accepts a media type. Both
// bare ("application/xml") and IANA URI forms are understood.
func FormatForMediaType(mediaType string) (string, bool) {
	if idx := strings.Index(mediaType, "media-types/"); idx >= 0 {
		mediaType = mediaType[idx+len("media-types/"):]
	}
	mediaType = strings.ToLower(strings.TrimPrefix(mediaType, "iana:"))

	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, format := range sortedFormats() {
		if slices.Contains(registry[format].mediaTypes, mediaType) {
			return format, true
		}
	}

	if _, subtype, ok := strings.Cut(mediaType, "/"); ok {
		if _, ok := registry[subtype]; ok {
			return subtype, true
		}
	}

	return "", false
}

// sortedFormats expects registryMu to be held.
func sortedFormats() []string {
	formats := maps.Keys(registry)
	slices.Sort(formats)
	return formats
}

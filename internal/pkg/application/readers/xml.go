package readers

import (
	"context"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type xmlReader struct {
	filename string
}

// NewXMLReader returns a reader for an XML table file. The file must exist
// and be a regular file.
func NewXMLReader(filename string) (TableReader, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s does not exist: %w", filename, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("reading %q: %w", filename, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", filename, ErrNotARegularFile)
	}

	return &xmlReader{filename: filename}, nil
}

func (r *xmlReader) Parse(ctx context.Context) (*Table, error) {
	log := logging.GetFromContext(ctx)

	f, err := os.Open(r.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", r.filename, err)
	}
	defer f.Close()

	doc := xmlTable{}
	if err = xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode xml table %s: %w", r.filename, err)
	}

	if len(doc.Entries) == 0 {
		return nil, &MissingFieldError{Field: "entry", Source: filepath.Base(r.filename)}
	}

	table := &Table{
		Title:        strings.TrimSpace(doc.Title),
		LastModified: strings.TrimSpace(doc.LastModified),
		Institution:  strings.TrimSpace(doc.Institution),
	}

	if doc.Version != nil {
		table.Version = strings.TrimSpace(*doc.Version)
	} else if doc.VersionNumber != nil {
		table.Version = strings.TrimSpace(*doc.VersionNumber)
	}

	if doc.Contact != nil {
		contact := strings.TrimSpace(*doc.Contact)
		if strings.Contains(contact, "@") {
			table.Contact.MBox = contact
		} else {
			table.Contact.Raw = contact
		}
	}

	index := make(map[string]int, len(doc.Entries))
	for _, e := range doc.Entries {
		index[e.ID] = len(table.Entries)
		table.Entries = append(table.Entries, Entry{
			StandardName:   e.ID,
			CanonicalUnits: trimmed(e.CanonicalUnits),
			Description:    trimmed(e.Description),
		})
	}

	for _, a := range doc.Aliases {
		i, ok := index[a.EntryID]
		if !ok {
			log.Debug().Msgf("alias %s refers to unknown entry %s", a.ID, a.EntryID)
			continue
		}
		table.Entries[i].Aliases = append(table.Entries[i].Aliases, a.ID)
	}

	log.Debug().Msgf("read %d entries from %s", len(table.Entries), r.filename)

	return table, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

package standardnametables

import (
	"fmt"
	"io"

	"github.com/diwise/api-standardnames/internal/pkg/application/dcat"
	"gopkg.in/yaml.v2"
)

// Config lists the tables the service keeps loaded.
//
//	catalog:
//	  baseURL: https://api.example.org
//	  title: Standard name tables
//	tables:
//	  - title: CF Standard Name Table
//	    downloadURL: https://cfconventions.org/Data/cf-standard-names/current/src/cf-standard-name-table.xml
//	    mediaType: application/xml
type Config struct {
	Catalog dcat.Catalog  `yaml:"catalog"`
	Tables  []TableConfig `yaml:"tables"`
}

// TableConfig points at a table either through a local or broker Source or
// through a DownloadURL that is fetched into the cache directory.
type TableConfig struct {
	Title       string `yaml:"title"`
	Source      string `yaml:"source"`
	Format      string `yaml:"format"`
	DownloadURL string `yaml:"downloadURL"`
	MediaType   string `yaml:"mediaType"`
}

func LoadConfig(r io.Reader) (*Config, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	if err = yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for i, t := range cfg.Tables {
		if t.Source == "" && t.DownloadURL == "" {
			return nil, fmt.Errorf("table %d (%s) needs either a source or a downloadURL", i, t.Title)
		}
	}

	return cfg, nil
}

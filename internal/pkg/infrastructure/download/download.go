// Package download fetches remote files to local disk.
package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-standardnames/download")

var ErrHashMismatch = errors.New("file does not match the expected hash")

type FileExistsError struct {
	Path string
}

func (e *FileExistsError) Error() string {
	return fmt.Sprintf("file %s already exists and overwriting is disabled", e.Path)
}

func (e *FileExistsError) Is(target error) bool {
	return target == fs.ErrExist
}

type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to download the file from %s (status code %d)", e.URL, e.StatusCode)
}

type options struct {
	overwrite bool
	knownHash string
	client    *http.Client
}

type Option func(*options)

func OverwriteExisting(overwrite bool) Option {
	return func(o *options) {
		o.overwrite = overwrite
	}
}

// KnownHash makes File verify the hex encoded sha256 of the downloaded content.
func KnownHash(sha256hex string) Option {
	return func(o *options) {
		o.knownHash = strings.ToLower(sha256hex)
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.client = c
	}
}

// File downloads url to dest and returns the path of the written file. A
// file:// url is not copied, the local path is returned if it exists.
func File(ctx context.Context, rawURL, dest string, opts ...Option) (path string, err error) {
	o := &options{
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	if u.Scheme == "file" {
		return localFile(u)
	}

	ctx, span := tracer.Start(ctx, "download-file")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetFromContext(ctx)

	if _, statErr := os.Stat(dest); statErr == nil {
		if !o.overwrite {
			return "", &FileExistsError{Path: dest}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if err = os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return "", fmt.Errorf("create destination dir: %w", err)
	}

	tmpPath := dest + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(f, h), resp.Body)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", dest, err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if o.knownHash != "" {
		if sum := hex.EncodeToString(h.Sum(nil)); sum != o.knownHash {
			_ = os.Remove(tmpPath)
			return "", fmt.Errorf("%s has sha256 %s, expected %s: %w", rawURL, sum, o.knownHash, ErrHashMismatch)
		}
	}

	if err = os.Rename(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	log.Debug().Msgf("downloaded %d bytes from %s to %s", n, rawURL, dest)

	return dest, nil
}

func localFile(u *url.URL) (string, error) {
	path := u.Path
	if path == "" {
		path = u.Opaque
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("local file %s: %w", path, err)
	}

	return path, nil
}

// FileName guesses a file name from the last path segment of a url.
func FileName(rawURL string) string {
	if idx := strings.IndexAny(rawURL, "?#"); idx >= 0 {
		rawURL = rawURL[:idx]
	}
	base := filepath.Base(rawURL)
	if base == "" || base == "." || base == "/" {
		return "download"
	}
	return base
}

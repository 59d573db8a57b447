package question

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// BuiltinSource labels pools that came from the built-in fallback.
const BuiltinSource = "builtin"

// maxPayloadBytes bounds remote pool downloads.
const maxPayloadBytes = 16 << 20

// LoadErrorKind classifies pool loading failures.
type LoadErrorKind string

const (
	// LoadUnavailable means the source could not be reached or read.
	LoadUnavailable LoadErrorKind = "unavailable"
	// LoadStatus means the server answered with a non-success status.
	LoadStatus LoadErrorKind = "status"
	// LoadMalformed means the payload could not be decoded or validated.
	LoadMalformed LoadErrorKind = "malformed"
	// LoadEmpty means the payload held no questions.
	LoadEmpty LoadErrorKind = "empty"
)

// LoadError reports why a pool source could not be used.
type LoadError struct {
	Kind   LoadErrorKind
	Source string
	Err    error
}

// Error implements error.
func (err *LoadError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("load pool from %s: %s", err.Source, err.Kind)
	}
	return fmt.Sprintf("load pool from %s: %s: %v", err.Source, err.Kind, err.Err)
}

// Unwrap returns the underlying error.
func (err *LoadError) Unwrap() error {
	return err.Err
}

// Loader fetches a question pool from an external source. Issues name the
// records that were skipped or repaired on the way.
type Loader interface {
	Load(ctx context.Context) (Pool, []Issue, error)
	Source() string
}

// FileLoader reads a pool from the local filesystem.
type FileLoader struct {
	Path string
}

// Source returns the file path.
func (l FileLoader) Source() string {
	return l.Path
}

// Load reads and validates the pool file.
func (l FileLoader) Load(ctx context.Context) (Pool, []Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, &LoadError{Kind: LoadUnavailable, Source: l.Path, Err: err}
	}
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, nil, &LoadError{Kind: LoadUnavailable, Source: l.Path, Err: err}
	}
	return decodePayload(l.Path, data, FormatFromPath(l.Path))
}

// HTTPLoader fetches a pool over HTTP, bypassing caches.
type HTTPLoader struct {
	URL     string
	Timeout time.Duration
	Client  *http.Client
}

// Source returns the URL.
func (l HTTPLoader) Source() string {
	return l.URL
}

// Load performs a GET and validates the response body.
func (l HTTPLoader) Load(ctx context.Context) (Pool, []Issue, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, nil, &LoadError{Kind: LoadUnavailable, Source: l.URL, Err: err}
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, &LoadError{Kind: LoadUnavailable, Source: l.URL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &LoadError{Kind: LoadStatus, Source: l.URL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, nil, &LoadError{Kind: LoadUnavailable, Source: l.URL, Err: err}
	}
	return decodePayload(l.URL, data, formatForResponse(l.URL, resp.Header.Get("Content-Type")))
}

// formatForResponse prefers the declared content type over the URL extension.
func formatForResponse(rawURL, contentType string) Format {
	contentType = strings.ToLower(contentType)
	switch {
	case strings.Contains(contentType, "json"):
		return FormatJSON
	case strings.Contains(contentType, "yaml"):
		return FormatYAML
	}
	if parsed, err := url.Parse(rawURL); err == nil {
		return FormatFromPath(parsed.Path)
	}
	return FormatJSON
}

func decodePayload(source string, data []byte, format Format) (Pool, []Issue, error) {
	pool, issues, err := Parse(data, format)
	if err != nil {
		if errors.Is(err, ErrEmptyPool) {
			return nil, issues, &LoadError{Kind: LoadEmpty, Source: source, Err: err}
		}
		return nil, issues, &LoadError{Kind: LoadMalformed, Source: source, Err: err}
	}
	return pool, issues, nil
}

// NewLoader picks an HTTP or file loader for a location. An empty location
// yields a nil loader.
func NewLoader(location string, timeout time.Duration) Loader {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return HTTPLoader{URL: location, Timeout: timeout}
	}
	return FileLoader{Path: location}
}

// LoadOrBuiltin tries the loader and falls back to the built-in pool on any
// failure. It never returns an error; the second value names the pool's origin.
func LoadOrBuiltin(ctx context.Context, loader Loader, logger *zap.Logger) (Pool, string) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loader == nil {
		logger.Debug("no pool source configured, using built-in pool")
		return Builtin(), BuiltinSource
	}
	pool, issues, err := loader.Load(ctx)
	for _, issue := range issues {
		logger.Warn("question pool issue",
			zap.String("source", loader.Source()),
			zap.String("field", issue.Field),
			zap.String("issue", issue.Message),
		)
	}
	if err != nil {
		var loadErr *LoadError
		kind := LoadUnavailable
		if errors.As(err, &loadErr) {
			kind = loadErr.Kind
		}
		logger.Info("falling back to built-in pool",
			zap.String("source", loader.Source()),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		return Builtin(), BuiltinSource
	}
	if len(pool) == 0 {
		logger.Info("pool source returned no questions, using built-in pool", zap.String("source", loader.Source()))
		return Builtin(), BuiltinSource
	}
	logger.Debug("loaded question pool", zap.String("source", loader.Source()), zap.Int("questions", len(pool)))
	return pool, loader.Source()
}

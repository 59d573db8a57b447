package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder used for a pool payload.
type Format int

const (
	// FormatYAML decodes YAML (and therefore most JSON) payloads.
	FormatYAML Format = iota
	// FormatJSON decodes JSON payloads.
	FormatJSON
)

// FormatFromPath picks a format from a file name or URL path.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads, parses, and normalizes a pool file.
func LoadFile(path string) (Pool, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read question pool: %w", err)
	}
	return Parse(data, FormatFromPath(path))
}

// Parse decodes a pool payload and normalizes it. The payload is either a
// bare list of records or a versioned document with a questions list. Keys
// quizrun does not know are ignored so pools written for other tools still
// load.
func Parse(data []byte, format Format) (Pool, []Issue, error) {
	var (
		docs    []recordDoc
		version int
		err     error
	)
	switch format {
	case FormatJSON:
		docs, version, err = parseJSON(data)
	default:
		docs, version, err = parseYAML(data)
	}
	if err != nil {
		return nil, nil, err
	}
	if version != 0 && version != 1 {
		return nil, nil, &ValidationError{Issues: []Issue{{Field: "version", Message: fmt.Sprintf("unsupported version %d", version)}}}
	}
	pool := make(Pool, 0, len(docs))
	for _, doc := range docs {
		pool = append(pool, doc.record())
	}
	return Normalize(pool)
}

func parseJSON(data []byte) ([]recordDoc, int, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, 0, nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	var (
		docs    []recordDoc
		version int
	)
	if trimmed[0] == '[' {
		if err := decoder.Decode(&docs); err != nil {
			return nil, 0, fmt.Errorf("parse json: %w", err)
		}
	} else {
		var doc document
		if err := decoder.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("parse json: %w", err)
		}
		docs, version = doc.Questions, doc.Version
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, 0, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, 0, fmt.Errorf("parse json: %w", err)
	}
	return docs, version, nil
}

func parseYAML(data []byte) ([]recordDoc, int, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, 0, fmt.Errorf("parse yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, 0, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	var (
		docs    []recordDoc
		version int
	)
	if root.Content[0].Kind == yaml.SequenceNode {
		if err := decoder.Decode(&docs); err != nil {
			return nil, 0, fmt.Errorf("parse yaml: %w", err)
		}
	} else {
		var doc document
		if err := decoder.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("parse yaml: %w", err)
		}
		docs, version = doc.Questions, doc.Version
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, 0, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, 0, fmt.Errorf("parse yaml: %w", err)
	}
	return docs, version, nil
}

// MarshalJSON renders a pool in the bare-list form served at data/questions.json.
func MarshalJSON(pool Pool) ([]byte, error) {
	if pool == nil {
		pool = Pool{}
	}
	data, err := json.MarshalIndent(pool, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode question pool: %w", err)
	}
	return append(data, '\n'), nil
}

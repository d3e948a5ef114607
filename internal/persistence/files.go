// Package persistence reads and writes flat corpus files as JSON or YAML.
package persistence

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gcbaptista/go-title-engine/model"
)

// Format is a serialization format for flat files.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// indent keeps diffs of saved corpora stable.
const indent = 4

// FormatFor picks the format from the file extension; anything but .yaml/.yml is JSON.
func FormatFor(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Encode writes object to w. Map keys are emitted in sorted order.
func Encode(w io.Writer, format Format, object interface{}) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(indent)
		if err := enc.Encode(object); err != nil {
			return fmt.Errorf("failed to yaml encode: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", strings.Repeat(" ", indent))
		if err := enc.Encode(object); err != nil {
			return fmt.Errorf("failed to json encode: %w", err)
		}
		return nil
	}
}

// Decode reads one document from r into objectPointer.
func Decode(r io.Reader, format Format, objectPointer interface{}) error {
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(objectPointer); err != nil {
			return fmt.Errorf("failed to yaml decode: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(objectPointer); err != nil {
			return fmt.Errorf("failed to json decode: %w", err)
		}
	}
	return nil
}

// Save encodes object in the format of filePath's extension.
// It creates necessary directories if they don't exist.
func Save(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	if err := Encode(file, FormatFor(filePath), object); err != nil {
		return fmt.Errorf("file %s: %w", filePath, err)
	}
	return nil
}

// Load decodes filePath into objectPointer using the format of its extension.
// If the file does not exist, it returns os.ErrNotExist.
func Load(filePath string, objectPointer interface{}) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	if err := Decode(file, FormatFor(filePath), objectPointer); err != nil {
		return fmt.Errorf("file %s: %w", filePath, err)
	}
	return nil
}

// LoadCorpus reads a title -> comments corpus.
func LoadCorpus(filePath string) (model.Corpus, error) {
	c := make(model.Corpus)
	if err := Load(filePath, &c); err != nil {
		return nil, err
	}
	return c, nil
}

// SaveCorpus writes a corpus with sorted keys.
func SaveCorpus(filePath string, c model.Corpus) error {
	return Save(filePath, c)
}

// LoadTitleIndex reads a forum -> link id -> title index.
func LoadTitleIndex(filePath string) (model.TitleIndex, error) {
	idx := make(model.TitleIndex)
	if err := Load(filePath, &idx); err != nil {
		return nil, err
	}
	return idx, nil
}

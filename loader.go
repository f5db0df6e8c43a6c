package automaton

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an input encoding understood by LoadAndValidate.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForFile returns the input format matching the extension of filename.
func FormatForFile(filename string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToLower(ext) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// LoadAndValidate decodes data and validates the result, see Validate.
func LoadAndValidate(data []byte, format Format) (*Automaton, error) {
	var raw map[string]any
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Join(ErrMalformedInput, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Join(ErrMalformedInput, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: expected an object", ErrMalformedInput)
	}
	return Validate(raw)
}

// LoadFile reads and validates the automaton stored at path.
func LoadFile(path string) (*Automaton, error) {
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("automaton: read %s: %w", path, err)
	}
	a, err := LoadAndValidate(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

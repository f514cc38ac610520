// Package roster reads player pools from YAML or JSON files.
package roster

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dom/team-balancer/internal/domain"
)

// Format is the encoding of a roster document
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Roster is the on-disk document: a named pool of players
type Roster struct {
	Name    string          `json:"name,omitempty" yaml:"name,omitempty"`
	Players []domain.Player `json:"players" yaml:"players"`
}

// FormatFromPath picks a Format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported roster file extension %q", filepath.Ext(path))
	}
}

// Load reads and parses the roster file at path
func Load(path string) (*Roster, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a roster document
func Parse(data []byte, format Format) (*Roster, error) {
	var r Roster
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse yaml roster: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &r); err != nil {
			return nil, fmt.Errorf("failed to parse json roster: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported roster format %q", format)
	}
	return &r, nil
}

// Encode writes a roster document in the given format
func Encode(r *Roster, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(r)
	case FormatJSON:
		return json.MarshalIndent(r, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported roster format %q", format)
	}
}

// Package project reads project files and turns them into the engine's
// input model.
package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrNoProjectFile is returned by LoadProject when a directory holds no
// recognised project file.
var ErrNoProjectFile = errors.New("no project file found")

// Format is a project file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// projectFiles are tried in order by LoadProject.
var projectFiles = []string{"project.yaml", "project.yml", "project.toml"}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported project file extension %q", filepath.Ext(path))
}

// Load reads a project from a file, picking the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project file: %w", err)
	}
	f, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// LoadProject loads a project from a directory, or from a file when path
// is not a directory.
func LoadProject(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening project: %w", err)
	}
	if !info.IsDir() {
		return Load(path)
	}
	for _, name := range projectFiles {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
	}
	return nil, fmt.Errorf("%w in %s (tried %s)", ErrNoProjectFile, path, strings.Join(projectFiles, ", "))
}

// Parse decodes a project. Unknown keys are rejected so that typos do not
// silently fall back to zero values.
func Parse(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing project YAML: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing project TOML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("parsing project JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported project format %q", format)
	}
	return &f, nil
}

// ReferencePath returns the reference table path, resolved against the
// project file's directory. Empty means the built-in table.
func (f *File) ReferencePath() string {
	if f.Reference == "" || filepath.IsAbs(f.Reference) || f.dir == "" {
		return f.Reference
	}
	return filepath.Join(f.dir, f.Reference)
}

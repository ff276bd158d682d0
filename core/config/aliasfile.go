// File: aliasfile.go
// Title: Alias File Loading and Saving
// Description: Implements reading and writing of settings and alias files in
//              TOML and YAML format. The format is auto-detected from the
//              file extension, defaulting to TOML.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-05
// Modified: 2025-02-05
//
// Change History:
// - 2025-02-05 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	caerror "github.com/msto63/cobra-aliases/core/error"
	"github.com/msto63/cobra-aliases/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the file format from the path's extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads settings from a TOML or YAML file and normalizes and
// validates them
func Load(path string) (*Settings, error) {
	if stringx.IsBlank(path) {
		return nil, caerror.New("settings file path cannot be blank").
			WithCode(caerror.CodeMissingConfig)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, caerror.Wrap(err, "reading settings file").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	settings := DefaultSettings()

	switch DetectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, caerror.Wrap(err, "parsing YAML settings").
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, caerror.Wrap(err, "parsing TOML settings").
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// Save writes the settings to a TOML or YAML file, creating parent
// directories as needed
func (s *Settings) Save(path string) error {
	if stringx.IsBlank(path) {
		return caerror.New("settings file path cannot be blank").
			WithCode(caerror.CodeMissingConfig)
	}

	var data []byte
	var err error

	switch DetectFormat(path) {
	case FormatYAML:
		data, err = yaml.Marshal(s)
	default:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(s)
		data = buf.Bytes()
	}

	if err != nil {
		return caerror.Wrap(err, "encoding settings").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return caerror.Wrap(err, "creating settings directory").
				WithCode(caerror.CodeConfigError).
				WithDetail("path", path)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return caerror.Wrap(err, "writing settings file").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	return nil
}

// aliasDocument is the on-disk shape of a bare alias file
type aliasDocument struct {
	Aliases map[string]string `toml:"aliases" yaml:"aliases"`
}

// LoadAliasFile reads a bare alias file mapping alias tokens to primary
// command names. A missing file yields an empty mapping, not an error.
func LoadAliasFile(path string) (map[string]string, error) {
	if stringx.IsBlank(path) {
		return nil, caerror.New("alias file path cannot be blank").
			WithCode(caerror.CodeMissingConfig)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, caerror.Wrap(err, "reading alias file").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	var doc aliasDocument

	switch DetectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, caerror.Wrap(err, "parsing YAML alias file").
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, caerror.Wrap(err, "parsing TOML alias file").
				WithCode(caerror.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	if doc.Aliases == nil {
		doc.Aliases = map[string]string{}
	}

	return doc.Aliases, nil
}

// SaveAliasFile writes a bare alias file mapping alias tokens to primary
// command names
func SaveAliasFile(path string, aliases map[string]string) error {
	if stringx.IsBlank(path) {
		return caerror.New("alias file path cannot be blank").
			WithCode(caerror.CodeMissingConfig)
	}

	doc := aliasDocument{Aliases: aliases}
	if doc.Aliases == nil {
		doc.Aliases = map[string]string{}
	}

	var data []byte
	var err error

	switch DetectFormat(path) {
	case FormatYAML:
		data, err = yaml.Marshal(&doc)
	default:
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(&doc)
		data = buf.Bytes()
	}

	if err != nil {
		return caerror.Wrap(err, "encoding alias file").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return caerror.Wrap(err, "creating alias file directory").
				WithCode(caerror.CodeConfigError).
				WithDetail("path", path)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return caerror.Wrap(err, "writing alias file").
			WithCode(caerror.CodeConfigError).
			WithDetail("path", path)
	}

	return nil
}

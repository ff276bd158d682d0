// File: format.go
// Title: Log Output Formatters
// Description: Implements the output formatters for log entries. The text
//              formatter produces human-readable single-line output for
//              terminals, the JSON formatter produces machine-readable output
//              for log aggregation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation with text and JSON formatters

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Format represents the log output format
type Format int

const (
	// FormatText produces human-readable single-line output (default)
	FormatText Format = iota

	// FormatJSON produces machine-readable JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", format)
	}
}

// Formatter formats a log entry into a byte slice ready for output
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// TextFormatter produces human-readable single-line log output
type TextFormatter struct {
	// TimestampFormat controls the timestamp layout (default: RFC3339)
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(entry.Level.ShortString())
	b.WriteString("]")

	if entry.Logger != "" {
		b.WriteString(" ")
		b.WriteString(entry.Logger)
		b.WriteString(":")
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		// Deterministic field order for readable, diffable output
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
		}
	}

	if entry.Error != nil {
		b.WriteString(fmt.Sprintf(" error=%q", entry.Error.Error()))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}

// JSONFormatter produces machine-readable JSON log output
type JSONFormatter struct {
	// TimestampFormat controls the timestamp layout (default: RFC3339)
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with default settings
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(f.TimestampFormat),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}

	for k, v := range entry.Fields {
		data[k] = v
	}

	if entry.Error != nil {
		data["error"] = entry.Error.Error()
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return append(encoded, '\n'), nil
}

// GetFormatter returns the formatter implementation for a format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	default:
		return NewTextFormatter()
	}
}

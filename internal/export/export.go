// Package export writes generated records as JSON, YAML or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zarlcorp/phantomid/internal/record"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for anything but json, yaml
// or csv.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// ParseFormat matches a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case JSON:
		return JSON, nil
	case YAML, "yml":
		return YAML, nil
	case CSV:
		return CSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes recs in the given format. columns is only used for CSV.
func Write(w io.Writer, f Format, columns []string, recs []record.Record) error {
	switch f {
	case JSON:
		return WriteJSON(w, recs)
	case YAML:
		return WriteYAML(w, recs)
	case CSV:
		return WriteCSV(w, columns, recs)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteJSON writes recs as an indented array of ordered objects.
func WriteJSON(w io.Writer, recs []record.Record) error {
	if recs == nil {
		recs = []record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes recs as a sequence of ordered mappings.
func WriteYAML(w io.Writer, recs []record.Record) error {
	if recs == nil {
		recs = []record.Record{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// WriteCSV writes a header row followed by one row per record. Fields a
// record lacks are written as empty cells; nested records should be
// flattened first.
func WriteCSV(w io.Writer, columns []string, recs []record.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range recs {
		if err := cw.Write(r.Row(columns)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

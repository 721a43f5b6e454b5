package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
)

// LoadCSV reads the dining hall export at path.
func LoadCSV(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV builds a catalog from a comma separated table with a header row.
// Rows that are too short or badly quoted are skipped. Quote characters never
// survive into field values, including stray ones inside unquoted fields.
func ParseCSV(r io.Reader) (*catalog.Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	c := catalog.New()

	// skip header
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return c, nil
		}
		var parseErr *csv.ParseError
		if !errors.As(err, &parseErr) {
			return nil, fmt.Errorf("failed to read menu header: %w", err)
		}
	}

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("failed to read menu row: %w", err)
		}

		addRow(c, stripQuotes(row))
	}

	return c, nil
}

func stripQuotes(row []string) []string {
	for i, field := range row {
		if strings.Contains(field, `"`) {
			row[i] = strings.ReplaceAll(field, `"`, "")
		}
	}
	return row
}

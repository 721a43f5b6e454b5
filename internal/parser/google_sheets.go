package parser

import (
	"context"
	"fmt"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const DefaultSheetRange = "A:Q" // hall through protein

type GoogleSheetsParser struct {
	service *sheets.Service
}

type Config struct {
	CredentialsJSON []byte
}

func New(cfg Config) (*GoogleSheetsParser, error) {
	ctx := context.Background()

	service, err := sheets.NewService(ctx, option.WithCredentialsJSON(cfg.CredentialsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &GoogleSheetsParser{
		service: service,
	}, nil
}

// ParseMenu reads the dining hall export from a spreadsheet using the same
// column layout as the CSV file.
func (p *GoogleSheetsParser) ParseMenu(ctx context.Context, spreadsheetID, readRange string) (*catalog.Catalog, error) {
	if readRange == "" {
		readRange = DefaultSheetRange
	}

	resp, err := p.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	return buildFromSheet(resp.Values), nil
}

func buildFromSheet(values [][]interface{}) *catalog.Catalog {
	c := catalog.New()

	// skip header
	for i := 1; i < len(values); i++ {
		row := values[i]
		// a row without a dish is not a menu item
		if len(row) <= colDish {
			continue
		}

		addRow(c, sheetRow(row))
	}

	return c
}

// sheetRow stringifies cells and pads the row, since the Sheets API drops
// trailing empty cells that the CSV export keeps.
func sheetRow(row []interface{}) []string {
	n := len(row)
	if n < MinColumns {
		n = MinColumns
	}

	cells := make([]string, n)
	for i, v := range row {
		if v == nil {
			continue
		}
		cells[i] = fmt.Sprintf("%v", v)
	}
	return cells
}

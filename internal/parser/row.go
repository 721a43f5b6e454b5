package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

// column positions in the dining hall export
const (
	colHall        = 1
	colMeal        = 2
	colStation     = 3
	colDish        = 4
	colServingSize = 5
	colCalories    = 6
	colFat         = 7
	colCarbs       = 12
	colProtein     = 16

	// MinColumns is the number of columns a row needs to be indexed.
	MinColumns = 17
)

// addRow indexes one data row. Short rows are skipped and reported as false.
func addRow(c *catalog.Catalog, row []string) bool {
	if len(row) < MinColumns {
		return false
	}

	item := domain.MenuItem{
		Dish:        strings.TrimSpace(row[colDish]),
		Station:     strings.TrimSpace(row[colStation]),
		ServingSize: strings.TrimSpace(row[colServingSize]),
		Facts: domain.NutritionFacts{
			Calories: parseNumber(row[colCalories]),
			Fat:      parseNumber(row[colFat]),
			Carbs:    parseNumber(row[colCarbs]),
			Protein:  parseNumber(row[colProtein]),
		},
	}

	c.AddItem(strings.TrimSpace(row[colHall]), strings.TrimSpace(row[colMeal]), item)
	return true
}

// parseNumber reads a nutrient cell. Blank, "NA", unparsable and non-finite
// cells count as 0.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NA") {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

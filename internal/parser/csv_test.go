package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

const header = "id,dining_hall,meal,station,dish,serving_size,calories,fat,sat_fat,trans_fat,cholesterol,sodium,carbs,fiber,sugar,added_sugar,protein\n"

func TestParseCSV(t *testing.T) {
	data := header +
		"1,Frank,Breakfast,Grill Station,Scrambled Eggs,85g,117.65,7.55,2,0,0,0,0,0,0,0,10.63\n" +
		"2,Frank,Breakfast,Grill Station,\"Bacon, Crispy\",2 slices,90,7,0,0,0,0,NA,0,0,0,6\n" +
		"3, Frary , Lunch ,Deli,Turkey Sandwich,1 each,,na,0,0,0,0,abc,0,0,0,22\n" +
		"4,Frank,Breakfast,Too,Short\n" +
		"5,Frank,Breakfast,Grill Station,Toast,1 slice,80,1,0,0,0,0,15,0,0,0,3\n"

	c, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Len() != 4 {
		t.Fatalf("expected 4 items, got %d", c.Len())
	}

	breakfast := c.Items("Frank", "Breakfast")
	if len(breakfast) != 3 {
		t.Fatalf("expected 3 breakfast items, got %d", len(breakfast))
	}

	eggs := breakfast[0]
	if eggs.Dish != "Scrambled Eggs" || eggs.Station != "Grill Station" || eggs.ServingSize != "85g" {
		t.Errorf("unexpected item %+v", eggs)
	}
	if eggs.Facts.Calories != 117.65 || eggs.Facts.Fat != 7.55 || eggs.Facts.Carbs != 0 || eggs.Facts.Protein != 10.63 {
		t.Errorf("unexpected facts %+v", eggs.Facts)
	}

	bacon := breakfast[1]
	if bacon.Dish != "Bacon, Crispy" {
		t.Errorf("expected quoted comma to be kept, got %q", bacon.Dish)
	}
	if bacon.Facts.Carbs != 0 {
		t.Errorf("expected NA carbs to be 0, got %v", bacon.Facts.Carbs)
	}

	if breakfast[2].Dish != "Toast" {
		t.Errorf("expected Toast after skipped short row, got %s", breakfast[2].Dish)
	}

	lunch := c.Items("Frary", "Lunch")
	if len(lunch) != 1 {
		t.Fatalf("expected trimmed hall and meal keys, got halls %v", c.DiningHalls())
	}
	sandwich := lunch[0].Facts
	if sandwich.Calories != 0 || sandwich.Fat != 0 || sandwich.Carbs != 0 || sandwich.Protein != 22 {
		t.Errorf("unexpected facts for blank/na/malformed cells %+v", sandwich)
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	c, err := ParseCSV(strings.NewReader(header))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog, got %d items", c.Len())
	}
}

func TestParseCSVEmpty(t *testing.T) {
	c, err := ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected empty catalog")
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.csv")
	data := header + "1,Collins,Dinner,Entree,Salmon,4 oz,233,10,0,0,0,0,0,0,0,0,34\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items := c.Items("Collins", "Dinner"); len(items) != 1 || items[0].Dish != "Salmon" {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseCSVNonFiniteNumbers(t *testing.T) {
	data := header +
		"1,Frank,Lunch,Grill,Broken Row,1 each,NaN,inf,0,0,0,0,Infinity,0,0,0,-inf\n" +
		"1,Frank,Lunch,Salad Bar,Salad,2 cups,800,1e999,0,0,0,0,9,0,0,0,3\n"

	c, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := c.Items("Frank", "Lunch")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Facts != domain.ZeroFacts() {
		t.Errorf("expected non-finite cells to read as zero, got %+v", items[0].Facts)
	}
	if items[1].Facts.Calories != 800 || items[1].Facts.Fat != 0 {
		t.Errorf("unexpected facts %+v", items[1].Facts)
	}
}

func TestParseCSVDropsQuoteCharacters(t *testing.T) {
	data := header +
		`1,Frank,Dinner,Grill,"Bacon, Thick Cut",5 "oz",90,7,0,0,0,0,0,0,0,0,6` + "\n" +
		`1,Frank,Dinner,Grill,"Chef ""Special""",1 each,300,7,0,0,0,0,0,0,0,0,6` + "\n"

	c, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := c.Items("Frank", "Dinner")
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Dish != "Bacon, Thick Cut" || items[0].ServingSize != "5 oz" {
		t.Errorf("unexpected first item %+v", items[0])
	}
	if items[1].Dish != "Chef Special" {
		t.Errorf("expected quotes dropped from dish, got %q", items[1].Dish)
	}
}

package domain

import "fmt"

type MenuItem struct {
	Dish        string         `json:"dish"`
	Station     string         `json:"station"`
	ServingSize string         `json:"serving_size"`
	Facts       NutritionFacts `json:"facts"`
}

func (i MenuItem) String() string {
	return fmt.Sprintf("%s (%s): %.1f kcal, %.1fg fat, %.1fg carbs, %.1fg protein",
		i.Dish, i.ServingSize, i.Facts.Calories, i.Facts.Fat, i.Facts.Carbs, i.Facts.Protein)
}

// MenuEntry locates an item inside the catalog.
type MenuEntry struct {
	Hall string   `json:"hall"`
	Meal string   `json:"meal"`
	Item MenuItem `json:"item"`
}

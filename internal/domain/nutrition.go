package domain

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// NutritionFacts holds calories (kcal) and macros (grams) for a serving or a day.
type NutritionFacts struct {
	Calories float64 `bson:"calories" json:"calories"`
	Protein  float64 `bson:"protein" json:"protein"`
	Carbs    float64 `bson:"carbs" json:"carbs"`
	Fat      float64 `bson:"fat" json:"fat"`
}

func ZeroFacts() NutritionFacts {
	return NutritionFacts{}
}

// Add returns the field-wise sum of f and other; neither operand is modified.
func (f NutritionFacts) Add(other NutritionFacts) NutritionFacts {
	return NutritionFacts{
		Calories: f.Calories + other.Calories,
		Protein:  f.Protein + other.Protein,
		Carbs:    f.Carbs + other.Carbs,
		Fat:      f.Fat + other.Fat,
	}
}

func (f NutritionFacts) String() string {
	return fmt.Sprintf("Calories: %.1f, Fat: %.1fg, Carbs: %.1fg, Protein: %.1fg",
		f.Calories, f.Fat, f.Carbs, f.Protein)
}

// DateKey formats t as the YYYY-MM-DD key used by daily logs.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

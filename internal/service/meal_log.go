package service

import (
	"errors"
	"fmt"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"go.uber.org/zap"
)

var ErrInvalidSelection = errors.New("invalid selection")

type MealLogService struct {
	catalog *catalog.Catalog
	logger  *zap.SugaredLogger
}

func NewMealLogService(catalog *catalog.Catalog, logger *zap.SugaredLogger) *MealLogService {
	return &MealLogService{
		catalog: catalog,
		logger:  logger,
	}
}

// LogItem logs the index-th item (zero based) served at hall for meal.
func (s *MealLogService) LogItem(user *domain.UserProfile, date, hall, meal string, index int) (domain.MenuItem, error) {
	items := s.catalog.Items(hall, meal)
	if index < 0 || index >= len(items) {
		return domain.MenuItem{}, fmt.Errorf("%w: item %d of %d at %s (%s)", ErrInvalidSelection, index+1, len(items), hall, meal)
	}

	item := items[index]
	user.LogMeal(date, item.Facts)

	s.logger.Infow("meal logged",
		"user_id", user.ID,
		"date", date,
		"hall", hall,
		"meal", meal,
		"dish", item.Dish,
		"calories", item.Facts.Calories,
	)

	return item, nil
}

type DailySummary struct {
	UserID            string                `json:"user_id"`
	Name              string                `json:"name"`
	Date              string                `json:"date"`
	Totals            domain.NutritionFacts `json:"totals"`
	Goals             domain.Goals          `json:"goals"`
	RemainingCalories float64               `json:"remaining_calories"`
}

func (s *MealLogService) Summary(user *domain.UserProfile, date string) DailySummary {
	return DailySummary{
		UserID:            user.ID,
		Name:              user.Name,
		Date:              date,
		Totals:            user.DailyTotal(date),
		Goals:             user.Goals,
		RemainingCalories: user.RemainingCalories(date),
	}
}

package service

import (
	"iter"
	"math"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"go.uber.org/zap"
)

// Recommend returns the entry whose calories are closest to target. On a tie
// the entry seen first wins. Entries whose distance is NaN are never picked,
// so it reports false for an empty sequence or one holding only such entries.
func Recommend(entries iter.Seq[domain.MenuEntry], target float64) (domain.MenuEntry, bool) {
	var (
		best    domain.MenuEntry
		minDiff float64
		found   bool
	)

	for e := range entries {
		diff := math.Abs(e.Item.Facts.Calories - target)
		if math.IsNaN(diff) {
			continue
		}
		if !found || diff < minDiff {
			best = e
			minDiff = diff
			found = true
		}
	}

	return best, found
}

type Recommendation struct {
	Entry      domain.MenuEntry `json:"entry"`
	Target     float64          `json:"target_calories"`
	Difference float64          `json:"difference"`
}

type RecommendationService struct {
	catalog *catalog.Catalog
	logger  *zap.SugaredLogger
}

func NewRecommendationService(catalog *catalog.Catalog, logger *zap.SugaredLogger) *RecommendationService {
	return &RecommendationService{
		catalog: catalog,
		logger:  logger,
	}
}

// RecommendFor targets the calories user still has left on date, which may
// be negative once the goal is exceeded.
func (s *RecommendationService) RecommendFor(user *domain.UserProfile, date string) (Recommendation, bool) {
	target := user.RemainingCalories(date)

	entry, ok := Recommend(s.catalog.AllItems(), target)
	if !ok {
		s.logger.Infow("no recommendation available", "user_id", user.ID, "date", date)
		return Recommendation{Target: target}, false
	}

	rec := Recommendation{
		Entry:      entry,
		Target:     target,
		Difference: math.Abs(entry.Item.Facts.Calories - target),
	}

	s.logger.Infow("recommendation made",
		"user_id", user.ID,
		"date", date,
		"target", target,
		"dish", entry.Item.Dish,
		"hall", entry.Hall,
		"meal", entry.Meal,
	)

	return rec, true
}

package domain

import "time"

type SummarySharedEvent struct {
	ID         string         `json:"id"`
	EventType  string         `json:"event_type"`
	FromUserID string         `json:"from_user_id"`
	FromName   string         `json:"from_name"`
	ToUserID   string         `json:"to_user_id"`
	ToName     string         `json:"to_name"`
	Date       string         `json:"date"`
	Totals     NutritionFacts `json:"totals"`
	Summary    string         `json:"summary"`
	Timestamp  time.Time      `json:"timestamp"`
}

const (
	EventSummaryShared = "nutrition.summary_shared"
)

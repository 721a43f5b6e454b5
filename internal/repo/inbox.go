package repo

import "github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"

// InboxRepository keeps summaries delivered to each user.
type InboxRepository interface {
	Add(event domain.SummarySharedEvent)
	ListByUserID(userID string) []domain.SummarySharedEvent
}

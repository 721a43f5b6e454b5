package memory

import (
	"sync"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

type Inbox struct {
	mu     sync.RWMutex
	byUser map[string][]domain.SummarySharedEvent
}

func NewInbox() *Inbox {
	return &Inbox{
		byUser: make(map[string][]domain.SummarySharedEvent),
	}
}

func (i *Inbox) Add(event domain.SummarySharedEvent) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.byUser[event.ToUserID] = append(i.byUser[event.ToUserID], event)
}

func (i *Inbox) ListByUserID(userID string) []domain.SummarySharedEvent {
	i.mu.RLock()
	defer i.mu.RUnlock()

	events := make([]domain.SummarySharedEvent, len(i.byUser[userID]))
	copy(events, i.byUser[userID])
	return events
}

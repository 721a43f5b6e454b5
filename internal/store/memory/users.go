package memory

import (
	"sync"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

// UserRegistry holds the profiles of one running process.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]*domain.UserProfile
	order []string
}

func NewUserRegistry(users ...*domain.UserProfile) *UserRegistry {
	r := &UserRegistry{
		users: make(map[string]*domain.UserProfile),
	}
	for _, u := range users {
		r.Add(u)
	}
	return r
}

// Add registers u, replacing any profile with the same id.
func (r *UserRegistry) Add(u *domain.UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[u.ID]; !exists {
		r.order = append(r.order, u.ID)
	}
	r.users[u.ID] = u
}

func (r *UserRegistry) GetByID(id string) (*domain.UserProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok
}

func (r *UserRegistry) List() []*domain.UserProfile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.UserProfile, 0, len(r.order))
	for _, id := range r.order {
		users = append(users, r.users[id])
	}
	return users
}

// FromRecords builds a registry from stored seeds.
func FromRecords(records []domain.UserRecord) *UserRegistry {
	r := NewUserRegistry()
	for _, rec := range records {
		r.Add(rec.Profile())
	}
	return r
}

// SampleUsers returns the two demo students, who are friends with each other.
func SampleUsers() []domain.UserRecord {
	return []domain.UserRecord{
		{ID: "1001", Name: "Alice", Goals: domain.Goals{Calories: 2000}, Friends: []string{"1002"}},
		{ID: "1002", Name: "Bob", Goals: domain.Goals{Calories: 2200}, Friends: []string{"1001"}},
	}
}

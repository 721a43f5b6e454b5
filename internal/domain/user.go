package domain

import (
	"fmt"
	"slices"
	"sort"
	"sync"
)

type Goals struct {
	Calories float64 `bson:"calories" json:"calories" validate:"gte=0"`
	Protein  float64 `bson:"protein" json:"protein" validate:"gte=0"`
	Carbs    float64 `bson:"carbs" json:"carbs" validate:"gte=0"`
	Fat      float64 `bson:"fat" json:"fat" validate:"gte=0"`
}

// UserProfile is a student with daily goals, a per-date nutrition log and
// friend ids. Friend ids are not guaranteed to resolve.
type UserProfile struct {
	ID      string
	Name    string
	Goals   Goals
	Friends []string

	mu  sync.Mutex
	log map[string]NutritionFacts
}

func NewUserProfile(id, name string, goals Goals, friends ...string) *UserProfile {
	u := &UserProfile{
		ID:    id,
		Name:  name,
		Goals: goals,
		log:   make(map[string]NutritionFacts),
	}
	for _, f := range friends {
		u.AddFriend(f)
	}
	return u
}

// AddFriend records a friend id once. Self references are ignored.
func (u *UserProfile) AddFriend(id string) {
	if id == "" || id == u.ID || slices.Contains(u.Friends, id) {
		return
	}
	u.Friends = append(u.Friends, id)
}

// LogMeal adds facts to the total for date. Logging the same dish twice
// counts it twice.
func (u *UserProfile) LogMeal(date string, facts NutritionFacts) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.log == nil {
		u.log = make(map[string]NutritionFacts)
	}
	total, ok := u.log[date]
	if !ok {
		total = ZeroFacts()
	}
	u.log[date] = total.Add(facts)
}

func (u *UserProfile) DailyTotal(date string) NutritionFacts {
	u.mu.Lock()
	defer u.mu.Unlock()

	total, ok := u.log[date]
	if !ok {
		return ZeroFacts()
	}
	return total
}

// RemainingCalories is negative once the goal has been exceeded.
func (u *UserProfile) RemainingCalories(date string) float64 {
	return u.Goals.Calories - u.DailyTotal(date).Calories
}

func (u *UserProfile) ShareSummary(date string) string {
	return fmt.Sprintf("%s's nutrition on %s: %s", u.Name, date, u.DailyTotal(date))
}

func (u *UserProfile) LoggedDates() []string {
	u.mu.Lock()
	defer u.mu.Unlock()

	dates := make([]string, 0, len(u.log))
	for d := range u.log {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// SharedSummary is one friend's copy of a daily summary.
type SharedSummary struct {
	FriendID   string `json:"friend_id"`
	FriendName string `json:"friend_name"`
	Summary    string `json:"summary"`
}

// UserRecord is the stored shape of a profile seed: identity, goals and
// friend ids without any log entries.
type UserRecord struct {
	ID      string   `bson:"_id" json:"id" validate:"required"`
	Name    string   `bson:"name" json:"name" validate:"required"`
	Goals   Goals    `bson:"goals" json:"goals"`
	Friends []string `bson:"friends" json:"friends"`
}

func (r UserRecord) Profile() *UserProfile {
	return NewUserProfile(r.ID, r.Name, r.Goals, r.Friends...)
}

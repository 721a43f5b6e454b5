package domain

import (
	"sync"
	"testing"
)

func TestDailyTotalWithoutLogsIsZero(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{Calories: 2000})

	if got := u.DailyTotal("2025-01-01"); got != ZeroFacts() {
		t.Errorf("expected zero facts, got %+v", got)
	}
}

func TestLogMealOrderDoesNotMatter(t *testing.T) {
	meals := []NutritionFacts{
		{Calories: 320, Protein: 12, Carbs: 40, Fat: 9},
		{Calories: 110.5, Protein: 3, Carbs: 21, Fat: 1.5},
		{Calories: 640, Protein: 31, Carbs: 55, Fat: 28},
	}
	want := NutritionFacts{Calories: 1070.5, Protein: 46, Carbs: 116, Fat: 38.5}

	forward := NewUserProfile("1", "A", Goals{})
	for _, m := range meals {
		forward.LogMeal("2025-01-01", m)
	}

	backward := NewUserProfile("2", "B", Goals{})
	for i := len(meals) - 1; i >= 0; i-- {
		backward.LogMeal("2025-01-01", meals[i])
	}

	if got := forward.DailyTotal("2025-01-01"); got != want {
		t.Errorf("forward: expected %+v, got %+v", want, got)
	}
	if got := backward.DailyTotal("2025-01-01"); got != want {
		t.Errorf("backward: expected %+v, got %+v", want, got)
	}
}

func TestLogMealKeepsDatesApart(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{Calories: 2000})
	u.LogMeal("2025-01-01", NutritionFacts{Calories: 500})
	u.LogMeal("2025-01-02", NutritionFacts{Calories: 700})

	if got := u.DailyTotal("2025-01-01").Calories; got != 500 {
		t.Errorf("expected 500, got %v", got)
	}
	if got := u.LoggedDates(); len(got) != 2 || got[0] != "2025-01-01" || got[1] != "2025-01-02" {
		t.Errorf("unexpected logged dates %v", got)
	}
}

func TestLogMealSameDishTwiceDoubles(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{Calories: 2000})
	dish := NutritionFacts{Calories: 250, Protein: 10}
	u.LogMeal("2025-01-01", dish)
	u.LogMeal("2025-01-01", dish)

	if got := u.DailyTotal("2025-01-01"); got.Calories != 500 || got.Protein != 20 {
		t.Errorf("expected doubled totals, got %+v", got)
	}
}

func TestRemainingCalories(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{Calories: 2000})
	u.LogMeal("2025-01-01", NutritionFacts{Calories: 1200})

	if got := u.RemainingCalories("2025-01-01"); got != 800 {
		t.Errorf("expected 800, got %v", got)
	}

	u.LogMeal("2025-01-01", NutritionFacts{Calories: 1000})
	if got := u.RemainingCalories("2025-01-01"); got != -200 {
		t.Errorf("expected -200, got %v", got)
	}
}

func TestShareSummary(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{Calories: 2000})
	u.LogMeal("2025-01-01", NutritionFacts{Calories: 117.65, Fat: 7.55, Carbs: 0, Protein: 10.63})

	want := "Alice's nutrition on 2025-01-01: Calories: 117.7, Fat: 7.5g, Carbs: 0.0g, Protein: 10.6g"
	if got := u.ShareSummary("2025-01-01"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestAddFriendIgnoresDuplicatesAndSelf(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{}, "1002", "1002", "1001", "9999")

	if len(u.Friends) != 2 || u.Friends[0] != "1002" || u.Friends[1] != "9999" {
		t.Errorf("unexpected friends %v", u.Friends)
	}
}

func TestLogMealConcurrent(t *testing.T) {
	u := NewUserProfile("1001", "Alice", Goals{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u.LogMeal("2025-01-01", NutritionFacts{Calories: 10})
		}()
	}
	wg.Wait()

	if got := u.DailyTotal("2025-01-01").Calories; got != 500 {
		t.Errorf("expected 500, got %v", got)
	}
}

func TestUserRecordProfile(t *testing.T) {
	rec := UserRecord{ID: "1002", Name: "Bob", Goals: Goals{Calories: 2200}, Friends: []string{"1001"}}
	p := rec.Profile()

	if p.ID != "1002" || p.Name != "Bob" || p.Goals.Calories != 2200 || len(p.Friends) != 1 {
		t.Errorf("unexpected profile %+v", p)
	}
	if got := p.DailyTotal("2025-01-01"); got != ZeroFacts() {
		t.Errorf("expected empty log, got %+v", got)
	}
}

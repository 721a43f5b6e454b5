package memory

import (
	"testing"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

func TestUserRegistry(t *testing.T) {
	r := FromRecords(SampleUsers())

	alice, ok := r.GetByID("1001")
	if !ok || alice.Name != "Alice" || alice.Goals.Calories != 2000 {
		t.Fatalf("unexpected alice %+v", alice)
	}
	if len(alice.Friends) != 1 || alice.Friends[0] != "1002" {
		t.Errorf("unexpected friends %v", alice.Friends)
	}

	if _, ok := r.GetByID("9999"); ok {
		t.Errorf("did not expect to resolve 9999")
	}

	r.Add(domain.NewUserProfile("1001", "Alice B", domain.Goals{Calories: 1800}))
	users := r.List()
	if len(users) != 2 || users[0].Name != "Alice B" || users[1].Name != "Bob" {
		t.Errorf("expected replacement in place, got %v", users)
	}
}

func TestInbox(t *testing.T) {
	in := NewInbox()
	in.Add(domain.SummarySharedEvent{ToUserID: "1002", Summary: "a"})
	in.Add(domain.SummarySharedEvent{ToUserID: "1002", Summary: "b"})
	in.Add(domain.SummarySharedEvent{ToUserID: "1001", Summary: "c"})

	got := in.ListByUserID("1002")
	if len(got) != 2 || got[0].Summary != "a" || got[1].Summary != "b" {
		t.Errorf("unexpected inbox %v", got)
	}
	if got := in.ListByUserID("4242"); len(got) != 0 {
		t.Errorf("expected empty inbox, got %v", got)
	}
}

package repo

import (
	"context"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
)

// UserRegistry resolves live profiles by id. A missing id is not an error.
type UserRegistry interface {
	GetByID(id string) (*domain.UserProfile, bool)
}

// UserRecordRepository stores profile seeds (identity, goals, friends).
type UserRecordRepository interface {
	List(ctx context.Context) ([]domain.UserRecord, error)
	Upsert(ctx context.Context, record *domain.UserRecord) error
}

// Package bootstrap loads the menu catalog and the user registry that both
// front ends start from.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/parser"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/repo"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/memory"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/mongo"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())

const (
	SourceCSV    = "csv"
	SourceSheets = "sheets"
)

type MenuConfig struct {
	Source          string
	File            string
	CredentialsPath string
	SpreadsheetID   string
	SheetRange      string
}

type UsersConfig struct {
	MongoURI      string
	MongoDatabase string
	Timeout       time.Duration
	// Seed writes the sample users before loading.
	Seed bool
}

// LoadMenu builds the catalog from the configured source. Any error is fatal
// for the caller since nothing works without a menu.
func LoadMenu(ctx context.Context, cfg MenuConfig, logger *zap.SugaredLogger) (*catalog.Catalog, error) {
	var (
		c   *catalog.Catalog
		err error
	)

	switch cfg.Source {
	case SourceSheets:
		c, err = loadSheet(ctx, cfg)
	case SourceCSV, "":
		c, err = parser.LoadCSV(cfg.File)
	default:
		return nil, fmt.Errorf("unknown menu source %q", cfg.Source)
	}
	if err != nil {
		return nil, err
	}

	logger.Infow("menu loaded",
		"source", cfg.Source,
		"halls", len(c.DiningHalls()),
		"items", c.Len(),
	)

	return c, nil
}

func loadSheet(ctx context.Context, cfg MenuConfig) (*catalog.Catalog, error) {
	if cfg.CredentialsPath == "" || cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets source needs credentials and a spreadsheet id")
	}

	credsJSON, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read Google credentials: %w", err)
	}

	p, err := parser.New(parser.Config{CredentialsJSON: credsJSON})
	if err != nil {
		return nil, err
	}

	return p.ParseMenu(ctx, cfg.SpreadsheetID, cfg.SheetRange)
}

// LoadUsers seeds the registry from MongoDB when a URI is configured and
// falls back to the sample students otherwise. The returned storage is nil
// in the fallback case.
func LoadUsers(ctx context.Context, cfg UsersConfig, logger *zap.SugaredLogger) (*memory.UserRegistry, *mongo.Storage, error) {
	if cfg.MongoURI == "" {
		logger.Info("no user store configured, using sample users")
		return memory.FromRecords(memory.SampleUsers()), nil, nil
	}

	storage, err := mongo.New(mongo.Config{
		URI:      cfg.MongoURI,
		Database: cfg.MongoDatabase,
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, nil, err
	}

	users := mongo.NewUserRepository(storage.Database())
	if cfg.Seed {
		if err := SeedUsers(ctx, users, memory.SampleUsers()); err != nil {
			_ = storage.Close(ctx)
			return nil, nil, err
		}
		logger.Info("sample users seeded")
	}

	records, err := users.List(ctx)
	if err != nil {
		_ = storage.Close(ctx)
		return nil, nil, err
	}

	logger.Infow("users loaded", "count", len(records))

	return memory.FromRecords(records), storage, nil
}

// SeedUsers writes records into an empty or existing store.
func SeedUsers(ctx context.Context, users repo.UserRecordRepository, records []domain.UserRecord) error {
	for i := range records {
		if err := Validate.Struct(records[i]); err != nil {
			return fmt.Errorf("invalid user %q: %w", records[i].ID, err)
		}
		if err := users.Upsert(ctx, &records[i]); err != nil {
			return err
		}
	}
	return nil
}

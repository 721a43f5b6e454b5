package main

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/bootstrap"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/env"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/service"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	env      string
	logLevel string
	menu     bootstrap.MenuConfig
	users    bootstrap.UsersConfig
	rabbitMQ queue.Config
}

func main() {
	_ = godotenv.Load()

	cfg := config{
		env:      env.GetString("ENV", "development"),
		logLevel: env.GetString("LOG_LEVEL", "warn"),
		menu: bootstrap.MenuConfig{
			Source:          env.GetString("MENU_SOURCE", bootstrap.SourceCSV),
			File:            env.GetString("MENU_FILE", "PomonaDiningHalls.csv"),
			CredentialsPath: env.GetString("GOOGLE_CREDENTIALS_PATH", ""),
			SpreadsheetID:   env.GetString("MENU_SPREADSHEET_ID", ""),
			SheetRange:      env.GetString("MENU_SHEET_RANGE", ""),
		},
		users: bootstrap.UsersConfig{
			MongoURI:      env.GetString("MONGO_URI", ""),
			MongoDatabase: env.GetString("MONGO_DATABASE", "nutrition"),
			Timeout:       env.GetDuration("MONGO_TIMEOUT", 10*time.Second),
			Seed:          env.GetBool("SEED_USERS", false),
		},
		rabbitMQ: queue.Config{
			URL:           env.GetString("RABBITMQ_URL", ""),
			MaxRetries:    env.GetInt("RABBITMQ_MAX_RETRIES", 3),
			RetryDelay:    env.GetDuration("RABBITMQ_RETRY_DELAY", 2*time.Second),
			PrefetchCount: env.GetInt("RABBITMQ_PREFETCH_COUNT", 10),
		},
	}

	// logger, quiet by default so it does not interleave with prompts
	logger := newLogger(cfg)
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	menu, err := bootstrap.LoadMenu(ctx, cfg.menu, logger)
	if err != nil {
		logger.Fatalw("failed to load menu", "error", err)
	}

	registry, storage, err := bootstrap.LoadUsers(ctx, cfg.users, logger)
	if err != nil {
		logger.Fatalw("failed to load users", "error", err)
	}
	if storage != nil {
		// profiles are copied into memory, the store is not needed afterwards
		_ = storage.Close(ctx)
	}

	var deliverer service.Deliverer = service.NewConsoleDeliverer(os.Stdout)
	if cfg.rabbitMQ.URL != "" {
		broker, err := queue.NewRabbitMQBroker(cfg.rabbitMQ)
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		defer broker.Close()
		deliverer = service.NewBrokerDeliverer(broker)
	}

	c := &console{
		in:          bufio.NewScanner(os.Stdin),
		out:         os.Stdout,
		catalog:     menu,
		registry:    registry,
		mealLog:     service.NewMealLogService(menu, logger),
		recommender: service.NewRecommendationService(menu, logger),
		sharing:     service.NewSharingService(registry, deliverer, logger),
		now:         time.Now,
	}

	c.run(context.Background())
}

func newLogger(cfg config) *zap.SugaredLogger {
	zcfg := zap.NewProductionConfig()
	if cfg.env == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.logLevel)
	if err == nil {
		zcfg.Level = level
	}

	return zap.Must(zcfg.Build()).Sugar()
}

package main

import (
	"context"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/bootstrap"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/env"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/service"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/memory"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/worker"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.1.0"

//	@title			Student Nutrition Tracker
//	@description	Dining hall menus, daily nutrition logs and meal recommendations.

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
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

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	if cfg.env == "development" {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// menu
	menu, err := bootstrap.LoadMenu(ctx, cfg.menu, logger)
	if err != nil {
		logger.Fatalw("failed to load menu", "error", err)
	}

	// users
	registry, storage, err := bootstrap.LoadUsers(ctx, cfg.users, logger)
	if err != nil {
		logger.Fatalw("failed to load users", "error", err)
	}

	inbox := memory.NewInbox()

	// share delivery goes through RabbitMQ when configured, otherwise
	// straight into the in-process inbox
	var (
		broker    queue.Broker
		deliverer service.Deliverer
		inboxWkr  *worker.ShareInboxWorker
	)
	if cfg.rabbitMQ.URL != "" {
		rmq, err := queue.NewRabbitMQBroker(cfg.rabbitMQ)
		if err != nil {
			logger.Fatalw("failed to connect to RabbitMQ", "error", err)
		}
		logger.Info("connected to RabbitMQ")

		broker = rmq
		deliverer = service.NewBrokerDeliverer(rmq)
		inboxWkr = worker.NewShareInboxWorker(inbox, rmq, logger)
	} else {
		logger.Warn("RabbitMQ not configured, shared summaries stay in process")
		deliverer = service.NewInboxDeliverer(inbox)
	}

	app := &application{
		config:      cfg,
		logger:      logger,
		catalog:     menu,
		registry:    registry,
		inbox:       inbox,
		storage:     storage,
		broker:      broker,
		mealLog:     service.NewMealLogService(menu, logger),
		recommender: service.NewRecommendationService(menu, logger),
		sharing:     service.NewSharingService(registry, deliverer, logger),
		inboxWorker: inboxWkr,
		now:         time.Now,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

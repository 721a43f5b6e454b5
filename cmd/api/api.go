package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/docs"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/bootstrap"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/catalog"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/service"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/memory"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/mongo"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	catalog     *catalog.Catalog
	registry    *memory.UserRegistry
	inbox       *memory.Inbox
	storage     *mongo.Storage
	broker      queue.Broker
	mealLog     *service.MealLogService
	recommender *service.RecommendationService
	sharing     *service.SharingService
	inboxWorker *worker.ShareInboxWorker
	now         func() time.Time
}

type config struct {
	addr     string
	env      string
	apiURL   string
	menu     bootstrap.MenuConfig
	users    bootstrap.UsersConfig
	rabbitMQ queue.Config
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Route("/halls", func(r chi.Router) {
			r.Get("/", app.listHallsHandler)
			r.Get("/{hall}/meals", app.listMealsHandler)
			r.Get("/{hall}/meals/{meal}/items", app.listItemsHandler)
		})

		r.Route("/users/{user_id}", func(r chi.Router) {
			r.Post("/meals", app.logMealHandler)
			r.Get("/summary", app.getSummaryHandler)
			r.Get("/recommendation", app.getRecommendationHandler)
			r.Post("/share", app.shareHandler)
			r.Get("/inbox", app.getInboxHandler)
		})

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	if app.inboxWorker != nil {
		if err := app.inboxWorker.Start(); err != nil {
			return fmt.Errorf("failed to start share inbox worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.inboxWorker != nil {
			app.inboxWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}

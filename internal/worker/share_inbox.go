package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/repo"
	"go.uber.org/zap"
)

// ShareInboxWorker files shared summaries into the receiving friend's inbox.
type ShareInboxWorker struct {
	inbox  repo.InboxRepository
	broker queue.Broker
	logger *zap.SugaredLogger
	ctx    context.Context
	cancel context.CancelFunc
}

func NewShareInboxWorker(
	inbox repo.InboxRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ShareInboxWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &ShareInboxWorker{
		inbox:  inbox,
		broker: broker,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (w *ShareInboxWorker) Start() error {
	w.logger.Info("starting share inbox worker")

	return w.broker.Subscribe(w.ctx, queue.QueueNutritionShare, w.handleMessage)
}

func (w *ShareInboxWorker) Stop() {
	w.logger.Info("stopping share inbox worker")
	w.cancel()
}

func (w *ShareInboxWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.SummarySharedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.ToUserID == "" {
		w.logger.Errorw("shared summary without recipient", "event_id", event.ID)
		return fmt.Errorf("event %s has no recipient", event.ID)
	}

	w.inbox.Add(event)

	w.logger.Infow("shared summary received",
		"event_id", event.ID,
		"from_user_id", event.FromUserID,
		"to_user_id", event.ToUserID,
		"date", event.Date,
	)

	return nil
}

package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/store/memory"
	"go.uber.org/zap"
)

type loopbackBroker struct {
	handlers map[string]queue.MessageHandler
}

func (b *loopbackBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	if h, ok := b.handlers[queueName]; ok {
		return h(ctx, message)
	}
	return nil
}

func (b *loopbackBroker) Subscribe(ctx context.Context, queueName string, handler queue.MessageHandler) error {
	if b.handlers == nil {
		b.handlers = make(map[string]queue.MessageHandler)
	}
	b.handlers[queueName] = handler
	return nil
}

func (b *loopbackBroker) Close() error { return nil }

func TestShareInboxWorker(t *testing.T) {
	broker := &loopbackBroker{}
	inbox := memory.NewInbox()

	w := NewShareInboxWorker(inbox, broker, zap.NewNop().Sugar())
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	event := domain.SummarySharedEvent{
		ID:         "evt-1",
		EventType:  domain.EventSummaryShared,
		FromUserID: "1001",
		ToUserID:   "1002",
		Date:       "2025-01-01",
		Summary:    "Alice's nutrition on 2025-01-01: Calories: 500.0, Fat: 0.0g, Carbs: 0.0g, Protein: 0.0g",
	}
	body, _ := json.Marshal(event)

	if err := broker.Publish(context.Background(), queue.QueueNutritionShare, body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := inbox.ListByUserID("1002")
	if len(got) != 1 || got[0].ID != "evt-1" || got[0].Summary != event.Summary {
		t.Errorf("unexpected inbox %+v", got)
	}
}

func TestShareInboxWorkerRejectsBadMessages(t *testing.T) {
	inbox := memory.NewInbox()
	w := NewShareInboxWorker(inbox, &loopbackBroker{}, zap.NewNop().Sugar())

	if err := w.handleMessage(context.Background(), []byte("{not json")); err == nil {
		t.Errorf("expected unmarshal error")
	}

	body, _ := json.Marshal(domain.SummarySharedEvent{ID: "evt-2"})
	if err := w.handleMessage(context.Background(), body); err == nil {
		t.Errorf("expected error for missing recipient")
	}
}

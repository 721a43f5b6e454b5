package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/queue"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Share pairs user's summary for date with every friend the registry can
// resolve. Friend ids that no longer resolve are skipped.
func Share(user *domain.UserProfile, date string, registry repo.UserRegistry) []domain.SharedSummary {
	summary := user.ShareSummary(date)

	shared := make([]domain.SharedSummary, 0, len(user.Friends))
	for _, id := range user.Friends {
		friend, ok := registry.GetByID(id)
		if !ok {
			continue
		}
		shared = append(shared, domain.SharedSummary{
			FriendID:   friend.ID,
			FriendName: friend.Name,
			Summary:    summary,
		})
	}
	return shared
}

type Deliverer interface {
	Deliver(ctx context.Context, from *domain.UserProfile, date string, shared domain.SharedSummary) error
}

type SharingService struct {
	registry  repo.UserRegistry
	deliverer Deliverer
	logger    *zap.SugaredLogger
}

func NewSharingService(registry repo.UserRegistry, deliverer Deliverer, logger *zap.SugaredLogger) *SharingService {
	return &SharingService{
		registry:  registry,
		deliverer: deliverer,
		logger:    logger,
	}
}

// ShareDaily delivers user's summary for date to each resolvable friend and
// returns what was delivered. Delivery stops at the first failure.
func (s *SharingService) ShareDaily(ctx context.Context, user *domain.UserProfile, date string) ([]domain.SharedSummary, error) {
	shared := Share(user, date, s.registry)

	for i, sh := range shared {
		if err := s.deliverer.Deliver(ctx, user, date, sh); err != nil {
			s.logger.Errorw("failed to deliver summary", "user_id", user.ID, "friend_id", sh.FriendID, "error", err)
			return shared[:i], fmt.Errorf("failed to deliver summary to %s: %w", sh.FriendID, err)
		}
	}

	s.logger.Infow("summary shared",
		"user_id", user.ID,
		"date", date,
		"friends", len(user.Friends),
		"delivered", len(shared),
	)

	return shared, nil
}

// ConsoleDeliverer prints one line per friend.
type ConsoleDeliverer struct {
	w io.Writer
}

func NewConsoleDeliverer(w io.Writer) *ConsoleDeliverer {
	return &ConsoleDeliverer{w: w}
}

func (d *ConsoleDeliverer) Deliver(_ context.Context, _ *domain.UserProfile, _ string, shared domain.SharedSummary) error {
	_, err := fmt.Fprintf(d.w, "Shared with %s: %s\n", shared.FriendName, shared.Summary)
	return err
}

// BrokerDeliverer publishes a SummarySharedEvent per friend.
type BrokerDeliverer struct {
	broker queue.Broker
	now    func() time.Time
}

func NewBrokerDeliverer(broker queue.Broker) *BrokerDeliverer {
	return &BrokerDeliverer{
		broker: broker,
		now:    time.Now,
	}
}

func (d *BrokerDeliverer) Deliver(ctx context.Context, from *domain.UserProfile, date string, shared domain.SharedSummary) error {
	event := newSharedEvent(from, date, shared, d.now())

	eventBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := d.broker.Publish(ctx, queue.QueueNutritionShare, eventBytes); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// InboxDeliverer files shared summaries directly into the friend's inbox,
// for deployments without a broker.
type InboxDeliverer struct {
	inbox repo.InboxRepository
	now   func() time.Time
}

func NewInboxDeliverer(inbox repo.InboxRepository) *InboxDeliverer {
	return &InboxDeliverer{
		inbox: inbox,
		now:   time.Now,
	}
}

func (d *InboxDeliverer) Deliver(_ context.Context, from *domain.UserProfile, date string, shared domain.SharedSummary) error {
	d.inbox.Add(newSharedEvent(from, date, shared, d.now()))
	return nil
}

func newSharedEvent(from *domain.UserProfile, date string, shared domain.SharedSummary, at time.Time) domain.SummarySharedEvent {
	return domain.SummarySharedEvent{
		ID:         uuid.NewString(),
		EventType:  domain.EventSummaryShared,
		FromUserID: from.ID,
		FromName:   from.Name,
		ToUserID:   shared.FriendID,
		ToName:     shared.FriendName,
		Date:       date,
		Totals:     from.DailyTotal(date),
		Summary:    shared.Summary,
		Timestamp:  at,
	}
}

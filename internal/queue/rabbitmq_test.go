package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestBackoff(t *testing.T) {
	base := 2 * time.Second
	want := []time.Duration{2 * time.Second, 4 * time.Second, 8 * time.Second}

	for i, w := range want {
		if got := backoff(base, i); got != w {
			t.Errorf("retry %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestRetryCountOf(t *testing.T) {
	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{"nil headers", nil, 0},
		{"missing", amqp.Table{}, 0},
		{"int32", amqp.Table{headerRetryCount: int32(2)}, 2},
		{"wrong type", amqp.Table{headerRetryCount: "2"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryCountOf(tt.headers); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDeadLetterQueue(t *testing.T) {
	if got := DeadLetterQueue(QueueNutritionShare); got != QueueNutritionShareDLQ {
		t.Errorf("expected %s, got %s", QueueNutritionShareDLQ, got)
	}
}

type settlement struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (s *settlement) Ack(tag uint64, multiple bool) error {
	s.acked = true
	return nil
}

func (s *settlement) Nack(tag uint64, multiple, requeue bool) error {
	s.nacked = true
	s.requeue = requeue
	return nil
}

func (s *settlement) Reject(tag uint64, requeue bool) error {
	s.nacked = true
	s.requeue = requeue
	return nil
}

type published struct {
	queue string
	msg   amqp.Publishing
}

func TestHandleMessage(t *testing.T) {
	handlerErr := errors.New("recipient unknown")
	publishErr := errors.New("channel closed")

	tests := []struct {
		name       string
		handlerErr error
		headers    amqp.Table
		publishErr error
		wantQueue  string
		wantAck    bool
	}{
		{"handled", nil, nil, nil, "", true},
		{"retried", handlerErr, nil, nil, QueueNutritionShare, true},
		{"dead lettered", handlerErr, amqp.Table{headerRetryCount: int32(3)}, nil, QueueNutritionShareDLQ, true},
		{"retry publish fails", handlerErr, nil, publishErr, QueueNutritionShare, false},
		{"dead letter publish fails", handlerErr, amqp.Table{headerRetryCount: int32(3)}, publishErr, QueueNutritionShareDLQ, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sent []published
			b := &RabbitMQBroker{maxRetries: 3}
			b.republish = func(ctx context.Context, queueName string, msg amqp.Publishing) error {
				sent = append(sent, published{queue: queueName, msg: msg})
				return tt.publishErr
			}

			ack := &settlement{}
			msg := amqp.Delivery{Acknowledger: ack, Headers: tt.headers, Body: []byte(`{}`)}
			handler := func(ctx context.Context, message []byte) error { return tt.handlerErr }

			b.handleMessage(context.Background(), msg, handler, QueueNutritionShare)

			if ack.acked != tt.wantAck {
				t.Errorf("expected acked=%v, got %v", tt.wantAck, ack.acked)
			}
			if !tt.wantAck && !(ack.nacked && ack.requeue) {
				t.Errorf("expected a requeueing nack, got %+v", ack)
			}
			if tt.wantQueue == "" {
				if len(sent) != 0 {
					t.Errorf("expected nothing republished, got %+v", sent)
				}
				return
			}
			if len(sent) != 1 || sent[0].queue != tt.wantQueue {
				t.Fatalf("expected one message to %s, got %+v", tt.wantQueue, sent)
			}
		})
	}
}

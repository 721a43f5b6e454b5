package queue

import (
	"context"
)

type Broker interface {
	Publish(ctx context.Context, queueName string, message []byte) error
	Subscribe(ctx context.Context, queueName string, handler MessageHandler) error
	Close() error
}

type MessageHandler func(ctx context.Context, message []byte) error

const (
	QueueNutritionShare    = "nutrition-share"
	QueueNutritionShareDLQ = QueueNutritionShare + dlqSuffix

	dlqSuffix = "-dlq"
)

// DeadLetterQueue names the queue that receives messages of queueName after
// the last retry fails.
func DeadLetterQueue(queueName string) string {
	return queueName + dlqSuffix
}

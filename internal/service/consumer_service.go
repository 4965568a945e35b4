package service

import (
	"context"
	"time"

	"ai-notes-hub/internal/pkg/errortracker"
	"ai-notes-hub/internal/pkg/logger"
	"ai-notes-hub/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains captured exceptions: every capture is written to
// the error sink and, when a bus is configured, forwarded as an event.
type consumerService struct {
	subscriber     message.Subscriber
	topicName      string
	sink           logger.ILogger
	eventPublisher events.Publisher
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	sink logger.ILogger,
	eventPublisher events.Publisher,
) IConsumerService {
	return &consumerService{
		subscriber:     subscriber,
		topicName:      topicName,
		sink:           sink,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	captured, err := errortracker.Decode(msg.Payload)
	if err != nil {
		cs.sink.Error("ErrorTracker", "Failed to decode captured exception", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite redelivery
		return
	}

	cs.sink.Error("ErrorTracker", captured.Error, map[string]interface{}{
		"capture_id":  captured.Id,
		"tags":        captured.Tags,
		"extra":       captured.Extra,
		"occurred_at": captured.OccurredAt.Format(time.RFC3339Nano),
	})

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeExceptionCaptured,
			Data: map[string]interface{}{
				"capture_id": captured.Id,
				"error":      captured.Error,
				"tags":       captured.Tags,
			},
			OccurredAt: captured.OccurredAt,
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			cs.sink.Warn("ErrorTracker", "Failed to forward captured exception", map[string]interface{}{
				"capture_id": captured.Id,
				"error":      err.Error(),
			})
		}
	}

	msg.Ack()
}

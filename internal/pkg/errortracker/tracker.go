package errortracker

import (
	"encoding/json"
	"time"

	"ai-notes-hub/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// Tracker records failures without blocking the caller.
type Tracker interface {
	CaptureException(err error, tags map[string]string, extra map[string]interface{})
}

// CapturedException is the payload carried on the capture topic.
type CapturedException struct {
	Id         string                 `json:"id"`
	Error      string                 `json:"error"`
	Tags       map[string]string      `json:"tags,omitempty"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// PubSubTracker hands captures to a watermill publisher; a consumer on
// the same topic does the actual reporting.
type PubSubTracker struct {
	publisher message.Publisher
	topic     string
	logger    logger.ILogger
}

var _ Tracker = (*PubSubTracker)(nil)

func NewPubSubTracker(publisher message.Publisher, topic string, log logger.ILogger) *PubSubTracker {
	return &PubSubTracker{
		publisher: publisher,
		topic:     topic,
		logger:    log,
	}
}

func (t *PubSubTracker) CaptureException(err error, tags map[string]string, extra map[string]interface{}) {
	if err == nil {
		return
	}

	captured := CapturedException{
		Id:         uuid.NewString(),
		Error:      err.Error(),
		Tags:       tags,
		Extra:      extra,
		OccurredAt: time.Now(),
	}

	payload, mErr := json.Marshal(captured)
	if mErr != nil {
		t.logger.Error("ErrorTracker", "Failed to encode captured exception", map[string]interface{}{
			"error":          mErr.Error(),
			"original_error": err.Error(),
		})
		return
	}

	if pErr := t.publisher.Publish(t.topic, message.NewMessage(watermill.NewUUID(), payload)); pErr != nil {
		t.logger.Error("ErrorTracker", "Failed to publish captured exception", map[string]interface{}{
			"error":          pErr.Error(),
			"original_error": err.Error(),
		})
	}
}

// Decode parses a capture message payload.
func Decode(payload []byte) (*CapturedException, error) {
	var captured CapturedException
	if err := json.Unmarshal(payload, &captured); err != nil {
		return nil, err
	}
	return &captured, nil
}

package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"fyyur/entities"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
)

// ErrMalformedEvent marks messages that will never be processed, however
// many times they are retried.
var ErrMalformedEvent = errors.New("malformed event")

// StoreInDataLake keeps the raw payload of every event published on Topic.
// It works on messages rather than typed events so that event types added
// later are stored without changes here.
func (h Handler) StoreInDataLake(msg *message.Message) error {
	ctx := msg.Context()

	var event struct {
		Header entities.EventHeader `json:"header"`
	}
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		return fmt.Errorf("%w: could not unmarshal event header: %w", ErrMalformedEvent, err)
	}

	if event.Header.ID == "" {
		event.Header.ID = msg.UUID
	}

	eventName := marshaler.NameFromMessage(msg)
	if eventName == "" {
		return fmt.Errorf("%w: message %s has no event name", ErrMalformedEvent, msg.UUID)
	}

	log.FromContext(ctx).WithField("event_name", eventName).Info("Storing event in data lake")

	return h.dataLake.Create(ctx, entities.Event{
		EventID:      event.Header.ID,
		PublishedAt:  event.Header.PublishedAt,
		EventName:    eventName,
		EventPayload: json.RawMessage(msg.Payload),
	})
}

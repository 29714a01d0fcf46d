// Package poison inspects and drains the poison queue stream, where the
// router moves messages that failed permanently.
package poison

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

type Message struct {
	ID       string
	Reason   string
	Topic    string
	Handler  string
	streamID string
	msg      *message.Message
}

type Queue struct {
	rdb       *redis.Client
	publisher message.Publisher
	topic     string
}

func NewQueue(rdb *redis.Client, publisher message.Publisher, topic string) *Queue {
	if rdb == nil {
		panic("missing redis client")
	}
	if publisher == nil {
		panic("missing publisher")
	}

	return &Queue{
		rdb:       rdb,
		publisher: publisher,
		topic:     topic,
	}
}

func (q *Queue) Preview(ctx context.Context) ([]Message, error) {
	entries, err := q.rdb.XRange(ctx, q.topic, "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", q.topic, err)
	}

	messages := make([]Message, 0, len(entries))
	for _, entry := range entries {
		msg, err := redisstream.DefaultMarshallerUnmarshaller{}.Unmarshal(entry.Values)
		if err != nil {
			return nil, fmt.Errorf("could not unmarshal entry %s: %w", entry.ID, err)
		}

		messages = append(messages, Message{
			ID:       msg.UUID,
			Reason:   msg.Metadata.Get(middleware.ReasonForPoisonedKey),
			Topic:    msg.Metadata.Get(middleware.PoisonedTopicKey),
			Handler:  msg.Metadata.Get(middleware.PoisonedHandlerKey),
			streamID: entry.ID,
			msg:      msg,
		})
	}

	return messages, nil
}

func (q *Queue) Remove(ctx context.Context, messageID string) error {
	m, err := q.find(ctx, messageID)
	if err != nil {
		return err
	}

	return q.rdb.XDel(ctx, q.topic, m.streamID).Err()
}

// Requeue publishes the message back to the topic it was consumed from and
// removes it from the poison queue.
func (q *Queue) Requeue(ctx context.Context, messageID string) error {
	m, err := q.find(ctx, messageID)
	if err != nil {
		return err
	}
	if m.Topic == "" {
		return fmt.Errorf("message %s has no original topic", messageID)
	}

	requeued := message.NewMessage(m.msg.UUID, m.msg.Payload)
	for k, v := range m.msg.Metadata {
		switch k {
		case middleware.ReasonForPoisonedKey, middleware.PoisonedTopicKey,
			middleware.PoisonedHandlerKey, middleware.PoisonedSubscriberKey:
			continue
		}
		requeued.Metadata.Set(k, v)
	}

	if err := q.publisher.Publish(m.Topic, requeued); err != nil {
		return fmt.Errorf("could not requeue message %s: %w", messageID, err)
	}

	return q.rdb.XDel(ctx, q.topic, m.streamID).Err()
}

func (q *Queue) find(ctx context.Context, messageID string) (Message, error) {
	messages, err := q.Preview(ctx)
	if err != nil {
		return Message{}, err
	}

	for _, m := range messages {
		if m.ID == messageID {
			return m, nil
		}
	}

	return Message{}, fmt.Errorf("message %s not found in %s", messageID, q.topic)
}

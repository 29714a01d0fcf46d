package poison_test

import (
	"context"
	"testing"

	"fyyur/message/poison"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const poisonTopic = "PoisonQueue"

func newQueue(t *testing.T) (*poison.Queue, *redis.Client, message.Publisher) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	pub, err := redisstream.NewPublisher(redisstream.PublisherConfig{Client: rdb}, watermill.NopLogger{})
	require.NoError(t, err)

	return poison.NewQueue(rdb, pub, poisonTopic), rdb, pub
}

// poisonMessages publishes messages the way the poison queue middleware
// does after a handler failed permanently.
func poisonMessages(t *testing.T, pub message.Publisher, ids ...string) {
	t.Helper()

	for _, id := range ids {
		msg := message.NewMessage(id, []byte(`{"header":{}}`))
		msg.Metadata.Set("name", "VenueCreated_v1")
		msg.Metadata.Set(middleware.ReasonForPoisonedKey, "malformed event")
		msg.Metadata.Set(middleware.PoisonedTopicKey, "events")
		msg.Metadata.Set(middleware.PoisonedHandlerKey, "StoreInDataLake")

		require.NoError(t, pub.Publish(poisonTopic, msg))
	}
}

func TestQueue_Preview(t *testing.T) {
	ctx := context.Background()
	queue, _, pub := newQueue(t)

	poisonMessages(t, pub, "first", "second")

	messages, err := queue.Preview(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "first", messages[0].ID)
	assert.Equal(t, "malformed event", messages[0].Reason)
	assert.Equal(t, "events", messages[0].Topic)
	assert.Equal(t, "StoreInDataLake", messages[0].Handler)
	assert.Equal(t, "second", messages[1].ID)
}

func TestQueue_Remove(t *testing.T) {
	ctx := context.Background()
	queue, _, pub := newQueue(t)

	poisonMessages(t, pub, "first", "second", "third")

	require.NoError(t, queue.Remove(ctx, "second"))
	assert.Error(t, queue.Remove(ctx, "second"))

	messages, err := queue.Preview(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].ID)
	assert.Equal(t, "third", messages[1].ID)
}

func TestQueue_Requeue(t *testing.T) {
	ctx := context.Background()
	queue, rdb, pub := newQueue(t)

	poisonMessages(t, pub, "first")

	require.NoError(t, queue.Requeue(ctx, "first"))

	messages, err := queue.Preview(ctx)
	require.NoError(t, err)
	assert.Empty(t, messages)

	entries, err := rdb.XRange(ctx, "events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	requeued, err := redisstream.DefaultMarshallerUnmarshaller{}.Unmarshal(entries[0].Values)
	require.NoError(t, err)
	assert.Equal(t, "first", requeued.UUID)
	assert.Equal(t, "VenueCreated_v1", requeued.Metadata.Get("name"))
	assert.Empty(t, requeued.Metadata.Get(middleware.ReasonForPoisonedKey))
}

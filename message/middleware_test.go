package message

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fyyur/entities"
	"fyyur/message/event"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*message.Router, *gochannel.GoChannel) {
	t.Helper()

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, logger)

	router, err := message.NewRouter(message.RouterConfig{}, logger)
	require.NoError(t, err)
	require.NoError(t, useMiddlewares(router, pubSub, logger))

	return router, pubSub
}

func runRouter(t *testing.T, router *message.Router) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		_ = router.Close()
	})

	go func() {
		_ = router.Run(ctx)
	}()
	<-router.Running()
}

func publish(t *testing.T, pub message.Publisher, topic string) {
	t.Helper()
	require.NoError(t, pub.Publish(topic, message.NewMessage(watermill.NewUUID(), []byte("{}"))))
}

func TestMiddlewares_permanent_error_goes_to_poison_queue_without_retries(t *testing.T) {
	router, pubSub := newTestRouter(t)

	var malformedCalls, healthyCalls atomic.Int32
	router.AddNoPublisherHandler("malformed", "malformed-events", pubSub, func(msg *message.Message) error {
		malformedCalls.Add(1)
		return fmt.Errorf("%w: missing header", event.ErrMalformedEvent)
	})
	router.AddNoPublisherHandler("healthy", "healthy-events", pubSub, func(msg *message.Message) error {
		healthyCalls.Add(1)
		return nil
	})

	poisoned, err := pubSub.Subscribe(context.Background(), PoisonQueueTopic)
	require.NoError(t, err)

	runRouter(t, router)

	publish(t, pubSub, "malformed-events")

	select {
	case msg := <-poisoned:
		msg.Ack()
		assert.Equal(t, "malformed-events", msg.Metadata.Get(middleware.PoisonedTopicKey))
		assert.Equal(t, "malformed", msg.Metadata.Get(middleware.PoisonedHandlerKey))
		assert.Contains(t, msg.Metadata.Get(middleware.ReasonForPoisonedKey), "malformed event")
	case <-time.After(2 * time.Second):
		t.Fatal("message was not moved to the poison queue")
	}
	assert.Equal(t, int32(1), malformedCalls.Load())

	for i := 0; i < 3; i++ {
		publish(t, pubSub, "healthy-events")
	}

	assert.EventuallyWithT(t, func(t *assert.CollectT) {
		assert.Equal(t, int32(3), healthyCalls.Load())
	}, time.Second, 10*time.Millisecond)
}

func TestMiddlewares_open_breaker_does_not_stop_other_handlers(t *testing.T) {
	router, pubSub := newTestRouter(t)

	var failingCalls, healthyCalls atomic.Int32
	router.AddNoPublisherHandler("failing", "failing-events", pubSub, func(msg *message.Message) error {
		failingCalls.Add(1)
		return errors.New("connection refused")
	})
	router.AddNoPublisherHandler("healthy", "healthy-events", pubSub, func(msg *message.Message) error {
		healthyCalls.Add(1)
		return nil
	})

	runRouter(t, router)

	publish(t, pubSub, "failing-events")

	// the breaker of the failing handler opens after 6 consecutive failures
	require.EventuallyWithT(t, func(t *assert.CollectT) {
		assert.GreaterOrEqual(t, failingCalls.Load(), int32(6))
	}, 5*time.Second, 10*time.Millisecond)

	publish(t, pubSub, "healthy-events")

	assert.EventuallyWithT(t, func(t *assert.CollectT) {
		assert.Equal(t, int32(1), healthyCalls.Load())
	}, time.Second, 10*time.Millisecond)
}

func TestIsPermanent(t *testing.T) {
	assert.True(t, isPermanent(fmt.Errorf("could not store: %w", event.ErrMalformedEvent)))
	assert.True(t, isPermanent(fmt.Errorf("could not create show: %w", &entities.ValidationError{
		Fields: []entities.FieldError{{Field: "venue_id", Message: "venue 1 does not exist"}},
	})))
	assert.False(t, isPermanent(errors.New("connection refused")))
}

package message

import (
	"context"
	"errors"
	"sync"
	"time"

	"fyyur/entities"
	"fyyur/message/event"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// PoisonQueueTopic receives messages that failed permanently.
const PoisonQueueTopic = "PoisonQueue"

func useMiddlewares(router *message.Router, pub message.Publisher, watermillLogger watermill.LoggerAdapter) error {
	router.AddMiddleware(middleware.Recoverer)

	poisonQueue, err := middleware.PoisonQueueWithFilter(pub, PoisonQueueTopic, isPermanent)
	if err != nil {
		return err
	}
	router.AddMiddleware(poisonQueue)

	router.AddMiddleware(SkipRetryOnPermanentError)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      10,
		InitialInterval: time.Millisecond * 100,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	router.AddMiddleware(newHandlerCircuitBreakers(gobreaker.Settings{
		Timeout: time.Second * 5,
	}).Middleware)

	router.AddMiddleware(capturePermanentError)

	router.AddMiddleware(PropagateCorrelationID)
	router.AddMiddleware(LogMessage)

	return nil
}

type permanentErrorKey struct{}

// SkipRetryOnPermanentError returns permanent errors captured further down
// the chain, after the retry middleware has already seen a success.
func SkipRetryOnPermanentError(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		var permanentErr error
		msg.SetContext(context.WithValue(msg.Context(), permanentErrorKey{}, &permanentErr))

		msgs, err := h(msg)
		if err != nil {
			return msgs, err
		}
		if permanentErr != nil {
			return nil, permanentErr
		}

		return msgs, nil
	}
}

func capturePermanentError(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		msgs, err := h(msg)
		if err == nil || !isPermanent(err) {
			return msgs, err
		}

		holder, ok := msg.Context().Value(permanentErrorKey{}).(*error)
		if !ok {
			return msgs, err
		}
		*holder = err

		return nil, nil
	}
}

// handlerCircuitBreakers keeps one breaker per handler, so a failing handler
// does not stop the others.
type handlerCircuitBreakers struct {
	settings gobreaker.Settings

	lock     sync.Mutex
	breakers map[string]middleware.CircuitBreaker
}

func newHandlerCircuitBreakers(settings gobreaker.Settings) *handlerCircuitBreakers {
	return &handlerCircuitBreakers{
		settings: settings,
		breakers: map[string]middleware.CircuitBreaker{},
	}
}

func (b *handlerCircuitBreakers) Middleware(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		return b.forHandler(message.HandlerNameFromCtx(msg.Context())).Middleware(h)(msg)
	}
}

func (b *handlerCircuitBreakers) forHandler(handlerName string) middleware.CircuitBreaker {
	b.lock.Lock()
	defer b.lock.Unlock()

	breaker, ok := b.breakers[handlerName]
	if !ok {
		settings := b.settings
		settings.Name = "fyyur-" + handlerName
		breaker = middleware.NewCircuitBreaker(settings)
		b.breakers[handlerName] = breaker
	}

	return breaker
}

func isPermanent(err error) bool {
	if errors.Is(err, event.ErrMalformedEvent) {
		return true
	}

	var validationErr *entities.ValidationError
	return errors.As(err, &validationErr)
}

func PropagateCorrelationID(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx := msg.Context()

		reqCorrelationID := msg.Metadata.Get("correlation_id")
		if reqCorrelationID == "" {
			reqCorrelationID = shortuuid.New()
		}

		ctx = log.ToContext(ctx, logrus.WithFields(logrus.Fields{"correlation_id": reqCorrelationID}))
		ctx = log.ContextWithCorrelationID(ctx, reqCorrelationID)

		msg.SetContext(ctx)

		return h(msg)
	}
}

func LogMessage(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		logger := log.FromContext(msg.Context()).WithFields(logrus.Fields{
			"message_id": msg.UUID,
			"handler":    message.HandlerNameFromCtx(msg.Context()),
		})

		logger.Info("Handling a message")

		msgs, err := next(msg)
		if err != nil {
			logger.WithError(err).Error("Error while handling a message")
		}

		return msgs, err
	}
}

package event

import (
	"fmt"

	"fyyur/entities"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
)

const consumerGroupPrefix = "svc-fyyur.events."

var marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// NewProcessorConfig subscribes every handler to the shared events topic
// with its own consumer group. Events a handler does not know are acked.
func NewProcessorConfig(redisClient *redis.Client, watermillLogger watermill.LoggerAdapter) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			handlerEvent := params.EventHandler.NewEvent()
			event, ok := handlerEvent.(entities.IEvent)
			if !ok {
				return "", fmt.Errorf("invalid event type: %T doesn't implement entities.IEvent", handlerEvent)
			}

			if event.IsInternal() {
				return internalTopicPrefix + params.EventName, nil
			}
			return Topic, nil
		},
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return NewSubscriber(redisClient, params.HandlerName, watermillLogger)
		},
		AckOnUnknownEvent: true,
		Marshaler:         marshaler,
		Logger:            watermillLogger,
	}
}

func NewSubscriber(redisClient *redis.Client, handlerName string, watermillLogger watermill.LoggerAdapter) (message.Subscriber, error) {
	return redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        redisClient,
		ConsumerGroup: consumerGroupPrefix + handlerName,
	}, watermillLogger)
}

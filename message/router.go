package message

import (
	"fyyur/message/event"
	"fyyur/message/outbox"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const dataLakeHandlerName = "StoreInDataLake"

func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	publisher message.Publisher,
	redisClient *redis.Client,
	eventProcessorConfig cqrs.EventProcessorConfig,
	eventHandler event.Handler,
	registerer prometheus.Registerer,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	if err := useMiddlewares(router, publisher, watermillLogger); err != nil {
		panic(err)
	}

	metricsBuilder := metrics.NewPrometheusMetricsBuilder(registerer, "", "")
	metricsBuilder.AddPrometheusRouterMetrics(router)

	_, err = outbox.NewForwarder(pgSubscriber, publisher, watermillLogger, router)
	if err != nil {
		panic(err)
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"AddVenueToRecent",
			eventHandler.AddVenueToRecent,
		),
		cqrs.NewEventHandler(
			"AddArtistToRecent",
			eventHandler.AddArtistToRecent,
		),
		cqrs.NewEventHandler(
			"RemoveVenueFromRecent",
			eventHandler.RemoveVenueFromRecent,
		),
	)
	if err != nil {
		panic(err)
	}

	dataLakeSub, err := event.NewSubscriber(redisClient, dataLakeHandlerName, watermillLogger)
	if err != nil {
		panic(err)
	}

	router.AddNoPublisherHandler(
		dataLakeHandlerName,
		event.Topic,
		dataLakeSub,
		eventHandler.StoreInDataLake,
	)

	return router
}

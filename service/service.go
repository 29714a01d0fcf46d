package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"fyyur/cache"
	"fyyur/config"
	"fyyur/db"
	fyyurHttp "fyyur/http"
	"fyyur/message"
	"fyyur/message/event"
	"fyyur/message/outbox"
	"fyyur/showcase"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	watermillMessage "github.com/ThreeDotsLabs/watermill/message"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	watermillRouter *watermillMessage.Router
	echoRouter      *echo.Echo
	httpAddr        string
}

func New(
	cfg config.Config,
	redisClient *redis.Client,
	conn *db.DB,
) (Service, error) {
	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	redisPublisher := message.NewRedisPublisher(redisClient, watermillLogger)

	venueRepo := db.NewVenueRepository(conn)
	artistRepo := db.NewArtistRepository(conn)
	showRepo := db.NewShowRepository(conn)
	dataLakeRepo := db.NewEventRepository(conn)
	recentListings := cache.NewRecentListings(redisClient, cfg.RecentFeedSize)

	eventsHandler := event.NewHandler(dataLakeRepo, recentListings)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)

	pgSubscriber, err := outbox.SubscribeForPGMessages(conn.Conn, watermillLogger)
	if err != nil {
		return Service{}, err
	}

	watermillRouter := message.NewWatermillRouter(
		pgSubscriber,
		redisPublisher,
		redisClient,
		eventProcessorConfig,
		eventsHandler,
		prometheus.DefaultRegisterer,
		watermillLogger,
	)

	echoRouter, err := fyyurHttp.NewHttpRouter(
		venueRepo,
		artistRepo,
		showRepo,
		dataLakeRepo,
		recentListings,
		showcase.NewAssembler(cfg.DateTimeStyle, cfg.Locale),
	)
	if err != nil {
		return Service{}, fmt.Errorf("could not create http router: %w", err)
	}

	return Service{
		watermillRouter: watermillRouter,
		echoRouter:      echoRouter,
		httpAddr:        cfg.HTTPAddr,
	}, nil
}

// Run blocks until ctx is canceled or one of the components fails. The
// router and the HTTP server are both stopped before it returns.
func (s Service) Run(
	ctx context.Context,
) error {
	errgrp, ctx := errgroup.WithContext(ctx)

	errgrp.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	errgrp.Go(func() error {
		// the HTTP server is not started before the router, so the service is not healthy before it's ready
		select {
		case <-s.watermillRouter.Running():
		case <-ctx.Done():
			return nil
		}

		log.FromContext(ctx).WithField("addr", s.httpAddr).Info("Starting HTTP server")

		err := s.echoRouter.Start(s.httpAddr)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	errgrp.Go(func() error {
		<-ctx.Done()
		return s.echoRouter.Shutdown(context.Background())
	})

	return errgrp.Wait()
}

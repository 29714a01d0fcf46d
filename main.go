package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fyyur/config"
	"fyyur/db"
	"fyyur/message"
	"fyyur/message/poison"
	"fyyur/migrations"
	"fyyur/service"
	observability "fyyur/trace"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "fyyur",
		Usage:  "Book shows between local artists and venues",
		Flags:  config.Flags(),
		Before: initLogging,
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the web server and the event handlers",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create the database schema",
				Action: migrate,
			},
			{
				Name:  "seed",
				Usage: "load sample venues, artists and shows",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "file",
						Usage: "YAML fixture, the bundled sample data when empty",
					},
				},
				Action: seed,
			},
			poisonQueueCommand(),
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.RunContext(ctx, os.Args); err != nil {
		logrus.WithError(err).Fatal("fyyur failed")
	}
}

func initLogging(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}
	log.Init(cfg.LogLevel)
	return nil
}

func serve(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	if err := cfg.RequireRedis(); err != nil {
		return err
	}

	traceProvider, err := observability.ConfigureTraceProvider(cfg.JaegerEndpoint)
	if err != nil {
		return fmt.Errorf("could not configure tracing: %w", err)
	}
	defer func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			logrus.WithError(err).Error("Could not flush traces")
		}
	}()

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.MigrateSchema(c.Context); err != nil {
		return err
	}

	redisClient := message.NewRedisClient(cfg.RedisAddr)
	defer redisClient.Close()

	svc, err := service.New(cfg, redisClient, &conn)
	if err != nil {
		return err
	}

	return svc.Run(c.Context)
}

func migrate(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	return conn.MigrateSchema(c.Context)
}

func seed(c *cli.Context) error {
	cfg, err := config.FromCLI(c)
	if err != nil {
		return err
	}
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}

	var r io.Reader = bytes.NewReader(migrations.DefaultFixture)
	if path := c.String("file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	fixture, err := migrations.ParseFixture(r)
	if err != nil {
		return err
	}

	conn, err := db.NewDBConn(cfg.PostgresURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.MigrateSchema(c.Context); err != nil {
		return err
	}

	return migrations.Seed(
		c.Context,
		fixture,
		db.NewVenueRepository(&conn),
		db.NewArtistRepository(&conn),
		db.NewShowRepository(&conn),
	)
}

func poisonQueueCommand() *cli.Command {
	withQueue := func(fn func(c *cli.Context, q *poison.Queue) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg, err := config.FromCLI(c)
			if err != nil {
				return err
			}
			if err := cfg.RequireRedis(); err != nil {
				return err
			}

			redisClient := message.NewRedisClient(cfg.RedisAddr)
			defer redisClient.Close()

			watermillLogger := log.NewWatermill(log.FromContext(c.Context))
			pub := message.NewRedisPublisher(redisClient, watermillLogger)

			return fn(c, poison.NewQueue(redisClient, pub, message.PoisonQueueTopic))
		}
	}

	return &cli.Command{
		Name:  "poison-queue",
		Usage: "manage the poison queue",
		Subcommands: []*cli.Command{
			{
				Name:  "preview",
				Usage: "preview messages",
				Action: withQueue(func(c *cli.Context, q *poison.Queue) error {
					messages, err := q.Preview(c.Context)
					if err != nil {
						return err
					}

					for _, m := range messages {
						fmt.Printf("%v\t%v\t%v\t%v\n", m.ID, m.Topic, m.Handler, m.Reason)
					}
					return nil
				}),
			},
			{
				Name:      "remove",
				ArgsUsage: "<message_id>",
				Usage:     "remove message",
				Action: withQueue(func(c *cli.Context, q *poison.Queue) error {
					return q.Remove(c.Context, c.Args().First())
				}),
			},
			{
				Name:      "requeue",
				ArgsUsage: "<message_id>",
				Usage:     "requeue message",
				Action: withQueue(func(c *cli.Context, q *poison.Queue) error {
					return q.Requeue(c.Context, c.Args().First())
				}),
			},
		},
	}
}

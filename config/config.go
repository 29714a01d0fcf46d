package config

import (
	"fmt"

	"fyyur/cache"
	"fyyur/showcase"

	"github.com/goodsign/monday"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	flagPostgresURL    = "postgres-url"
	flagRedisAddr      = "redis-addr"
	flagHTTPAddr       = "http-addr"
	flagJaegerEndpoint = "jaeger-endpoint"
	flagLogLevel       = "log-level"
	flagDateTimeStyle  = "datetime-style"
	flagLocale         = "locale"
	flagRecentFeedSize = "recent-feed-size"
)

type Config struct {
	PostgresURL    string
	RedisAddr      string
	HTTPAddr       string
	JaegerEndpoint string
	LogLevel       logrus.Level
	DateTimeStyle  showcase.DateStyle
	Locale         monday.Locale
	RecentFeedSize int
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagPostgresURL,
			Usage:   "Postgres connection string",
			EnvVars: []string{"POSTGRES_URL"},
		},
		&cli.StringFlag{
			Name:    flagRedisAddr,
			Usage:   "Redis address used for events and the recent feed",
			EnvVars: []string{"REDIS_ADDR"},
		},
		&cli.StringFlag{
			Name:    flagHTTPAddr,
			Value:   ":8080",
			EnvVars: []string{"HTTP_ADDR"},
		},
		&cli.StringFlag{
			Name:    flagJaegerEndpoint,
			Usage:   "Jaeger collector endpoint, traces are not exported when empty",
			EnvVars: []string{"JAEGER_ENDPOINT"},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    flagDateTimeStyle,
			Usage:   "full or medium",
			Value:   string(showcase.DateStyleMedium),
			EnvVars: []string{"DATETIME_STYLE"},
		},
		&cli.StringFlag{
			Name:    flagLocale,
			Value:   string(monday.LocaleEnUS),
			EnvVars: []string{"LOCALE"},
		},
		&cli.IntFlag{
			Name:    flagRecentFeedSize,
			Value:   cache.DefaultFeedSize,
			EnvVars: []string{"RECENT_FEED_SIZE"},
		},
	}
}

func FromCLI(c *cli.Context) (Config, error) {
	logLevel, err := logrus.ParseLevel(c.String(flagLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	style, err := showcase.ParseDateStyle(c.String(flagDateTimeStyle))
	if err != nil {
		return Config{}, err
	}

	locale, err := showcase.ParseLocale(c.String(flagLocale))
	if err != nil {
		return Config{}, err
	}

	return Config{
		PostgresURL:    c.String(flagPostgresURL),
		RedisAddr:      c.String(flagRedisAddr),
		HTTPAddr:       c.String(flagHTTPAddr),
		JaegerEndpoint: c.String(flagJaegerEndpoint),
		LogLevel:       logLevel,
		DateTimeStyle:  style,
		Locale:         locale,
		RecentFeedSize: c.Int(flagRecentFeedSize),
	}, nil
}

// RequireDatabase reports a missing Postgres connection string.
func (c Config) RequireDatabase() error {
	if c.PostgresURL == "" {
		return fmt.Errorf("missing --%s (POSTGRES_URL)", flagPostgresURL)
	}
	return nil
}

// RequireRedis reports a missing Redis address.
func (c Config) RequireRedis() error {
	if c.RedisAddr == "" {
		return fmt.Errorf("missing --%s (REDIS_ADDR)", flagRedisAddr)
	}
	return nil
}

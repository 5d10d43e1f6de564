package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

// Config holds server settings. Every field has a flag and an environment
// variable.
type Config struct {
	Addr          string
	Renderer      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	RateLimit     int
	RateWindow    time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	IdleTimeout   time.Duration
}

var globalFlags = []cli.Flag{
	&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"LOG_LEVEL"}, Usage: "zerolog level"},
	&cli.BoolFlag{Name: "dev", EnvVars: []string{"DEV"}, Usage: "human-readable console logs"},
}

var serveFlags = []cli.Flag{
	&cli.StringFlag{Name: "addr", Value: ":8080", EnvVars: []string{"BAYES_ADDR"}},
	&cli.StringFlag{Name: "renderer", Value: "gonum", EnvVars: []string{"BAYES_RENDERER"}, Usage: "gonum or gochart"},
	&cli.StringFlag{Name: "redis-addr", EnvVars: []string{"REDIS_ADDR"}, Usage: "cache charts in redis instead of memory"},
	&cli.StringFlag{Name: "redis-password", EnvVars: []string{"REDIS_PASSWORD"}},
	&cli.IntFlag{Name: "redis-db", EnvVars: []string{"REDIS_DB"}},
	&cli.DurationFlag{Name: "cache-ttl", Value: time.Hour, EnvVars: []string{"BAYES_CACHE_TTL"}},
	&cli.IntFlag{Name: "rate-limit", Value: 120, EnvVars: []string{"BAYES_RATE_LIMIT"}, Usage: "API requests per client per window, 0 disables"},
	&cli.DurationFlag{Name: "rate-window", Value: time.Minute, EnvVars: []string{"BAYES_RATE_WINDOW"}},
	&cli.DurationFlag{Name: "read-timeout", Value: 15 * time.Second},
	&cli.DurationFlag{Name: "write-timeout", Value: 30 * time.Second},
	&cli.DurationFlag{Name: "idle-timeout", Value: 60 * time.Second},
}

func configFromContext(c *cli.Context) Config {
	return Config{
		Addr:          c.String("addr"),
		Renderer:      c.String("renderer"),
		RedisAddr:     c.String("redis-addr"),
		RedisPassword: c.String("redis-password"),
		RedisDB:       c.Int("redis-db"),
		CacheTTL:      c.Duration("cache-ttl"),
		RateLimit:     c.Int("rate-limit"),
		RateWindow:    c.Duration("rate-window"),
		ReadTimeout:   c.Duration("read-timeout"),
		WriteTimeout:  c.Duration("write-timeout"),
		IdleTimeout:   c.Duration("idle-timeout"),
	}
}

func setupLogging(c *cli.Context) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if c.Bool("dev") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	return nil
}

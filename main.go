package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"bayes-dashboard/domain"
	httpLayer "bayes-dashboard/http"
	"bayes-dashboard/render"
	"bayes-dashboard/repository"
	"bayes-dashboard/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("bayes-dashboard failed")
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "bayes-dashboard",
		Usage:  "plot Bayesian prior, likelihood and posterior densities",
		Flags:  globalFlags,
		Before: setupLogging,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the web dashboard",
				Flags:  serveFlags,
				Action: serve,
			},
			{
				Name:   "plot",
				Usage:  "render one chart to a file",
				Flags:  plotFlags,
				Action: plot,
			},
		},
	}
}

func serve(c *cli.Context) error {
	cfg := configFromContext(c)

	renderer, err := render.New(cfg.Renderer)
	if err != nil {
		return err
	}

	var cache repository.CacheRepository = repository.NewMemoryCache()
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(c.Context, 5*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			return err
		}
		cache = redisCache
	}

	plotService := service.NewPlotService(cache, cfg.CacheTTL)
	dashboardService := service.NewDashboardService(plotService)

	plotHandler := httpLayer.NewPlotHandler(plotService, renderer)
	dashboardHandler := httpLayer.NewDashboardHandler(dashboardService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(plotHandler, dashboardHandler, rateLimiter),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", cfg.Addr).
			Str("renderer", cfg.Renderer).
			Bool("redis", cfg.RedisAddr != "").
			Msg("dashboard listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return errors.Wrap(err, "starting server")
	case <-quit:
		log.Info().Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "server shutdown")
	}

	log.Info().Msg("server exited")
	return nil
}

var plotFlags = []cli.Flag{
	&cli.StringFlag{Name: "family", Required: true, Usage: "beta, gamma, binomial or bernoulli"},
	&cli.Float64Flag{Name: "a"},
	&cli.Float64Flag{Name: "b"},
	&cli.Float64Flag{Name: "n"},
	&cli.Float64Flag{Name: "p"},
	&cli.Float64Flag{Name: "sample-size"},
	&cli.Float64Flag{Name: "sample-mean"},
	&cli.StringFlag{Name: "format", Value: "png", Usage: "png, svg or json"},
	&cli.StringFlag{Name: "renderer", Value: "gonum", Usage: "gonum or gochart"},
	&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, stdout when empty"},
}

func plot(c *cli.Context) error {
	wire := domain.WireRequest{Family: c.String("family")}
	for flag, dst := range map[string]**float64{
		"a":           &wire.A,
		"b":           &wire.B,
		"n":           &wire.N,
		"p":           &wire.P,
		"sample-size": &wire.SampleSize,
		"sample-mean": &wire.SampleMean,
	} {
		if c.IsSet(flag) {
			v := c.Float64(flag)
			*dst = &v
		}
	}

	req, err := wire.ToRequest()
	if err != nil {
		return err
	}
	spec, err := service.Plot(req)
	if err != nil {
		return err
	}

	// Render fully before touching the output so a failure leaves no
	// partial file behind.
	var buf bytes.Buffer
	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(spec); err != nil {
			return errors.Wrap(err, "encode chart")
		}
	default:
		format, err := render.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
		renderer, err := render.New(c.String("renderer"))
		if err != nil {
			return err
		}
		if err := renderer.Render(&buf, spec, format); err != nil {
			return err
		}
	}

	path := c.String("out")
	if path == "" {
		_, err := buf.WriteTo(c.App.Writer)
		return errors.Wrap(err, "write output")
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "write output")
}

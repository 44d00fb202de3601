// Command inputmask serves the field registry over HTTP or formats a single
// value from the command line.
//
//	inputmask serve
//	inputmask format cpf 12345678909
//	inputmask format ie 110042490114 SP
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/inputmask/pkg/config"
	"github.com/dmitrymomot/inputmask/pkg/fields"
	"github.com/dmitrymomot/inputmask/pkg/httpserver"
	"github.com/dmitrymomot/inputmask/pkg/locale"
	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/maskapi"
	"github.com/dmitrymomot/inputmask/pkg/ratelimiter"
	"github.com/dmitrymomot/inputmask/pkg/requestid"
)

const serviceName = "inputmask"

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	Locale    string `env:"MASK_LOCALE" envDefault:"pt-BR"`
	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
}

var errUsage = errors.New("usage: inputmask serve | inputmask format <mask> <value> [region]")

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	registry, err := fields.NewRegistry(locale.Resolve(cfg.Locale))
	if err != nil {
		return fmt.Errorf("build registry: %w", err)
	}

	switch args[0] {
	case "serve":
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		return serve(ctx, cfg, registry, log)
	case "format":
		if len(args) < 3 {
			return errUsage
		}
		var selector string
		if len(args) > 3 {
			selector = args[3]
		}
		return format(os.Stdout, registry, args[1], args[2], selector)
	default:
		return errUsage
	}
}

func newLogger(cfg appConfig) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LogExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(lvl))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)
	return log, nil
}

func serve(ctx context.Context, cfg appConfig, registry *fields.Registry, log *slog.Logger) error {
	apiOpts := []maskapi.Option{maskapi.WithLogger(log)}
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		apiOpts = append(apiOpts, maskapi.WithRateLimit(bucket))
	}

	api := maskapi.New(registry, apiOpts...)
	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("listening", slog.String("addr", addr), slog.String("locale", cfg.Locale))
		}),
	)
	return srv.Run(ctx, api.Routes())
}

func format(out io.Writer, registry *fields.Registry, name, value, selector string) error {
	f, err := registry.Lookup(name, selector)
	if err != nil {
		return err
	}

	res := fields.Evaluate(f, value)
	fmt.Fprintf(out, "%s\n%s\n", res.Display, res.Clean)
	if res.Err != nil {
		return fmt.Errorf("%s: %w", res.Display, res.Err)
	}
	return nil
}

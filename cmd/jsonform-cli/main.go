package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"

	jsonform "github.com/goliatone/go-jsonform"
	"github.com/goliatone/go-jsonform/pkg/dialog"
	"github.com/goliatone/go-jsonform/pkg/form"
	"github.com/goliatone/go-jsonform/pkg/openapi"
	"github.com/goliatone/go-jsonform/pkg/render"
	"github.com/goliatone/go-jsonform/pkg/renderers/inspect"
	"github.com/goliatone/go-jsonform/pkg/renderers/tui"
	"github.com/goliatone/go-jsonform/pkg/schema"
	"github.com/goliatone/go-jsonform/pkg/session"
)

type config struct {
	schemaRef string
	openAPI   string
	operation string
	renderer  string
	format    string
	output    string
	watch     bool
	edit      bool
	logLevel  string
	timeout   time.Duration
}

func main() {
	var cfg config
	flag.StringVar(&cfg.schemaRef, "schema", "", "form schema path or URL (built-in registration form if empty)")
	flag.StringVar(&cfg.openAPI, "openapi", "", "OpenAPI document path or URL to import the form from")
	flag.StringVar(&cfg.operation, "operation", "", "operation ID whose request body becomes the form (with -openapi)")
	flag.StringVar(&cfg.renderer, "renderer", "tui", "renderer to use (tui|inspect)")
	flag.StringVar(&cfg.format, "format", "json", "submission output format (json|form|pretty)")
	flag.StringVar(&cfg.output, "output", "", "output file (stdout if empty)")
	flag.BoolVar(&cfg.watch, "watch", false, "reload the schema file on change and re-render (inspect renderer)")
	flag.BoolVar(&cfg.edit, "edit", false, "edit the schema JSON in $EDITOR before filling the form")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	flag.DurationVar(&cfg.timeout, "timeout", 15*time.Second, "timeout for loading remote documents")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", cfg.logLevel)
		os.Exit(2)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, tui.ErrAborted) {
			logger.Warn().Msg("cancelled")
			os.Exit(130)
		}
		logger.Error().Err(err).Msg("jsonform failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, logger zerolog.Logger) error {
	format, err := form.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	loaderOptions := []schema.LoaderOption{schema.WithHTTPFallback(cfg.timeout)}
	initial, err := initialSchema(ctx, cfg, loaderOptions, logger)
	if err != nil {
		return err
	}

	term := dialog.NewTerminal(dialog.WithStdio(os.Stdin, os.Stderr, os.Stderr))
	sess, err := jsonform.NewSession(initial,
		session.WithLogger(logger),
		session.WithNotifier(term),
		session.WithLoader(jsonform.NewLoader(loaderOptions...)),
	)
	if err != nil {
		return err
	}
	defer sess.Close()

	if cfg.edit {
		if _, err := sess.Edit(ctx, term); err != nil {
			return err
		}
	}

	registry, err := jsonform.NewRegistry(
		tui.New(
			tui.WithPromptDriver(tui.NewSurveyDriver(os.Stderr, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))),
			tui.WithOutputFormat(format),
			tui.WithLogger(logger),
		),
		inspect.New(),
	)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(cfg.renderer)
	if err != nil {
		return err
	}

	if cfg.watch {
		return watch(ctx, cfg, sess, renderer, logger)
	}

	var out []byte
	err = sess.Do(func(f *form.Form) error {
		var renderErr error
		out, renderErr = renderer.Render(ctx, f)
		return renderErr
	})
	if err != nil {
		return err
	}
	if renderer.Name() == "tui" {
		// The form is valid at this point; Submit only raises the notification.
		if _, err := sess.Submit(ctx); err != nil {
			return err
		}
	}
	return writeOutput(cfg.output, out, logger)
}

func initialSchema(ctx context.Context, cfg config, loaderOptions []schema.LoaderOption, logger zerolog.Logger) (schema.Schema, error) {
	switch {
	case cfg.openAPI != "":
		if cfg.operation == "" {
			return schema.Schema{}, errors.New("-operation is required with -openapi")
		}
		src, err := schema.ResolveSource(cfg.openAPI)
		if err != nil {
			return schema.Schema{}, err
		}
		doc, err := jsonform.NewLoader(loaderOptions...).Load(ctx, src)
		if err != nil {
			return schema.Schema{}, err
		}
		return openapi.Import(ctx, doc.Raw(), cfg.operation, openapi.WithLogger(logger))
	case cfg.schemaRef != "":
		return jsonform.Load(ctx, cfg.schemaRef, loaderOptions...)
	default:
		return jsonform.DefaultSchema(), nil
	}
}

// watch re-renders every time the schema file is replaced and blocks until
// ctx is cancelled.
func watch(ctx context.Context, cfg config, sess *session.Session, renderer render.Renderer, logger zerolog.Logger) error {
	if cfg.schemaRef == "" || strings.HasPrefix(cfg.schemaRef, "http://") || strings.HasPrefix(cfg.schemaRef, "https://") {
		return errors.New("-watch needs a local -schema file")
	}
	if renderer.Name() != "inspect" {
		return errors.New("-watch requires -renderer inspect")
	}

	emit := func(f *form.Form) {
		out, err := renderer.Render(ctx, f)
		if err != nil {
			logger.Error().Err(err).Msg("render failed")
			return
		}
		if err := writeOutput(cfg.output, out, logger); err != nil {
			logger.Error().Err(err).Msg("write failed")
		}
	}
	sess.OnRecompile(emit)
	if err := sess.Do(func(f *form.Form) error {
		emit(f)
		return nil
	}); err != nil {
		return err
	}

	if err := sess.Watch(ctx, cfg.schemaRef); err != nil {
		return err
	}
	logger.Info().Str("path", cfg.schemaRef).Msg("watching schema")
	<-ctx.Done()
	return nil
}

func writeOutput(path string, data []byte, logger zerolog.Logger) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info().Str("path", path).Msg("output written")
	return nil
}

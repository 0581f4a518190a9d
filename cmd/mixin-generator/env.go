package main

import (
	"context"
	"fmt"
	"io"

	"goa.design/clue/log"

	"mixin-generator/internal/analyze"
	"mixin-generator/internal/capability"
	"mixin-generator/internal/compose"
	"mixin-generator/internal/config"
	"mixin-generator/internal/gen"
	"mixin-generator/internal/model"
)

// options are the command line flags.
type options struct {
	symbols string
	config  string
	out     string
	typ     string
}

// env holds what every command needs.
type env struct {
	ctx      context.Context
	opts     *options
	cfg      *config.Config
	markers  capability.Markers
	renderer *gen.TemplateRenderer
	registry *capability.Registry
}

func newEnv(ctx context.Context, opts *options, logOut io.Writer) (*env, error) {
	cfg, err := config.Load(opts.config, ".env")
	if err != nil {
		return nil, err
	}

	if opts.out != "" {
		cfg.OutputDir = opts.out
	}

	renderer, err := gen.NewRenderer(cfg.TemplateCacheSize)
	if err != nil {
		return nil, err
	}

	markers := capability.DefaultMarkers()
	markers.Contract = model.ParseTypeID(cfg.ContractMarker)

	return &env{
		ctx:      logContext(ctx, cfg, logOut),
		opts:     opts,
		cfg:      cfg,
		markers:  markers,
		renderer: renderer,
		registry: capability.DefaultRegistry(renderer, markers),
	}, nil
}

// logContext sets up the clue logger from the configuration.
func logContext(ctx context.Context, cfg *config.Config, out io.Writer) context.Context {
	format := log.FormatText

	switch cfg.LogFormat {
	case config.LogFormatJSON:
		format = log.FormatJSON
	case config.LogFormatTerminal:
		format = log.FormatTerminal
	}

	ctx = log.Context(ctx, log.WithFormat(format), log.WithOutput(out))
	if cfg.Debug {
		ctx = log.Context(ctx, log.WithDebug())
		log.Debugf(ctx, "debug logs enabled")
	}

	return ctx
}

func (e *env) processor() *compose.Processor {
	var strategy compose.Strategy = compose.Sequential{}
	if e.cfg.Strategy == config.StrategyParallel {
		strategy = compose.Parallel{Workers: e.cfg.Workers}
	}

	return compose.NewProcessor(
		e.registry,
		e.renderer,
		gen.NewFileSink(e.cfg.OutputDir),
		compose.WithStrategy(strategy),
		compose.WithContractMarker(e.markers.Contract),
	)
}

func (e *env) loadSymbols() (*analyze.SymbolTable, error) {
	table, err := analyze.LoadFile(e.opts.symbols)
	if err != nil {
		return nil, fmt.Errorf("loading declarations: %w", err)
	}

	return table, nil
}

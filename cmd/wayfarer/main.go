// Command wayfarer runs the travel-planning agent HTTP service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfarer-ai/wayfarer/agent"
	"github.com/wayfarer-ai/wayfarer/config"
	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/knowledge"
	"github.com/wayfarer-ai/wayfarer/logging"
	"github.com/wayfarer-ai/wayfarer/metrics"
	"github.com/wayfarer-ai/wayfarer/model"
	anthropicmodel "github.com/wayfarer-ai/wayfarer/model/anthropic"
	geminimodel "github.com/wayfarer-ai/wayfarer/model/gemini"
	openaimodel "github.com/wayfarer-ai/wayfarer/model/openai"
	"github.com/wayfarer-ai/wayfarer/preference"
	"github.com/wayfarer-ai/wayfarer/server"
	"github.com/wayfarer-ai/wayfarer/session"
	"github.com/wayfarer-ai/wayfarer/tool"
	"github.com/wayfarer-ai/wayfarer/travel"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wayfarer",
		Short:         "Conversational travel-planning agent",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the agent HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config file (YAML)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	store, closeStore, err := newStore(cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	corpus, err := newCorpus(cfg)
	if err != nil {
		return err
	}

	gateway, err := newGateway(ctx, cfg)
	if err != nil {
		return err
	}

	weather := travel.NewWeatherClient(cfg.Weather.APIKey)
	search := travel.NewSearchClient(cfg.Search.APIKey, cfg.Search.EngineID)
	registry, err := tool.NewRegistry(travel.Toolset(weather, search, corpus, store)...)
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	m := metrics.New(nil)
	sessions := session.NewManager(store, logger)
	a := agent.New(gateway, sessions, registry, func(o *agent.Options) {
		o.MaxToolRounds = cfg.Agent.MaxToolRounds
		o.Logger = logger
		o.Metrics = m
	})

	srv := server.New(a, func(o *server.Options) { o.Logger = logger })

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Listen.Address, cfg.Listen.Port)
	logger.Info("wayfarer.starting", "version", version, "addr", addr,
		"provider", cfg.Model.Provider, "tools", registry.Names())
	return srv.ListenAndServe(ctx, addr)
}

func newStore(cfg *config.Config, logger logging.Logger) (core.PreferenceStore, func(), error) {
	if cfg.Store.Path == "" {
		logger.Warn("store.volatile", "reason", "no store.path configured; preferences will not survive restarts")
		return preference.NewInMemoryStore(), func() {}, nil
	}
	s, err := preference.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open preference store: %w", err)
	}
	return s, func() { _ = s.Close() }, nil
}

func newCorpus(cfg *config.Config) (*knowledge.Corpus, error) {
	if cfg.Knowledge.CorpusFile == "" {
		return knowledge.Default(), nil
	}
	return knowledge.LoadFile(cfg.Knowledge.CorpusFile)
}

func newGateway(ctx context.Context, cfg *config.Config) (model.Model, error) {
	switch cfg.Model.Provider {
	case "gemini":
		return geminimodel.New(ctx, cfg.Model.APIKey, func(o *geminimodel.Options) {
			if cfg.Model.Name != "" {
				o.Model = cfg.Model.Name
			}
		})
	case "openai":
		return openaimodel.New(func(o *openaimodel.Options) {
			if cfg.Model.Name != "" {
				o.Model = cfg.Model.Name
			}
			o.APIKey = cfg.Model.APIKey
		}), nil
	case "anthropic":
		return anthropicmodel.New(func(o *anthropicmodel.Options) {
			if cfg.Model.Name != "" {
				o.Model = cfg.Model.Name
			}
			o.APIKey = cfg.Model.APIKey
		}), nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", cfg.Model.Provider)
	}
}

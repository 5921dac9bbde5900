package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/five82/picklist/internal/config"
	"github.com/five82/picklist/internal/logging"
	"github.com/five82/picklist/internal/prefs"
	"github.com/five82/picklist/internal/state"
	"github.com/five82/picklist/internal/ui"
)

// Options configure the picklist application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/picklist/prefs.toml
	LogLevel   string // overrides the config file when set
}

// Run boots the picklist TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	store, err := NewStore(cfg, logger)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger.WithFields(logrus.Fields{
		"records": store.GetState().Len(),
		"theme":   userPrefs.Theme,
	}).Info("picklist starting")

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logging.Component(logger, "ui"),
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	logger.WithField("records", store.GetState().Len()).Info("picklist stopped")
	return nil
}

// NewStore builds the record store from the config's seed list.
func NewStore(cfg config.Config, logger *logrus.Logger) (*state.Store, error) {
	opts := []state.Option{state.WithPlaceholderTitle(cfg.PlaceholderTitle)}
	if logger != nil {
		opts = append(opts, state.WithLogger(logging.Component(logger, "store")))
	}

	store, err := state.New(cfg.InitialState(), opts...)
	if err != nil {
		return nil, fmt.Errorf("init store: %w", err)
	}
	return store, nil
}

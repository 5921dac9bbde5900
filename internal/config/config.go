package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/picklist/internal/state"
)

// Config captures everything picklist reads at startup.
type Config struct {
	PlaceholderTitle string
	Log              LogConfig
	Records          []RecordConfig
}

// LogConfig controls the logrus sink. The TUI owns the terminal, so logs
// always go to a file.
type LogConfig struct {
	Level  string
	File   string
	Format string // "text" or "json"
}

// RecordConfig is one seed record.
type RecordConfig struct {
	Code           int    `toml:"code"`
	Title          string `toml:"title"`
	SelectionCount int    `toml:"selection_count"`
}

const (
	defaultConfigPath = "~/.config/picklist/config.toml"
	defaultLogFile    = "~/.local/state/picklist/picklist.log"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

var defaultRecords = []RecordConfig{
	{Code: 1, Title: "Item name"},
	{Code: 2, Title: "Some object"},
	{Code: 3, Title: "Heading"},
	{Code: 4, Title: "A very long item name made of seven words"},
	{Code: 5, Title: "Entry"},
	{Code: 6, Title: "Sixth entry"},
	{Code: 7, Title: "Seventh entry"},
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PlaceholderTitle: state.DefaultPlaceholderTitle,
		Log: LogConfig{
			Level:  defaultLogLevel,
			File:   mustExpand(defaultLogFile),
			Format: defaultLogFormat,
		},
		Records: append([]RecordConfig(nil), defaultRecords...),
	}
}

// Load locates and parses the picklist config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PlaceholderTitle string `toml:"placeholder_title"`
		Log              struct {
			Level  string `toml:"level"`
			File   string `toml:"file"`
			Format string `toml:"format"`
		} `toml:"log"`
		Records []RecordConfig `toml:"records"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if title := strings.TrimSpace(raw.PlaceholderTitle); title != "" {
		cfg.PlaceholderTitle = title
	}
	if level := strings.TrimSpace(raw.Log.Level); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if format := strings.TrimSpace(raw.Log.Format); format != "" {
		cfg.Log.Format = strings.ToLower(format)
	}
	if file := strings.TrimSpace(raw.Log.File); file != "" {
		cfg.Log.File = mustExpand(file)
	}

	if raw.Records != nil {
		if err := validateRecords(raw.Records); err != nil {
			return Config{}, fmt.Errorf("invalid records: %w", err)
		}
		cfg.Records = make([]RecordConfig, len(raw.Records))
		for i, rec := range raw.Records {
			rec.Title = strings.TrimSpace(rec.Title)
			cfg.Records[i] = rec
		}
	}

	return cfg, nil
}

// InitialState converts the seed records into a store snapshot. A nil
// Records slice yields a nil list, which state.New rejects.
func (c Config) InitialState() state.State {
	if c.Records == nil {
		return state.State{}
	}
	list := make([]state.Record, 0, len(c.Records))
	for _, rec := range c.Records {
		list = append(list, state.Record{
			Code:           rec.Code,
			Title:          rec.Title,
			SelectionCount: rec.SelectionCount,
		})
	}
	return state.State{List: list}
}

func validateRecords(records []RecordConfig) error {
	seen := make(map[int]bool, len(records))
	for i, rec := range records {
		if rec.Code < 0 {
			return fmt.Errorf("record %d: negative code %d", i, rec.Code)
		}
		if rec.SelectionCount < 0 {
			return fmt.Errorf("record %d: negative selection_count %d", i, rec.SelectionCount)
		}
		if seen[rec.Code] {
			return fmt.Errorf("record %d: duplicate code %d", i, rec.Code)
		}
		seen[rec.Code] = true
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/monkey/monkey"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile  = "monkey.yaml"
	defaultPrompt      = ">> "
	defaultHistoryFile = ".monkey_history"
)

// cliConfig is the merged view of the config file and command line flags.
type cliConfig struct {
	StepQuota      int    `yaml:"step_quota"`
	RecursionLimit int    `yaml:"recursion_limit"`
	LogLevel       string `yaml:"log_level"`
	Prompt         string `yaml:"prompt"`
	HistoryFile    string `yaml:"history_file"`
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		LogLevel: "warn",
		Prompt:   defaultPrompt,
	}
}

// loadConfig reads path, or ./monkey.yaml when path is empty. Only an
// explicitly named file is required to exist.
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.StepQuota < 0 {
		return cfg, fmt.Errorf("config: step_quota must not be negative (got %d)", cfg.StepQuota)
	}
	if cfg.RecursionLimit < 0 {
		return cfg, fmt.Errorf("config: recursion_limit must not be negative (got %d)", cfg.RecursionLimit)
	}
	return cfg, nil
}

func (c cliConfig) historyPath() string {
	if c.HistoryFile != "" {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultHistoryFile)
}

func (c cliConfig) engine(stdout io.Writer, logger *slog.Logger) (*monkey.Engine, error) {
	engine, err := monkey.NewEngine(monkey.Config{
		StepQuota:      c.StepQuota,
		RecursionLimit: c.RecursionLimit,
		Stdout:         stdout,
		Logger:         logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	return engine, nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

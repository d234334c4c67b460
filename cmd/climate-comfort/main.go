// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the climate-comfort command.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wneessen/climate-comfort/internal/config"
	"github.com/wneessen/climate-comfort/internal/i18n"
	"github.com/wneessen/climate-comfort/internal/logger"
	"github.com/wneessen/climate-comfort/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	envFile := flag.String("env", ".env", "path to an optional .env file")
	flag.Parse()

	// Environment overrides from .env, a missing file is fine
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error("failed to load env file", logger.Err(err))
		os.Exit(1)
	}

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize climate-comfort service", logger.Err(err))
		os.Exit(1)
	}

	log.Info(t.Get("starting climate-comfort"), slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	report, err := serv.Run(ctx)
	if err != nil {
		log.Error("climate-comfort run failed", logger.Err(err))
		os.Exit(1)
	}
	log.Info(t.Get("climate-comfort finished"), slog.Int("cities", report.Matrix.Len()),
		slog.Int("skipped", len(report.Skipped)))
}

// loadConfig reads the config file given on the command line, or the one in the default
// location, or falls back to defaults and environment only.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := findConfigFile(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "climate-comfort", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}

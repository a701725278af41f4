package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/term-snake/core"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	// .env is optional; flags and the real environment take precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	cmd := newCommand(func(ctx context.Context, cfg appConfig) error {
		if f := setupLogging(logger, cfg.Debug, cfg.LogDir); f != nil {
			defer f.Close()
		}
		return runGame(ctx, cfg, logger)
	})

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		stop()
		os.Exit(1)
	}
}

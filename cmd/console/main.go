package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/pkg"
)

const engineDelay = time.Second

// main - plays tic-tac-toe against the engine on stdin/stdout. Logs go to stderr.
func main() {
	conf, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := pkg.NewLogger(os.Stderr, conf.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	game := console.New(logger, os.Stdin, os.Stdout, conf.Console.MaxSize, console.WithDelay(engineDelay))
	if err = game.Run(ctx); err != nil {
		logger.Error("console game failed", "error", err)
		os.Exit(1)
	}
}

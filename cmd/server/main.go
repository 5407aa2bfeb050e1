package main

import (
	"os"

	"github.com/rigforge/internal/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Errorw("command_failed", "error", err)
		os.Exit(1)
	}
}

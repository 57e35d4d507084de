package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/dtclock/internal/protocol"
	"github.com/danmuck/dtclock/internal/server"
)

// applyPortArgs overrides the configured ports with positional arguments,
// given in English, Māori, German order. No arguments keeps the config.
func applyPortArgs(cfg *server.Config, args []string) error {
	if len(args) == 0 {
		return nil
	}
	if len(args) != protocol.LanguageCount {
		return fmt.Errorf("%w: expected %d ports, got %d arguments", protocol.ErrConfiguration, protocol.LanguageCount, len(args))
	}
	for i, arg := range args {
		port, err := strconv.Atoi(arg)
		if err != nil || port <= 0 {
			return fmt.Errorf("%w: port %q is not a positive integer", protocol.ErrConfiguration, arg)
		}
		cfg.Ports[i] = port
	}
	return cfg.Validate()
}

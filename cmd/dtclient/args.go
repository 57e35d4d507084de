package main

import (
	"fmt"
	"strconv"

	"github.com/danmuck/dtclock/internal/client"
	"github.com/danmuck/dtclock/internal/protocol"
)

// applyArgs reads "kind" or "kind host port" into cfg.
func applyArgs(cfg *client.Config, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("%w: expected date|time [host port], got %d arguments", protocol.ErrConfiguration, len(args))
	}
	kind, err := protocol.ParseRequestKind(args[0])
	if err != nil {
		return err
	}
	cfg.Kind = kind
	if len(args) == 1 {
		return nil
	}
	port, err := strconv.Atoi(args[2])
	if err != nil || port <= 0 {
		return fmt.Errorf("%w: port %q is not a positive integer", protocol.ErrConfiguration, args[2])
	}
	cfg.Host = args[1]
	cfg.Port = port
	return nil
}

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/dtclock/internal/client"
	"github.com/danmuck/dtclock/internal/server"
	"github.com/pelletier/go-toml/v2"
)

// Template renders the default config for kind ("server" or "client").
func Template(kind string) (string, error) {
	var doc any
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "server":
		doc = serverFileFrom(server.DefaultConfig())
	case "client":
		doc = clientFileFrom(client.DefaultConfig())
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
	out, err := toml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("render %s template: %w", kind, err)
	}
	return string(out), nil
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

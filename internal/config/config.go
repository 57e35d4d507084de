package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/dtclock/internal/client"
	"github.com/danmuck/dtclock/internal/server"
)

// ServerFile is the on-disk shape of a dtserver config.
type ServerFile struct {
	Host        string  `toml:"host" comment:"address every language channel binds to"`
	EnglishPort int     `toml:"english_port" comment:"ports must be distinct and within [1024, 64000]"`
	MaoriPort   int     `toml:"maori_port"`
	GermanPort  int     `toml:"german_port"`
	ReadBuffer  int     `toml:"read_buffer" comment:"bytes read per datagram"`
	RateLimit   float64 `toml:"rate_limit" comment:"datagrams per second across all channels, 0 disables"`
	RateBurst   int     `toml:"rate_burst"`
	MetricsAddr string  `toml:"metrics_addr" comment:"prometheus listen address, empty disables"`
}

// ClientFile is the on-disk shape of a dtclient config.
type ClientFile struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Timeout string `toml:"timeout" comment:"wait for the response, as a Go duration"`
}

// LoadServerConfig returns server defaults overridden by the keys present
// in path. An empty path yields the defaults.
func LoadServerConfig(path string) (server.Config, error) {
	cfg := server.DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	var raw ServerFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return server.Config{}, fmt.Errorf("load server config: %w", err)
	}
	applyServerFile(&cfg, raw, meta)
	return cfg, nil
}

// LoadClientConfig returns client defaults overridden by the keys present
// in path. An empty path yields the defaults.
func LoadClientConfig(path string) (client.Config, error) {
	cfg := client.DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	var raw ClientFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return client.Config{}, fmt.Errorf("load client config: %w", err)
	}
	if err := applyClientFile(&cfg, raw, meta); err != nil {
		return client.Config{}, err
	}
	return cfg, nil
}

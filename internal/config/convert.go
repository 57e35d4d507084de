package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/dtclock/internal/client"
	"github.com/danmuck/dtclock/internal/protocol"
	"github.com/danmuck/dtclock/internal/server"
)

func applyServerFile(cfg *server.Config, raw ServerFile, meta toml.MetaData) {
	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("english_port") {
		cfg.Ports[protocol.English] = raw.EnglishPort
	}
	if meta.IsDefined("maori_port") {
		cfg.Ports[protocol.Maori] = raw.MaoriPort
	}
	if meta.IsDefined("german_port") {
		cfg.Ports[protocol.German] = raw.GermanPort
	}
	if meta.IsDefined("read_buffer") {
		cfg.ReadBuffer = raw.ReadBuffer
	}
	if meta.IsDefined("rate_limit") {
		cfg.RateLimit = raw.RateLimit
	}
	if meta.IsDefined("rate_burst") {
		cfg.RateBurst = raw.RateBurst
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
}

func applyClientFile(cfg *client.Config, raw ClientFile, meta toml.MetaData) error {
	if meta.IsDefined("host") {
		cfg.Host = strings.TrimSpace(raw.Host)
	}
	if meta.IsDefined("port") {
		cfg.Port = raw.Port
	}
	if meta.IsDefined("timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Timeout))
		if err != nil {
			return fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

func serverFileFrom(cfg server.Config) ServerFile {
	return ServerFile{
		Host:        cfg.Host,
		EnglishPort: cfg.Ports[protocol.English],
		MaoriPort:   cfg.Ports[protocol.Maori],
		GermanPort:  cfg.Ports[protocol.German],
		ReadBuffer:  cfg.ReadBuffer,
		RateLimit:   cfg.RateLimit,
		RateBurst:   cfg.RateBurst,
		MetricsAddr: cfg.MetricsAddr,
	}
}

func clientFileFrom(cfg client.Config) ClientFile {
	return ClientFile{
		Host:    cfg.Host,
		Port:    cfg.Port,
		Timeout: cfg.Timeout.String(),
	}
}

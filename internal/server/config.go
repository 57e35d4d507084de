package server

import (
	"fmt"

	"github.com/danmuck/dtclock/internal/protocol"
)

const DefaultReadBuffer = 64

// Config configures the three language channels and per-datagram policy.
type Config struct {
	Host string
	// Ports is indexed by protocol.Language.
	Ports      [protocol.LanguageCount]int
	ReadBuffer int
	// RateLimit caps served datagrams per second across all channels; 0 disables it.
	RateLimit   float64
	RateBurst   int
	MetricsAddr string
}

// Server defaults matching the reference deployment.
func DefaultConfig() Config {
	return Config{
		Host:       "localhost",
		Ports:      [protocol.LanguageCount]int{5000, 5001, 5002},
		ReadBuffer: DefaultReadBuffer,
		RateBurst:  1,
	}
}

// Validate rejects configurations the serve loop must never run with.
func (c Config) Validate() error {
	if err := protocol.ValidatePorts(c.Ports[:]); err != nil {
		return err
	}
	if c.ReadBuffer <= protocol.RequestSize {
		return fmt.Errorf("%w: read buffer %d must exceed %d bytes", protocol.ErrConfiguration, c.ReadBuffer, protocol.RequestSize)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit %v", protocol.ErrConfiguration, c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("%w: rate burst %d must be at least 1", protocol.ErrConfiguration, c.RateBurst)
	}
	return nil
}

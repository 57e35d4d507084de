// Package client performs one dt-request/dt-response exchange.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/danmuck/dtclock/internal/protocol"
	"github.com/rs/zerolog/log"
)

const readBuffer = 512

// Config selects the request kind and the server channel to ask.
type Config struct {
	Kind    protocol.RequestKind
	Host    string
	Port    int
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Kind:    protocol.KindDate,
		Host:    "localhost",
		Port:    5000,
		Timeout: time.Second,
	}
}

func (c Config) Validate() error {
	if !c.Kind.Valid() {
		return fmt.Errorf("%w: %s", protocol.ErrInvalidRequestKind, c.Kind)
	}
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host is required", protocol.ErrConfiguration)
	}
	if err := protocol.ValidatePort(c.Port); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", protocol.ErrConfiguration)
	}
	return nil
}

// Exchange sends one request and waits for one validated response. The
// wait is bounded by cfg.Timeout and by ctx's deadline, whichever is sooner.
// There are no retries.
func Exchange(ctx context.Context, cfg Config) (protocol.Response, error) {
	if !cfg.Kind.Valid() {
		return protocol.Response{}, fmt.Errorf("%w: %s", protocol.ErrInvalidRequestKind, cfg.Kind)
	}
	addr, err := resolve(ctx, cfg.Host, cfg.Port)
	if err != nil {
		return protocol.Response{}, err
	}

	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return protocol.Response{}, fmt.Errorf("%w: open socket: %v", protocol.ErrTransportFailure, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(cfg.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return protocol.Response{}, fmt.Errorf("%w: set deadline: %v", protocol.ErrTransportFailure, err)
	}

	log.Debug().Str("kind", cfg.Kind.String()).Str("server", addr.String()).Msg("sending request")
	if _, err := conn.Write(protocol.EncodeRequest(cfg.Kind)); err != nil {
		return protocol.Response{}, classify("send", err)
	}

	buf := make([]byte, readBuffer)
	n, err := conn.Read(buf)
	if err != nil {
		return protocol.Response{}, classify("receive", err)
	}
	log.Debug().Int("bytes", n).Msg("received response")
	return protocol.ValidateResponse(buf[:n])
}

func resolve(ctx context.Context, host string, port int) (*net.UDPAddr, error) {
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("%w: hostname resolution failed for %q: %v", protocol.ErrConfiguration, host, err)
	}
	return firstAddr(host, port, ips)
}

func firstAddr(host string, port int, ips []net.IP) (*net.UDPAddr, error) {
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w: hostname resolution failed for %q: no IPv4 address", protocol.ErrConfiguration, host)
	}
	return &net.UDPAddr{IP: ips[0], Port: port}, nil
}

func classify(op string, err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %s: %v", protocol.ErrTimeout, op, err)
	}
	return fmt.Errorf("%w: %s: %v", protocol.ErrTransportFailure, op, err)
}

// Describe renders resp for a terminal: the text line, then the fields.
func Describe(resp protocol.Response) string {
	lang, _ := resp.Language()
	var b strings.Builder
	b.WriteString(resp.Text)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "language: %s (%d)\n", lang, resp.LanguageCode)
	fmt.Fprintf(&b, "date:     %04d-%02d-%02d\n", resp.Year, resp.Month, resp.Day)
	fmt.Fprintf(&b, "time:     %02d:%02d\n", resp.Hour, resp.Minute)
	fmt.Fprintf(&b, "length:   %d bytes\n", resp.TextLength)
	return b.String()
}

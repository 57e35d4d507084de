package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/danmuck/dtclock/internal/protocol"
	"github.com/rs/zerolog/log"
)

// LanguageChannel binds one listening socket to the language it answers in.
type LanguageChannel struct {
	Language protocol.Language
	Port     int
	conn     *net.UDPConn
}

// Addr returns the bound local address.
func (c *LanguageChannel) Addr() net.Addr {
	return c.conn.LocalAddr()
}

func bindChannel(host string, lang protocol.Language, port int) (*LanguageChannel, error) {
	log.Info().Str("language", lang.String()).Int("port", port).Msg("binding language channel")
	addr, err := net.ResolveUDPAddr("udp4", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s channel: %v", protocol.ErrTransportFailure, lang, err)
	}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: bind %s channel: %v", protocol.ErrTransportFailure, lang, err)
	}
	return &LanguageChannel{Language: lang, Port: conn.LocalAddr().(*net.UDPAddr).Port, conn: conn}, nil
}

func closeChannels(channels []*LanguageChannel) error {
	var errs []error
	for _, ch := range channels {
		if err := ch.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			errs = append(errs, fmt.Errorf("close %s channel: %w", ch.Language, err))
		}
	}
	return errors.Join(errs...)
}

// Package server answers dt-requests on one UDP channel per language.
//
// All channels fan in to a single dispatch loop: one datagram is read,
// validated, answered and sent before the next is taken, and whichever
// channel becomes ready first is served first.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/danmuck/dtclock/internal/observability"
	"github.com/danmuck/dtclock/internal/protocol"
	"github.com/danmuck/dtclock/internal/protocol/text"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var (
	ErrNotOpen     = errors.New("server: channels not open")
	ErrAlreadyOpen = errors.New("server: channels already open")
)

type datagram struct {
	channel *LanguageChannel
	addr    *net.UDPAddr
	payload []byte
}

// Server owns the language channels and the dispatch loop.
type Server struct {
	cfg     Config
	now     func() time.Time
	limiter *rate.Limiter

	mu        sync.Mutex
	channels  []*LanguageChannel
	done      chan struct{}
	closeOnce sync.Once
}

// New validates cfg and returns an unopened server.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newServer(cfg), nil
}

func newServer(cfg Config) *Server {
	s := &Server{
		cfg:  cfg,
		now:  time.Now,
		done: make(chan struct{}),
	}
	if cfg.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	return s
}

// Open binds every language channel. If any bind fails the channels bound
// so far are released before returning.
func (s *Server) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.channels) > 0 {
		return ErrAlreadyOpen
	}
	channels := make([]*LanguageChannel, 0, protocol.LanguageCount)
	for _, lang := range protocol.Languages() {
		ch, err := bindChannel(s.cfg.Host, lang, s.cfg.Ports[lang])
		if err != nil {
			if cerr := closeChannels(channels); cerr != nil {
				log.Warn().Err(cerr).Msg("release after failed bind")
			}
			return err
		}
		channels = append(channels, ch)
	}
	s.channels = channels
	return nil
}

// Channels returns the open language channels in language order.
func (s *Server) Channels() []*LanguageChannel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*LanguageChannel, len(s.channels))
	copy(out, s.channels)
	return out
}

// Close releases every channel and stops Serve. Safe to call more than once.
func (s *Server) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	s.mu.Lock()
	channels := s.channels
	s.channels = nil
	s.mu.Unlock()
	return closeChannels(channels)
}

func (s *Server) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Serve runs the dispatch loop until ctx is done, Close is called, or a
// channel fails in a way that cannot be recovered. Per-datagram failures
// are logged and dropped. Every channel is released on return.
func (s *Server) Serve(ctx context.Context) error {
	channels := s.Channels()
	if len(channels) == 0 {
		return ErrNotOpen
	}

	ctx, cancel := context.WithCancel(ctx)
	in := make(chan datagram)
	fatal := make(chan error, len(channels))
	var wg sync.WaitGroup
	for _, ch := range channels {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.readLoop(ctx, ch, in, fatal)
		}()
	}
	defer func() {
		cancel()
		if err := s.Close(); err != nil {
			log.Warn().Err(err).Msg("release channels")
		}
		wg.Wait()
	}()

	log.Info().Int("channels", len(channels)).Msg("waiting for requests")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("server stopping")
			return nil
		case <-s.done:
			log.Info().Msg("server closed")
			return nil
		case err := <-fatal:
			log.Error().Err(err).Msg("server stopping on channel failure")
			return err
		case d := <-in:
			s.dispatch(d)
		}
	}
}

func (s *Server) readLoop(ctx context.Context, ch *LanguageChannel, in chan<- datagram, fatal chan<- error) {
	failures := 0
	for {
		buf := make([]byte, s.cfg.ReadBuffer)
		n, addr, err := ch.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || s.closed() {
				return
			}
			if errors.Is(err, net.ErrClosed) {
				fatal <- fmt.Errorf("%w: %s channel: %v", protocol.ErrTransportFailure, ch.Language, err)
				return
			}
			failures++
			delay := readBackoff(failures)
			log.Warn().Err(err).
				Str("language", ch.Language.String()).
				Int("consecutive", failures).
				Dur("backoff", delay).
				Msg("read failed, datagram dropped")
			observability.RecordDatagram(ch.Language.String(), observability.OutcomeReadFailed)
			if !s.pause(ctx, delay) {
				return
			}
			continue
		}
		failures = 0
		select {
		case in <- datagram{channel: ch, addr: addr, payload: buf[:n]}:
		case <-ctx.Done():
			return
		}
	}
}

// pause waits for d unless the server is stopping; it reports whether the
// caller should keep reading.
func (s *Server) pause(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	case <-s.done:
		return false
	}
}

func (s *Server) dispatch(d datagram) {
	lang := d.channel.Language
	logger := log.With().
		Str("exchange", uuid.NewString()).
		Str("language", lang.String()).
		Str("remote", d.addr.String()).
		Logger()

	if s.limiter != nil && !s.limiter.Allow() {
		logger.Warn().Msg("rate limit exceeded, datagram dropped")
		observability.RecordDatagram(lang.String(), observability.OutcomeRateLimited)
		return
	}

	packet, err := s.respond(lang, d.payload)
	if err != nil {
		outcome := observability.OutcomeInvalidRequest
		if errors.Is(err, protocol.ErrEncodingOverflow) {
			outcome = observability.OutcomeEncodeOverflow
		}
		logger.Warn().Err(err).Int("bytes", len(d.payload)).Msg("datagram dropped")
		observability.RecordDatagram(lang.String(), outcome)
		return
	}

	if _, err := d.channel.conn.WriteToUDP(packet, d.addr); err != nil {
		logger.Warn().Err(fmt.Errorf("%w: %v", protocol.ErrTransportFailure, err)).Msg("send failed, response dropped")
		observability.RecordDatagram(lang.String(), observability.OutcomeSendFailed)
		return
	}
	logger.Info().Int("bytes", len(packet)).Msg("response sent")
	observability.RecordResponse(lang.String(), len(packet))
}

// respond validates one request payload and builds the response for lang.
func (s *Server) respond(lang protocol.Language, payload []byte) ([]byte, error) {
	req, err := protocol.ValidateRequest(payload)
	if err != nil {
		return nil, err
	}
	ts := protocol.TimestampOf(s.now())
	return protocol.EncodeResponse(lang, ts, text.Format(ts, lang, req.Kind()))
}

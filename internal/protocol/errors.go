package protocol

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedPacket    = errors.New("protocol: malformed packet")
	ErrUnsupportedField   = errors.New("protocol: unsupported field value")
	ErrEncodingOverflow   = errors.New("protocol: text too long, packet dropped")
	ErrTimeout            = errors.New("protocol: timed out")
	ErrTransportFailure   = errors.New("protocol: transport failure")
	ErrConfiguration      = errors.New("protocol: invalid configuration")
	ErrInvalidRequestKind = errors.New("protocol: invalid request kind")
)

// ValidationError reports why an inbound packet was rejected.
// Kind is one of ErrMalformedPacket or ErrUnsupportedField.
type ValidationError struct {
	Packet string
	Kind   error
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("protocol: invalid %s: %s", e.Packet, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func malformed(packet, format string, args ...any) error {
	return &ValidationError{Packet: packet, Kind: ErrMalformedPacket, Reason: fmt.Sprintf(format, args...)}
}

func unsupported(packet, format string, args ...any) error {
	return &ValidationError{Packet: packet, Kind: ErrUnsupportedField, Reason: fmt.Sprintf(format, args...)}
}

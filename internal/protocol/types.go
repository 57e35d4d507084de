package protocol

import (
	"fmt"
	"strings"
)

const (
	MagicNo uint16 = 0x36FB

	PacketTypeRequest  uint16 = 0x0001
	PacketTypeResponse uint16 = 0x0002

	RequestSize        = 6
	ResponseHeaderSize = 13
	MaxTextLength      = 255
	MaxResponseSize    = ResponseHeaderSize + MaxTextLength

	MaxYear = 2100
)

// RequestKind is the semantic request category carried in requestType.
type RequestKind uint16

const (
	KindDate RequestKind = 0x0001
	KindTime RequestKind = 0x0002
)

func (k RequestKind) Valid() bool {
	return k == KindDate || k == KindTime
}

func (k RequestKind) String() string {
	switch k {
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return fmt.Sprintf("kind(%d)", uint16(k))
	}
}

// ParseRequestKind maps "date" or "time" (any case) to a RequestKind.
func ParseRequestKind(raw string) (RequestKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "date":
		return KindDate, nil
	case "time":
		return KindTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRequestKind, raw)
	}
}

// Language is the 0-based language index. The wire languageCode is index+1.
type Language int

const (
	English Language = iota
	Maori
	German

	LanguageCount = 3
)

func (l Language) Valid() bool {
	return l >= English && l <= German
}

// Code returns the wire languageCode for l.
func (l Language) Code() uint16 {
	return uint16(l) + 1
}

// LanguageFromCode maps a wire languageCode back to its index.
func LanguageFromCode(code uint16) (Language, bool) {
	if code < 1 || code > LanguageCount {
		return 0, false
	}
	return Language(code - 1), true
}

func (l Language) String() string {
	switch l {
	case English:
		return "English"
	case Maori:
		return "Māori"
	case German:
		return "German"
	default:
		return fmt.Sprintf("language(%d)", int(l))
	}
}

// Languages lists every supported language in port order.
func Languages() []Language {
	return []Language{English, Maori, German}
}

// Request holds the raw fields of a dt-request.
type Request struct {
	MagicNo     uint16
	PacketType  uint16
	RequestType uint16
}

// Kind returns the request type as a RequestKind.
func (r Request) Kind() RequestKind {
	return RequestKind(r.RequestType)
}

// Timestamp is the calendar subset carried by a dt-response.
type Timestamp struct {
	Year   uint16
	Month  uint8
	Day    uint8
	Hour   uint8
	Minute uint8
}

// Response holds the raw fields of a dt-response.
type Response struct {
	MagicNo      uint16
	PacketType   uint16
	LanguageCode uint16
	Timestamp
	TextLength uint8
	Text       string
}

// Language returns the response language index, if the code is known.
func (r Response) Language() (Language, bool) {
	return LanguageFromCode(r.LanguageCode)
}

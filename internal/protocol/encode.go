package protocol

import (
	"encoding/binary"
	"fmt"
	"time"
)

// EncodeRequest builds the 6-byte dt-request for kind.
// Callers pass a kind that has already been checked with Valid.
func EncodeRequest(kind RequestKind) []byte {
	buf := make([]byte, RequestSize)
	binary.BigEndian.PutUint16(buf[0:2], MagicNo)
	binary.BigEndian.PutUint16(buf[2:4], PacketTypeRequest)
	binary.BigEndian.PutUint16(buf[4:6], uint16(kind))
	return buf
}

// EncodeResponse builds a dt-response carrying ts and text for lang.
// Text longer than MaxTextLength bytes is never truncated; the packet is
// refused with ErrEncodingOverflow instead.
func EncodeResponse(lang Language, ts Timestamp, text string) ([]byte, error) {
	if len(text) > MaxTextLength {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrEncodingOverflow, len(text), MaxTextLength)
	}
	buf := make([]byte, ResponseHeaderSize+len(text))
	binary.BigEndian.PutUint16(buf[0:2], MagicNo)
	binary.BigEndian.PutUint16(buf[2:4], PacketTypeResponse)
	binary.BigEndian.PutUint16(buf[4:6], lang.Code())
	binary.BigEndian.PutUint16(buf[6:8], ts.Year)
	buf[8] = ts.Month
	buf[9] = ts.Day
	buf[10] = ts.Hour
	buf[11] = ts.Minute
	buf[12] = uint8(len(text))
	copy(buf[ResponseHeaderSize:], text)
	return buf, nil
}

// TimestampOf extracts the response calendar fields from t in t's location.
func TimestampOf(t time.Time) Timestamp {
	return Timestamp{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
	}
}

package protocol

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRequestRoundTrip(t *testing.T) {
	for _, kind := range []RequestKind{KindDate, KindTime} {
		buf := EncodeRequest(kind)
		if len(buf) != RequestSize {
			t.Fatalf("%s: unexpected length %d", kind, len(buf))
		}
		req := DecodeRequestFields(buf)
		if req.MagicNo != MagicNo || req.PacketType != PacketTypeRequest || req.Kind() != kind {
			t.Fatalf("%s: unexpected fields %+v", kind, req)
		}
		if _, err := ValidateRequest(buf); err != nil {
			t.Fatalf("%s: validate: %v", kind, err)
		}
	}
}

func TestEncodeRequestLayout(t *testing.T) {
	want := []byte{0x36, 0xFB, 0x00, 0x01, 0x00, 0x02}
	if got := EncodeRequest(KindTime); !bytes.Equal(got, want) {
		t.Fatalf("layout mismatch: got=% x want=% x", got, want)
	}
}

func TestValidateRequestRejects(t *testing.T) {
	valid := EncodeRequest(KindDate)
	cases := []struct {
		name string
		buf  []byte
		kind error
	}{
		{"empty", []byte{}, ErrMalformedPacket},
		{"short", valid[:5], ErrMalformedPacket},
		{"long", append(append([]byte{}, valid...), 0x00), ErrMalformedPacket},
		{"magic", withByte(valid, 0, 0x12), ErrMalformedPacket},
		{"packet type", withByte(valid, 3, 0x02), ErrMalformedPacket},
		{"packet type high byte", withByte(valid, 2, 0x01), ErrMalformedPacket},
		{"request type", withByte(valid, 5, 0x03), ErrUnsupportedField},
		{"request type high byte", withByte(valid, 4, 0x01), ErrUnsupportedField},
		{"request type zero", withByte(valid, 5, 0x00), ErrUnsupportedField},
	}
	for _, tc := range cases {
		_, err := ValidateRequest(tc.buf)
		if !errors.Is(err, tc.kind) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.kind, err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Packet != packetRequest {
			t.Fatalf("%s: expected request ValidationError, got %v", tc.name, err)
		}
	}
}

func TestResponseRoundTrip(t *testing.T) {
	ts := Timestamp{Year: 2026, Month: 10, Day: 17, Hour: 9, Minute: 5}
	text := "Ko te wā o tēnei wā 09:05"
	for _, lang := range Languages() {
		buf, err := EncodeResponse(lang, ts, text)
		if err != nil {
			t.Fatalf("%s: encode: %v", lang, err)
		}
		if len(buf) != ResponseHeaderSize+len(text) {
			t.Fatalf("%s: unexpected length %d", lang, len(buf))
		}
		resp, err := ValidateResponse(buf)
		if err != nil {
			t.Fatalf("%s: validate: %v", lang, err)
		}
		if resp.Timestamp != ts {
			t.Fatalf("%s: timestamp mismatch: got=%+v want=%+v", lang, resp.Timestamp, ts)
		}
		got, ok := resp.Language()
		if !ok || got != lang || resp.LanguageCode != uint16(lang)+1 {
			t.Fatalf("%s: language mismatch: code=%d", lang, resp.LanguageCode)
		}
		if int(resp.TextLength) != len(text) || resp.Text != text {
			t.Fatalf("%s: text mismatch: len=%d text=%q", lang, resp.TextLength, resp.Text)
		}
	}
}

func TestEncodeResponseLayout(t *testing.T) {
	buf, err := EncodeResponse(German, Timestamp{Year: 2100, Month: 12, Day: 31, Hour: 23, Minute: 59}, "ab")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x36, 0xFB, 0x00, 0x02, 0x00, 0x03, 0x08, 0x34, 12, 31, 23, 59, 2, 'a', 'b'}
	if !bytes.Equal(buf, want) {
		t.Fatalf("layout mismatch: got=% x want=% x", buf, want)
	}
}

func TestEncodeResponseOverflow(t *testing.T) {
	ts := Timestamp{Year: 2026, Month: 1, Day: 1}
	if _, err := EncodeResponse(English, ts, strings.Repeat("x", MaxTextLength)); err != nil {
		t.Fatalf("expected 255 bytes to fit, got %v", err)
	}
	buf, err := EncodeResponse(English, ts, strings.Repeat("x", MaxTextLength+1))
	if !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("expected ErrEncodingOverflow, got %v", err)
	}
	if buf != nil {
		t.Fatalf("expected no packet on overflow")
	}
	// 128 two-byte runes: 128 characters, 256 bytes.
	if _, err := EncodeResponse(Maori, ts, strings.Repeat("ā", 128)); !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("expected byte length to be measured, got %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	valid, err := EncodeResponse(English, Timestamp{Year: 2026, Month: 2, Day: 28, Hour: 12, Minute: 30}, "hi")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	cases := []struct {
		name string
		buf  []byte
		kind error
	}{
		{"short header", valid[:12], ErrMalformedPacket},
		{"magic", withByte(valid, 1, 0x00), ErrMalformedPacket},
		{"packet type", withByte(valid, 3, 0x01), ErrMalformedPacket},
		{"language 0", withByte(valid, 5, 0), ErrUnsupportedField},
		{"language 4", withByte(valid, 5, 4), ErrUnsupportedField},
		{"year", withByte(withByte(valid, 6, 0x08), 7, 0x35), ErrUnsupportedField},
		{"month 0", withByte(valid, 8, 0), ErrUnsupportedField},
		{"month 13", withByte(valid, 8, 13), ErrUnsupportedField},
		{"day 0", withByte(valid, 9, 0), ErrUnsupportedField},
		{"day 32", withByte(valid, 9, 32), ErrUnsupportedField},
		{"hour 24", withByte(valid, 10, 24), ErrUnsupportedField},
		{"minute 60", withByte(valid, 11, 60), ErrUnsupportedField},
		{"text length short", withByte(valid, 12, 1), ErrMalformedPacket},
		{"text length long", withByte(valid, 12, 3), ErrMalformedPacket},
		{"trailing byte", append(append([]byte{}, valid...), 'x'), ErrMalformedPacket},
		{"utf8", withByte(withByte(valid, 13, 0xC3), 14, 0x28), ErrMalformedPacket},
	}
	for _, tc := range cases {
		_, err := ValidateResponse(tc.buf)
		if !errors.Is(err, tc.kind) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.kind, err)
		}
	}
}

func TestValidateResponseFirstFailureWins(t *testing.T) {
	valid, err := EncodeResponse(English, Timestamp{Year: 2026, Month: 2, Day: 28}, "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	buf := withByte(withByte(valid, 8, 13), 11, 99)
	_, err = ValidateResponse(buf)
	var verr *ValidationError
	if !errors.As(err, &verr) || !strings.Contains(verr.Reason, "month") {
		t.Fatalf("expected month failure first, got %v", err)
	}
}

func TestValidateResponseCalendarAgnosticDay(t *testing.T) {
	buf, err := EncodeResponse(English, Timestamp{Year: 2026, Month: 2, Day: 31}, "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := ValidateResponse(buf); err != nil {
		t.Fatalf("expected day 31 in February to pass, got %v", err)
	}
}

func TestValidateResponseYearBoundary(t *testing.T) {
	buf, err := EncodeResponse(English, Timestamp{Year: MaxYear, Month: 1, Day: 1}, "")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := ValidateResponse(buf); err != nil {
		t.Fatalf("expected year %d to pass, got %v", MaxYear, err)
	}
	// 0x0900 has a small low byte; the combined value must still be rejected.
	if _, err := ValidateResponse(withByte(withByte(buf, 6, 0x09), 7, 0x00)); !errors.Is(err, ErrUnsupportedField) {
		t.Fatalf("expected year 2304 rejected, got %v", err)
	}
}

func TestTimestampOf(t *testing.T) {
	ts := TimestampOf(time.Date(2024, time.February, 29, 23, 7, 45, 0, time.UTC))
	want := Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 23, Minute: 7}
	if ts != want {
		t.Fatalf("unexpected timestamp: got=%+v want=%+v", ts, want)
	}
}

func TestParseRequestKind(t *testing.T) {
	if k, err := ParseRequestKind(" Date "); err != nil || k != KindDate {
		t.Fatalf("unexpected parse: %v %v", k, err)
	}
	if k, err := ParseRequestKind("time"); err != nil || k != KindTime {
		t.Fatalf("unexpected parse: %v %v", k, err)
	}
	if _, err := ParseRequestKind("week"); !errors.Is(err, ErrInvalidRequestKind) {
		t.Fatalf("expected ErrInvalidRequestKind, got %v", err)
	}
}

func withByte(buf []byte, i int, v byte) []byte {
	out := append([]byte{}, buf...)
	out[i] = v
	return out
}

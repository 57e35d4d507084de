package protocol

import "unicode/utf8"

const (
	packetRequest  = "dt-request"
	packetResponse = "dt-response"
)

// ValidateRequest checks buf against the dt-request contract and returns
// the decoded request on success.
func ValidateRequest(buf []byte) (Request, error) {
	if len(buf) != RequestSize {
		return Request{}, malformed(packetRequest, "length %d, want %d", len(buf), RequestSize)
	}
	req := DecodeRequestFields(buf)
	if req.MagicNo != MagicNo {
		return Request{}, malformed(packetRequest, "magic number 0x%04X", req.MagicNo)
	}
	if req.PacketType != PacketTypeRequest {
		return Request{}, malformed(packetRequest, "packet type 0x%04X", req.PacketType)
	}
	if !req.Kind().Valid() {
		return Request{}, unsupported(packetRequest, "request type 0x%04X", req.RequestType)
	}
	return req, nil
}

// ValidateResponse checks buf against the dt-response contract. Checks run
// in wire order and the first failure is reported.
func ValidateResponse(buf []byte) (Response, error) {
	if len(buf) < ResponseHeaderSize {
		return Response{}, malformed(packetResponse, "length %d shorter than header (%d)", len(buf), ResponseHeaderSize)
	}
	resp := DecodeResponseFields(buf)
	if resp.MagicNo != MagicNo {
		return Response{}, malformed(packetResponse, "magic number 0x%04X", resp.MagicNo)
	}
	if resp.PacketType != PacketTypeResponse {
		return Response{}, malformed(packetResponse, "packet type 0x%04X", resp.PacketType)
	}
	if _, ok := resp.Language(); !ok {
		return Response{}, unsupported(packetResponse, "language code %d", resp.LanguageCode)
	}
	if resp.Year > MaxYear {
		return Response{}, unsupported(packetResponse, "year %d exceeds %d", resp.Year, MaxYear)
	}
	if resp.Month < 1 || resp.Month > 12 {
		return Response{}, unsupported(packetResponse, "month %d", resp.Month)
	}
	// Day is not checked against the month's length.
	if resp.Day < 1 || resp.Day > 31 {
		return Response{}, unsupported(packetResponse, "day %d", resp.Day)
	}
	if resp.Hour > 23 {
		return Response{}, unsupported(packetResponse, "hour %d", resp.Hour)
	}
	if resp.Minute > 59 {
		return Response{}, unsupported(packetResponse, "minute %d", resp.Minute)
	}
	if want := ResponseHeaderSize + int(resp.TextLength); len(buf) != want {
		return Response{}, malformed(packetResponse, "length %d, text length field says %d", len(buf), want)
	}
	if !utf8.Valid(buf[ResponseHeaderSize:]) {
		return Response{}, malformed(packetResponse, "text is not valid UTF-8")
	}
	return resp, nil
}

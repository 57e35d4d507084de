package protocol

import "encoding/binary"

// DecodeRequestFields extracts the dt-request fields from buf without
// validating them. buf must hold at least RequestSize bytes.
func DecodeRequestFields(buf []byte) Request {
	_ = buf[RequestSize-1]
	return Request{
		MagicNo:     binary.BigEndian.Uint16(buf[0:2]),
		PacketType:  binary.BigEndian.Uint16(buf[2:4]),
		RequestType: binary.BigEndian.Uint16(buf[4:6]),
	}
}

// DecodeResponseFields extracts the dt-response fields from buf without
// validating them. buf must hold at least ResponseHeaderSize bytes; Text is
// whatever trails the header, regardless of the declared TextLength.
func DecodeResponseFields(buf []byte) Response {
	_ = buf[ResponseHeaderSize-1]
	return Response{
		MagicNo:      binary.BigEndian.Uint16(buf[0:2]),
		PacketType:   binary.BigEndian.Uint16(buf[2:4]),
		LanguageCode: binary.BigEndian.Uint16(buf[4:6]),
		Timestamp: Timestamp{
			Year:   binary.BigEndian.Uint16(buf[6:8]),
			Month:  buf[8],
			Day:    buf[9],
			Hour:   buf[10],
			Minute: buf[11],
		},
		TextLength: buf[12],
		Text:       string(buf[ResponseHeaderSize:]),
	}
}

package proto

import (
	"encoding/binary"
	"unicode/utf8"
)

// CalcPressPayload encodes a MsgCalcPress request.
//
// Payload format:
//
//	u8 button (calc.Button)
func CalcPressPayload(button uint8) []byte {
	return []byte{button}
}

func DecodeCalcPressPayload(b []byte) (button uint8, ok bool) {
	if len(b) != 1 {
		return 0, false
	}
	return b[0], true
}

// CalcStatusPayload encodes a calculator status request.
//
// Payload format (little-endian):
//
//	u32 requestID
//
// The reply capability must be transferred in Message.Cap.
func CalcStatusPayload(requestID uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, requestID)
	return b
}

func DecodeCalcStatusPayload(b []byte) (requestID uint32, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

const (
	calcStatusRespHeader = 7

	// Mirrors kernel.MaxMessageBytes; proto does not import the kernel.
	maxPayload = 128
)

// CalcStatusRespPayload encodes a calculator status response.
//
// Payload format (little-endian):
//
//	u32 requestID
//	u16 historyLen
//	u8  displayLen
//	..  display
//	..  expression (rest of payload)
//
// Text that does not fit in one message is truncated, expression first.
func CalcStatusRespPayload(requestID uint32, historyLen int, display, expression string) []byte {
	const room = maxPayload - calcStatusRespHeader

	display = truncateUTF8(display, room)
	expression = truncateUTF8(expression, room-len(display))
	if historyLen > 0xFFFF {
		historyLen = 0xFFFF
	}
	if historyLen < 0 {
		historyLen = 0
	}

	b := make([]byte, calcStatusRespHeader+len(display)+len(expression))
	binary.LittleEndian.PutUint32(b[0:4], requestID)
	binary.LittleEndian.PutUint16(b[4:6], uint16(historyLen))
	b[6] = byte(len(display))
	copy(b[7:], display)
	copy(b[7+len(display):], expression)
	return b
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func DecodeCalcStatusRespPayload(b []byte) (requestID uint32, historyLen int, display, expression string, ok bool) {
	if len(b) < calcStatusRespHeader {
		return 0, 0, "", "", false
	}
	n := int(b[6])
	if len(b) < calcStatusRespHeader+n {
		return 0, 0, "", "", false
	}
	requestID = binary.LittleEndian.Uint32(b[0:4])
	historyLen = int(binary.LittleEndian.Uint16(b[4:6]))
	display = string(b[7 : 7+n])
	expression = string(b[7+n:])
	return requestID, historyLen, display, expression, true
}

package calc

import (
	"unicode/utf8"

	calcengine "sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
)

type keyKind uint8

const (
	keyRune keyKind = iota
	keyEnter
	keyEsc
	keyUp
	keyDown
	keyLeft
	keyRight
	keyHome
	keyPageUp
	keyPageDown
	keyOther
)

type key struct {
	kind keyKind
	r    rune
}

// nextKey decodes one VT100 key from b. consumed is 0 when b holds only the
// start of a sequence.
func nextKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) == 0 {
		return 0, key{}, false
	}

	if b[0] == 0x1b {
		return parseEscapeKey(b)
	}

	switch b[0] {
	case '\r', '\n':
		return 1, key{kind: keyEnter}, true
	}
	if b[0] < 0x20 || b[0] == 0x7f {
		return 1, key{kind: keyOther}, true
	}

	if !utf8.FullRune(b) {
		return 0, key{}, false
	}
	r, sz := utf8.DecodeRune(b)
	if r == utf8.RuneError && sz == 1 {
		return 1, key{kind: keyOther}, true
	}
	return sz, key{kind: keyRune, r: r}, true
}

// maxCSI bounds how long an unterminated CSI sequence may sit in the buffer.
const maxCSI = 16

func parseEscapeKey(b []byte) (consumed int, k key, ok bool) {
	if len(b) < 2 || b[1] != '[' {
		return 1, key{kind: keyEsc}, true
	}

	// CSI: parameter and intermediate bytes, then one final byte in 0x40..0x7e.
	end := 2
	for end < len(b) && b[end] >= 0x20 && b[end] <= 0x3f {
		end++
	}
	if end == len(b) {
		if end >= maxCSI {
			return end, key{kind: keyOther}, true
		}
		return 0, key{}, false
	}
	if b[end] < 0x40 || b[end] > 0x7e {
		return end, key{kind: keyOther}, true
	}
	n := end + 1

	params := string(b[2:end])
	switch b[end] {
	case 'A':
		if params == "" {
			return n, key{kind: keyUp}, true
		}
	case 'B':
		if params == "" {
			return n, key{kind: keyDown}, true
		}
	case 'C':
		if params == "" {
			return n, key{kind: keyRight}, true
		}
	case 'D':
		if params == "" {
			return n, key{kind: keyLeft}, true
		}
	case 'H':
		if params == "" {
			return n, key{kind: keyHome}, true
		}
	case '~':
		switch params {
		case "1":
			return n, key{kind: keyHome}, true
		case "5":
			return n, key{kind: keyPageUp}, true
		case "6":
			return n, key{kind: keyPageDown}, true
		}
	}
	return n, key{kind: keyOther}, true
}

// handleInput applies buffered VT100 input. A trailing partial sequence stays
// buffered for the next message.
func (t *Task) handleInput(ctx *kernel.Context, b []byte) {
	t.inbuf = append(t.inbuf, b...)

	for len(t.inbuf) > 0 {
		n, k, ok := nextKey(t.inbuf)
		if !ok || n == 0 {
			break
		}
		t.inbuf = t.inbuf[n:]
		t.handleKey(ctx, k)
	}
	if len(t.inbuf) == 0 {
		t.inbuf = nil
	}
}

func (t *Task) handleKey(ctx *kernel.Context, k key) {
	switch k.kind {
	case keyRune:
		b, ok := calcengine.ButtonForRune(k.r)
		if !ok {
			return
		}
		if idx := calcengine.CellFor(b); idx >= 0 {
			t.focus = idx
		}
		t.press(ctx, b)

	case keyEnter:
		if t.focus < 0 || t.focus >= len(calcengine.Keypad) {
			t.focus = calcengine.CellFor(calcengine.Button0)
		}
		t.press(ctx, calcengine.Keypad[t.focus].Button)

	case keyEsc:
		t.press(ctx, calcengine.ButtonClear)

	case keyUp:
		t.focus = calcengine.Move(t.focus, 0, -1)
	case keyDown:
		t.focus = calcengine.Move(t.focus, 0, 1)
	case keyLeft:
		t.focus = calcengine.Move(t.focus, -1, 0)
	case keyRight:
		t.focus = calcengine.Move(t.focus, 1, 0)

	case keyHome:
		t.histTop = 0
	case keyPageUp:
		t.scrollHistory(-historyRows)
	case keyPageDown:
		t.scrollHistory(historyRows)
	}
}

func (t *Task) scrollHistory(delta int) {
	top := t.histTop + delta
	if limit := t.eng.HistoryLen() - historyRows; top > limit {
		top = limit
	}
	if top < 0 {
		top = 0
	}
	t.histTop = top
}

package calc

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"sparkcalc/internal/fbdisplay"
	calcengine "sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/kernel"
)

var (
	colorBG      = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
	colorFG      = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim     = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorPanelBG = color.RGBA{R: 0x1c, G: 0x1c, B: 0x24, A: 0xff}
	colorKeyBG   = color.RGBA{R: 0x2c, G: 0x2c, B: 0x38, A: 0xff}
	colorOpBG    = color.RGBA{R: 0xc0, G: 0x68, B: 0x10, A: 0xff}
	colorFocusBG = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorFocusFG = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
)

const (
	historyRows = 3
	pad         = 4

	displayScaleMax = 4
)

type layout struct {
	w, h int16

	histY, histH int16
	exprY        int16
	dispY, dispH int16

	keyY         int16
	cellW, cellH int16
}

func computeLayout(w, h int16) layout {
	fh := fbdisplay.FontHeight

	var l layout
	l.w, l.h = w, h
	l.histY = 0
	l.histH = (1+2*historyRows)*fh + pad
	l.exprY = l.histY + l.histH + pad
	l.dispY = l.exprY + fh + pad
	l.dispH = fh * displayScaleMax
	l.keyY = l.dispY + l.dispH + pad

	l.cellW = (w - 2*pad) / calcengine.KeypadCols
	l.cellH = (h - l.keyY - pad) / calcengine.KeypadRows
	if l.cellW < 0 {
		l.cellW = 0
	}
	if l.cellH < 0 {
		l.cellH = 0
	}
	return l
}

func (t *Task) render() {
	// The panic screen owns the framebuffer once it is up.
	if t.tape || t.d == nil || kernel.InPanicMode() {
		return
	}
	l := computeLayout(t.d.Size())

	t.d.Clear(colorBG)
	t.drawHistory(l)
	t.drawExpression(l)
	t.drawDisplay(l)
	t.drawKeypad(l)
	_ = t.d.Display()
}

func (t *Task) drawHistory(l layout) {
	fh := fbdisplay.FontHeight
	_ = t.d.FillRectangle(0, l.histY, l.w, l.histH, colorPanelBG)

	hist := t.eng.HistoryNewestFirst()
	title := "History"
	if len(hist) > historyRows {
		last := t.histTop + historyRows
		if last > len(hist) {
			last = len(hist)
		}
		title = fmt.Sprintf("History %d-%d/%d", t.histTop+1, last, len(hist))
	}
	fbdisplay.DrawText(t.d, pad, l.histY+2, title, colorDim)

	if len(hist) == 0 {
		fbdisplay.DrawText(t.d, pad, l.histY+2+fh, "No calculations yet", colorDim)
		return
	}
	t.drawRight(l, l.histY+2, "Clear [h]", colorDim)

	for i := 0; i < historyRows && t.histTop+i < len(hist); i++ {
		e := hist[t.histTop+i]
		y := l.histY + 2 + fh*int16(1+2*i)
		t.drawRight(l, y, e.Expression+" =", colorDim)
		t.drawRight(l, y+fh, e.Result, colorFG)
	}
}

func (t *Task) drawExpression(l layout) {
	expr := t.eng.Expression()
	if expr == "" {
		return
	}
	t.drawRight(l, l.exprY, expr, colorDim)
}

func (t *Task) drawDisplay(l layout) {
	s := asciiText(t.eng.Display())
	room := l.w - 2*pad

	scale := int16(displayScaleMax)
	for scale > 1 && fbdisplay.TextWidth(s)*scale > room {
		scale--
	}
	s = fitRight(s, room/scale)

	sd := fbdisplay.Scaled{
		Base:   t.d,
		Factor: scale,
		OX:     l.w - pad - fbdisplay.TextWidth(s)*scale,
		OY:     l.dispY + l.dispH - fbdisplay.FontHeight*scale,
	}
	fbdisplay.DrawText(sd, 0, 0, s, colorFG)
}

func (t *Task) drawKeypad(l layout) {
	if l.cellW <= 2 || l.cellH <= 2 {
		return
	}

	scale := int16(1)
	if l.cellH >= 3*fbdisplay.FontHeight && l.cellW >= 4*fbdisplay.CharWidth() {
		scale = 2
	}

	for i, c := range calcengine.Keypad {
		x, y, w, h := keyRect(l, c)

		bg, fg := colorKeyBG, colorFG
		if c.Button.Op() != calcengine.OpNone {
			bg = colorOpBG
		}
		if i == t.focus {
			bg, fg = colorFocusBG, colorFocusFG
		}
		_ = t.d.FillRectangle(x, y, w, h, bg)

		label := asciiText(c.Button.Label())
		lw := fbdisplay.TextWidth(label) * scale
		lh := fbdisplay.FontHeight * scale
		sd := fbdisplay.Scaled{
			Base:   t.d,
			Factor: scale,
			OX:     x + (w-lw)/2,
			OY:     y + (h-lh)/2,
		}
		fbdisplay.DrawText(sd, 0, 0, label, fg)
	}
}

// keyRect returns the pixel rectangle of c, leaving a one pixel gutter.
func keyRect(l layout, c calcengine.Cell) (x, y, w, h int16) {
	x = pad + int16(c.Col)*l.cellW + 1
	y = l.keyY + int16(c.Row)*l.cellH + 1
	w = int16(c.ColSpan)*l.cellW - 2
	h = int16(c.RowSpan)*l.cellH - 2
	return x, y, w, h
}

func (t *Task) drawRight(l layout, y int16, s string, c color.RGBA) {
	s = fitRight(asciiText(s), l.w-2*pad)
	fbdisplay.DrawText(t.d, l.w-pad-fbdisplay.TextWidth(s), y, s, c)
}

// fitRight drops leading runes until s fits in width pixels.
func fitRight(s string, width int16) string {
	for s != "" && fbdisplay.TextWidth(s) > width {
		_, n := utf8.DecodeRuneInString(s)
		s = s[n:]
	}
	return s
}

// asciiText replaces the operator glyphs the bitmap font lacks.
func asciiText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '−':
			return '-'
		case '×':
			return 'x'
		case '÷':
			return '/'
		}
		if r > 0x7e {
			return '?'
		}
		return r
	}, s)
}

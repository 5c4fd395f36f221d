// Package fbdisplay adapts a hal.Framebuffer to the tinygo drivers display
// interfaces so tinyfont and tinyterm can draw into it.
package fbdisplay

import (
	"image/color"

	"sparkcalc/hal"

	"tinygo.org/x/drivers"
)

// Display draws RGB565 pixels into a framebuffer. Other pixel formats are ignored.
type Display struct {
	fb hal.Framebuffer
}

func New(fb hal.Framebuffer) *Display {
	return &Display{fb: fb}
}

func (d *Display) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *Display) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *Display) ScrollUp(lines int16, bg color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	if lines <= 0 {
		return nil
	}

	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()
	if w <= 0 || h <= 0 {
		return nil
	}

	n := int(lines)
	if n >= h {
		return d.FillRectangle(0, 0, int16(w), int16(h), bg)
	}

	stride := d.fb.StrideBytes()
	rowBytes := w * 2
	if rowBytes > stride {
		rowBytes = stride
	}

	// Shift framebuffer content up by n lines (respect stride + buffer bounds).
	dstLen := (h - n) * stride
	srcStart := n * stride
	if dstLen < 0 || srcStart < 0 {
		return nil
	}
	if dstLen > len(buf) {
		dstLen = len(buf)
	}
	if srcStart > len(buf) {
		return d.FillRectangle(0, 0, int16(w), int16(h), bg)
	}
	srcEnd := srcStart + dstLen
	if srcEnd > len(buf) {
		srcEnd = len(buf)
		dstLen = srcEnd - srcStart
	}
	copy(buf[:dstLen], buf[srcStart:srcEnd])

	// Clear the newly exposed bottom area.
	return d.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
}

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// Clear fills the whole framebuffer with c.
func (d *Display) Clear(c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.ClearRGB(c.R, c.G, c.B)
}

func (d *Display) SetScroll(line int16) {
	_ = line
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package fbdisplay

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Scaled magnifies every pixel drawn through it into a Factor x Factor block.
//
// Coordinates passed to SetPixel are in scaled space, offset by (OX, OY) in the
// underlying display.
type Scaled struct {
	Base   *Display
	Factor int16
	OX, OY int16
}

var _ drivers.Displayer = Scaled{}

func (s Scaled) Size() (x, y int16) {
	w, h := s.Base.Size()
	f := s.factor()
	return (w - s.OX) / f, (h - s.OY) / f
}

func (s Scaled) SetPixel(x, y int16, c color.RGBA) {
	f := s.factor()
	_ = s.Base.FillRectangle(s.OX+x*f, s.OY+y*f, f, f, c)
}

func (s Scaled) Display() error { return s.Base.Display() }

func (s Scaled) factor() int16 {
	if s.Factor < 1 {
		return 1
	}
	return s.Factor
}

package fbdisplay

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font is the fixed-width face used for every text surface.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// Line metrics for Font, in pixels.
const (
	FontHeight int16 = 10
	FontOffset int16 = 6
)

// CharWidth returns the advance of one Font cell.
func CharWidth() int16 {
	_, w := tinyfont.LineWidth(Font, "0")
	if w == 0 {
		return 6
	}
	return int16(w)
}

// TextWidth returns the width of s drawn with DrawText.
func TextWidth(s string) int16 {
	n := int16(0)
	for range s {
		n++
	}
	return n * CharWidth()
}

// DrawText draws s on a fixed grid of CharWidth cells with the top of the line at y.
func DrawText(d drivers.Displayer, x, y int16, s string, c color.RGBA) {
	cw := CharWidth()
	for _, r := range s {
		tinyfont.DrawChar(d, Font, x, y+FontOffset, r, c)
		x += cw
	}
}

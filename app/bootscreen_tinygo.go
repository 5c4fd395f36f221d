//go:build tinygo && bootdebug

package app

import (
	"image/color"

	"sparkcalc/hal"
	"sparkcalc/internal/fbdisplay"
)

func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	fb.ClearRGB(0, 0, 0)

	d := fbdisplay.New(fb)
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	fbdisplay.DrawText(d, 0, 2, "Spark Calc boot", fg)
	fbdisplay.DrawText(d, 0, 2+2*fbdisplay.FontHeight, msg, fg)
	_ = fb.Present()
}

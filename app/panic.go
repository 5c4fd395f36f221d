package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"sparkcalc/hal"
	"sparkcalc/internal/fbdisplay"
	"sparkcalc/sparkos/kernel"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		if led := h.LED(); led != nil {
			led.High()
		}

		lines := panicLines(info)
		if l := h.Logger(); l != nil {
			for _, line := range lines {
				l.WriteLineString(line)
			}
		}

		disp := h.Display()
		if disp == nil {
			select {}
		}
		fb := disp.Framebuffer()
		if fb == nil {
			select {}
		}

		fb.ClearRGB(255, 255, 255)
		drawPanic(fbdisplay.New(fb), lines)
		_ = fb.Present()
		select {}
	})
}

func panicLines(info kernel.PanicInfo) []string {
	lines := []string{
		"Spark Calc panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(info.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// drawPanic wraps lines to the screen width and stops at the bottom edge.
func drawPanic(d *fbdisplay.Display, lines []string) {
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	maxW, maxH := d.Size()
	cols := maxW / fbdisplay.CharWidth()
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fbdisplay.FontHeight > maxH {
				return
			}
			chunk, rest := takeRunes(line, cols)
			fbdisplay.DrawText(d, 0, y, chunk, fg)
			y += fbdisplay.FontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}

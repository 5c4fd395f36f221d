//go:build !tinygo

package hal

import "testing"

func TestHostTimeStepNEmitsSequence(t *testing.T) {
	ht := newHostTime()
	ht.stepN(3)
	for want := uint64(1); want <= 3; want++ {
		select {
		case got := <-ht.Ticks():
			if got != want {
				t.Fatalf("tick = %d, want %d", got, want)
			}
		default:
			t.Fatalf("missing tick %d", want)
		}
	}
}

func TestHostFramebufferClearRGB(t *testing.T) {
	fb := newHostFramebuffer(2, 2)
	fb.ClearRGB(0xFF, 0, 0)

	snap := make([]byte, len(fb.Buffer()))
	fb.snapshotRGB565(snap)
	for i := 0; i < len(snap); i += 2 {
		if p := uint16(snap[i]) | uint16(snap[i+1])<<8; p != 0xF800 {
			t.Fatalf("pixel %d = %#04x, want 0xf800", i/2, p)
		}
	}
	if r, g, b := rgb888From565(0xF800); r != 0xFF || g != 0 || b != 0 {
		t.Fatalf("rgb888From565 = %d,%d,%d", r, g, b)
	}
}

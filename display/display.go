// Package display is a live windowed register and memory viewer for the
// cpu package, rendered with faiface/pixel. Unlike the teacher's NES
// display this core has no PPU, so the window shows only the debug panel:
// register file, flags, and a running disassembly window from 16 bytes
// before PC to 32 bytes after it.
// Grounded on the teacher's nes/display.go (window/text-atlas setup) and
// nes/bus.go's DrawDebugPanel/getCpuDebugString/getDisassemblyLines.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/kcodes/go6502/cpu"
	"github.com/kcodes/go6502/disasm"
)

const (
	screenW float64 = 640
	screenH float64 = 480
	fps     float64 = 30.0
)

// Window owns the pixelgl window and the text atlas used to draw it.
type Window struct {
	win      *pixelgl.Window
	atlas    *text.Atlas
	regText  *text.Text
	instText *text.Text
}

// New creates the viewer window. Must run on the main goroutine, via
// pixelgl.Run (see Run).
func New() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "go6502 register viewer",
		Bounds: pixel.R(0, 0, screenW, screenH),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}

	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &Window{
		win:      win,
		atlas:    atlas,
		regText:  text.New(pixel.V(20, screenH-40), atlas),
		instText: text.New(pixel.V(20, screenH-240), atlas),
	}, nil
}

func (w *Window) regString(c *cpu.CPU) string {
	return fmt.Sprintf(
		"PC: $%04X\nA:  $%02X\nX:  $%02X\nY:  $%02X\nSP: $%02X\nP:  %08b\nCYC: %d\n",
		c.PC, c.A, c.X, c.Y, c.SP, c.P, c.Cycles,
	)
}

func (w *Window) instString(mem disasm.Reader, c *cpu.CPU) string {
	start := c.PC
	if start > 0x0010 {
		start -= 0x0010
	}
	end := c.PC + 0x0020
	if end < c.PC {
		end = 0xFFFF
	}

	s := ""
	for _, line := range disasm.Range(mem, start, end) {
		marker := "   "
		if line.Addr == c.PC {
			marker = ">> "
		}
		s += marker + line.Text + "\n"
	}
	return s
}

// draw refreshes both text panels from the CPU's current state.
func (w *Window) draw(c *cpu.CPU, mem disasm.Reader) {
	w.win.Clear(colornames.Black)

	w.regText.Clear()
	fmt.Fprint(w.regText, w.regString(c))
	w.regText.Draw(w.win, pixel.IM)

	w.instText.Clear()
	fmt.Fprint(w.instText, w.instString(mem, c))
	w.instText.Draw(w.win, pixel.IM)

	w.win.Update()
}

// Watch steps c once per frame, redrawing the panel each time, until the
// window is closed or Step returns an error.
func (w *Window) Watch(c *cpu.CPU, mem disasm.Reader) error {
	interval := time.Duration((1/fps)*1000) * time.Millisecond

	for !w.win.Closed() {
		t := time.Now()

		if err := c.Step(); err != nil {
			w.draw(c, mem)
			return err
		}
		w.draw(c, mem)

		if sleep := interval - time.Since(t); sleep > 0 {
			time.Sleep(sleep)
		}
	}
	return nil
}

// Run creates the window and watches c run to completion or window close.
// It must be invoked through pixelgl.Run by the caller, since GLFW
// requires all windowing calls happen on the OS main thread.
func Run(c *cpu.CPU, mem disasm.Reader) error {
	w, err := New()
	if err != nil {
		return err
	}
	return w.Watch(c, mem)
}

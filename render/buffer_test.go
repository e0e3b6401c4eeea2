package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestBufferSetGet(t *testing.T) {
	buf := NewBuffer(10, 5)

	buf.Set(3, 2, 'x', RGB{R: 1, G: 2, B: 3}, RGB{R: 4, G: 5, B: 6})
	c := buf.Get(3, 2)
	if c.Rune != 'x' || c.Fg != (RGB{R: 1, G: 2, B: 3}) || c.Bg != (RGB{R: 4, G: 5, B: 6}) {
		t.Errorf("Unexpected cell %+v", c)
	}
}

func TestBufferOutOfBoundsIsSafe(t *testing.T) {
	buf := NewBuffer(4, 4)

	// None of these may panic or write anywhere
	buf.Set(-1, 0, 'x', RGB{}, RGB{})
	buf.Set(0, -1, 'x', RGB{}, RGB{})
	buf.Set(4, 0, 'x', RGB{}, RGB{})
	buf.Set(0, 4, 'x', RGB{}, RGB{})
	buf.BlendBg(99, 99, RGB{R: 255, G: 0, B: 0}, 1)
	buf.AddBg(-5, -5, RGB{R: 255, G: 0, B: 0}, 1)
	buf.SetRune(100, 100, '*', RGB{})

	if got := buf.Get(99, 99); got != (Cell{}) {
		t.Errorf("Expected zero cell from out-of-bounds Get, got %+v", got)
	}
}

func TestBufferClear(t *testing.T) {
	buf := NewBuffer(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			buf.Set(x, y, '#', RGB{R: 255, G: 255, B: 255}, RGB{R: 9, G: 9, B: 9})
		}
	}

	buf.Clear()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if buf.Get(x, y) != (Cell{}) {
				t.Fatalf("Expected cleared cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestBufferBlendBg(t *testing.T) {
	buf := NewBuffer(2, 2)
	buf.SetBg(0, 0, RGB{R: 0, G: 0, B: 0})
	buf.BlendBg(0, 0, RGB{R: 200, G: 200, B: 200}, 0.5)

	c := buf.Get(0, 0)
	if c.Bg.R != 100 {
		t.Errorf("Expected blended bg R=100, got %d", c.Bg.R)
	}
}

func TestBufferResizeKeepsBounds(t *testing.T) {
	buf := NewBuffer(4, 4)
	buf.Resize(10, 2)

	w, h := buf.Size()
	if w != 10 || h != 2 {
		t.Errorf("Expected 10x2 after resize, got %dx%d", w, h)
	}
	buf.Set(9, 1, 'z', RGB{}, RGB{})
	if buf.Get(9, 1).Rune != 'z' {
		t.Error("Expected write at new bounds to succeed")
	}
	// Shrunk dimension now rejects the old bound
	buf.Set(2, 3, 'y', RGB{}, RGB{})
	if buf.Get(2, 3) != (Cell{}) {
		t.Error("Expected write past shrunk bounds to be dropped")
	}
}

func TestBufferWriteString(t *testing.T) {
	buf := NewBuffer(10, 1)
	buf.WriteString(1, 0, "abc", RGB{R: 1, G: 1, B: 1}, RGB{R: 2, G: 2, B: 2})

	for i, r := range "abc" {
		if got := buf.Get(1+i, 0).Rune; got != r {
			t.Errorf("Expected %q at col %d, got %q", r, 1+i, got)
		}
	}
}

func TestBufferFlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(6, 3)

	buf := NewBuffer(6, 3)
	buf.Set(2, 1, '@', RGB{R: 255, G: 0, B: 0}, RGB{R: 0, G: 0, B: 255})
	buf.Flush(screen)

	mainc, _, style, _ := screen.GetContent(2, 1)
	if mainc != '@' {
		t.Errorf("Expected '@' on screen, got %q", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Unexpected fg %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("Unexpected bg %v", bg)
	}
}

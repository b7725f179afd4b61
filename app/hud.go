package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"quark/internal/font"
	"quark/quarkgl"
)

var (
	hudText   = color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF}
	hudDim    = color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF}
	hudShadow = color.RGBA{A: 0xFF}
)

const hudMargin = 6

// fbDisplayer lets tinyfont draw straight into a FrameBuffer.
type fbDisplayer struct {
	fb *quarkgl.FrameBuffer
}

func (d fbDisplayer) Size() (x, y int16) {
	w, h := d.fb.Size()
	return int16(w), int16(h)
}

func (d fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.SetPixel(int(x), int(y), quarkgl.RGBA(c.R, c.G, c.B, c.A).Packed())
}

func (d fbDisplayer) Display() error { return nil }

// drawHUD writes lines top-left, the first highlighted, and footer
// right-aligned along the bottom edge when it fits.
func drawHUD(fb *quarkgl.FrameBuffer, lines []string, footer string) {
	if fb == nil {
		return
	}
	d := fbDisplayer{fb: fb}
	f := font.Font5x7
	step := int16(f.GetYAdvance())
	baseline := int16(hudMargin) + step - 2
	for i, s := range lines {
		c := hudDim
		if i == 0 {
			c = hudText
		}
		tinyfont.WriteLine(d, f, hudMargin+1, baseline+1, s, hudShadow)
		tinyfont.WriteLine(d, f, hudMargin, baseline, s, c)
		baseline += step
	}

	w, h := fb.Size()
	if footer == "" || hudWidth(footer)+2*hudMargin > w {
		return
	}
	x := int16(w - hudMargin - hudWidth(footer))
	y := int16(h - hudMargin)
	tinyfont.WriteLine(d, f, x+1, y+1, footer, hudShadow)
	tinyfont.WriteLine(d, f, x, y, footer, hudDim)
}

func hudWidth(s string) int {
	_, w := tinyfont.LineWidth(font.Font5x7, s)
	return int(w)
}

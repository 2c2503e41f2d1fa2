package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// basicfont.Face7x13 cell size.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	glyphAscent = 11
)

// Printable ASCII range covered by the atlas.
const (
	firstGlyph = 32
	lastGlyph  = 126
	atlasCols  = 16
)

// FontAtlas holds the ASCII glyph atlas and cached sub-images.
type FontAtlas struct {
	image  *ebiten.Image
	glyphs [lastGlyph - firstGlyph + 1]*ebiten.Image
}

// NewFontAtlas renders the printable ASCII glyphs of basicfont.Face7x13
// into one image.
func NewFontAtlas() *FontAtlas {
	img := atlasImage()
	eimg := ebiten.NewImageFromImage(img)
	a := &FontAtlas{image: eimg}
	for code := firstGlyph; code <= lastGlyph; code++ {
		a.glyphs[code-firstGlyph] = eimg.SubImage(glyphRect(code)).(*ebiten.Image)
	}
	return a
}

// Glyph returns the cached sub-image for r, or nil outside printable ASCII.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if r < firstGlyph || r > lastGlyph {
		return nil
	}
	return a.glyphs[r-firstGlyph]
}

// atlasImage draws every glyph white on transparent.
func atlasImage() *image.NRGBA {
	n := lastGlyph - firstGlyph + 1
	rows := (n + atlasCols - 1) / atlasCols
	img := image.NewNRGBA(image.Rect(0, 0, atlasCols*GlyphWidth, rows*GlyphHeight))
	for code := firstGlyph; code <= lastGlyph; code++ {
		r := glyphRect(code)
		drawFontGlyph(img, basicfont.Face7x13, r.Min.X, r.Min.Y, rune(code))
	}
	return img
}

func glyphRect(code int) image.Rectangle {
	i := code - firstGlyph
	x := (i % atlasCols) * GlyphWidth
	y := (i / atlasCols) * GlyphHeight
	return image.Rect(x, y, x+GlyphWidth, y+GlyphHeight)
}

// drawFontGlyph renders a single character into its atlas cell.
func drawFontGlyph(img *image.NRGBA, face font.Face, cellX, cellY int, r rune) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(cellX, cellY+glyphAscent),
	}
	d.DrawString(string(r))
}

// TextWidth is the pixel width of s at scale 1.
func TextWidth(s string) float64 {
	return float64(len(s) * GlyphWidth)
}

package snapshot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"unicode/utf8"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const pngPadding = 12

var (
	pngBackground = color.RGBA{R: 0x0b, G: 0x12, B: 0x20, A: 0xff}
	pngForeground = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
)

// RenderPNG draws the lines with the 7x13 bitmap face.
func RenderPNG(lines []string) ([]byte, error) {
	face := basicfont.Face7x13
	cols := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > cols {
			cols = n
		}
	}
	width := cols*face.Advance + 2*pngPadding
	height := len(lines)*face.Height + 2*pngPadding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: pngBackground}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(pngForeground),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(pngPadding, pngPadding+(i+1)*face.Height-face.Descent)
		d.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

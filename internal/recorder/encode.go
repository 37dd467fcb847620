package recorder

import (
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
)

// encode writes frames as an infinitely looping GIF.
func encode(w io.Writer, width, height, delay int, frames [][]byte) error {
	anim := &gif.GIF{
		LoopCount: 0,
		Config:    image.Config{Width: width, Height: height},
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
	}
	for _, f := range frames {
		anim.Image = append(anim.Image, toPaletted(f, width, height))
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return &EncodeError{Frames: len(frames), Wrapped: err}
	}
	return nil
}

// toPaletted builds an exact local palette when the frame uses at most 256
// colors, and dithers onto the Plan 9 palette otherwise.
func toPaletted(rgb []byte, width, height int) *image.Paletted {
	rect := image.Rect(0, 0, width, height)
	n := width * height

	index := make(map[color.RGBA]uint8)
	pal := make(color.Palette, 0, 16)
	pix := make([]uint8, n)
	exact := true
	for i := 0; i < n; i++ {
		c := color.RGBA{R: rgb[3*i], G: rgb[3*i+1], B: rgb[3*i+2], A: 0xff}
		idx, ok := index[c]
		if !ok {
			if len(pal) == 256 {
				exact = false
				break
			}
			idx = uint8(len(pal))
			index[c] = idx
			pal = append(pal, c)
		}
		pix[i] = idx
	}
	if exact {
		return &image.Paletted{Pix: pix, Stride: width, Rect: rect, Palette: pal}
	}

	src := image.NewRGBA(rect)
	for i := 0; i < n; i++ {
		src.Pix[4*i] = rgb[3*i]
		src.Pix[4*i+1] = rgb[3*i+1]
		src.Pix[4*i+2] = rgb[3*i+2]
		src.Pix[4*i+3] = 0xff
	}
	dst := image.NewPaletted(rect, palette.Plan9)
	draw.FloydSteinberg.Draw(dst, rect, src, image.Point{})
	return dst
}

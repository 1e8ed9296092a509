package assets

import (
	"image"
	"image/draw"
)

// PackRGB flattens img into tightly packed 8-bit RGB rows, top row first,
// dropping alpha.
func PackRGB(img image.Image) []byte {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 {
		nrgba = image.NewNRGBA(b)
		draw.Draw(nrgba, b, img, b.Min, draw.Src)
	}

	out := make([]byte, 0, 3*b.Dx()*b.Dy())
	for i := 0; i < len(nrgba.Pix); i += 4 {
		out = append(out, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return out
}

// Solid returns a width x height RGB buffer filled with c.
func Solid(c RGB, width, height int) []byte {
	out := make([]byte, 3*width*height)
	for i := 0; i < len(out); i += 3 {
		out[i], out[i+1], out[i+2] = c.R, c.G, c.B
	}
	return out
}

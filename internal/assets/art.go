package assets

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// TileSize is the pixel size of the procedural tile art.
const TileSize = 64

// bodyShade darkens the hull for the rim of a trailer segment.
const bodyShade = 210

// Head draws the ambulance cab facing up; rotation is applied on the GPU.
func Head(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(Palette.Ground.Color())
	dc.Clear()

	dc.SetColor(Palette.Tyre.Color())
	for _, y := range []float64{0.2, 0.62} {
		dc.DrawRectangle(s*0.08, s*y, s*0.84, s*0.16)
		dc.Fill()
	}

	dc.SetColor(Palette.Hull.Color())
	dc.DrawRoundedRectangle(s*0.14, s*0.06, s*0.72, s*0.9, s*0.12)
	dc.Fill()

	dc.SetColor(Palette.Glass.Color())
	dc.DrawRoundedRectangle(s*0.22, s*0.14, s*0.56, s*0.22, s*0.05)
	dc.Fill()

	dc.SetColor(Palette.Siren.Color())
	dc.DrawRectangle(s*0.24, s*0.42, s*0.24, s*0.1)
	dc.Fill()
	dc.SetColor(Palette.SirenBlue.Color())
	dc.DrawRectangle(s*0.52, s*0.42, s*0.24, s*0.1)
	dc.Fill()

	dc.SetColor(Palette.Stripe.Color())
	dc.DrawRectangle(s*0.14, s*0.7, s*0.72, s*0.08)
	dc.Fill()
	return dc.Image()
}

// Body draws one trailer segment of the ambulance with a red cross on top.
func Body(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(Palette.Ground.Color())
	dc.Clear()

	dc.SetColor(Palette.Hull.Mul(bodyShade).Color())
	dc.DrawRoundedRectangle(s*0.1, s*0.04, s*0.8, s*0.92, s*0.08)
	dc.Fill()
	dc.SetColor(Palette.Hull.Color())
	dc.DrawRoundedRectangle(s*0.14, s*0.08, s*0.72, s*0.84, s*0.06)
	dc.Fill()

	dc.SetColor(Palette.Stripe.Color())
	arm := s * 0.14
	dc.DrawRectangle(s*0.5-arm/2, s*0.24, arm, s*0.52)
	dc.Fill()
	dc.DrawRectangle(s*0.24, s*0.5-arm/2, s*0.52, arm)
	dc.Fill()
	return dc.Image()
}

// Bonus draws a waiting patient marker.
func Bonus(size int) image.Image {
	dc := gg.NewContext(size, size)
	s := float64(size)
	dc.SetColor(Palette.Ground.Color())
	dc.Clear()

	dc.SetColor(Palette.Patient.Color())
	dc.DrawCircle(s/2, s/2, s*0.4)
	dc.Fill()

	dc.SetColor(Palette.Cross.Color())
	arm := s * 0.16
	dc.DrawRectangle(s*0.5-arm/2, s*0.22, arm, s*0.56)
	dc.Fill()
	dc.DrawRectangle(s*0.22, s*0.5-arm/2, s*0.56, arm)
	dc.Fill()
	return dc.Image()
}

// Icons returns the window icon set at 64, 32 and 16 pixels.
func Icons() []image.Image {
	full := Body(TileSize)
	return []image.Image{
		full,
		imaging.Resize(full, 32, 32, imaging.Lanczos),
		imaging.Resize(full, 16, 16, imaging.Lanczos),
	}
}

package assets

import "image/color"

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Mul scales each channel by k/255.
func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

var Palette = struct {
	Hull      RGB
	Stripe    RGB
	Siren     RGB
	SirenBlue RGB
	Glass     RGB
	Tyre      RGB
	Patient   RGB
	Cross     RGB
	Ground    RGB
	Fallback  RGB
	Panel     RGB
	PanelEdge RGB
	Caption   RGB
	Text      RGB
}{
	Hull:      RGB{R: 238, G: 236, B: 226},
	Stripe:    RGB{R: 214, G: 52, B: 44},
	Siren:     RGB{R: 255, G: 70, B: 60},
	SirenBlue: RGB{R: 70, G: 130, B: 255},
	Glass:     RGB{R: 60, G: 84, B: 110},
	Tyre:      RGB{R: 30, G: 30, B: 34},
	Patient:   RGB{R: 46, G: 160, B: 90},
	Cross:     RGB{R: 250, G: 250, B: 250},
	Ground:    RGB{R: 60, G: 66, B: 79},
	Fallback:  RGB{R: 70, G: 70, B: 70},
	Panel:     RGB{R: 24, G: 28, B: 36},
	PanelEdge: RGB{R: 214, G: 190, B: 153},
	Caption:   RGB{R: 255, G: 200, B: 90},
	Text:      RGB{R: 230, G: 230, B: 230},
}

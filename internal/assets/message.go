package assets

import (
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Message box canvas size in pixels.
const (
	MessageWidth  = 640
	MessageHeight = 320
)

// footerShade dims the dismissal hint below the body text.
const footerShade = 160

var loadFaces = sync.OnceValues(func() (font.Face, font.Face) {
	return mustFace(gobold.TTF, 28), mustFace(goregular.TTF, 20)
})

func mustFace(ttf []byte, points float64) font.Face {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic("assets: embedded font: " + err.Error())
	}
	return truetype.NewFace(f, &truetype.Options{Size: points, Hinting: font.HintingFull})
}

// RenderMessage draws a dialog panel with a caption and a multi-line body and
// returns it as packed RGB of MessageWidth x MessageHeight.
func RenderMessage(caption, body string) []byte {
	captionFace, bodyFace := loadFaces()
	const pad = 24.0
	w, h := float64(MessageWidth), float64(MessageHeight)

	dc := gg.NewContext(MessageWidth, MessageHeight)
	dc.SetColor(Palette.PanelEdge.Color())
	dc.Clear()
	dc.SetColor(Palette.Panel.Color())
	dc.DrawRectangle(4, 4, w-8, h-8)
	dc.Fill()

	dc.SetFontFace(captionFace)
	dc.SetColor(Palette.Caption.Color())
	dc.DrawStringAnchored(caption, w/2, pad+14, 0.5, 0.5)

	dc.SetColor(Palette.Stripe.Color())
	dc.DrawLine(pad, pad+40, w-pad, pad+40)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(bodyFace)
	dc.SetColor(Palette.Text.Color())
	dc.DrawStringWrapped(body, w/2, pad+60, 0.5, 0, w-2*pad, 1.4, gg.AlignCenter)

	dc.SetColor(Palette.Text.Mul(footerShade).Color())
	dc.DrawStringAnchored("Entree / Espace", w/2, h-pad, 0.5, 0)

	return PackRGB(dc.Image())
}

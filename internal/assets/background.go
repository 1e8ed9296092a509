package assets

import (
	"fmt"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// AssetLoadError reports an asset file that could not be read or decoded.
type AssetLoadError struct {
	Path string
	Err  error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Path, e.Err)
}

func (e *AssetLoadError) Unwrap() error { return e.Err }

// LoadBackground decodes the image at path (JPEG, PNG, BMP, TIFF or WebP),
// scales and crops it to cover width x height, and packs it as RGB.
func LoadBackground(path string, width, height int) ([]byte, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &AssetLoadError{Path: path, Err: err}
	}
	filled := imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
	return PackRGB(filled), nil
}

// Fallback is the flat gray substituted for a missing background.
func Fallback(width, height int) []byte {
	return Solid(Palette.Fallback, width, height)
}

// BackgroundOrFallback loads path and logs a warning before substituting
// the gray fallback when it cannot.
func BackgroundOrFallback(path string, width, height int, logger *log.Logger) []byte {
	rgb, err := LoadBackground(path, width, height)
	if err != nil {
		logger.Warn("background unavailable, using fallback", "path", path, "error", err)
		return Fallback(width, height)
	}
	logger.Debug("background loaded", "path", path, "width", width, "height", height)
	return rgb
}

package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

func quietLogger() *log.Logger { return log.New(io.Discard) }

func writeSolidPNG(t *testing.T, path string, c color.NRGBA, w, h int) {
	t.Helper()
	if err := imaging.Save(imaging.New(w, h, c), path); err != nil {
		t.Fatalf("save %s: %v", path, err)
	}
}

func TestPackRGBDropsAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.Set(1, 0, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	got := PackRGB(img)
	if want := []byte{1, 2, 3, 4, 5, 6}; !bytes.Equal(got, want) {
		t.Fatalf("PackRGB = %v, want %v", got, want)
	}
}

func TestPackRGBConvertsOtherModels(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = 9
	}
	got := PackRGB(img)
	if len(got) != 3*3*2 {
		t.Fatalf("len = %d", len(got))
	}
	for i, v := range got {
		if v != 9 {
			t.Fatalf("byte %d = %d", i, v)
		}
	}
}

func TestFallbackIsFlatGray(t *testing.T) {
	got := Fallback(1600, 896)
	if len(got) != 3*1600*896 {
		t.Fatalf("len = %d", len(got))
	}
	for i, v := range got {
		if v != 70 {
			t.Fatalf("byte %d = %d, want 70", i, v)
		}
	}
}

func TestLoadBackgroundMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.jpg")
	_, err := LoadBackground(path, 16, 8)

	var aerr *AssetLoadError
	if !errors.As(err, &aerr) || aerr.Path != path {
		t.Fatalf("err = %v, want AssetLoadError for %s", err, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v does not unwrap to ErrNotExist", err)
	}
}

func TestLoadBackgroundFillsWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	writeSolidPNG(t, path, color.NRGBA{R: 200, G: 10, B: 20, A: 255}, 10, 5)

	got, err := LoadBackground(path, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3*40*20 {
		t.Fatalf("len = %d", len(got))
	}
	if got[0] != 200 || got[1] != 10 || got[2] != 20 {
		t.Fatalf("first pixel = %v", got[:3])
	}
}

func TestBackgroundOrFallback(t *testing.T) {
	got := BackgroundOrFallback(filepath.Join(t.TempDir(), "missing.webp"), 4, 4, quietLogger())
	if !bytes.Equal(got, Fallback(4, 4)) {
		t.Fatalf("missing background did not fall back to gray")
	}
}

func TestArtIsTileSized(t *testing.T) {
	for name, img := range map[string]image.Image{
		"head":  Head(TileSize),
		"body":  Body(TileSize),
		"bonus": Bonus(TileSize),
	} {
		if b := img.Bounds(); b.Dx() != TileSize || b.Dy() != TileSize {
			t.Errorf("%s bounds = %v", name, b)
		}
		if len(PackRGB(img)) != 3*TileSize*TileSize {
			t.Errorf("%s packs to wrong size", name)
		}
	}
}

func TestBodyRimIsShadedHull(t *testing.T) {
	img := Body(TileSize).(*image.RGBA)
	want := Palette.Hull.Mul(bodyShade)
	c := img.RGBAAt(7, TileSize/2)
	if c.R != want.R || c.G != want.G || c.B != want.B {
		t.Fatalf("rim = %v, want %v", c, want)
	}
}

func TestMulScalesChannels(t *testing.T) {
	c := RGB{R: 255, G: 128, B: 10}
	if got := c.Mul(255); got != c {
		t.Fatalf("Mul(255) = %v", got)
	}
	if got := c.Mul(0); got != (RGB{}) {
		t.Fatalf("Mul(0) = %v", got)
	}
	if got := c.Mul(128); got != (RGB{R: 128, G: 64, B: 5}) {
		t.Fatalf("Mul(128) = %v", got)
	}
}

func TestIconSizes(t *testing.T) {
	icons := Icons()
	want := []int{64, 32, 16}
	if len(icons) != len(want) {
		t.Fatalf("icons = %d", len(icons))
	}
	for i, size := range want {
		if b := icons[i].Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("icon %d bounds = %v, want %d", i, b, size)
		}
	}
}

func TestRenderMessageDrawsText(t *testing.T) {
	plain := RenderMessage("", "")
	withText := RenderMessage("GAME OVER", "Vous avez perdu\n\nScore: 7")

	if len(withText) != 3*MessageWidth*MessageHeight {
		t.Fatalf("len = %d", len(withText))
	}
	if bytes.Equal(plain, withText) {
		t.Fatalf("caption and body left no marks on the canvas")
	}
}

func TestWatchBackgroundReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.png")
	writeSolidPNG(t, path, color.NRGBA{R: 0, G: 0, B: 0, A: 255}, 4, 4)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames, err := WatchBackground(ctx, path, 8, 8, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	// unrelated files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeSolidPNG(t, path, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, 4, 4)

	deadline := time.After(5 * time.Second)
	for {
		select {
		case rgb := <-frames:
			if len(rgb) != 3*8*8 {
				t.Fatalf("len = %d", len(rgb))
			}
			if rgb[1] == 255 {
				cancel()
				for range frames {
				}
				return
			}
		case <-deadline:
			t.Fatalf("no reload delivered")
		}
	}
}

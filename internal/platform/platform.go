// Package platform defines the contract between the native host that owns
// the window and the game that runs inside it.
package platform

import (
	"image"
	"time"

	"ambusnake/internal/gfx"
)

// Conf describes the window the host opens.
type Conf struct {
	Title  string
	Width  int
	Height int
	VSync  bool
	// Icons are candidate window icons, typically 64, 32 and 16 pixels.
	Icons []image.Image
}

// Display is the host surface handed to every callback.
type Display interface {
	// Elapsed is the monotonic time since the host started.
	Elapsed() time.Duration
	ScreenSize() (int, int)
	SetTitle(title string)
	// ShowMessage opens a modal message box. Keys are not forwarded and
	// Update is not called until the user dismisses it.
	ShowMessage(caption, body string)
	// OrderQuit ends the frame loop before the next iteration.
	OrderQuit()
}

// EventHandler is driven once per frame by the host: queued key presses
// first, then Update, then Draw.
type EventHandler interface {
	KeyDown(ctx *gfx.Context, d Display, key Key)
	Update(ctx *gfx.Context, d Display)
	Draw(ctx *gfx.Context, d Display)
}

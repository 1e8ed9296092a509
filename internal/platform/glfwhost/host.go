// Package glfwhost runs a platform.EventHandler in a GLFW window with an
// OpenGL 4.1 core context.
package glfwhost

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"

	"ambusnake/internal/gfx"
	"ambusnake/internal/gfx/gldriver"
	"ambusnake/internal/platform"
)

// HandlerFactory builds the event handler once the GL context exists.
type HandlerFactory func(ctx *gfx.Context, d platform.Display) (platform.EventHandler, error)

// Host owns the window and implements platform.Display.
type Host struct {
	conf    platform.Conf
	log     *log.Logger
	window  *glfw.Window
	loop    *platform.Loop
	started float64
}

var _ platform.Display = (*Host)(nil)

// Run opens the window, builds the handler and drives the frame loop until
// the handler orders a quit or the window is closed. It must be called from
// the main goroutine.
func Run(conf platform.Conf, logger *log.Logger, newHandler HandlerFactory) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(conf)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	drv, err := gldriver.New()
	if err != nil {
		return err
	}
	logger.Info("opengl context ready", "version", drv.Version(), "width", conf.Width, "height", conf.Height)

	ctx := gfx.NewContext(drv, conf.Width, conf.Height, logger)
	fbW, fbH := window.GetFramebufferSize()
	ctx.SetFramebufferSize(fbW, fbH)

	h := &Host{
		conf:    conf,
		log:     logger,
		window:  window,
		loop:    platform.NewLoop(),
		started: glfw.GetTime(),
	}
	window.SetKeyCallback(h.onKey)

	overlay, err := newMessageOverlay(ctx)
	if err != nil {
		return fmt.Errorf("message overlay: %w", err)
	}
	handler, err := newHandler(ctx, h)
	if err != nil {
		return err
	}

	for !h.loop.QuitOrdered() && !window.ShouldClose() {
		glfw.PollEvents()
		h.loop.Step(ctx, h, handler)
		if msg, ok := h.loop.Messages.Current(); ok {
			if err := overlay.draw(ctx, msg); err != nil {
				return fmt.Errorf("message overlay: %w", err)
			}
		}
		window.SwapBuffers()
	}
	logger.Info("window closed", "elapsed", h.Elapsed().Round(time.Second))
	return nil
}

func (h *Host) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	switch action {
	case glfw.Press:
		h.loop.Keys.Observe(translateKey(key), true)
	case glfw.Release:
		h.loop.Keys.Observe(translateKey(key), false)
	}
}

func (h *Host) Elapsed() time.Duration {
	return time.Duration((glfw.GetTime() - h.started) * float64(time.Second))
}

func (h *Host) ScreenSize() (int, int) { return h.conf.Width, h.conf.Height }

func (h *Host) SetTitle(title string) { h.window.SetTitle(title) }

func (h *Host) ShowMessage(caption, body string) {
	h.log.Debug("message box", "caption", caption)
	h.loop.Messages.Show(caption, body)
}

func (h *Host) OrderQuit() { h.loop.OrderQuit() }

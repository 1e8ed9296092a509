package platform

import "ambusnake/internal/gfx"

// Loop is the window-independent part of a host's frame loop: key
// delivery, modal messages and the quit order. Hosts feed key state into
// Keys, call Step once per frame and stop when QuitOrdered reports true.
type Loop struct {
	Keys     *KeyLatch
	Messages MessageQueue
	quit     bool
}

func NewLoop() *Loop {
	return &Loop{Keys: NewKeyLatch()}
}

func (l *Loop) OrderQuit() { l.quit = true }

func (l *Loop) QuitOrdered() bool { return l.quit }

// Step runs one frame. Every press queued since the last frame reaches the
// open message box or the handler before Update. Update is skipped while a
// box is open; Draw always runs.
func (l *Loop) Step(ctx *gfx.Context, d Display, h EventHandler) {
	for _, k := range l.Keys.Drain() {
		if l.Messages.Open() {
			l.Messages.Handle(k)
			continue
		}
		h.KeyDown(ctx, d, k)
	}

	if !l.Messages.Open() {
		h.Update(ctx, d)
	}
	h.Draw(ctx, d)
}

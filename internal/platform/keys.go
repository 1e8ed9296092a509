package platform

// Key is a key the game understands.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyP
	KeyEscape
	KeyEnter
	KeySpace
)

var keyNames = [...]string{
	KeyUnknown: "Unknown",
	KeyUp:      "Up",
	KeyDown:    "Down",
	KeyLeft:    "Left",
	KeyRight:   "Right",
	KeyP:       "P",
	KeyEscape:  "Escape",
	KeyEnter:   "Enter",
	KeySpace:   "Space",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return "Unknown"
	}
	return keyNames[k]
}

func (k Key) IsArrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// KeyLatch turns raw key state into edge-triggered presses. Holding a key
// or receiving auto-repeat never yields a second press until it is released.
type KeyLatch struct {
	down    map[Key]bool
	pending []Key
}

func NewKeyLatch() *KeyLatch {
	return &KeyLatch{down: make(map[Key]bool)}
}

// Observe records the state of k and queues it when it went from up to down.
func (l *KeyLatch) Observe(k Key, down bool) {
	if k == KeyUnknown {
		return
	}
	if down && !l.down[k] {
		l.pending = append(l.pending, k)
	}
	l.down[k] = down
}

// Drain returns the presses queued since the last call, oldest first.
func (l *KeyLatch) Drain() []Key {
	keys := l.pending
	l.pending = nil
	return keys
}

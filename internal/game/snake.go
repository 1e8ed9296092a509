package game

import (
	"time"

	"ambusnake/internal/gfx"
	"ambusnake/internal/sprite"
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

func (d Direction) Delta() (int, int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) horizontal() bool { return d == Left || d == Right }

// Perpendicular reports whether a turn from d to o is a quarter turn.
func (d Direction) Perpendicular(o Direction) bool {
	return d.horizontal() != o.horizontal()
}

// Rotation is the head sprite orientation for d; the art faces up.
func (d Direction) Rotation() sprite.Rotation {
	switch d {
	case Right:
		return sprite.CW90
	case Down:
		return sprite.CW180
	case Left:
		return sprite.CW270
	default:
		return sprite.None
	}
}

// Snake is the head, its heading and the trail of body segments, head
// adjacent first.
type Snake struct {
	Head    Pos
	Dir     Direction
	NextDir Direction
	Body    []Pos

	board    Board
	lastTick time.Duration
}

func NewSnake(board Board) *Snake {
	s := &Snake{board: board}
	s.Reset()
	return s
}

// Reset puts the head back on the board centre heading right with no body.
func (s *Snake) Reset() {
	s.Head = s.board.Center()
	s.Dir = Right
	s.NextDir = Right
	s.Body = s.Body[:0]
}

// RequestDirection latches d for the next tick if it turns a quarter from
// the committed direction. A later accepted request in the same tick wins.
func (s *Snake) RequestDirection(d Direction) bool {
	if !s.Dir.Perpendicular(d) {
		return false
	}
	s.NextDir = d
	return true
}

// RestartClock makes the next tick due one full period after now.
func (s *Snake) RestartClock(now time.Duration) { s.lastTick = now }

// Tick moves the snake one tile once more than period has passed since the
// last move and reports whether it did.
func (s *Snake) Tick(now, period time.Duration) bool {
	if now-s.lastTick <= period {
		return false
	}
	s.lastTick = now
	s.Dir = s.NextDir

	prev := s.Head
	s.Head = s.Head.Add(s.Dir)
	for i := range s.Body {
		s.Body[i], prev = prev, s.Body[i]
	}
	return true
}

// Grow appends a pending segment that takes a tile on the next tick.
func (s *Snake) Grow() {
	s.Body = append(s.Body, Pending)
}

func (s *Snake) CollidesSelf() bool {
	for _, b := range s.Body {
		if b != Pending && b == s.Head {
			return true
		}
	}
	return false
}

// Draw issues the head facing Dir, then one draw per placed body segment.
func (s *Snake) Draw(ctx *gfx.Context, head, body *sprite.Sprite, now time.Duration) {
	head.Rotate(ctx, s.Dir.Rotation())
	x, y := s.board.NDC(s.Head)
	head.DrawAt(ctx, x, y, now)
	for _, b := range s.Body {
		if b == Pending {
			continue
		}
		x, y := s.board.NDC(b)
		body.DrawAt(ctx, x, y, now)
	}
}

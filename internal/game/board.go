package game

// Pos is a tile coordinate; +Y is up.
type Pos struct {
	X, Y int
}

// Pending marks a body segment grown this tick that has no tile yet.
var Pending = Pos{X: -1, Y: -1}

func (p Pos) Add(d Direction) Pos {
	dx, dy := d.Delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Board is the W x H tile grid covering the screen.
type Board struct {
	W, H int
}

func NewBoard(screenWidth, screenHeight, boxSize int) Board {
	return Board{W: screenWidth / boxSize, H: screenHeight / boxSize}
}

func (b Board) Center() Pos { return Pos{X: b.W / 2, Y: b.H / 2} }

// OutOfBounds reports a head that has left the board. x == W and y == H
// still count as on the board for one more tick.
func (b Board) OutOfBounds(p Pos) bool {
	return p.X < 0 || p.X > b.W || p.Y < 0 || p.Y > b.H
}

// NDC returns the normalized device coordinate of the centre of tile p.
// Off-board tiles map outside [-1, 1].
func (b Board) NDC(p Pos) (float32, float32) {
	x := 2*float32(p.X)/float32(b.W) + 1/float32(b.W) - 1
	y := 2*float32(p.Y)/float32(b.H) + 1/float32(b.H) - 1
	return x, y
}

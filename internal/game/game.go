package game

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"

	"ambusnake/internal/assets"
	"ambusnake/internal/gfx"
	"ambusnake/internal/platform"
	"ambusnake/internal/sprite"
)

// Options configures a new Game.
type Options struct {
	// Title is the window title the score is appended to.
	Title   string
	BoxSize int
	Seed    uint64
	// Background is packed RGB covering the whole screen.
	Background []byte
	// BackgroundUpdates delivers replacement backgrounds of the same size.
	BackgroundUpdates <-chan []byte
	StartupMessage    bool
	Logger            *log.Logger
}

// Snapshot is a read-only view of the game.
type Snapshot struct {
	State       GameState
	Score       int
	Level       Level
	Head        Pos
	Dir         Direction
	Body        []Pos
	Bonuses     []Pos
	BestScore   int
	GamesPlayed int
}

// Game is the orchestrator: it routes keys, ticks the snake and composes
// the frame. It implements platform.EventHandler.
type Game struct {
	log        *log.Logger
	title      string
	board      Board
	rng        *Rand
	snake      *Snake
	bonuses    BonusSet
	difficulty Difficulty
	score      int
	state      GameState

	bestScore   int
	gamesPlayed int

	head, body, bonus, background *sprite.Sprite
	backgroundTex                 gfx.Texture
	backgroundUpdates             <-chan []byte
}

var _ platform.EventHandler = (*Game)(nil)

// New uploads the game art and returns a game in the Idle state.
func New(ctx *gfx.Context, d platform.Display, opts Options) (*Game, error) {
	if opts.BoxSize <= 0 {
		opts.BoxSize = DefaultBoxSize
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Title == "" {
		opts.Title = Title
	}
	sw, sh := d.ScreenSize()
	if opts.Background == nil {
		opts.Background = assets.Fallback(sw, sh)
	}

	progs, err := sprite.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile sprite shaders: %w", err)
	}
	tile := func(img image.Image) (gfx.Texture, error) {
		return ctx.CreateTexture(assets.PackRGB(img), opts.BoxSize, opts.BoxSize)
	}
	headTex, err := tile(assets.Head(opts.BoxSize))
	if err != nil {
		return nil, fmt.Errorf("head texture: %w", err)
	}
	bodyTex, err := tile(assets.Body(opts.BoxSize))
	if err != nil {
		return nil, fmt.Errorf("body texture: %w", err)
	}
	bonusTex, err := tile(assets.Bonus(opts.BoxSize))
	if err != nil {
		return nil, fmt.Errorf("bonus texture: %w", err)
	}
	bgTex, err := ctx.CreateTexture(opts.Background, sw, sh)
	if err != nil {
		return nil, fmt.Errorf("background texture: %w", err)
	}

	board := NewBoard(sw, sh, opts.BoxSize)
	g := &Game{
		log:               opts.Logger,
		title:             opts.Title,
		board:             board,
		rng:               NewRand(opts.Seed),
		snake:             NewSnake(board),
		head:              sprite.New(ctx, progs, headTex, false),
		body:              sprite.New(ctx, progs, bodyTex, true),
		bonus:             sprite.New(ctx, progs, bonusTex, false),
		background:        sprite.New(ctx, progs, bgTex, false),
		backgroundTex:     bgTex,
		backgroundUpdates: opts.BackgroundUpdates,
	}
	g.reset()
	g.log.Info("game ready", "board", fmt.Sprintf("%dx%d", board.W, board.H), "seed", opts.Seed)

	if opts.StartupMessage {
		d.ShowMessage(StartupCaption, StartupBody)
	}
	return g, nil
}

func (g *Game) reset() {
	g.snake.Reset()
	g.score = 0
	g.state = StateIdle
	g.difficulty = DifficultyFor(Easy)
	g.bonuses.Clear()
	g.bonuses.Refill(g.difficulty.BonusCount, g.board.W, g.board.H, g.rng)
}

func (g *Game) Board() Board { return g.board }

func (g *Game) State() GameState { return g.state }

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:       g.state,
		Score:       g.score,
		Level:       g.difficulty.Level,
		Head:        g.snake.Head,
		Dir:         g.snake.Dir,
		Body:        append([]Pos(nil), g.snake.Body...),
		Bonuses:     g.bonuses.Positions(),
		BestScore:   g.bestScore,
		GamesPlayed: g.gamesPlayed,
	}
}

func (g *Game) KeyDown(_ *gfx.Context, d platform.Display, key platform.Key) {
	if key == platform.KeyEscape {
		g.state = StateShutdown
		d.OrderQuit()
		return
	}

	switch g.state {
	case StateIdle:
		if key.IsArrow() {
			g.state = StateRunning
			g.snake.RestartClock(d.Elapsed())
		}
	case StateRunning:
		switch key {
		case platform.KeyUp:
			g.snake.RequestDirection(Up)
		case platform.KeyDown:
			g.snake.RequestDirection(Down)
		case platform.KeyLeft:
			g.snake.RequestDirection(Left)
		case platform.KeyRight:
			g.snake.RequestDirection(Right)
		case platform.KeyP:
			g.state = StateIdle
		}
	}
}

func (g *Game) Update(ctx *gfx.Context, d platform.Display) {
	g.reloadBackground(ctx)

	if g.state != StateRunning {
		return
	}
	now := d.Elapsed()
	if !g.snake.Tick(now, g.difficulty.TickPeriod) {
		return
	}

	if g.board.OutOfBounds(g.snake.Head) || g.snake.CollidesSelf() {
		g.gameOver(d)
		return
	}

	if !g.bonuses.TakeIfAt(g.snake.Head) {
		return
	}
	g.score += g.difficulty.ScorePerBonus
	g.snake.RestartClock(now)
	d.SetTitle(fmt.Sprintf("%s Score: %d", g.title, g.score))

	if next := g.difficulty.Next(g.score); next.Level != g.difficulty.Level {
		g.log.Info("difficulty increased", "level", next.Level, "score", g.score, "tick", next.TickPeriod)
		g.difficulty = next
	}
	if len(g.snake.Body) == 0 {
		g.body.StartClock(now)
	}
	g.snake.Grow()
	g.bonuses.Refill(g.difficulty.BonusCount, g.board.W, g.board.H, g.rng)
}

func (g *Game) gameOver(d platform.Display) {
	g.state = StateGameOver
	g.gamesPlayed++
	if g.score > g.bestScore {
		g.bestScore = g.score
	}
	g.log.Info("game over", "score", g.score, "level", g.difficulty.Level, "length", len(g.snake.Body))
	d.ShowMessage(GameOverCaption, fmt.Sprintf("Vous avez perdu\n\nScore: %d", g.score))
	d.SetTitle(g.title)
	g.reset()
}

func (g *Game) reloadBackground(ctx *gfx.Context) {
	if g.backgroundUpdates == nil {
		return
	}
	select {
	case rgb, ok := <-g.backgroundUpdates:
		if !ok {
			g.backgroundUpdates = nil
			return
		}
		if err := ctx.UpdateTexture(g.backgroundTex, rgb); err != nil {
			g.log.Warn("background reload rejected", "error", err)
		}
	default:
	}
}

func (g *Game) Draw(ctx *gfx.Context, d platform.Display) {
	now := d.Elapsed()

	ctx.BeginDefaultPass()
	g.background.DrawAt(ctx, 0, 0, now)
	g.snake.Draw(ctx, g.head, g.body, now)
	for _, b := range g.bonuses.items {
		x, y := g.board.NDC(b)
		g.bonus.DrawAt(ctx, x, y, now)
	}
	ctx.EndRenderPass()
	ctx.CommitFrame()
}

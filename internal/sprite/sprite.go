// Package sprite draws textured quads at normalized device positions.
package sprite

import (
	"time"

	"ambusnake/internal/gfx"
)

// Rotation is a clockwise quarter turn applied by permuting quad UVs.
type Rotation int

const (
	None Rotation = iota
	CW90
	CW180
	CW270
)

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

// uvs per rotation, for corners (-,-), (+,-), (+,+), (-,+).
var rotationUVs = [4][4][2]float32{
	None:  {{0, 1}, {1, 1}, {1, 0}, {0, 0}},
	CW90:  {{0, 1}, {0, 0}, {1, 0}, {1, 1}},
	CW180: {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	CW270: {{1, 0}, {1, 1}, {0, 1}, {0, 0}},
}

// Sprite is a quad the size of its texture. The quad's vertex buffer for
// each rotation is created the first time that rotation is used.
type Sprite struct {
	pipeline gfx.Pipeline
	texture  gfx.Texture
	indices  gfx.Buffer
	vertices [4]*gfx.Buffer
	rotation Rotation

	width, height             float32
	screenWidth, screenHeight float32

	animated bool
	start    time.Duration
}

// New creates a sprite for tex. Animated sprites use the body shader and
// feed it a time uniform.
func New(ctx *gfx.Context, progs *Programs, tex gfx.Texture, animated bool) *Sprite {
	w, h := ctx.TextureSize(tex)
	sw, sh := ctx.ScreenSize()
	s := &Sprite{
		pipeline:     progs.Static,
		texture:      tex,
		indices:      ctx.CreateIndexBuffer(quadIndices),
		width:        float32(w),
		height:       float32(h),
		screenWidth:  float32(sw),
		screenHeight: float32(sh),
		animated:     animated,
	}
	if animated {
		s.pipeline = progs.Animated
	}
	s.Rotate(ctx, None)
	return s
}

func (s *Sprite) Rotation() Rotation { return s.rotation }

// Rotate switches the quad to the vertex buffer for r.
func (s *Sprite) Rotate(ctx *gfx.Context, r Rotation) {
	s.rotation = r
	if s.vertices[r] != nil {
		return
	}
	buf := ctx.CreateVertexBuffer(s.quad(r))
	s.vertices[r] = &buf
}

func (s *Sprite) quad(r Rotation) []float32 {
	hw := s.width / s.screenWidth
	hh := s.height / s.screenHeight
	corners := [4][2]float32{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	v := make([]float32, 0, 16)
	for i, c := range corners {
		uv := rotationUVs[r][i]
		v = append(v, c[0], c[1], uv[0], uv[1])
	}
	return v
}

// StartClock restarts the animation time at now.
func (s *Sprite) StartClock(now time.Duration) { s.start = now }

// DrawAt places the sprite centre at an NDC position.
func (s *Sprite) DrawAt(ctx *gfx.Context, ndcX, ndcY float32, now time.Duration) {
	ctx.ApplyPipeline(s.pipeline)
	ctx.ApplyBindings(gfx.Bindings{
		VertexBuffers: []gfx.Buffer{*s.vertices[s.rotation]},
		IndexBuffer:   s.indices,
		Images:        []gfx.Texture{s.texture},
	})
	if s.animated {
		ctx.ApplyUniforms([]float32{ndcX, ndcY, float32((now - s.start).Seconds())})
	} else {
		ctx.ApplyUniforms([]float32{ndcX, ndcY})
	}
	ctx.Draw(0, len(quadIndices), 1)
}

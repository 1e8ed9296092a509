package gfx_test

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"ambusnake/internal/gfx"
	"ambusnake/internal/gfx/gfxtest"
)

var quad = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func newContext(t *testing.T) (*gfx.Context, *gfxtest.Driver) {
	t.Helper()
	drv := gfxtest.New()
	return gfx.NewContext(drv, 1600, 896, log.New(io.Discard)), drv
}

func texturedPipeline(t *testing.T, ctx *gfx.Context) gfx.Pipeline {
	t.Helper()
	shader, err := ctx.CreateShader("vs", "fs", gfx.ShaderMeta{
		Images:   []string{"tex"},
		Uniforms: []gfx.UniformDesc{gfx.Uniform("offset", gfx.Float2)},
	})
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}
	return ctx.CreatePipeline([]gfx.VertexAttribute{{Name: "pos"}, {Name: "uv"}}, shader)
}

func texturedBindings(t *testing.T, ctx *gfx.Context) gfx.Bindings {
	t.Helper()
	tex, err := ctx.CreateTexture(make([]byte, 3*2*2), 2, 2)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return gfx.Bindings{
		VertexBuffers: []gfx.Buffer{ctx.CreateVertexBuffer(quad)},
		IndexBuffer:   ctx.CreateIndexBuffer(quadIndices),
		Images:        []gfx.Texture{tex},
	}
}

func mustPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if target == nil {
			return
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic = %v, want %v", r, target)
		}
	}()
	fn()
}

func TestNewContextBindsVertexArray(t *testing.T) {
	_, drv := newContext(t)
	if drv.Count("GenVertexArray") != 1 || drv.Count("BindVertexArray") != 1 {
		t.Fatalf("expected one VAO generated and bound, calls: %v", drv.Calls)
	}
	if got := drv.Count("FramebufferBinding"); got != 1 {
		t.Fatalf("FramebufferBinding called %d times", got)
	}
}

func TestBeginDefaultPassClears(t *testing.T) {
	ctx, drv := newContext(t)
	drv.Reset()
	ctx.BeginDefaultPass()

	want := []string{"BindFramebuffer", "Viewport", "Scissor", "ClearColor", "ClearDepth", "Clear"}
	if len(drv.Calls) != len(want) {
		t.Fatalf("calls = %v", drv.Calls)
	}
	for i, name := range want {
		if drv.Calls[i].Name != name {
			t.Fatalf("call %d = %s, want %s", i, drv.Calls[i].Name, name)
		}
	}
	if args := drv.Calls[1].Args; args[2] != int32(1600) || args[3] != int32(896) {
		t.Fatalf("viewport = %v", args)
	}
	if mask := drv.Calls[5].Args[0]; mask != gfx.ColorBufferBit|gfx.DepthBufferBit {
		t.Fatalf("clear mask = %v", mask)
	}
}

func TestPipelineLayoutPacksFloat2Attributes(t *testing.T) {
	ctx, drv := newContext(t)
	pip := texturedPipeline(t, ctx)
	b := texturedBindings(t, ctx)
	drv.Reset()

	ctx.ApplyPipeline(pip)
	ctx.ApplyBindings(b)

	var ptrs []gfxtest.Call
	for _, c := range drv.Calls {
		if c.Name == "VertexAttribPointer" {
			ptrs = append(ptrs, c)
		}
	}
	if len(ptrs) != 2 {
		t.Fatalf("VertexAttribPointer calls = %v", ptrs)
	}
	// index, size, type, normalized, stride, offset
	checks := [][]any{
		{uint32(0), int32(2), gfx.Float, false, int32(16), 0},
		{uint32(1), int32(2), gfx.Float, false, int32(16), 8},
	}
	for i, want := range checks {
		for j, v := range want {
			if ptrs[i].Args[j] != v {
				t.Errorf("attribute %d arg %d = %v, want %v", i, j, ptrs[i].Args[j], v)
			}
		}
	}
}

func TestApplyBindingsTwiceIsElided(t *testing.T) {
	ctx, drv := newContext(t)
	pip := texturedPipeline(t, ctx)
	b := texturedBindings(t, ctx)

	ctx.ApplyPipeline(pip)
	ctx.ApplyBindings(b)
	drv.Reset()
	ctx.ApplyBindings(b)

	for _, name := range []string{"BindBuffer", "BindTexture", "ActiveTexture", "VertexAttribPointer", "EnableVertexAttribArray", "DisableVertexAttribArray"} {
		if n := drv.Count(name); n != 0 {
			t.Errorf("%s called %d times on repeated bindings", name, n)
		}
	}
}

func TestSamplerUnitsAreSetOnceAtCreation(t *testing.T) {
	ctx, drv := newContext(t)
	drv.Inactive["unused"] = true
	shader, err := ctx.CreateShader("vs", "fs", gfx.ShaderMeta{Images: []string{"base", "unused", "mask"}})
	if err != nil {
		t.Fatalf("CreateShader: %v", err)
	}

	var units [][2]int32
	for _, c := range drv.Calls {
		if c.Name == "Uniform1i" {
			units = append(units, [2]int32{c.Args[0].(int32), c.Args[1].(int32)})
		}
	}
	// "base" and "mask" resolve to locations 0 and 1 and read units 0 and 2.
	if len(units) != 2 || units[0] != [2]int32{0, 0} || units[1] != [2]int32{1, 2} {
		t.Fatalf("sampler units = %v", units)
	}

	tex, err := ctx.CreateTexture(make([]byte, 3*2*2), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	b := gfx.Bindings{
		VertexBuffers: []gfx.Buffer{ctx.CreateVertexBuffer(quad)},
		IndexBuffer:   ctx.CreateIndexBuffer(quadIndices),
		Images:        []gfx.Texture{tex, tex, tex},
	}
	ctx.ApplyPipeline(ctx.CreatePipeline([]gfx.VertexAttribute{{Name: "pos"}}, shader))
	drv.Reset()
	ctx.ApplyBindings(b)
	ctx.ApplyBindings(b)
	if n := drv.Count("Uniform1i"); n != 0 {
		t.Fatalf("Uniform1i called %d times while binding", n)
	}
}

func TestApplyPipelineElidesProgramSwitch(t *testing.T) {
	ctx, drv := newContext(t)
	pip := texturedPipeline(t, ctx)
	drv.Reset()

	ctx.ApplyPipeline(pip)
	ctx.ApplyPipeline(pip)
	if n := drv.Count("UseProgram"); n != 0 {
		t.Fatalf("UseProgram called %d times for the program already in use", n)
	}

	other, err := ctx.CreateShader("vs", "fs", gfx.ShaderMeta{})
	if err != nil {
		t.Fatal(err)
	}
	ctx.ApplyPipeline(ctx.CreatePipeline([]gfx.VertexAttribute{{Name: "pos"}}, other))
	drv.Reset()
	ctx.ApplyPipeline(pip)
	if n := drv.Count("UseProgram"); n != 1 {
		t.Fatalf("UseProgram called %d times switching back", n)
	}
}

func TestApplyBindingsDisablesStaleAttributes(t *testing.T) {
	ctx, drv := newContext(t)
	b := texturedBindings(t, ctx)
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	ctx.ApplyBindings(b)

	posOnly, err := ctx.CreateShader("vs", "fs", gfx.ShaderMeta{Images: []string{"tex"}})
	if err != nil {
		t.Fatal(err)
	}
	ctx.ApplyPipeline(ctx.CreatePipeline([]gfx.VertexAttribute{{Name: "pos"}}, posOnly))
	drv.Reset()
	ctx.ApplyBindings(b)

	if n := drv.Count("DisableVertexAttribArray"); n != 1 {
		t.Fatalf("DisableVertexAttribArray called %d times", n)
	}
	for _, c := range drv.Calls {
		if c.Name == "DisableVertexAttribArray" && c.Args[0] != uint32(1) {
			t.Fatalf("disabled slot %v, want 1", c.Args[0])
		}
	}
	// Same location, same buffer, but the stride shrank from 16 to 8.
	if n := drv.Count("VertexAttribPointer"); n != 1 {
		t.Fatalf("VertexAttribPointer called %d times", n)
	}
}

func TestApplyBindingsImageCountMismatchPanics(t *testing.T) {
	ctx, _ := newContext(t)
	b := texturedBindings(t, ctx)
	b.Images = nil
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	mustPanic(t, gfx.ErrImageSlotMismatch, func() { ctx.ApplyBindings(b) })
}

func TestApplyBindingsWithoutPipelinePanics(t *testing.T) {
	ctx, _ := newContext(t)
	b := texturedBindings(t, ctx)
	mustPanic(t, gfx.ErrNoPipelineBound, func() { ctx.ApplyBindings(b) })
}

func TestDrawWithoutPipelinePanics(t *testing.T) {
	ctx, _ := newContext(t)
	mustPanic(t, gfx.ErrNoPipelineBound, func() { ctx.Draw(0, 6, 1) })
}

func TestDrawUsesByteOffsetOfShortIndices(t *testing.T) {
	ctx, drv := newContext(t)
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	ctx.ApplyBindings(texturedBindings(t, ctx))
	ctx.Draw(3, 6, 1)

	if len(drv.Draws) != 1 {
		t.Fatalf("draws = %d", len(drv.Draws))
	}
	d := drv.Draws[0]
	if d.Offset != 6 || d.Count != 6 || d.Instances != 1 {
		t.Fatalf("draw = %+v", d)
	}
}

func TestDrawWithoutInstancingDropsMultiInstanceCalls(t *testing.T) {
	ctx, drv := newContext(t)
	ctx.SetFeatures(gfx.Features{Instancing: false})
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	ctx.ApplyBindings(texturedBindings(t, ctx))

	ctx.Draw(0, 6, 4)
	if len(drv.Draws) != 0 {
		t.Fatalf("instanced draw was issued without instancing support")
	}
	ctx.Draw(0, 6, 1)
	if len(drv.Draws) != 1 {
		t.Fatalf("single instance draw was dropped")
	}
	if drv.Count("VertexAttribDivisor") != 0 {
		t.Fatalf("divisor set without instancing support")
	}
}

func TestApplyUniformsUploadsPackedData(t *testing.T) {
	ctx, drv := newContext(t)
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	ctx.ApplyUniforms([]float32{0.25, -0.5})

	var got []float32
	for _, c := range drv.Calls {
		if c.Name == "UniformFloatv" {
			if c.Args[1] != int32(2) || c.Args[2] != int32(1) {
				t.Fatalf("uniform shape = %v", c.Args)
			}
			got = drv.Uniforms[c.Args[0].(int32)]
		}
	}
	if len(got) != 2 || got[0] != 0.25 || got[1] != -0.5 {
		t.Fatalf("uniform data = %v", got)
	}

	mustPanic(t, gfx.ErrUniformLayout, func() { ctx.ApplyUniforms([]float32{1}) })
}

func TestCommitFrameDropsBindings(t *testing.T) {
	ctx, drv := newContext(t)
	ctx.ApplyPipeline(texturedPipeline(t, ctx))
	ctx.ApplyBindings(texturedBindings(t, ctx))
	ctx.EndRenderPass()
	ctx.CommitFrame()

	if drv.Bound(gfx.ArrayBuffer) != 0 || drv.Bound(gfx.ElementArrayBuffer) != 0 {
		t.Fatalf("buffers still bound after commit")
	}
	if drv.BoundTexture(0) != 0 {
		t.Fatalf("texture still bound after commit")
	}
}

func TestForeignHandlePanics(t *testing.T) {
	a, _ := newContext(t)
	b, _ := newContext(t)
	pip := texturedPipeline(t, a)
	mustPanic(t, gfx.ErrForeignHandle, func() { b.ApplyPipeline(pip) })
	mustPanic(t, gfx.ErrForeignHandle, func() { b.ApplyPipeline(gfx.Pipeline{}) })
}

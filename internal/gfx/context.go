// Package gfx is a small state-caching layer over an OpenGL-class driver.
// Resources are addressed by index handles issued by a Context; handles are
// never freed or reused during a run.
package gfx

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

var (
	ErrImageSlotMismatch   = errors.New("image count in bindings and shader did not match")
	ErrNoPipelineBound     = errors.New("drawing without any bound pipeline")
	ErrForeignHandle       = errors.New("handle was not issued by this context")
	ErrUniformLayout       = errors.New("uniform data does not match shader uniform layout")
	ErrTextureSizeMismatch = errors.New("texture data size does not match 3*width*height")
)

var lastContextID atomic.Uint64

// Shader is a compiled and linked program handle.
type Shader struct {
	ctx uint64
	idx int
}

// Pipeline is a shader plus its vertex attribute layout.
type Pipeline struct {
	ctx uint64
	idx int
}

// Buffer is an immutable vertex or index buffer handle.
type Buffer struct {
	ctx uint64
	idx int
}

// Texture is a 2D RGB texture handle.
type Texture struct {
	ctx uint64
	idx int
}

// Bindings is what the next draw reads from.
type Bindings struct {
	VertexBuffers []Buffer
	IndexBuffer   Buffer
	Images        []Texture
}

// Features advertises optional driver capabilities.
type Features struct {
	Instancing bool
}

// Context owns every GPU resource created during a run and the cache of
// currently bound state.
type Context struct {
	id       uint64
	drv      Driver
	log      *log.Logger
	features Features

	width, height      int32
	fbWidth, fbHeight  int32
	defaultFramebuffer uint32

	shaders   []shaderInternal
	pipelines []pipelineInternal
	buffers   []bufferInternal
	textures  []textureInternal

	cache glCache
}

// NewContext captures the default framebuffer and binds the single vertex
// array object every pipeline shares.
func NewContext(drv Driver, width, height int, logger *log.Logger) *Context {
	if logger == nil {
		logger = log.Default()
	}
	c := &Context{
		id:                 lastContextID.Add(1),
		drv:                drv,
		log:                logger,
		features:           Features{Instancing: true},
		width:              int32(width),
		height:             int32(height),
		fbWidth:            int32(width),
		fbHeight:           int32(height),
		defaultFramebuffer: drv.FramebufferBinding(),
		cache:              newGLCache(drv),
	}
	drv.BindVertexArray(drv.GenVertexArray())
	return c
}

func (c *Context) Features() Features { return c.features }

// SetFeatures overrides the advertised capabilities.
func (c *Context) SetFeatures(f Features) { c.features = f }

// ScreenSize returns the logical screen size sprites are laid out against.
func (c *Context) ScreenSize() (int, int) { return int(c.width), int(c.height) }

// SetFramebufferSize sets the default pass viewport, which differs from the
// screen size on high-density displays.
func (c *Context) SetFramebufferSize(width, height int) {
	c.fbWidth, c.fbHeight = int32(width), int32(height)
}

// BeginDefaultPass binds the window framebuffer, resets viewport and scissor
// and clears color and depth.
func (c *Context) BeginDefaultPass() {
	c.drv.BindFramebuffer(Framebuffer, c.defaultFramebuffer)
	c.drv.Viewport(0, 0, c.fbWidth, c.fbHeight)
	c.drv.Scissor(0, 0, c.fbWidth, c.fbHeight)
	c.drv.ClearColor(0, 0, 0, 0)
	c.drv.ClearDepth(1)
	c.drv.Clear(ColorBufferBit | DepthBufferBit)
}

func (c *Context) EndRenderPass() {
	c.drv.BindFramebuffer(Framebuffer, c.defaultFramebuffer)
	c.cache.bindBuffer(ArrayBuffer, 0)
	c.cache.bindBuffer(ElementArrayBuffer, 0)
}

// CommitFrame drops every cached buffer and texture binding.
func (c *Context) CommitFrame() {
	c.cache.clearBufferBindings()
	c.cache.clearTextureBindings()
}

func (c *Context) ApplyPipeline(p Pipeline) {
	c.check(p.ctx)
	pip := &c.pipelines[p.idx]
	c.cache.useProgram(c.shaders[pip.shader.idx].program)
	if cur := c.cache.curPipeline; cur != nil && *cur == p {
		return
	}
	c.cache.curPipeline = &p
	c.drv.Enable(ScissorTest)
	c.drv.Disable(DepthTest)
	c.drv.FrontFace(CCW)
}

func (c *Context) ApplyBindings(b Bindings) {
	pip := c.boundPipeline("apply bindings")
	shader := &c.shaders[pip.shader.idx]

	for n, img := range shader.images {
		if n >= len(b.Images) {
			panic(fmt.Errorf("%w: shader expects %d, bindings supply %d", ErrImageSlotMismatch, len(shader.images), len(b.Images)))
		}
		tex := c.texture(b.Images[n])
		if img.loc != -1 {
			c.cache.bindTexture(n, tex.gl)
		}
	}

	c.cache.bindBuffer(ElementArrayBuffer, c.buffer(b.IndexBuffer).gl)

	for i := 0; i < MaxVertexAttributes; i++ {
		cached := c.cache.attributes[i]
		attr := pip.layout[i]
		if attr == nil {
			if cached != nil {
				c.drv.DisableVertexAttribArray(uint32(i))
				c.cache.attributes[i] = nil
			}
			continue
		}
		if attr.bufferIndex >= len(b.VertexBuffers) {
			panic(fmt.Sprintf("gfx: attribute %d reads vertex buffer %d, bindings supply %d", i, attr.bufferIndex, len(b.VertexBuffers)))
		}
		vb := c.buffer(b.VertexBuffers[attr.bufferIndex])
		if cached != nil && cached.attribute == *attr && cached.vbuf == vb.gl {
			continue
		}
		c.cache.bindBuffer(ArrayBuffer, vb.gl)
		c.drv.VertexAttribPointer(uint32(i), attr.size, attr.xtype, false, attr.stride, attr.offset)
		if c.features.Instancing {
			c.drv.VertexAttribDivisor(uint32(i), attr.divisor)
		}
		c.drv.EnableVertexAttribArray(uint32(i))
		c.cache.attributes[i] = &cachedAttribute{attribute: *attr, vbuf: vb.gl}
	}
}

// ApplyUniforms uploads data as the packed concatenation of the shader's
// declared uniforms, each consuming components*arrayCount floats.
func (c *Context) ApplyUniforms(data []float32) {
	pip := c.boundPipeline("apply uniforms")
	shader := &c.shaders[pip.shader.idx]

	offset := 0
	for _, u := range shader.uniforms {
		n := u.components * u.arrayCount
		if offset+n > len(data) {
			panic(fmt.Errorf("%w: need %d floats, got %d", ErrUniformLayout, offset+n, len(data)))
		}
		if u.loc != -1 {
			c.drv.UniformFloatv(u.loc, int32(u.components), int32(u.arrayCount), data[offset:offset+n])
		}
		offset += n
	}
}

// Draw issues an indexed, instanced triangle draw of 16-bit indices.
func (c *Context) Draw(base, count, instances int) {
	if c.cache.curPipeline == nil {
		panic(ErrNoPipelineBound)
	}
	if !c.features.Instancing && instances != 1 {
		c.log.Warn("instanced rendering is not supported by the GPU, ignoring draw call", "instances", instances)
		return
	}
	c.drv.DrawElementsInstanced(Triangles, int32(count), UnsignedShort, 2*base, int32(instances))
}

func (c *Context) boundPipeline(op string) *pipelineInternal {
	if c.cache.curPipeline == nil {
		panic(fmt.Errorf("%w: %s", ErrNoPipelineBound, op))
	}
	return &c.pipelines[c.cache.curPipeline.idx]
}

func (c *Context) check(owner uint64) {
	if owner != c.id {
		panic(ErrForeignHandle)
	}
}

package gfx

const (
	MaxVertexAttributes  = 16
	MaxShaderStageImages = 12
)

type cachedAttribute struct {
	attribute vertexAttribute
	vbuf      uint32
}

// glCache mirrors the driver binding state and skips calls that would not
// change it.
type glCache struct {
	drv Driver

	storedIndexBuffer  uint32
	storedVertexBuffer uint32
	storedTexture      uint32

	indexBuffer  uint32
	vertexBuffer uint32
	program      uint32
	activeUnit   int
	textures     [MaxShaderStageImages]uint32

	curPipeline *Pipeline
	attributes  [MaxVertexAttributes]*cachedAttribute
}

func newGLCache(drv Driver) glCache {
	return glCache{drv: drv, activeUnit: -1}
}

func (c *glCache) bindBuffer(target Enum, buffer uint32) {
	if target == ArrayBuffer {
		if c.vertexBuffer != buffer {
			c.vertexBuffer = buffer
			c.drv.BindBuffer(target, buffer)
		}
		return
	}
	if c.indexBuffer != buffer {
		c.indexBuffer = buffer
		c.drv.BindBuffer(target, buffer)
	}
}

func (c *glCache) storeBufferBinding(target Enum) {
	if target == ArrayBuffer {
		c.storedVertexBuffer = c.vertexBuffer
	} else {
		c.storedIndexBuffer = c.indexBuffer
	}
}

func (c *glCache) restoreBufferBinding(target Enum) {
	if target == ArrayBuffer {
		if c.storedVertexBuffer != 0 {
			c.bindBuffer(target, c.storedVertexBuffer)
			c.storedVertexBuffer = 0
		}
		return
	}
	if c.storedIndexBuffer != 0 {
		c.bindBuffer(target, c.storedIndexBuffer)
		c.storedIndexBuffer = 0
	}
}

func (c *glCache) activateUnit(slot int) {
	if c.activeUnit != slot {
		c.activeUnit = slot
		c.drv.ActiveTexture(Texture0 + Enum(slot))
	}
}

func (c *glCache) bindTexture(slot int, texture uint32) {
	if c.textures[slot] == texture {
		return
	}
	c.activateUnit(slot)
	c.drv.BindTexture(Texture2D, texture)
	c.textures[slot] = texture
}

func (c *glCache) storeTextureBinding(slot int) {
	c.storedTexture = c.textures[slot]
}

func (c *glCache) restoreTextureBinding(slot int) {
	c.bindTexture(slot, c.storedTexture)
}

func (c *glCache) useProgram(program uint32) {
	if c.program != program {
		c.program = program
		c.drv.UseProgram(program)
	}
}

func (c *glCache) clearBufferBindings() {
	c.bindBuffer(ArrayBuffer, 0)
	c.bindBuffer(ElementArrayBuffer, 0)
}

func (c *glCache) clearTextureBindings() {
	for slot := range c.textures {
		if c.textures[slot] != 0 {
			c.bindTexture(slot, 0)
		}
	}
}

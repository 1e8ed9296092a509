package gfx

import "fmt"

type textureInternal struct {
	gl            uint32
	width, height int
}

// CreateTexture uploads rgb as a width x height RGB8 texture sampled with
// linear filtering and clamped edges. Sampled alpha is always 1.
func (c *Context) CreateTexture(rgb []byte, width, height int) (Texture, error) {
	if err := checkRGB(rgb, width, height); err != nil {
		return Texture{}, err
	}

	c.cache.storeTextureBinding(0)
	gl := c.drv.GenTexture()
	c.cache.bindTexture(0, gl)
	// bindTexture skips the unit switch when the slot already holds gl.
	c.cache.activateUnit(0)

	c.drv.PixelStorei(UnpackAlignment, 1)
	c.drv.TexParameteri(Texture2D, TextureSwizzleA, int32(Alpha))
	c.drv.TexImage2D(Texture2D, int32(width), int32(height), RGB, rgb)
	c.drv.TexParameteri(Texture2D, TextureWrapS, int32(ClampToEdge))
	c.drv.TexParameteri(Texture2D, TextureWrapT, int32(ClampToEdge))
	c.drv.TexParameteri(Texture2D, TextureMinFilter, int32(Linear))
	c.drv.TexParameteri(Texture2D, TextureMagFilter, int32(Linear))
	c.cache.restoreTextureBinding(0)

	c.textures = append(c.textures, textureInternal{gl: gl, width: width, height: height})
	return Texture{ctx: c.id, idx: len(c.textures) - 1}, nil
}

// UpdateTexture replaces the full contents of t. The new data must keep the
// size t was created with.
func (c *Context) UpdateTexture(t Texture, rgb []byte) error {
	tex := c.texture(t)
	if err := checkRGB(rgb, tex.width, tex.height); err != nil {
		return err
	}

	c.cache.storeTextureBinding(0)
	c.cache.bindTexture(0, tex.gl)
	c.cache.activateUnit(0)
	c.drv.PixelStorei(UnpackAlignment, 1)
	c.drv.TexSubImage2D(Texture2D, int32(tex.width), int32(tex.height), RGB, rgb)
	c.cache.restoreTextureBinding(0)
	return nil
}

// TextureSize returns the pixel dimensions t was created with.
func (c *Context) TextureSize(t Texture) (int, int) {
	tex := c.texture(t)
	return tex.width, tex.height
}

func (c *Context) texture(t Texture) *textureInternal {
	c.check(t.ctx)
	return &c.textures[t.idx]
}

func checkRGB(rgb []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(rgb) != 3*width*height {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrTextureSizeMismatch, width, height, 3*width*height, len(rgb))
	}
	return nil
}

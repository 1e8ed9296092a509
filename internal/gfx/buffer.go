package gfx

import "unsafe"

// BufferKind is the binding target a buffer was created for.
type BufferKind int

const (
	VertexBuffer BufferKind = iota
	IndexBuffer
)

func (k BufferKind) target() Enum {
	if k == IndexBuffer {
		return ElementArrayBuffer
	}
	return ArrayBuffer
}

type bufferInternal struct {
	gl       uint32
	kind     BufferKind
	elemType Enum
	size     int
}

// CreateVertexBuffer uploads interleaved float vertex data.
func (c *Context) CreateVertexBuffer(data []float32) Buffer {
	return c.createBuffer(VertexBuffer, Float, sliceBytes(data))
}

// CreateIndexBuffer uploads 16-bit triangle indices.
func (c *Context) CreateIndexBuffer(indices []uint16) Buffer {
	return c.createBuffer(IndexBuffer, UnsignedShort, sliceBytes(indices))
}

func (c *Context) createBuffer(kind BufferKind, elemType Enum, data []byte) Buffer {
	target := kind.target()
	gl := c.drv.GenBuffer()

	c.cache.storeBufferBinding(target)
	c.cache.bindBuffer(target, gl)
	c.drv.BufferData(target, data, StaticDraw)
	c.cache.restoreBufferBinding(target)

	c.buffers = append(c.buffers, bufferInternal{gl: gl, kind: kind, elemType: elemType, size: len(data)})
	return Buffer{ctx: c.id, idx: len(c.buffers) - 1}
}

// BufferKind reports the target b was created for.
func (c *Context) BufferKind(b Buffer) BufferKind {
	return c.buffer(b).kind
}

// IndexType reports the element type of b; index buffers are always
// UnsignedShort.
func (c *Context) IndexType(b Buffer) Enum {
	return c.buffer(b).elemType
}

func (c *Context) buffer(b Buffer) *bufferInternal {
	c.check(b.ctx)
	return &c.buffers[b.idx]
}

func sliceBytes[T float32 | uint16](v []T) []byte {
	if len(v) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*int(unsafe.Sizeof(zero)))
}

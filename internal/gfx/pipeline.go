package gfx

import "fmt"

// Every attribute is a float2; the stride of a buffer is the sum of the
// attributes that read from it.
const attributeSize = 8

// VertexAttribute names a shader input and the vertex buffer slot it reads.
type VertexAttribute struct {
	Name        string
	BufferIndex int
}

type vertexAttribute struct {
	size        int32
	xtype       Enum
	offset      int
	stride      int32
	bufferIndex int
	divisor     uint32
}

type pipelineInternal struct {
	layout [MaxVertexAttributes]*vertexAttribute
	shader Shader
}

// CreatePipeline resolves each attribute's location in shader and packs the
// attributes of each buffer back to back. Attributes the linker dropped keep
// their place in the stride.
func (c *Context) CreatePipeline(attrs []VertexAttribute, shader Shader) Pipeline {
	c.check(shader.ctx)
	program := c.shaders[shader.idx].program

	strides := map[int]int32{}
	for _, a := range attrs {
		strides[a.BufferIndex] += attributeSize
	}

	var internal pipelineInternal
	internal.shader = shader
	offsets := map[int]int{}
	for _, a := range attrs {
		off := offsets[a.BufferIndex]
		offsets[a.BufferIndex] += attributeSize

		loc := c.drv.AttribLocation(program, a.Name)
		if loc == -1 {
			c.log.Debug("vertex attribute not active in shader", "name", a.Name)
			continue
		}
		if loc >= MaxVertexAttributes {
			panic(fmt.Sprintf("gfx: attribute %q at location %d exceeds %d slots", a.Name, loc, MaxVertexAttributes))
		}
		internal.layout[loc] = &vertexAttribute{
			size:        2,
			xtype:       Float,
			offset:      off,
			stride:      strides[a.BufferIndex],
			bufferIndex: a.BufferIndex,
		}
	}

	c.pipelines = append(c.pipelines, internal)
	return Pipeline{ctx: c.id, idx: len(c.pipelines) - 1}
}

// Package gfxtest provides an in-memory gfx.Driver that records every call,
// for exercising rendering code without a GPU.
package gfxtest

import (
	"fmt"

	"ambusnake/internal/gfx"
)

// Call is one recorded driver invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string { return fmt.Sprintf("%s%v", c.Name, c.Args) }

// Draw is a recorded DrawElementsInstanced.
type Draw struct {
	Program   uint32
	Count     int32
	Offset    int
	Instances int32
	Textures  [gfx.MaxShaderStageImages]uint32
	Uniforms  map[int32][]float32
}

// Image is the last pixel upload made to a texture.
type Image struct {
	Width, Height int32
	Format        gfx.Enum
	Pixels        []byte
}

// Driver records calls and tracks just enough GL state to assert on.
type Driver struct {
	Calls []Call

	// CompileFailures maps a shader stage enum to the info log its compile
	// should fail with.
	CompileFailures map[gfx.Enum]string
	// LinkFailure, when set, fails every link with this log.
	LinkFailure string
	// Inactive names attributes and uniforms that resolve to location -1.
	Inactive map[string]bool

	Buffers  map[uint32][]byte
	Images   map[uint32]Image
	Draws    []Draw
	Uniforms map[int32][]float32

	nextID    uint32
	locations map[uint32]map[string]int32
	shaders   map[uint32]gfx.Enum
	attached  map[uint32][]uint32

	program     uint32
	activeUnit  int
	units       [gfx.MaxShaderStageImages]uint32
	boundBuffer map[gfx.Enum]uint32
}

func New() *Driver {
	return &Driver{
		Inactive:    map[string]bool{},
		Buffers:     map[uint32][]byte{},
		Images:      map[uint32]Image{},
		Uniforms:    map[int32][]float32{},
		locations:   map[uint32]map[string]int32{},
		shaders:     map[uint32]gfx.Enum{},
		attached:    map[uint32][]uint32{},
		boundBuffer: map[gfx.Enum]uint32{},
	}
}

// Count returns how many times name was called.
func (d *Driver) Count(name string) int {
	n := 0
	for _, c := range d.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls and draws but keeps GL state.
func (d *Driver) Reset() {
	d.Calls = nil
	d.Draws = nil
}

// Bound returns the buffer currently bound to target.
func (d *Driver) Bound(target gfx.Enum) uint32 { return d.boundBuffer[target] }

// BoundTexture returns the texture bound to a texture unit.
func (d *Driver) BoundTexture(unit int) uint32 { return d.units[unit] }

func (d *Driver) record(name string, args ...any) {
	d.Calls = append(d.Calls, Call{Name: name, Args: args})
}

func (d *Driver) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Driver) FramebufferBinding() uint32 {
	d.record("FramebufferBinding")
	return 0
}

func (d *Driver) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	return d.id()
}

func (d *Driver) BindVertexArray(vao uint32) { d.record("BindVertexArray", vao) }

func (d *Driver) CreateShader(stage gfx.Enum) uint32 {
	d.record("CreateShader", stage)
	id := d.id()
	d.shaders[id] = stage
	return id
}

func (d *Driver) CompileShader(shader uint32, source string) {
	d.record("CompileShader", shader)
}

func (d *Driver) ShaderStatus(shader uint32) (bool, string) {
	d.record("ShaderStatus", shader)
	if msg, ok := d.CompileFailures[d.shaders[shader]]; ok {
		return false, msg
	}
	return true, ""
}

func (d *Driver) DeleteShader(shader uint32) { d.record("DeleteShader", shader) }

func (d *Driver) CreateProgram() uint32 {
	d.record("CreateProgram")
	id := d.id()
	d.locations[id] = map[string]int32{}
	return id
}

func (d *Driver) AttachShader(program, shader uint32) {
	d.record("AttachShader", program, shader)
	d.attached[program] = append(d.attached[program], shader)
}

func (d *Driver) LinkProgram(program uint32) { d.record("LinkProgram", program) }

func (d *Driver) ProgramStatus(program uint32) (bool, string) {
	d.record("ProgramStatus", program)
	if d.LinkFailure != "" {
		return false, d.LinkFailure
	}
	return true, ""
}

func (d *Driver) DeleteProgram(program uint32) { d.record("DeleteProgram", program) }

func (d *Driver) UseProgram(program uint32) {
	d.record("UseProgram", program)
	d.program = program
}

// Locations are handed out in lookup order per program and kind, so "pos"
// then "uv" resolve to attribute locations 0 and 1.
func (d *Driver) location(program uint32, kind, name string) int32 {
	if d.Inactive[name] {
		return -1
	}
	key := kind + ":" + name
	locs := d.locations[program]
	if locs == nil {
		locs = map[string]int32{}
		d.locations[program] = locs
	}
	if loc, ok := locs[key]; ok {
		return loc
	}
	var loc int32
	for k := range locs {
		if k[0] == kind[0] {
			loc++
		}
	}
	locs[key] = loc
	return loc
}

func (d *Driver) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation", program, name)
	return d.location(program, "uniform", name)
}

func (d *Driver) AttribLocation(program uint32, name string) int32 {
	d.record("AttribLocation", program, name)
	return d.location(program, "attrib", name)
}

func (d *Driver) GenBuffer() uint32 {
	d.record("GenBuffer")
	return d.id()
}

func (d *Driver) BindBuffer(target gfx.Enum, buffer uint32) {
	d.record("BindBuffer", target, buffer)
	d.boundBuffer[target] = buffer
}

func (d *Driver) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	d.record("BufferData", target, len(data), usage)
	d.Buffers[d.boundBuffer[target]] = append([]byte(nil), data...)
}

func (d *Driver) GenTexture() uint32 {
	d.record("GenTexture")
	return d.id()
}

func (d *Driver) ActiveTexture(unit gfx.Enum) {
	d.record("ActiveTexture", unit)
	d.activeUnit = int(unit - gfx.Texture0)
}

func (d *Driver) BindTexture(target gfx.Enum, texture uint32) {
	d.record("BindTexture", target, texture)
	d.units[d.activeUnit] = texture
}

func (d *Driver) PixelStorei(pname gfx.Enum, value int32) { d.record("PixelStorei", pname, value) }

func (d *Driver) TexParameteri(target, pname gfx.Enum, value int32) {
	d.record("TexParameteri", target, pname, value)
}

func (d *Driver) TexImage2D(target gfx.Enum, width, height int32, format gfx.Enum, pixels []byte) {
	d.record("TexImage2D", target, width, height, format, len(pixels))
	d.Images[d.units[d.activeUnit]] = Image{Width: width, Height: height, Format: format, Pixels: append([]byte(nil), pixels...)}
}

func (d *Driver) TexSubImage2D(target gfx.Enum, width, height int32, format gfx.Enum, pixels []byte) {
	d.record("TexSubImage2D", target, width, height, format, len(pixels))
	d.Images[d.units[d.activeUnit]] = Image{Width: width, Height: height, Format: format, Pixels: append([]byte(nil), pixels...)}
}

func (d *Driver) Uniform1i(location, value int32) { d.record("Uniform1i", location, value) }

func (d *Driver) UniformFloatv(location int32, components, count int32, data []float32) {
	d.record("UniformFloatv", location, components, count)
	d.Uniforms[location] = append([]float32(nil), data...)
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype gfx.Enum, normalized bool, stride int32, offset int) {
	d.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
}

func (d *Driver) VertexAttribDivisor(index, divisor uint32) {
	d.record("VertexAttribDivisor", index, divisor)
}

func (d *Driver) EnableVertexAttribArray(index uint32) { d.record("EnableVertexAttribArray", index) }

func (d *Driver) DisableVertexAttribArray(index uint32) { d.record("DisableVertexAttribArray", index) }

func (d *Driver) BindFramebuffer(target gfx.Enum, fb uint32) { d.record("BindFramebuffer", target, fb) }

func (d *Driver) Viewport(x, y, width, height int32) { d.record("Viewport", x, y, width, height) }

func (d *Driver) Scissor(x, y, width, height int32) { d.record("Scissor", x, y, width, height) }

func (d *Driver) ClearColor(r, g, b, a float32) { d.record("ClearColor", r, g, b, a) }

func (d *Driver) ClearDepth(depth float32) { d.record("ClearDepth", depth) }

func (d *Driver) Clear(mask gfx.Enum) { d.record("Clear", mask) }

func (d *Driver) Enable(capability gfx.Enum) { d.record("Enable", capability) }

func (d *Driver) Disable(capability gfx.Enum) { d.record("Disable", capability) }

func (d *Driver) FrontFace(mode gfx.Enum) { d.record("FrontFace", mode) }

func (d *Driver) DrawElementsInstanced(mode gfx.Enum, count int32, xtype gfx.Enum, offset int, instances int32) {
	d.record("DrawElementsInstanced", mode, count, xtype, offset, instances)
	uniforms := make(map[int32][]float32, len(d.Uniforms))
	for k, v := range d.Uniforms {
		uniforms[k] = v
	}
	d.Draws = append(d.Draws, Draw{
		Program:   d.program,
		Count:     count,
		Offset:    offset,
		Instances: instances,
		Textures:  d.units,
		Uniforms:  uniforms,
	})
}

var _ gfx.Driver = (*Driver)(nil)

// Package gldriver implements gfx.Driver on top of the OpenGL 4.1 core
// profile bindings. Every method must run on the thread that owns the
// current GL context.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"ambusnake/internal/gfx"
)

type Driver struct{}

// New loads the GL function pointers for the current context.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	return &Driver{}, nil
}

// Version reports the GL version string of the current context.
func (Driver) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (Driver) FramebufferBinding() uint32 {
	var fb int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &fb)
	return uint32(fb)
}

func (Driver) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (Driver) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

func (Driver) CreateShader(stage gfx.Enum) uint32 { return gl.CreateShader(uint32(stage)) }

func (Driver) CompileShader(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
}

func (Driver) ShaderStatus(shader uint32) (bool, string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLen int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
	buf := strings.Repeat("\x00", int(logLen+1))
	gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
	return false, strings.TrimRight(buf, "\x00")
}

func (Driver) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (Driver) LinkProgram(program uint32) { gl.LinkProgram(program) }

func (Driver) ProgramStatus(program uint32) (bool, string) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return true, ""
	}
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	buf := strings.Repeat("\x00", int(logLen+1))
	gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
	return false, strings.TrimRight(buf, "\x00")
}

func (Driver) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (Driver) UseProgram(program uint32) { gl.UseProgram(program) }

func (Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Driver) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Driver) GenBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (Driver) BindBuffer(target gfx.Enum, buffer uint32) { gl.BindBuffer(uint32(target), buffer) }

func (Driver) BufferData(target gfx.Enum, data []byte, usage gfx.Enum) {
	if len(data) == 0 {
		gl.BufferData(uint32(target), 0, nil, uint32(usage))
		return
	}
	gl.BufferData(uint32(target), len(data), gl.Ptr(data), uint32(usage))
}

func (Driver) GenTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (Driver) ActiveTexture(unit gfx.Enum) { gl.ActiveTexture(uint32(unit)) }

func (Driver) BindTexture(target gfx.Enum, texture uint32) { gl.BindTexture(uint32(target), texture) }

func (Driver) PixelStorei(pname gfx.Enum, value int32) { gl.PixelStorei(uint32(pname), value) }

func (Driver) TexParameteri(target, pname gfx.Enum, value int32) {
	gl.TexParameteri(uint32(target), uint32(pname), value)
}

func (Driver) TexImage2D(target gfx.Enum, width, height int32, format gfx.Enum, pixels []byte) {
	gl.TexImage2D(uint32(target), 0, int32(format), width, height, 0, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (Driver) TexSubImage2D(target gfx.Enum, width, height int32, format gfx.Enum, pixels []byte) {
	gl.TexSubImage2D(uint32(target), 0, 0, 0, width, height, uint32(format), gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

func (Driver) Uniform1i(location, value int32) { gl.Uniform1i(location, value) }

func (Driver) UniformFloatv(location int32, components, count int32, data []float32) {
	switch components {
	case 1:
		gl.Uniform1fv(location, count, &data[0])
	case 2:
		gl.Uniform2fv(location, count, &data[0])
	case 3:
		gl.Uniform3fv(location, count, &data[0])
	case 4:
		gl.Uniform4fv(location, count, &data[0])
	default:
		panic(fmt.Sprintf("gldriver: unsupported uniform width %d", components))
	}
}

func (Driver) VertexAttribPointer(index uint32, size int32, xtype gfx.Enum, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, uint32(xtype), normalized, stride, gl.PtrOffset(offset))
}

func (Driver) VertexAttribDivisor(index, divisor uint32) { gl.VertexAttribDivisor(index, divisor) }

func (Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Driver) DisableVertexAttribArray(index uint32) { gl.DisableVertexAttribArray(index) }

func (Driver) BindFramebuffer(target gfx.Enum, fb uint32) { gl.BindFramebuffer(uint32(target), fb) }

func (Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

func (Driver) Scissor(x, y, width, height int32) { gl.Scissor(x, y, width, height) }

func (Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (Driver) ClearDepth(depth float32) { gl.ClearDepth(float64(depth)) }

func (Driver) Clear(mask gfx.Enum) { gl.Clear(uint32(mask)) }

func (Driver) Enable(capability gfx.Enum) { gl.Enable(uint32(capability)) }

func (Driver) Disable(capability gfx.Enum) { gl.Disable(uint32(capability)) }

func (Driver) FrontFace(mode gfx.Enum) { gl.FrontFace(uint32(mode)) }

func (Driver) DrawElementsInstanced(mode gfx.Enum, count int32, xtype gfx.Enum, offset int, instances int32) {
	gl.DrawElementsInstanced(uint32(mode), count, uint32(xtype), gl.PtrOffset(offset), instances)
}

var _ gfx.Driver = Driver{}

package gfx

// Enum mirrors the OpenGL enumerant space so drivers can pass values through.
type Enum uint32

const (
	ArrayBuffer        Enum = 0x8892
	ElementArrayBuffer Enum = 0x8893
	StaticDraw         Enum = 0x88E4

	Texture2D          Enum = 0x0DE1
	Texture0           Enum = 0x84C0
	TextureWrapS       Enum = 0x2802
	TextureWrapT       Enum = 0x2803
	TextureMinFilter   Enum = 0x2801
	TextureMagFilter   Enum = 0x2800
	TextureSwizzleA    Enum = 0x8E45
	ClampToEdge        Enum = 0x812F
	Linear             Enum = 0x2601
	Alpha              Enum = 0x1906
	RGB                Enum = 0x1907
	UnpackAlignment    Enum = 0x0CF5
	UnsignedByte       Enum = 0x1401
	UnsignedShort      Enum = 0x1403
	Float              Enum = 0x1406
	Triangles          Enum = 0x0004
	Framebuffer        Enum = 0x8D40
	FramebufferBinding Enum = 0x8CA6

	ScissorTest Enum = 0x0C11
	DepthTest   Enum = 0x0B71
	CCW         Enum = 0x0901

	ColorBufferBit Enum = 0x00004000
	DepthBufferBit Enum = 0x00000100

	VertexShader   Enum = 0x8B31
	FragmentShader Enum = 0x8B30
)

// Driver is the fixed set of GPU operations the Context needs. Implementations
// must be called from the thread owning the GL context.
type Driver interface {
	FramebufferBinding() uint32
	GenVertexArray() uint32
	BindVertexArray(vao uint32)

	CreateShader(stage Enum) uint32
	CompileShader(shader uint32, source string)
	ShaderStatus(shader uint32) (ok bool, infoLog string)
	DeleteShader(shader uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramStatus(program uint32) (ok bool, infoLog string)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	GenBuffer() uint32
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, data []byte, usage Enum)

	GenTexture() uint32
	ActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)
	PixelStorei(pname Enum, value int32)
	TexParameteri(target, pname Enum, value int32)
	TexImage2D(target Enum, width, height int32, format Enum, pixels []byte)
	TexSubImage2D(target Enum, width, height int32, format Enum, pixels []byte)

	Uniform1i(location, value int32)
	UniformFloatv(location int32, components, count int32, data []float32)

	VertexAttribPointer(index uint32, size int32, xtype Enum, normalized bool, stride int32, offset int)
	VertexAttribDivisor(index, divisor uint32)
	EnableVertexAttribArray(index uint32)
	DisableVertexAttribArray(index uint32)

	BindFramebuffer(target Enum, fb uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearDepth(depth float32)
	Clear(mask Enum)
	Enable(capability Enum)
	Disable(capability Enum)
	FrontFace(mode Enum)

	DrawElementsInstanced(mode Enum, count int32, xtype Enum, offset int, instances int32)
}

package gfx

import "fmt"

// ShaderStage names the pipeline stage a source belongs to.
type ShaderStage int

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

func (s ShaderStage) enum() Enum {
	if s == StageFragment {
		return FragmentShader
	}
	return VertexShader
}

// UniformType is the float layout of a single uniform element.
type UniformType int

const (
	Float1 UniformType = iota + 1
	Float2
	Float3
	Float4
)

// Components returns the number of floats one element occupies.
func (t UniformType) Components() int {
	switch t {
	case Float1:
		return 1
	case Float2:
		return 2
	case Float3:
		return 3
	case Float4:
		return 4
	default:
		return 0
	}
}

// UniformDesc declares one uniform of a shader's uniform block.
type UniformDesc struct {
	Name       string
	Type       UniformType
	ArrayCount int
}

// Uniform declares a single, non-array uniform.
func Uniform(name string, t UniformType) UniformDesc {
	return UniformDesc{Name: name, Type: t, ArrayCount: 1}
}

// ShaderMeta lists the sampler and uniform names a shader exposes, in the
// order bindings and uniform data are supplied.
type ShaderMeta struct {
	Images   []string
	Uniforms []UniformDesc
}

// ShaderCompileError reports a stage that failed to compile.
type ShaderCompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// ShaderLinkError reports a program that failed to link.
type ShaderLinkError struct {
	Log string
}

func (e *ShaderLinkError) Error() string {
	return "link program: " + e.Log
}

type shaderImage struct {
	loc int32
}

type shaderUniform struct {
	loc        int32
	components int
	arrayCount int
}

type shaderInternal struct {
	program  uint32
	images   []shaderImage
	uniforms []shaderUniform
}

// CreateShader compiles and links both stages and resolves the locations
// named by meta.
func (c *Context) CreateShader(vertexSrc, fragmentSrc string, meta ShaderMeta) (Shader, error) {
	vs, err := c.compileStage(StageVertex, vertexSrc)
	if err != nil {
		return Shader{}, err
	}
	fs, err := c.compileStage(StageFragment, fragmentSrc)
	if err != nil {
		c.drv.DeleteShader(vs)
		return Shader{}, err
	}

	program := c.drv.CreateProgram()
	c.drv.AttachShader(program, vs)
	c.drv.AttachShader(program, fs)
	c.drv.LinkProgram(program)
	c.drv.DeleteShader(vs)
	c.drv.DeleteShader(fs)

	if ok, infoLog := c.drv.ProgramStatus(program); !ok {
		c.drv.DeleteProgram(program)
		return Shader{}, &ShaderLinkError{Log: infoLog}
	}

	c.cache.useProgram(program)

	internal := shaderInternal{program: program}
	// Sampler n always reads texture unit n, so the unit is set once here
	// while the program is current.
	for n, name := range meta.Images {
		loc := c.drv.UniformLocation(program, name)
		if loc != -1 {
			c.drv.Uniform1i(loc, int32(n))
		}
		internal.images = append(internal.images, shaderImage{loc: loc})
	}
	for _, u := range meta.Uniforms {
		count := u.ArrayCount
		if count < 1 {
			count = 1
		}
		comps := u.Type.Components()
		if comps == 0 {
			comps = Float2.Components()
		}
		internal.uniforms = append(internal.uniforms, shaderUniform{
			loc:        c.drv.UniformLocation(program, u.Name),
			components: comps,
			arrayCount: count,
		})
	}

	c.shaders = append(c.shaders, internal)
	return Shader{ctx: c.id, idx: len(c.shaders) - 1}, nil
}

func (c *Context) compileStage(stage ShaderStage, source string) (uint32, error) {
	if source == "" {
		return 0, &ShaderCompileError{Stage: stage, Log: "empty source"}
	}
	shader := c.drv.CreateShader(stage.enum())
	c.drv.CompileShader(shader, source)
	if ok, infoLog := c.drv.ShaderStatus(shader); !ok {
		c.drv.DeleteShader(shader)
		return 0, &ShaderCompileError{Stage: stage, Log: infoLog}
	}
	return shader, nil
}

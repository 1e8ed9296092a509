package sprite

import "ambusnake/internal/gfx"

// Quad vertex shader: pos is the half-extent corner in NDC, offset moves the
// quad centre.
const vertSrc = `#version 410 core

in vec2 pos;
in vec2 uv;

uniform vec2 offset;

out vec2 texcoord;

void main() {
    gl_Position = vec4(pos + offset, 0.0, 1.0);
    texcoord = uv;
}
`

const fragSrc = `#version 410 core

uniform sampler2D tex;

in vec2 texcoord;
out vec4 FragColor;

void main() {
    FragColor = texture(tex, texcoord);
}
`

// Body fragment shader: a brightness wave travelling along the segment,
// driven by seconds since the body first grew.
const bodyFragSrc = `#version 410 core

uniform sampler2D tex;
uniform float time;

in vec2 texcoord;
out vec4 FragColor;

void main() {
    vec4 t = texture(tex, texcoord);
    float wave = 0.85 + 0.15 * sin(time * 4.0 + texcoord.y * 6.2831);
    FragColor = vec4(t.rgb * wave, t.a);
}
`

var staticMeta = gfx.ShaderMeta{
	Images:   []string{"tex"},
	Uniforms: []gfx.UniformDesc{gfx.Uniform("offset", gfx.Float2)},
}

var animatedMeta = gfx.ShaderMeta{
	Images: []string{"tex"},
	Uniforms: []gfx.UniformDesc{
		gfx.Uniform("offset", gfx.Float2),
		gfx.Uniform("time", gfx.Float1),
	},
}

var quadAttributes = []gfx.VertexAttribute{{Name: "pos"}, {Name: "uv"}}

// Programs holds the two sprite pipelines, compiled once per context.
type Programs struct {
	Static   gfx.Pipeline
	Animated gfx.Pipeline
}

func Compile(ctx *gfx.Context) (*Programs, error) {
	static, err := ctx.CreateShader(vertSrc, fragSrc, staticMeta)
	if err != nil {
		return nil, err
	}
	animated, err := ctx.CreateShader(vertSrc, bodyFragSrc, animatedMeta)
	if err != nil {
		return nil, err
	}
	return &Programs{
		Static:   ctx.CreatePipeline(quadAttributes, static),
		Animated: ctx.CreatePipeline(quadAttributes, animated),
	}, nil
}

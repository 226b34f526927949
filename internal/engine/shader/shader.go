// Package shader compiles GLSL programs and caches their uniform locations.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/seismo/pkg/math"
)

// Program is a linked shader program.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Compile compiles vertex and fragment sources and links them.
func Compile(vertexSrc, fragmentSrc string) (*Program, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &log[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link: %s", string(log[:logLen]))
	}

	return &Program{id: id, uniforms: make(map[string]int32)}, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log[:logLen]))
	}

	return shader, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of name, or -1 if the program does not
// use it. Locations are looked up once.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

// Package renderer draws the simulated faces with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/seismo/internal/engine/shader"
	"github.com/Faultbox/seismo/internal/logger"
	"github.com/Faultbox/seismo/pkg/grid"
	"github.com/Faultbox/seismo/pkg/math"
)

const vertexSource = `
#version 410 core

layout (location = 0) in vec4 aPos;

uniform mat4 uViewProjection;

void main() {
	gl_Position = uViewProjection * vec4(aPos.xyz, 1.0);
}
`

const fragmentSource = `
#version 410 core

uniform vec3 uColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(uColor, 1.0);
}
`

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int

	ClearColor   [4]float32
	QuadColor    math.Vec3
	OutlineColor math.Vec3
}

// DefaultConfig returns light grey quads with near-black outlines.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		ClearColor:   [4]float32{1, 1, 1, 1},
		QuadColor:    math.Vec3{X: 0.9, Y: 0.9, Z: 0.9},
		OutlineColor: math.Vec3{X: 0.1, Y: 0.1, Z: 0.1},
	}
}

// faceMesh holds the GL objects of one face. Indices never change, the
// vertex buffer is rewritten every frame.
type faceMesh struct {
	vao, vbo     uint32
	triangleEBO  uint32
	lineEBO      uint32
	triangleSize int32
	lineSize     int32
	floats       int
}

// Renderer draws a fixed set of faces.
type Renderer struct {
	config  Config
	program *shader.Program
	meshes  []faceMesh
	log     *zap.Logger
}

// New initializes OpenGL and uploads the topology of every face.
// It must be called after the GL context exists.
func New(cfg Config, faces []*grid.Face) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	var err error
	r.program, err = shader.Compile(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	for _, f := range faces {
		r.meshes = append(r.meshes, newFaceMesh(f))
	}
	r.log.Debug("face meshes created", zap.Int("faces", len(r.meshes)))

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func newFaceMesh(f *grid.Face) faceMesh {
	m := faceMesh{
		triangleSize: int32(len(f.Triangles())),
		lineSize:     int32(len(f.Lines())),
		floats:       f.BufferLen(),
	}

	base := make([]float32, f.BufferLen())
	f.CopyBase(base)

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(base)*4, unsafe.Pointer(&base[0]), gl.DYNAMIC_DRAW)

	gl.VertexAttribPointer(0, grid.Stride, gl.FLOAT, false, grid.Stride*4, nil)
	gl.EnableVertexAttribArray(0)

	m.triangleEBO = uploadIndices(f.Triangles())
	m.lineEBO = uploadIndices(f.Lines())

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func uploadIndices(indices []uint32) uint32 {
	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	return ebo
}

// Close releases every GL object.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for i := range r.meshes {
		m := &r.meshes[i]
		gl.DeleteBuffers(1, &m.triangleEBO)
		gl.DeleteBuffers(1, &m.lineEBO)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	r.meshes = nil
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Upload replaces the vertex data of face i.
func (r *Renderer) Upload(i int, vertices []float32) {
	m := r.meshes[i]
	n := min(len(vertices), m.floats)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, n*4, unsafe.Pointer(&vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders every face: filled quads pushed back by a polygon offset,
// then the lattice lines on top.
func (r *Renderer) Draw(viewProjection math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uViewProjection", viewProjection)

	r.program.SetVec3("uColor", r.config.QuadColor)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 0)
	for _, m := range r.meshes {
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.triangleEBO)
		gl.DrawElements(gl.TRIANGLES, m.triangleSize, gl.UNSIGNED_INT, nil)
	}
	gl.PolygonOffset(0, 0)
	gl.Disable(gl.POLYGON_OFFSET_FILL)

	r.program.SetVec3("uColor", r.config.OutlineColor)
	for _, m := range r.meshes {
		gl.BindVertexArray(m.vao)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.lineEBO)
		gl.DrawElements(gl.LINES, m.lineSize, gl.UNSIGNED_INT, nil)
	}

	gl.BindVertexArray(0)
}

package window

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"

	"curvesweep/internal/geom"
)

// Floats per vertex: x, y, r, g, b.
const vertexSize = 5

// lineBuffer is a VAO/VBO pair holding colored 2D vertices.
type lineBuffer struct {
	vao, vbo uint32
	data     []float32
	count    int32
}

func newLineBuffer(program uint32) *lineBuffer {
	b := &lineBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(vertexSize * 4)
	vp := uint32(gl.GetAttribLocation(program, gl.Str("vp\x00")))
	gl.EnableVertexAttribArray(vp)
	gl.VertexAttribPointer(vp, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	vc := uint32(gl.GetAttribLocation(program, gl.Str("vc\x00")))
	gl.EnableVertexAttribArray(vc)
	gl.VertexAttribPointer(vc, 3, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	return b
}

func (b *lineBuffer) reset() {
	b.data = b.data[:0]
}

func (b *lineBuffer) add(p geom.Point, c color.NRGBA) {
	b.data = append(b.data,
		float32(p.X), float32(p.Y),
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
}

// upload copies the pending vertices to the GPU.
func (b *lineBuffer) upload(usage uint32) {
	b.count = int32(len(b.data) / vertexSize)
	if b.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.data)*4, gl.Ptr(b.data), usage)
}

func (b *lineBuffer) delete() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

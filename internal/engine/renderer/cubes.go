package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/noisecube/internal/engine/shader"
	"github.com/Faultbox/noisecube/internal/scene"
)

const cubeVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aCenter; // xyz center, w extent
layout (location = 2) in vec4 aColor;

uniform mat4 uView;
uniform mat4 uProj;

out vec4 vColor;

void main() {
	vec3 world = aCenter.xyz + aPos * aCenter.w;
	gl_Position = uProj * uView * vec4(world, 1.0);
	vColor = aColor;
}
`

const cubeFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// floats per instance: center xyz, extent, color rgba
const instanceFloats = 8

// unit cube centered on the origin, two triangles per face
var cubeVertices = []float32{
	// -Z
	-0.5, -0.5, -0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5,
	// +Z
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5, -0.5, -0.5, 0.5,
	// -X
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, -0.5, -0.5,
	-0.5, -0.5, -0.5, -0.5, -0.5, 0.5, -0.5, 0.5, 0.5,
	// +X
	0.5, 0.5, 0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, 0.5, 0.5, -0.5, 0.5,
	// -Y
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, -0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	// +Y
	-0.5, 0.5, -0.5, 0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, -0.5, -0.5, 0.5, 0.5,
}

// CubeBatch collects cubes for one frame and draws them with a single
// instanced call.
type CubeBatch struct {
	program     *shader.Program
	vao         uint32
	cubeVBO     uint32
	instanceVBO uint32

	instances []float32
	capacity  int // instance buffer size in bytes
}

// NewCubeBatch creates the cube geometry and shader. A GL context must be current.
func NewCubeBatch() (*CubeBatch, error) {
	prog, err := shader.Compile(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}

	b := &CubeBatch{program: prog}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVertices)*4, gl.Ptr(cubeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, gl.PtrOffset(0))

	stride := int32(instanceFloats * 4)
	gl.GenBuffers(1, &b.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.VertexAttribDivisor(1, 1)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, gl.PtrOffset(4*4))
	gl.VertexAttribDivisor(2, 1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b, nil
}

// Reset drops the cubes queued for the previous frame.
func (b *CubeBatch) Reset() {
	b.instances = b.instances[:0]
}

// DrawCube queues a cube. It implements scene.Drawer.
func (b *CubeBatch) DrawCube(center mgl32.Vec3, extent float32, c scene.Color) {
	b.instances = append(b.instances,
		center.X(), center.Y(), center.Z(), extent,
		float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255,
	)
}

// Len returns the number of queued cubes.
func (b *CubeBatch) Len() int {
	return len(b.instances) / instanceFloats
}

// Flush uploads the queued cubes and draws them.
func (b *CubeBatch) Flush(view, proj mgl32.Mat4) {
	n := b.Len()
	if n == 0 {
		return
	}

	b.program.Use()
	b.program.SetMat4("uView", view)
	b.program.SetMat4("uProj", proj)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)

	size := len(b.instances) * 4
	if size > b.capacity {
		b.capacity = max(size, b.capacity*2)
		gl.BufferData(gl.ARRAY_BUFFER, b.capacity, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(b.instances))

	gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(cubeVertices)/3), int32(n))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Close releases GL resources.
func (b *CubeBatch) Close() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.cubeVBO != 0 {
		gl.DeleteBuffers(1, &b.cubeVBO)
		b.cubeVBO = 0
	}
	if b.instanceVBO != 0 {
		gl.DeleteBuffers(1, &b.instanceVBO)
		b.instanceVBO = 0
	}
	b.program.Delete()
}

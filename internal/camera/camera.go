package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transforms agrupa as matrizes enviadas ao shader a cada frame.
type Transforms struct {
	Proj   mgl32.Mat4
	View   mgl32.Mat4
	Model  mgl32.Mat4
	Normal mgl32.Mat4
}

// Camera é uma câmera fixa em perspectiva olhando para um alvo.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovY float32 // Graus
	Near float32
	Far  float32

	// Deslocamento aplicado ao quad (matriz de modelo)
	ModelOffset mgl32.Vec3
}

// New cria a câmera padrão das demos: olho em (0.8, 0, 0.8), Z para cima,
// quad deslocado para (-1, 0, -1).
func New() *Camera {
	return &Camera{
		Eye:         mgl32.Vec3{0.8, 0, 0.8},
		Target:      mgl32.Vec3{0, 0, 0},
		Up:          mgl32.Vec3{0, 0, 1},
		FovY:        45.0,
		Near:        0.01,
		Far:         100.0,
		ModelOffset: mgl32.Vec3{-1, 0, -1},
	}
}

// Aspect retorna a razão largura/altura, ou 1 quando a altura é inválida
// (janela minimizada).
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Projection monta a matriz de projeção para o tamanho atual do framebuffer.
func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), Aspect(width, height), c.Near, c.Far)
}

// View monta a matriz de visão (lookAt).
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Model monta a matriz de modelo do quad.
func (c *Camera) Model() mgl32.Mat4 {
	return mgl32.Translate3D(c.ModelOffset.X(), c.ModelOffset.Y(), c.ModelOffset.Z())
}

// NormalMatrix retorna transpose(inverse(model)) para levar normais, tangentes
// e bitangentes ao espaço do mundo.
func NormalMatrix(model mgl32.Mat4) mgl32.Mat4 {
	return model.Inv().Transpose()
}

// Compute calcula todas as matrizes do frame.
func (c *Camera) Compute(width, height int) Transforms {
	model := c.Model()
	return Transforms{
		Proj:   c.Projection(width, height),
		View:   c.View(),
		Model:  model,
		Normal: NormalMatrix(model),
	}
}

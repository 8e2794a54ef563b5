package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex é o registro por vértice enviado para a GPU.
type Vertex struct {
	Position  mgl32.Vec3
	Normal    mgl32.Vec3
	UV        mgl32.Vec2
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

// Attribute descreve um campo do registro empacotado (em floats, não bytes).
type Attribute struct {
	Name   string
	Size   int
	Offset int
}

// Stride é o número de floats por vértice no buffer empacotado.
const Stride = 14

// Layout lista os atributos na ordem em que aparecem no buffer.
var Layout = []Attribute{
	{Name: "position", Size: 3, Offset: 0},
	{Name: "normal", Size: 3, Offset: 3},
	{Name: "texcoord", Size: 2, Offset: 6},
	{Name: "tangent", Size: 3, Offset: 8},
	{Name: "bitangent", Size: 3, Offset: 11},
}

// AttributeByName busca um atributo do Layout.
func AttributeByName(name string) (Attribute, bool) {
	for _, a := range Layout {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Interleave empacota os vértices de forma contígua seguindo o Layout.
func Interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*Stride)
	for _, v := range vertices {
		out = append(out, v.Position[:]...)
		out = append(out, v.Normal[:]...)
		out = append(out, v.UV[:]...)
		out = append(out, v.Tangent[:]...)
		out = append(out, v.Bitangent[:]...)
	}
	return out
}

// Extract copia um atributo de todos os vértices de um buffer empacotado
// para um slice contíguo (formato esperado pelos streams da raylib).
func Extract(packed []float32, attr Attribute) ([]float32, error) {
	if len(packed)%Stride != 0 {
		return nil, fmt.Errorf("buffer com %d floats não é múltiplo do stride %d", len(packed), Stride)
	}
	count := len(packed) / Stride
	out := make([]float32, 0, count*attr.Size)
	for i := 0; i < count; i++ {
		base := i*Stride + attr.Offset
		out = append(out, packed[base:base+attr.Size]...)
	}
	return out, nil
}

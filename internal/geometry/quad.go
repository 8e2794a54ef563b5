package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh é a geometria estática do quad: vértices e índices.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// TriangleCount retorna o número de triângulos indexados.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate confere se os índices formam triângulos e apontam para vértices existentes.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("número de índices (%d) não forma triângulos", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("índice %d fora do limite: %d >= %d", i, idx, len(m.Vertices))
		}
	}
	return nil
}

// Packed retorna os vértices no formato empacotado (Stride floats cada).
func (m *Mesh) Packed() []float32 {
	return Interleave(m.Vertices)
}

// Cantos do quad unitário no plano z=0
var (
	quadPos = [4]mgl32.Vec3{{-1, 1, 0}, {-1, -1, 0}, {1, -1, 0}, {1, 1, 0}}
	quadUV  = [4]mgl32.Vec2{{0, 1}, {0, 0}, {1, 0}, {1, 1}}
	quadNm  = mgl32.Vec3{0, 0, 1}
)

// Quad monta os dois triângulos (p1,p2,p3) e (p1,p3,p4) com a base tangente
// calculada uma vez por triângulo e repetida nos três vértices.
func Quad() (*Mesh, error) {
	triangles := [2][3]int{{0, 1, 2}, {0, 2, 3}}

	mesh := &Mesh{
		Vertices: make([]Vertex, 0, 6),
		Indices:  make([]uint16, 0, 6),
	}

	for t, tri := range triangles {
		basis, err := TangentBasis(
			quadPos[tri[0]], quadPos[tri[1]], quadPos[tri[2]],
			quadUV[tri[0]], quadUV[tri[1]], quadUV[tri[2]],
		)
		if err != nil {
			return nil, fmt.Errorf("triângulo %d: %w", t+1, err)
		}
		for _, c := range tri {
			mesh.Indices = append(mesh.Indices, uint16(len(mesh.Vertices)))
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Position:  quadPos[c],
				Normal:    quadNm,
				UV:        quadUV[c],
				Tangent:   basis.Tangent,
				Bitangent: basis.Bitangent,
			})
		}
	}

	return mesh, nil
}

package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrDegenerateUV indica um triângulo com área nula no espaço UV.
var ErrDegenerateUV = errors.New("triângulo degenerado no espaço UV")

// uvEpsilon é o menor seno aceito entre as duas arestas UV. O limite é
// relativo ao produto dos comprimentos das arestas, então sub-retângulos
// pequenos de um atlas continuam válidos.
const uvEpsilon = 1e-6

// Basis é o par tangente/bitangente de um triângulo.
// Os vetores não são normalizados; o shader normaliza.
type Basis struct {
	Tangent   mgl32.Vec3
	Bitangent mgl32.Vec3
}

// TangentBasis calcula a base tangente de um triângulo a partir das posições e UVs.
//
//	E1 = P2-P1, E2 = P3-P1, dUV1 = UV2-UV1, dUV2 = UV3-UV1
//	f  = 1 / (dUV1.x*dUV2.y - dUV2.x*dUV1.y)
//	T  = f * (dUV2.y*E1 - dUV1.y*E2)
//	B  = f * (-dUV2.x*E1 + dUV1.x*E2)
//
// Retorna ErrDegenerateUV quando |det| <= uvEpsilon*|dUV1|*|dUV2|, ou seja,
// quando as arestas UV são (quase) colineares ou têm comprimento zero.
func TangentBasis(p1, p2, p3 mgl32.Vec3, uv1, uv2, uv3 mgl32.Vec2) (Basis, error) {
	edge1 := p2.Sub(p1)
	edge2 := p3.Sub(p1)
	deltaUV1 := uv2.Sub(uv1)
	deltaUV2 := uv3.Sub(uv1)

	det := deltaUV1.X()*deltaUV2.Y() - deltaUV2.X()*deltaUV1.Y()
	scale := float64(deltaUV1.Len()) * float64(deltaUV2.Len())
	if scale == 0 || math.Abs(float64(det)) <= uvEpsilon*scale {
		return Basis{}, fmt.Errorf("%w: uv=(%v, %v, %v)", ErrDegenerateUV, uv1, uv2, uv3)
	}
	f := 1.0 / det

	tangent := edge1.Mul(deltaUV2.Y()).Sub(edge2.Mul(deltaUV1.Y())).Mul(f)
	bitangent := edge1.Mul(-deltaUV2.X()).Add(edge2.Mul(deltaUV1.X())).Mul(f)

	return Basis{Tangent: tangent, Bitangent: bitangent}, nil
}

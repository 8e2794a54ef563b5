package geometry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTangentBasisKnownTriangles(t *testing.T) {
	tests := []struct {
		name          string
		p1, p2, p3    mgl32.Vec3
		uv1, uv2, uv3 mgl32.Vec2
		wantT, wantB  mgl32.Vec3
	}{
		{
			name: "quad triangle 1",
			p1:   mgl32.Vec3{-1, 1, 0}, p2: mgl32.Vec3{-1, -1, 0}, p3: mgl32.Vec3{1, -1, 0},
			uv1: mgl32.Vec2{0, 1}, uv2: mgl32.Vec2{0, 0}, uv3: mgl32.Vec2{1, 0},
			wantT: mgl32.Vec3{2, 0, 0}, wantB: mgl32.Vec3{0, 2, 0},
		},
		{
			name: "quad triangle 2",
			p1:   mgl32.Vec3{-1, 1, 0}, p2: mgl32.Vec3{1, -1, 0}, p3: mgl32.Vec3{1, 1, 0},
			uv1: mgl32.Vec2{0, 1}, uv2: mgl32.Vec2{1, 0}, uv3: mgl32.Vec2{1, 1},
			wantT: mgl32.Vec3{2, 0, 0}, wantB: mgl32.Vec3{0, 2, 0},
		},
		{
			name: "quad triangle 1 with uv2 and uv3 swapped",
			p1:   mgl32.Vec3{-1, 1, 0}, p2: mgl32.Vec3{-1, -1, 0}, p3: mgl32.Vec3{1, -1, 0},
			uv1: mgl32.Vec2{0, 1}, uv2: mgl32.Vec2{1, 0}, uv3: mgl32.Vec2{0, 0},
			wantT: mgl32.Vec3{-2, 0, 0}, wantB: mgl32.Vec3{-2, 2, 0},
		},
		{
			name: "xz plane",
			p1:   mgl32.Vec3{0, 0, 0}, p2: mgl32.Vec3{1, 0, 0}, p3: mgl32.Vec3{0, 0, 1},
			uv1: mgl32.Vec2{0, 0}, uv2: mgl32.Vec2{1, 0}, uv3: mgl32.Vec2{0, 1},
			wantT: mgl32.Vec3{1, 0, 0}, wantB: mgl32.Vec3{0, 0, 1},
		},
	}

	for _, tt := range tests {
		got, err := TangentBasis(tt.p1, tt.p2, tt.p3, tt.uv1, tt.uv2, tt.uv3)
		if err != nil {
			t.Fatalf("%s: erro inesperado: %v", tt.name, err)
		}
		if !got.Tangent.ApproxEqualThreshold(tt.wantT, 1e-5) {
			t.Errorf("%s: tangente = %v, want %v", tt.name, got.Tangent, tt.wantT)
		}
		if !got.Bitangent.ApproxEqualThreshold(tt.wantB, 1e-5) {
			t.Errorf("%s: bitangente = %v, want %v", tt.name, got.Bitangent, tt.wantB)
		}
	}
}

func TestTangentBasisDegenerateUV(t *testing.T) {
	p1, p2, p3 := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}

	tests := []struct {
		name          string
		uv1, uv2, uv3 mgl32.Vec2
	}{
		{"coincident", mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5, 0.5}},
		{"collinear", mgl32.Vec2{0, 0}, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{1, 1}},
		{"two equal", mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 0}},
		{"tiny collinear", mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{0.5001, 0.5}, mgl32.Vec2{0.5002, 0.5}},
	}

	for _, tt := range tests {
		_, err := TangentBasis(p1, p2, p3, tt.uv1, tt.uv2, tt.uv3)
		if !errors.Is(err, ErrDegenerateUV) {
			t.Errorf("%s: err = %v, want ErrDegenerateUV", tt.name, err)
		}
	}
}

// Para triângulos aleatórios não degenerados, T e B reproduzem as arestas
// (E = dU*T + dV*B), ficam no plano do triângulo e são independentes.
func TestTangentBasisRandomTriangles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randVec3 := func() mgl32.Vec3 {
		return mgl32.Vec3{rng.Float32()*4 - 2, rng.Float32()*4 - 2, rng.Float32()*4 - 2}
	}
	randVec2 := func() mgl32.Vec2 {
		return mgl32.Vec2{rng.Float32(), rng.Float32()}
	}

	checked := 0
	for checked < 200 {
		p1, p2, p3 := randVec3(), randVec3(), randVec3()
		uv1, uv2, uv3 := randVec2(), randVec2(), randVec2()

		e1, e2 := p2.Sub(p1), p3.Sub(p1)
		d1, d2 := uv2.Sub(uv1), uv3.Sub(uv1)
		faceNormal := e1.Cross(e2)
		det := d1.X()*d2.Y() - d2.X()*d1.Y()
		if faceNormal.Len() < 0.1 || det < 0.05 && det > -0.05 {
			continue
		}
		checked++

		basis, err := TangentBasis(p1, p2, p3, uv1, uv2, uv3)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		tan, bit := basis.Tangent, basis.Bitangent

		rebuilt1 := tan.Mul(d1.X()).Add(bit.Mul(d1.Y()))
		rebuilt2 := tan.Mul(d2.X()).Add(bit.Mul(d2.Y()))
		if !rebuilt1.ApproxEqualThreshold(e1, 1e-3) || !rebuilt2.ApproxEqualThreshold(e2, 1e-3) {
			t.Errorf("arestas não reconstruídas: %v/%v vs %v/%v", rebuilt1, rebuilt2, e1, e2)
		}

		n := faceNormal.Normalize()
		if d := n.Dot(tan); d > 1e-3*tan.Len() || d < -1e-3*tan.Len() {
			t.Errorf("tangente fora do plano: dot=%v", d)
		}
		if d := n.Dot(bit); d > 1e-3*bit.Len() || d < -1e-3*bit.Len() {
			t.Errorf("bitangente fora do plano: dot=%v", d)
		}
		if tan.Cross(bit).Len() < 1e-4*tan.Len()*bit.Len() {
			t.Errorf("tangente e bitangente linearmente dependentes: %v %v", tan, bit)
		}
	}
}

// Um sub-retângulo de atlas com ~1e-4 de lado tem det ~1e-8 e não é degenerado.
func TestTangentBasisSmallAtlasRect(t *testing.T) {
	p1, p2, p3 := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	uv1 := mgl32.Vec2{0.25, 0.25}
	uv2 := mgl32.Vec2{0.25 + 1e-4, 0.25}
	uv3 := mgl32.Vec2{0.25, 0.25 + 1e-4}

	basis, err := TangentBasis(p1, p2, p3, uv1, uv2, uv3)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	d1, d2 := uv2.Sub(uv1), uv3.Sub(uv1)
	rebuilt1 := basis.Tangent.Mul(d1.X()).Add(basis.Bitangent.Mul(d1.Y()))
	rebuilt2 := basis.Tangent.Mul(d2.X()).Add(basis.Bitangent.Mul(d2.Y()))
	if !rebuilt1.ApproxEqualThreshold(p2.Sub(p1), 1e-2) || !rebuilt2.ApproxEqualThreshold(p3.Sub(p1), 1e-2) {
		t.Errorf("arestas não reconstruídas: %v/%v", rebuilt1, rebuilt2)
	}
	if basis.Tangent.Normalize().Dot(mgl32.Vec3{1, 0, 0}) < 0.99 {
		t.Errorf("tangente = %v, want direção +X", basis.Tangent)
	}
}

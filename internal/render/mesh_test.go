package render

import (
	"testing"
	"unsafe"

	"QuadNormalMap/internal/geometry"
	"QuadNormalMap/internal/shader"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPackedToMesh(t *testing.T) {
	quad, err := geometry.Quad()
	if err != nil {
		t.Fatalf("Quad erro: %v", err)
	}
	packed := quad.Packed()

	mesh, err := packedToMesh(packed, quad.Indices)
	if err != nil {
		t.Fatalf("packedToMesh erro: %v", err)
	}
	defer freeMeshRAM(&mesh)

	if mesh.VertexCount != 6 || mesh.TriangleCount != 2 {
		t.Fatalf("VertexCount/TriangleCount = %d/%d, want 6/2", mesh.VertexCount, mesh.TriangleCount)
	}
	if mesh.Tangents != nil {
		t.Error("Tangents deveria ficar nulo: tangente vai pelo buffer empacotado")
	}

	positions := unsafe.Slice(mesh.Vertices, 6*3)
	normals := unsafe.Slice(mesh.Normals, 6*3)
	texcoords := unsafe.Slice(mesh.Texcoords, 6*2)
	for i, v := range quad.Vertices {
		if got := (mgl32.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]}); got != v.Position {
			t.Errorf("vértice %d: posição = %v, want %v", i, got, v.Position)
		}
		if got := (mgl32.Vec3{normals[i*3], normals[i*3+1], normals[i*3+2]}); got != v.Normal {
			t.Errorf("vértice %d: normal = %v, want %v", i, got, v.Normal)
		}
		if got := (mgl32.Vec2{texcoords[i*2], texcoords[i*2+1]}); got != v.UV {
			t.Errorf("vértice %d: uv = %v, want %v", i, got, v.UV)
		}
	}

	indices := unsafe.Slice(mesh.Indices, 6)
	for i, idx := range indices {
		if idx != quad.Indices[i] {
			t.Errorf("índice %d = %d, want %d", i, idx, quad.Indices[i])
		}
	}
}

func TestPackedToMeshEmpty(t *testing.T) {
	if _, err := packedToMesh(nil, []uint16{0, 1, 2}); err == nil {
		t.Error("buffer vazio deveria falhar")
	}
	packed := make([]float32, geometry.Stride*3)
	if _, err := packedToMesh(packed, nil); err == nil {
		t.Error("sem índices deveria falhar")
	}
}

func TestLayoutBindings(t *testing.T) {
	locs := map[string]int32{
		shader.AttribTangent:   4,
		shader.AttribBitangent: 7,
	}
	got := layoutBindings(func(name string) int32 {
		if loc, ok := locs[name]; ok {
			return loc
		}
		return -1
	})

	want := []vertexBinding{
		{Name: shader.AttribTangent, Index: 4, Size: 3, Stride: 56, Offset: 32},
		{Name: shader.AttribBitangent, Index: 7, Size: 3, Stride: 56, Offset: 44},
	}
	if len(got) != len(want) {
		t.Fatalf("layoutBindings = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("binding %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	// Atributo eliminado pelo compilador fica de fora
	delete(locs, shader.AttribBitangent)
	got = layoutBindings(func(name string) int32 {
		if loc, ok := locs[name]; ok {
			return loc
		}
		return -1
	})
	if len(got) != 1 || got[0].Name != shader.AttribTangent {
		t.Errorf("layoutBindings sem bitangente = %+v", got)
	}
}

// A bitangente lida pelo shader no offset do binding é exatamente a calculada
// na CPU, inclusive quando não é perpendicular à tangente (UV cisalhado).
func TestLayoutBindingsCarryShearedBitangent(t *testing.T) {
	p1, p2, p3 := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}
	uv1, uv2, uv3 := mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{0.5, 1}

	basis, err := geometry.TangentBasis(p1, p2, p3, uv1, uv2, uv3)
	if err != nil {
		t.Fatalf("TangentBasis erro: %v", err)
	}
	if d := basis.Tangent.Normalize().Dot(basis.Bitangent.Normalize()); d > -0.1 && d < 0.1 {
		t.Fatalf("triângulo de teste deveria ter base não ortogonal: T=%v B=%v", basis.Tangent, basis.Bitangent)
	}

	normal := mgl32.Vec3{0, 0, 1}
	vertices := []geometry.Vertex{
		{Position: p1, Normal: normal, UV: uv1, Tangent: basis.Tangent, Bitangent: basis.Bitangent},
		{Position: p2, Normal: normal, UV: uv2, Tangent: basis.Tangent, Bitangent: basis.Bitangent},
		{Position: p3, Normal: normal, UV: uv3, Tangent: basis.Tangent, Bitangent: basis.Bitangent},
	}
	packed := geometry.Interleave(vertices)

	bindings := layoutBindings(func(name string) int32 {
		switch name {
		case shader.AttribTangent:
			return 4
		case shader.AttribBitangent:
			return 7
		}
		return -1
	})

	for v := range vertices {
		for _, b := range bindings {
			base := (v*int(b.Stride) + int(b.Offset)) / 4
			got := mgl32.Vec3{packed[base], packed[base+1], packed[base+2]}
			want := basis.Tangent
			if b.Name == shader.AttribBitangent {
				want = basis.Bitangent
			}
			if got != want {
				t.Errorf("vértice %d, %s = %v, want %v", v, b.Name, got, want)
			}
		}
	}
}

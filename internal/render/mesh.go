package render

/*
#include <stdlib.h>
*/
import "C"

import (
	"fmt"
	"log"
	"unsafe"

	"QuadNormalMap/internal/geometry"
	"QuadNormalMap/internal/shader"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// packedToMesh copia do buffer empacotado (Stride floats por vértice) os
// streams que a rl.Mesh carrega: posição, normal e UV. Tangente e bitangente
// não passam por aqui, vão para a GPU direto do buffer (ver bindLayout).
func packedToMesh(packed []float32, indices []uint16) (rl.Mesh, error) {
	var mesh rl.Mesh

	streams := make(map[string][]float32, len(meshStreams))
	for _, name := range meshStreams {
		attr, ok := geometry.AttributeByName(name)
		if !ok {
			return mesh, fmt.Errorf("atributo %q fora do layout", name)
		}
		data, err := geometry.Extract(packed, attr)
		if err != nil {
			return mesh, err
		}
		streams[name] = data
	}

	vCount := len(packed) / geometry.Stride
	if vCount == 0 || len(indices) == 0 {
		return mesh, fmt.Errorf("malha vazia")
	}

	mesh.VertexCount = int32(vCount)
	mesh.TriangleCount = int32(len(indices) / 3)
	mesh.Vertices = (*float32)(copyToC(unsafe.Pointer(&streams["position"][0]), len(streams["position"])*4))
	mesh.Normals = (*float32)(copyToC(unsafe.Pointer(&streams["normal"][0]), len(streams["normal"])*4))
	mesh.Texcoords = (*float32)(copyToC(unsafe.Pointer(&streams["texcoord"][0]), len(streams["texcoord"])*4))
	mesh.Indices = (*uint16)(copyToC(unsafe.Pointer(&indices[0]), len(indices)*2))

	if mesh.Vertices == nil || mesh.Normals == nil || mesh.Texcoords == nil || mesh.Indices == nil {
		freeMeshRAM(&mesh)
		return mesh, fmt.Errorf("falha ao alocar memória da malha")
	}
	return mesh, nil
}

// meshStreams são os atributos do Layout copiados para a rl.Mesh.
var meshStreams = []string{"position", "normal", "texcoord"}

// layoutAttribs mapeia atributos do Layout para entradas do vertex shader
// lidas direto do buffer empacotado.
var layoutAttribs = map[string]string{
	"tangent":   shader.AttribTangent,
	"bitangent": shader.AttribBitangent,
}

// vertexBinding é um atributo do buffer empacotado já resolvido no programa.
// Stride e Offset em bytes.
type vertexBinding struct {
	Name   string
	Index  uint32
	Size   int32
	Stride int32
	Offset int32
}

// layoutBindings resolve as localizações (normalmente via
// rl.GetShaderLocationAttrib) dos atributos em layoutAttribs. Os que o
// programa não usa (-1) ficam de fora.
func layoutBindings(lookup func(name string) int32) []vertexBinding {
	var out []vertexBinding
	for _, attr := range geometry.Layout {
		name, ok := layoutAttribs[attr.Name]
		if !ok {
			continue
		}
		loc := lookup(name)
		if loc < 0 {
			log.Printf("[Renderer] AVISO: atributo %s não usado pelo shader", name)
			continue
		}
		out = append(out, vertexBinding{
			Name:   name,
			Index:  uint32(loc),
			Size:   int32(attr.Size),
			Stride: geometry.Stride * 4,
			Offset: int32(attr.Offset * 4),
		})
	}
	return out
}

// bindLayout envia o buffer empacotado inteiro como um VBO extra no VAO da
// malha e aponta cada binding para o seu offset. Devolve o id do VBO, que
// UnloadMesh não conhece e precisa ser liberado à parte.
func bindLayout(vao uint32, packed []float32, bindings []vertexBinding) (uint32, error) {
	if len(bindings) == 0 {
		return 0, nil
	}
	if !rl.EnableVertexArray(vao) {
		return 0, fmt.Errorf("VAO %d indisponível", vao)
	}
	vbo := rl.LoadVertexBuffer(packed, false)
	if vbo == 0 {
		rl.DisableVertexArray()
		return 0, fmt.Errorf("falha ao criar o buffer de vértices")
	}
	for _, b := range bindings {
		rl.SetVertexAttribute(b.Index, b.Size, rl.Float, false, b.Stride, b.Offset)
		rl.EnableVertexAttribute(b.Index)
	}
	rl.DisableVertexArray()
	return vbo, nil
}

// copyToC copia para memória alocada em C: UnloadMesh libera com free().
func copyToC(data unsafe.Pointer, size int) unsafe.Pointer {
	if size <= 0 || data == nil {
		return nil
	}
	ptr := C.malloc(C.size_t(size))
	if ptr == nil {
		return nil
	}
	cSlice := unsafe.Slice((*byte)(ptr), size)
	goSlice := unsafe.Slice((*byte)(data), size)
	copy(cSlice, goSlice)
	return ptr
}

// freeC libera memória alocada pela raylib com calloc/malloc.
func freeC(p unsafe.Pointer) {
	if p != nil {
		C.free(p)
	}
}

// freeMeshRAM libera a memória (C) de uma malha que não chegou à GPU.
func freeMeshRAM(mesh *rl.Mesh) {
	for _, p := range []unsafe.Pointer{
		unsafe.Pointer(mesh.Vertices),
		unsafe.Pointer(mesh.Normals),
		unsafe.Pointer(mesh.Texcoords),
		unsafe.Pointer(mesh.Tangents),
		unsafe.Pointer(mesh.Indices),
	} {
		freeC(p)
	}
	mesh.Vertices, mesh.Normals, mesh.Texcoords, mesh.Tangents = nil, nil, nil, nil
	mesh.Indices = nil
}

// uploadQuad monta o quad e envia para a GPU: VAO e VBOs da raylib para
// posição/normal/UV, mais o buffer empacotado para tangente e bitangente.
// attribLoc resolve os atributos no programa já linkado.
func uploadQuad(attribLoc func(name string) int32) (rl.Mesh, uint32, error) {
	quad, err := geometry.Quad()
	if err != nil {
		return rl.Mesh{}, 0, fmt.Errorf("falha ao montar o quad: %w", err)
	}
	if err := quad.Validate(); err != nil {
		return rl.Mesh{}, 0, err
	}

	packed := quad.Packed()
	mesh, err := packedToMesh(packed, quad.Indices)
	if err != nil {
		return rl.Mesh{}, 0, err
	}
	rl.UploadMesh(&mesh, false)
	if mesh.VaoID == 0 {
		freeMeshRAM(&mesh)
		return rl.Mesh{}, 0, fmt.Errorf("falha ao enviar a malha para a GPU")
	}

	vbo, err := bindLayout(mesh.VaoID, packed, layoutBindings(attribLoc))
	if err != nil {
		rl.UnloadMesh(&mesh)
		return rl.Mesh{}, 0, fmt.Errorf("falha ao enviar tangentes: %w", err)
	}
	return mesh, vbo, nil
}

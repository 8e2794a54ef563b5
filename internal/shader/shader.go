// Package shader cuida do código GLSL das demos e do contrato de uniforms
// entre o host e o programa linkado.
package shader

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed shaders/normalmap.vert
var defaultVertex string

//go:embed shaders/normalmap.frag
var defaultFragment string

// Nomes dos uniforms
const (
	DiffuseTexture = "diffuseTexture"
	NormalMap      = "normalMap"
	ModelMat       = "modelMat"
	ViewMat        = "viewMat"
	ProjMat        = "projMat"
	NormalMat      = "normalMat"
	Time           = "time"
	NormalMapping  = "enableNormalMapping"
)

// Atributos de vértice que não fazem parte da rl.Mesh. Vêm direto do buffer
// empacotado (geometry.Layout).
const (
	AttribTangent   = "vertexTangent"
	AttribBitangent = "vertexBitangent"
)

var (
	ErrMissingUniform = errors.New("uniform ausente no programa")
	ErrCompile        = errors.New("falha ao compilar/linkar shader")
)

// Required precisam existir no programa linkado.
// time e enableNormalMapping são opcionais: a primeira demo não tem o toggle.
var Required = []string{DiffuseTexture, NormalMap, ModelMat, ViewMat, ProjMat, NormalMat}

// Optional podem estar ausentes (ou eliminados pelo compilador).
var Optional = []string{Time, NormalMapping}

// Sources guarda o código dos dois estágios.
type Sources struct {
	Vertex   string
	Fragment string
	Origin   string
}

// Load lê os dois arquivos de shader.
// Com ambos os caminhos vazios usa os shaders embutidos.
func Load(vertPath, fragPath string) (Sources, error) {
	if vertPath == "" && fragPath == "" {
		return Sources{Vertex: defaultVertex, Fragment: defaultFragment, Origin: "embutido"}, nil
	}

	vert, err := os.ReadFile(vertPath)
	if err != nil {
		return Sources{}, fmt.Errorf("falha ao ler vertex shader: %w", err)
	}
	frag, err := os.ReadFile(fragPath)
	if err != nil {
		return Sources{}, fmt.Errorf("falha ao ler fragment shader: %w", err)
	}
	if strings.TrimSpace(string(vert)) == "" || strings.TrimSpace(string(frag)) == "" {
		return Sources{}, fmt.Errorf("%w: código vazio em %s/%s", ErrCompile, vertPath, fragPath)
	}

	return Sources{Vertex: string(vert), Fragment: string(frag), Origin: vertPath + " + " + fragPath}, nil
}

// Locations mapeia nome do uniform -> localização no programa (-1 = ausente).
type Locations map[string]int32

// Resolve consulta todas as localizações conhecidas usando lookup
// (normalmente rl.GetShaderLocation) e falha se faltar algum obrigatório.
func Resolve(lookup func(name string) int32) (Locations, error) {
	locs := make(Locations, len(Required)+len(Optional))
	var missing []string

	for _, name := range Required {
		loc := lookup(name)
		if loc < 0 {
			missing = append(missing, name)
		}
		locs[name] = loc
	}
	for _, name := range Optional {
		locs[name] = lookup(name)
	}

	if len(missing) > 0 {
		return locs, fmt.Errorf("%w: %s", ErrMissingUniform, strings.Join(missing, ", "))
	}
	return locs, nil
}

// Has indica se o uniform existe no programa.
func (l Locations) Has(name string) bool {
	loc, ok := l[name]
	return ok && loc >= 0
}

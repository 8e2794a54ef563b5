package render

import (
	"fmt"
	"log"
	"unsafe"

	"QuadNormalMap/internal/camera"
	"QuadNormalMap/internal/params"
	"QuadNormalMap/internal/shader"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Options reúne o que o renderizador precisa para carregar seus recursos.
type Options struct {
	VertexShaderPath   string
	FragmentShaderPath string
	DiffuseTexturePath string
	NormalMapPath      string
}

// Renderer é dono do programa de shader, da malha do quad e das duas texturas.
type Renderer struct {
	Shader   rl.Shader
	Mesh     rl.Mesh
	Material rl.Material

	Diffuse   rl.Texture2D
	NormalMap rl.Texture2D

	locs shader.Locations
	// VBO com o buffer empacotado (tangente + bitangente), fora da rl.Mesh
	layoutVBO uint32
}

// NewRenderer compila os shaders, envia o quad e carrega as texturas.
// Qualquer falha de compilação/link interrompe a inicialização.
// Requer uma janela já inicializada.
func NewRenderer(opts Options) (*Renderer, error) {
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("janela não inicializada")
	}

	r := &Renderer{}

	if err := r.loadShader(opts.VertexShaderPath, opts.FragmentShaderPath); err != nil {
		return nil, err
	}

	mesh, vbo, err := uploadQuad(func(name string) int32 {
		return rl.GetShaderLocationAttrib(r.Shader, name)
	})
	if err != nil {
		r.Unload()
		return nil, err
	}
	r.Mesh, r.layoutVBO = mesh, vbo
	log.Printf("[Renderer] Quad enviado: %d vértices, %d triângulos", mesh.VertexCount, mesh.TriangleCount)

	if r.Diffuse, err = loadTexture(opts.DiffuseTexturePath); err != nil {
		r.Unload()
		return nil, err
	}
	if r.NormalMap, err = loadTexture(opts.NormalMapPath); err != nil {
		r.Unload()
		return nil, err
	}

	// Material da raylib: diffuse no slot albedo, normal map no slot normal.
	// DrawMesh ativa cada unidade e preenche os samplers registrados em Locs.
	r.Material = rl.LoadMaterialDefault()
	r.Material.Shader = r.Shader
	rl.SetMaterialTexture(&r.Material, rl.MapDiffuse, r.Diffuse)
	rl.SetMaterialTexture(&r.Material, rl.MapNormal, r.NormalMap)

	return r, nil
}

func (r *Renderer) loadShader(vertPath, fragPath string) error {
	src, err := shader.Load(vertPath, fragPath)
	if err != nil {
		return err
	}

	diagnostics.Begin()
	sh := rl.LoadShaderFromMemory(src.Vertex, src.Fragment)
	if err := shader.Err(diagnostics.End()); err != nil {
		if sh.ID != 0 {
			rl.UnloadShader(sh)
		}
		return fmt.Errorf("shaders %s: %w", src.Origin, err)
	}
	if sh.ID == 0 {
		return fmt.Errorf("shaders %s: %w", src.Origin, shader.ErrCompile)
	}

	// Se a compilação falhou a raylib devolve o shader padrão, que não tem
	// nenhum dos uniforms obrigatórios.
	locs, err := shader.Resolve(func(name string) int32 {
		return rl.GetShaderLocation(sh, name)
	})
	if err != nil {
		rl.UnloadShader(sh)
		return fmt.Errorf("shaders %s: %w", src.Origin, err)
	}

	// Locs é um ponteiro bruto (*int32) para um array em C (32 posições)
	shLocs := unsafe.Slice(sh.Locs, 32)
	shLocs[rl.ShaderLocMapDiffuse] = locs[shader.DiffuseTexture]
	shLocs[rl.ShaderLocMapNormal] = locs[shader.NormalMap]

	r.Shader = sh
	r.locs = locs
	log.Printf("[Renderer] Shaders carregados (%s), toggle de normal mapping: %v",
		src.Origin, locs.Has(shader.NormalMapping))
	return nil
}

// SupportsToggle indica se o programa expõe enableNormalMapping.
func (r *Renderer) SupportsToggle() bool {
	return r.locs.Has(shader.NormalMapping)
}

// Draw envia os uniforms do frame e desenha o quad.
func (r *Renderer) Draw(p params.Params, tr camera.Transforms) {
	r.setMatrix(shader.ProjMat, tr.Proj)
	r.setMatrix(shader.ViewMat, tr.View)
	r.setMatrix(shader.ModelMat, tr.Model)
	r.setMatrix(shader.NormalMat, tr.Normal)
	r.setFloat(shader.Time, p.Time)
	r.setFloat(shader.NormalMapping, p.NormalMappingUniform())

	rl.DrawMesh(r.Mesh, r.Material, rl.MatrixIdentity())
}

func (r *Renderer) setMatrix(name string, m mgl32.Mat4) {
	if !r.locs.Has(name) {
		return
	}
	rl.SetShaderValueMatrix(r.Shader, r.locs[name], toMatrix(m))
}

func (r *Renderer) setFloat(name string, v float32) {
	if !r.locs.Has(name) {
		return
	}
	rl.SetShaderValue(r.Shader, r.locs[name], []float32{v}, rl.ShaderUniformFloat)
}

// toMatrix converte de mgl32 (coluna-major) para rl.Matrix; os índices M0..M15
// da raylib também são coluna-major.
func toMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}

// Unload libera os recursos na ordem inversa da criação.
func (r *Renderer) Unload() {
	if r.NormalMap.ID != 0 {
		rl.UnloadTexture(r.NormalMap)
		r.NormalMap = rl.Texture2D{}
	}
	if r.Diffuse.ID != 0 {
		rl.UnloadTexture(r.Diffuse)
		r.Diffuse = rl.Texture2D{}
	}
	if r.layoutVBO != 0 {
		rl.UnloadVertexBuffer(r.layoutVBO)
		r.layoutVBO = 0
	}
	if r.Mesh.VaoID != 0 {
		rl.UnloadMesh(&r.Mesh)
		r.Mesh = rl.Mesh{}
	}
	if r.Shader.ID != 0 {
		rl.UnloadShader(r.Shader)
		r.Shader = rl.Shader{}
	}
	// O material não é descarregado com UnloadMaterial: shader e texturas já
	// foram liberados acima, resta só o array de mapas
	if r.Material.Maps != nil {
		freeC(unsafe.Pointer(r.Material.Maps))
		r.Material = rl.Material{}
	}
	log.Println("[Renderer] Recursos liberados")
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"QuadNormalMap/internal/params"
)

// Config armazena as configurações das demos de normal mapping.
type Config struct {
	// Janela
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	WindowTitle  string `json:"window_title"`
	TargetFPS    int32  `json:"target_fps"`
	Resizable    bool   `json:"resizable"`

	// Shaders (vazio = shaders embutidos)
	VertexShaderPath   string `json:"vertex_shader"`
	FragmentShaderPath string `json:"fragment_shader"`

	// Texturas
	DiffuseTexturePath string `json:"diffuse_texture"`
	NormalMapPath      string `json:"normal_map"`

	// Câmera e transformações
	FOV          float32    `json:"fov"`
	NearPlane    float32    `json:"near_plane"`
	FarPlane     float32    `json:"far_plane"`
	CameraEye    [3]float32 `json:"camera_eye"`
	CameraTarget [3]float32 `json:"camera_target"`
	CameraUp     [3]float32 `json:"camera_up"`
	ModelOffset  [3]float32 `json:"model_offset"`

	// Renderização
	Variant       params.Variant `json:"variant"`
	NormalMapping bool           `json:"normal_mapping"`

	// Saída
	ScreenshotDir string `json:"screenshot_dir"`
	StatsDB       string `json:"stats_db"` // Vazio desativa o registro de sessões
	LogFile       string `json:"log_file"`
}

// DefaultConfig retorna a configuração padrão.
func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  512,
		WindowHeight: 512,
		WindowTitle:  "Render",
		TargetFPS:    60,
		Resizable:    true,

		DiffuseTexturePath: "data/Gravel020_1K_Color.jpg",
		NormalMapPath:      "data/Gravel020_1K_Normal.jpg",

		FOV:          45.0,
		NearPlane:    0.01,
		FarPlane:     100.0,
		CameraEye:    [3]float32{0.8, 0, 0.8},
		CameraTarget: [3]float32{0, 0, 0},
		CameraUp:     [3]float32{0, 0, 1},
		ModelOffset:  [3]float32{-1, 0, -1},

		Variant:       params.VariantBasic,
		NormalMapping: true,

		ScreenshotDir: ".",
	}
}

// DefaultPath retorna o caminho do arquivo de configuração ao lado do executável.
func DefaultPath() string {
	execDir, err := os.Executable()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(filepath.Dir(execDir), "config.json")
}

// Load carrega as configurações de um arquivo JSON.
// Se o arquivo não existir, retorna as configurações padrão.
// Campos ausentes no JSON mantêm o valor padrão.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("falha ao ler %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("falha ao parsear %s: %w", path, err)
	}

	return cfg, nil
}

// Save salva as configurações em um arquivo JSON.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate confere os valores antes de abrir a janela.
func (c *Config) Validate() error {
	var errs []error

	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("tamanho de janela inválido: %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.TargetFPS < 0 {
		errs = append(errs, fmt.Errorf("target_fps negativo: %d", c.TargetFPS))
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("fov fora de (0, 180): %v", c.FOV))
	}
	if c.NearPlane <= 0 || c.FarPlane <= c.NearPlane {
		errs = append(errs, fmt.Errorf("planos de recorte inválidos: near=%v far=%v", c.NearPlane, c.FarPlane))
	}
	if c.CameraEye == c.CameraTarget {
		errs = append(errs, errors.New("camera_eye e camera_target coincidem"))
	}
	if c.CameraUp == ([3]float32{}) {
		errs = append(errs, errors.New("camera_up nulo"))
	}
	if c.DiffuseTexturePath == "" || c.NormalMapPath == "" {
		errs = append(errs, errors.New("caminhos de textura obrigatórios"))
	}
	if (c.VertexShaderPath == "") != (c.FragmentShaderPath == "") {
		errs = append(errs, errors.New("vertex_shader e fragment_shader devem ser informados juntos"))
	}
	if !c.Variant.Valid() {
		errs = append(errs, fmt.Errorf("variante desconhecida: %q", c.Variant))
	}

	return errors.Join(errs...)
}

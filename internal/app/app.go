package app

import (
	"fmt"
	"image"
	"log"
	"time"

	"QuadNormalMap/internal/camera"
	"QuadNormalMap/internal/params"
	"QuadNormalMap/internal/render"
	"QuadNormalMap/internal/stats"
	"QuadNormalMap/shared/config"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// recentRuns é quantas sessões do histórico o resumo final mostra.
const recentRuns = 5

// App é a demo de normal mapping: uma janela, um quad, duas texturas.
type App struct {
	Config *config.Config

	cam      *camera.Camera
	renderer *render.Renderer
	store    *stats.Store

	// Estado de renderização do frame, passado explicitamente para Draw
	params    params.Params
	startedAt time.Time

	// Captura pedida no input, feita no draw do mesmo frame
	captureRequested bool
	grabFrame        func() image.Image
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	cam := camera.New()
	cam.Eye = mgl32.Vec3(cfg.CameraEye)
	cam.Target = mgl32.Vec3(cfg.CameraTarget)
	cam.Up = mgl32.Vec3(cfg.CameraUp)
	cam.FovY = cfg.FOV
	cam.Near = cfg.NearPlane
	cam.Far = cfg.FarPlane
	cam.ModelOffset = mgl32.Vec3(cfg.ModelOffset)

	return &App{
		Config:    cfg,
		cam:       cam,
		params:    params.New(cfg.Variant, cfg.NormalMapping),
		grabFrame: grabScreen,
	}
}

// Run abre a janela, carrega os recursos e executa o loop até o usuário fechar.
// Deve ser chamado na thread principal (runtime.LockOSThread).
func (a *App) Run() error {
	if err := a.Config.Validate(); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}

	render.InstallTraceLog(rl.LogWarning)

	var flags uint32 = rl.FlagMsaa4xHint
	if a.Config.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	if !rl.IsWindowReady() {
		return fmt.Errorf("falha ao criar a janela")
	}
	defer rl.CloseWindow()

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)

	log.Printf("[App] Janela inicializada: %dx%d (%s)", a.Config.WindowWidth, a.Config.WindowHeight, a.params.Variant)

	renderer, err := render.NewRenderer(render.Options{
		VertexShaderPath:   a.Config.VertexShaderPath,
		FragmentShaderPath: a.Config.FragmentShaderPath,
		DiffuseTexturePath: a.Config.DiffuseTexturePath,
		NormalMapPath:      a.Config.NormalMapPath,
	})
	if err != nil {
		return err
	}
	a.renderer = renderer
	defer a.renderer.Unload()

	if a.params.CanToggle() && !a.renderer.SupportsToggle() {
		log.Printf("[App] AVISO: shader sem uniform enableNormalMapping, tecla N não terá efeito")
	}

	a.openStats()
	defer a.closeStats()

	a.startedAt = time.Now()

	// Loop principal
	for !rl.WindowShouldClose() {
		a.updateInput()
		a.params = a.params.Advance(rl.GetTime())
		a.draw()
	}

	a.shutdown()
	return nil
}

// shutdown registra o resumo da sessão.
func (a *App) shutdown() {
	elapsed := time.Since(a.startedAt)
	log.Printf("[App] Finalizando: %d frames em %s (%.1f FPS médio), %d toggles, %d capturas",
		a.params.Frames, elapsed.Round(time.Millisecond), a.params.AverageFPS(elapsed),
		a.params.Toggles, a.params.Screenshots)

	if a.store == nil {
		return
	}
	run := &stats.RunRecord{
		Variant:     string(a.params.Variant),
		StartedAt:   a.startedAt,
		DurationMs:  elapsed.Milliseconds(),
		Frames:      a.params.Frames,
		AvgFPS:      a.params.AverageFPS(elapsed),
		Toggles:     a.params.Toggles,
		Screenshots: a.params.Screenshots,
	}
	if err := a.store.Record(run); err != nil {
		log.Printf("[Stats] Erro ao registrar sessão: %v", err)
		return
	}

	recent, err := a.store.Recent(recentRuns)
	if err != nil {
		log.Printf("[Stats] Erro ao ler histórico: %v", err)
		return
	}
	log.Printf("[Stats] Últimas %d sessões:", len(recent))
	for _, r := range recent {
		log.Printf("[Stats]   %s %s: %d frames, %.1f FPS, %d toggles, %d capturas",
			r.StartedAt.Format("2006-01-02 15:04:05"), r.Variant, r.Frames, r.AvgFPS, r.Toggles, r.Screenshots)
	}
}

func (a *App) openStats() {
	if a.Config.StatsDB == "" {
		return
	}
	store, err := stats.Open(a.Config.StatsDB)
	if err != nil {
		log.Printf("[Stats] AVISO: histórico de sessões desativado: %v", err)
		return
	}
	a.store = store
}

func (a *App) closeStats() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		log.Printf("[Stats] Erro ao fechar banco: %v", err)
	}
}

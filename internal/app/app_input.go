package app

import (
	"image"
	"log"
	"time"

	"QuadNormalMap/internal/capture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// updateInput processa as teclas do frame. ESC é tratado pela própria raylib
// (SetExitKey) e fecha a janela.
func (a *App) updateInput() {
	// N: alterna normal mapping (apenas na variante toggle)
	if rl.IsKeyPressed(rl.KeyN) && a.params.CanToggle() {
		a.params = a.params.Toggle()
		log.Printf("[App] Normal mapping: %v", a.params.NormalMapping)
	}

	// P: captura do framebuffer, feita em draw antes da troca de buffers.
	// F12 fica livre para a captura embutida da raylib.
	if rl.IsKeyPressed(rl.KeyP) {
		a.captureRequested = true
	}
}

// captureIfRequested salva o frame atual se houver pedido pendente.
// Chamado entre o desenho da cena e EndDrawing, enquanto o back buffer
// ainda tem o frame.
func (a *App) captureIfRequested() {
	if !a.captureRequested {
		return
	}
	a.captureRequested = false

	path, err := capture.Save(a.grabFrame(), a.Config.ScreenshotDir, time.Now(), a.params.Frames)
	if err != nil {
		log.Printf("[App] Erro ao salvar captura: %v", err)
		return
	}
	a.params.Screenshots++
	log.Printf("[App] Captura salva: %s", path)
}

// grabScreen lê o framebuffer atual.
func grabScreen() image.Image {
	img := rl.LoadImageFromScreen()
	defer rl.UnloadImage(img)
	return img.ToImage()
}

package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// draw renderiza um frame: limpa, envia uniforms, desenha e troca os buffers.
func (a *App) draw() {
	// Aspect recalculado a cada frame (janela redimensionável)
	transforms := a.cam.Compute(rl.GetRenderWidth(), rl.GetRenderHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.renderer.Draw(a.params, transforms)
	a.captureIfRequested()

	rl.EndDrawing()
}

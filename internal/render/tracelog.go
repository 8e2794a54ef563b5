package render

import (
	"log"

	"QuadNormalMap/internal/shader"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// diagnostics recebe as mensagens de shader do log da raylib.
// A raylib chama o callback na thread do contexto, a mesma do loop.
var diagnostics shader.Diagnostics

// InstallTraceLog redireciona o log da raylib para o logger padrão.
// Deve ser chamado antes de InitWindow.
func InstallTraceLog(level rl.TraceLogLevel) {
	rl.SetTraceLogLevel(level)
	rl.SetTraceLogCallback(func(logLevel int, text string) {
		diagnostics.Observe(text)
		if logLevel >= int(rl.LogWarning) {
			log.Printf("[raylib] AVISO: %s", text)
			return
		}
		log.Printf("[raylib] %s", text)
	})
}

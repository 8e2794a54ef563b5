package main

import (
	"runtime"

	"QuadNormalMap/internal/app"
	"QuadNormalMap/internal/params"
)

func main() {
	// Raylib/OpenGL exige rodar na thread principal do SO
	runtime.LockOSThread()

	app.Main(params.VariantToggle, "--- Normal Map (toggle): N liga/desliga o normal mapping ---")
}

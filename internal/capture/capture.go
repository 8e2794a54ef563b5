package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// FileName monta o nome do arquivo de captura de um frame.
func FileName(now time.Time, frame int64) string {
	return fmt.Sprintf("render-%s-%06d.png", now.Format("20060102-150405"), frame)
}

// Save grava a imagem do framebuffer como PNG em dir e retorna o caminho.
func Save(img image.Image, dir string, now time.Time, frame int64) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("falha ao criar diretório de capturas: %w", err)
	}

	path := filepath.Join(dir, FileName(now, frame))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("falha ao criar %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("falha ao codificar %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}

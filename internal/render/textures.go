package render

import (
	"fmt"
	"log"

	"QuadNormalMap/internal/texture"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadTexture decodifica a imagem e cria a textura com mipmaps, filtro
// trilinear, anisotropia máxima e wrap repeat.
func loadTexture(path string) (rl.Texture2D, error) {
	dec, err := texture.Decode(path)
	if err != nil {
		return rl.Texture2D{}, err
	}

	img := rl.NewImageFromImage(dec.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if tex.ID == 0 {
		return rl.Texture2D{}, fmt.Errorf("falha ao enviar textura %s para a GPU", path)
	}

	rl.GenTextureMipmaps(&tex)
	rl.SetTextureFilter(tex, rl.FilterTrilinear)
	rl.SetTextureFilter(tex, rl.FilterAnisotropic16x)
	rl.SetTextureWrap(tex, rl.WrapRepeat)

	log.Printf("[Renderer] Textura carregada: %s (%s, %dx%d, %d mipmaps)",
		path, dec.Format, dec.Width(), dec.Height(), tex.Mipmaps)
	return tex, nil
}

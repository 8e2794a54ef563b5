// Package texture decodifica as imagens de textura antes do upload para a GPU.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage indica uma imagem sem pixels.
var ErrEmptyImage = errors.New("imagem vazia")

// Decoded é uma imagem pronta para upload.
type Decoded struct {
	Path   string
	Format string
	Image  *image.NRGBA
}

// Width retorna a largura em pixels.
func (d *Decoded) Width() int { return d.Image.Bounds().Dx() }

// Height retorna a altura em pixels.
func (d *Decoded) Height() int { return d.Image.Bounds().Dy() }

// Decode lê e decodifica um arquivo de imagem (jpeg, png, bmp, tiff, webp).
// O canal alfa é descartado: as texturas são tratadas como RGB opaco.
func Decode(path string) (*Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir textura %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("falha ao decodificar textura %s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("textura %s: %w", path, ErrEmptyImage)
	}

	return &Decoded{Path: path, Format: format, Image: ToOpaqueNRGBA(img)}, nil
}

// ToOpaqueNRGBA copia a imagem para NRGBA com origem em (0,0) e alfa 255.
func ToOpaqueNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)

	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xff
	}
	return dst
}

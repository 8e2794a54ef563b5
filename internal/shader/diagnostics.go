package shader

import (
	"fmt"
	"strings"
)

// Diagnostics acumula as mensagens de compilação/link emitidas pelo log da
// raylib enquanto um programa é carregado.
type Diagnostics struct {
	capturing bool
	lines     []string
}

// Begin inicia uma nova captura.
func (d *Diagnostics) Begin() {
	d.capturing = true
	d.lines = d.lines[:0]
}

// End encerra a captura e retorna as linhas coletadas.
func (d *Diagnostics) End() []string {
	d.capturing = false
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Observe recebe uma linha do log. Só guarda mensagens de shader que indicam falha.
func (d *Diagnostics) Observe(text string) {
	if !d.capturing {
		return
	}
	if IsFailure(text) {
		d.lines = append(d.lines, strings.TrimSpace(text))
	}
}

// IsFailure reconhece as mensagens de erro de compilação e link da raylib.
func IsFailure(text string) bool {
	if !strings.HasPrefix(text, "SHADER:") {
		return false
	}
	for _, marker := range []string{"Failed to", "Compile error", "Link error"} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// Err converte as linhas capturadas em erro (nil se não houver nenhuma).
func Err(lines []string) error {
	if len(lines) == 0 {
		return nil
	}
	return fmt.Errorf("%w:\n%s", ErrCompile, strings.Join(lines, "\n"))
}

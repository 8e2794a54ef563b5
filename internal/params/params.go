package params

import "time"

// Variant identifica qual das duas demos está rodando.
type Variant string

const (
	VariantBasic  Variant = "basic"  // Normal mapping sempre ligado
	VariantToggle Variant = "toggle" // Normal mapping alternável por tecla
)

// Valid indica se a variante é conhecida.
func (v Variant) Valid() bool {
	return v == VariantBasic || v == VariantToggle
}

// Params é o estado de renderização passado explicitamente para cada frame.
// O loop principal é o único dono; handlers de input devolvem um novo valor
// em vez de alterar estado capturado.
type Params struct {
	Variant       Variant
	NormalMapping bool
	Time          float32 // Segundos desde o início, enviado ao uniform "time"

	Frames      int64
	Toggles     int
	Screenshots int
}

// New cria o estado inicial para uma variante.
func New(v Variant, normalMapping bool) Params {
	if v == VariantBasic {
		normalMapping = true
	}
	return Params{Variant: v, NormalMapping: normalMapping}
}

// CanToggle indica se a variante aceita alternar o normal mapping.
func (p Params) CanToggle() bool {
	return p.Variant == VariantToggle
}

// Toggle devolve uma cópia com o normal mapping invertido.
// Na variante básica nada muda.
func (p Params) Toggle() Params {
	if !p.CanToggle() {
		return p
	}
	p.NormalMapping = !p.NormalMapping
	p.Toggles++
	return p
}

// Advance devolve uma cópia atualizada para o próximo frame.
func (p Params) Advance(now float64) Params {
	p.Time = float32(now)
	p.Frames++
	return p
}

// NormalMappingUniform converte a flag para o valor float do shader.
func (p Params) NormalMappingUniform() float32 {
	if p.NormalMapping {
		return 1
	}
	return 0
}

// AverageFPS calcula a média de frames por segundo de uma sessão.
func (p Params) AverageFPS(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(p.Frames) / elapsed.Seconds()
}

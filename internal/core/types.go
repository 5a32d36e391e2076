package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownEngine is returned when no factory is registered under a name.
var ErrUnknownEngine = errors.New("core: unknown engine")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }

// Engine is the contract the driver consumes from a simulation. Cells returns a
// borrowed, row-major bit-packed view that stays valid until the next mutating
// call.
type Engine interface {
	Width() int
	Height() int
	Step()
	Cells() []byte
	ToggleCell(row, col int)
	SeedGliderAt(row, col int)
	SeedPulsarAt(row, col int)
	ClearAll()
	SetDebugMode(enabled bool)
}

// SizeOf reads the dimensions of an engine.
func SizeOf(e Engine) Size { return Size{W: e.Width(), H: e.Height()} }

// Factory builds engine instances. Create seeds the engine's default pattern,
// CreateRandom fills it from the given seed.
type Factory struct {
	Create       func(cfg map[string]string) Engine
	CreateRandom func(cfg map[string]string, seed int64) Engine
}

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f.Create == nil || f.CreateRandom == nil {
		return
	}
	engines[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := engines[name]
	if !ok {
		return Factory{}, fmt.Errorf("%w %q", ErrUnknownEngine, name)
	}
	return f, nil
}

// EngineNames lists registered engines in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

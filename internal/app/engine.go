package app

import (
	"log"

	"lifeview/internal/core"
)

// NewEngine builds the configured engine with its start pattern and returns
// the factory so the driver can replace it later.
func NewEngine(cfg *Config) (core.Engine, core.Factory, error) {
	f, err := core.Lookup(cfg.Engine)
	if err != nil {
		return nil, core.Factory{}, err
	}
	ecfg := cfg.EngineConfig()

	var e core.Engine
	switch cfg.Start {
	case StartRandom:
		e = f.CreateRandom(ecfg, cfg.Seed)
	case StartSpaceship:
		e = f.Create(ecfg)
		e.ClearAll()
		e.SeedGliderAt(1, 1)
	default:
		e = f.Create(ecfg)
	}
	log.Printf("engine %s %dx%d (start=%s)", cfg.Engine, e.Width(), e.Height(), cfg.Start)
	return e, f, nil
}

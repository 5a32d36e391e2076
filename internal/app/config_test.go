package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"lifeview/internal/core"
	_ "lifeview/pkg/sims/life"
)

func lookupLife() (core.Factory, error) { return core.Lookup("life") }

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
	if cfg.Engine != "life" || cfg.Width != 64 || cfg.Height != 64 || cfg.TicksPerFrame != 0 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":     func(c *Config) { c.Width = 0 },
		"negative h":     func(c *Config) { c.Height = -3 },
		"zero tps":       func(c *Config) { c.TPS = 0 },
		"zero scale":     func(c *Config) { c.Scale = 0 },
		"negative ticks": func(c *Config) { c.TicksPerFrame = -1 },
		"unknown start":  func(c *Config) { c.Start = "soup" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: got %v, want ErrInvalidConfig", name, err)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeview.yaml")
	if err := os.WriteFile(path, []byte("width: 12\nstart: random\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 12 || cfg.Start != StartRandom {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 64 || cfg.TPS != 60 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	want := NewConfig()
	want.Width, want.Seed, want.Debug = 9, 7, true
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file: %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestBindFlags(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--width=5", "--height", "7", "--ticks=3", "--debug", "--start=spaceship"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 5 || cfg.Height != 7 || cfg.TicksPerFrame != 3 || !cfg.Debug || cfg.Start != StartSpaceship {
		t.Fatalf("flags not bound: %+v", cfg)
	}
	ecfg := cfg.EngineConfig()
	if ecfg["w"] != "5" || ecfg["h"] != "7" {
		t.Fatalf("engine config %v", ecfg)
	}
}

func TestNewEngineStartPatterns(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 8, 8

	cfg.Start = StartSpaceship
	e, _, err := NewEngine(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := popcount(e.Cells()); got != 5 {
		t.Fatalf("spaceship start has %d cells, want 5", got)
	}
	for _, n := range []int{2, 8, 10, 17, 18} {
		if !core.Alive(e.Cells(), n) {
			t.Fatalf("spaceship cell %d is dead", n)
		}
	}

	cfg.Start = StartRandom
	a, _, _ := NewEngine(cfg)
	b, _, _ := NewEngine(cfg)
	if string(a.Cells()) != string(b.Cells()) {
		t.Fatal("random start must be deterministic for a fixed seed")
	}

	cfg.Engine = "nope"
	if _, _, err := NewEngine(cfg); !errors.Is(err, core.ErrUnknownEngine) {
		t.Fatalf("unknown engine: %v", err)
	}
}

func popcount(view []byte) int {
	n := 0
	for i := 0; i < len(view)*8; i++ {
		if core.Alive(view, i) {
			n++
		}
	}
	return n
}

package app

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"strings"
	"testing"
)

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 16, 12
	return cfg
}

func TestBenchRunsRequestedFrames(t *testing.T) {
	res, err := Bench(smallConfig(), 120)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 120 {
		t.Fatalf("ran %d frames, want 120", res.Frames)
	}
	if len(res.Samples) != 100 || res.Stats.Samples != 100 {
		t.Fatalf("window holds %d samples, want 100", len(res.Samples))
	}
	out := FormatBench(smallConfig(), res)
	if !strings.Contains(out, "Frames per Second:") || !strings.Contains(out, "lifeview bench") {
		t.Fatalf("report missing sections:\n%s", out)
	}
}

func TestBenchInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 0
	if _, err := Bench(cfg, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("got %v", err)
	}
}

func TestPlotSamplesSkipsInfinite(t *testing.T) {
	if plotSamples(nil) != "" {
		t.Fatal("empty window should not plot")
	}
	inf := math.Inf(1)
	if plotSamples([]float64{inf, 60}) != "" {
		t.Fatal("a single finite sample should not plot")
	}
	if plotSamples([]float64{60, inf, 58, 61}) == "" {
		t.Fatal("finite samples should plot")
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	cfg := smallConfig()
	cfg.Start = StartSpaceship
	var buf bytes.Buffer
	if err := Snapshot(cfg, 4, &buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16*11+1 || b.Dy() != 12*11+1 {
		t.Fatalf("snapshot is %v", b)
	}
}

func TestHeadlessResizesOnReplace(t *testing.T) {
	h, err := NewHeadless(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	old := h.Surface
	f, _ := lookupLife()
	h.Driver.Replace(f.Create(map[string]string{"w": "5", "h": "5"}))
	if h.Surface == old || h.Surface.Bounds().Dx() != 56 {
		t.Fatalf("surface not resized: %v", h.Surface.Bounds())
	}
}

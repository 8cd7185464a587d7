package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/slingshot/internal/sim"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	def := DefaultSlingshotConfig()

	if cfg.World.Width != def.World.Width || cfg.World.Gravity != def.World.Gravity {
		t.Errorf("world = %+v, want %+v", cfg.World, def.World)
	}
	if cfg.World.BlockContacts {
		t.Error("shipped config enables block contacts")
	}
	if math.Abs(cfg.World.MaxStep-def.World.MaxStep) > 1e-9 {
		t.Errorf("max_step = %v, want %v", cfg.World.MaxStep, def.World.MaxStep)
	}
	if cfg.Slingshot != def.Slingshot || cfg.Aim != def.Aim || cfg.Difficulty != def.Difficulty {
		t.Error("slingshot, aim or difficulty differ from the hardcoded defaults")
	}
	for name, b := range def.Birds {
		if cfg.Birds[name] != b {
			t.Errorf("bird %s = %+v, want %+v", name, cfg.Birds[name], b)
		}
	}
	for name, m := range def.Materials {
		if cfg.Materials[name] != m {
			t.Errorf("material %s = %+v, want %+v", name, cfg.Materials[name], m)
		}
	}
}

func TestTuningMatchesSimDefaults(t *testing.T) {
	got, err := DefaultSlingshotConfig().Tuning()
	if err != nil {
		t.Fatalf("Tuning failed: %v", err)
	}
	want := sim.DefaultTuning()

	if got.FloorY() != want.FloorY() || got.Gravity != want.Gravity {
		t.Errorf("floor/gravity = %v/%v", got.FloorY(), got.Gravity)
	}
	gx, gy := got.Anchor()
	wx, wy := want.Anchor()
	if gx != wx || gy != wy {
		t.Errorf("anchor = (%v, %v), want (%v, %v)", gx, gy, wx, wy)
	}
	for bt, p := range want.Birds {
		if got.Birds[bt] != p {
			t.Errorf("%s profile = %+v, want %+v", bt, got.Birds[bt], p)
		}
	}
	for m, p := range want.Materials {
		if got.Materials[m] != p {
			t.Errorf("%s profile = %+v, want %+v", m, got.Materials[m], p)
		}
	}
	if got.DefaultMaterial != want.DefaultMaterial || got.CompletionBonus != want.CompletionBonus {
		t.Error("default material or completion bonus differ")
	}
	if got.BlockContacts != want.BlockContacts {
		t.Errorf("block contacts = %v, want %v", got.BlockContacts, want.BlockContacts)
	}
}

func TestTuningErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlingshotConfig)
	}{
		{"unknown bird", func(c *SlingshotConfig) { c.Birds["purple"] = BirdConfig{Radius: 10, Power: 1} }},
		{"unknown material", func(c *SlingshotConfig) { c.Materials["cheese"] = MaterialConfig{Density: 1, MaxHealth: 1} }},
		{"missing red", func(c *SlingshotConfig) { delete(c.Birds, "red") }},
		{"zero width", func(c *SlingshotConfig) { c.World.Width = 0 }},
		{"floor above the top", func(c *SlingshotConfig) { c.World.FloorOffset = 800 }},
		{"zero max step", func(c *SlingshotConfig) { c.World.MaxStep = 0 }},
		{"zero bird radius", func(c *SlingshotConfig) { c.Birds["blue"] = BirdConfig{Power: 1} }},
		{"zero aim step", func(c *SlingshotConfig) { c.Aim.Step = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSlingshotConfig()
			tt.mutate(&cfg)
			if _, err := cfg.Tuning(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestTuningMissingBirdFallsBackToRed(t *testing.T) {
	cfg := DefaultSlingshotConfig()
	delete(cfg.Birds, "white")
	tuning, err := cfg.Tuning()
	if err != nil {
		t.Fatalf("Tuning failed: %v", err)
	}
	if got := tuning.BirdProfile(sim.BirdWhite); got.Radius != 18 {
		t.Errorf("white profile = %+v, want red's", got)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  gravity: 300\naim:\n  step: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Gravity != 300 || cfg.Aim.Step != 5 {
		t.Errorf("overrides not applied: gravity=%v step=%v", cfg.World.Gravity, cfg.Aim.Step)
	}
	if cfg.World.Width != 1280 || cfg.Aim.MaxDrag != 130 {
		t.Error("unset keys lost their defaults")
	}
	if len(cfg.Birds) != 5 {
		t.Errorf("birds = %d, want 5", len(cfg.Birds))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{filepath.Join(dir, "missing.yaml"), bad, invalid} {
		if _, err := Load(p); err == nil {
			t.Errorf("Load(%s) succeeded, want an error", filepath.Base(p))
		}
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Gravity != 620 {
		t.Errorf("gravity = %v, want 620", cfg.World.Gravity)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	writeConfig(t, filepath.Join(work, "configs", FileName), "world:\n  gravity: 100\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Gravity != 100 {
		t.Errorf("local config not used: gravity=%v", cfg.World.Gravity)
	}

	writeConfig(t, filepath.Join(home, ".slingshot", "configs", FileName), "world:\n  gravity: 200\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.World.Gravity != 200 {
		t.Errorf("user config should win over local: gravity=%v", cfg.World.Gravity)
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantScale   float64
		wantPreview int
	}{
		{DifficultyEasy, 1.15, 24},
		{DifficultyNormal, 1.0, 10},
		{DifficultyHard, 0.9, 0},
		{DifficultyFixed, 0.5, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSlingshotConfig()
			cfg.Difficulty = DifficultyConfig{PowerScale: 0.5, PreviewSteps: 3}
			ApplyPreset(&cfg, tt.preset)
			if cfg.Difficulty.PowerScale != tt.wantScale || cfg.Difficulty.PreviewSteps != tt.wantPreview {
				t.Errorf("difficulty = %+v, want scale %v preview %d",
					cfg.Difficulty, tt.wantScale, tt.wantPreview)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if p, ok := ParsePreset("brutal"); ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(brutal) = %v, %v", p, ok)
	}
	if !IsFixedPreset(DifficultyFixed) || IsFixedPreset(DifficultyEasy) {
		t.Error("IsFixedPreset mismatch")
	}
}

package levels

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/slingshot/internal/sim"
)

// testdataPath returns path to testdata/levels.
func testdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestDeck(t *testing.T) {
	tests := []struct {
		name   string
		want   []sim.BirdType
		wantOK bool
	}{
		{"balanced", []sim.BirdType{sim.BirdRed, sim.BirdRed, sim.BirdYellow, sim.BirdBlue, sim.BirdBlack}, true},
		{"speedrun", []sim.BirdType{sim.BirdYellow, sim.BirdYellow, sim.BirdBlue, sim.BirdRed, sim.BirdWhite}, true},
		{"demolition", []sim.BirdType{sim.BirdBlack, sim.BirdRed, sim.BirdBlack, sim.BirdYellow, sim.BirdRed}, true},
		{" Tactical ", []sim.BirdType{sim.BirdBlue, sim.BirdWhite, sim.BirdYellow, sim.BirdRed, sim.BirdBlack}, true},
		{"mystery", []sim.BirdType{sim.BirdRed, sim.BirdRed, sim.BirdYellow, sim.BirdBlue, sim.BirdBlack}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Deck(tt.name)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("deck = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("deck[%d] = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDeckReturnsCopy(t *testing.T) {
	d, _ := Deck("balanced")
	d[0] = sim.BirdWhite
	again, _ := Deck("balanced")
	if again[0] != sim.BirdRed {
		t.Error("Deck shares its backing array")
	}
}

func TestDeckNames(t *testing.T) {
	want := []string{"balanced", "demolition", "speedrun", "tactical"}
	got := DeckNames()
	if len(got) != len(want) {
		t.Fatalf("DeckNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DeckNames()[%d] = %q, want %q", i, got[i], want[i])
		}
		if _, ok := Deck(got[i]); !ok {
			t.Errorf("deck %q does not resolve", got[i])
		}
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: test
name: Test
deck: tactical
pigs:
  - {x: 100, y: 200, radius: 15}
  - {x: 300, y: 200}
blocks:
  - {x: 10, y: 20, w: 30, h: 40, material: glass, angle: 0.5}
`)
	lvl, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "test" || lvl.Name != "Test" || lvl.DeckName != "tactical" {
		t.Errorf("header = %q/%q/%q", lvl.ID, lvl.Name, lvl.DeckName)
	}
	if len(lvl.Deck) != 5 || lvl.Deck[0] != sim.BirdBlue {
		t.Errorf("deck = %v", lvl.Deck)
	}
	if len(lvl.Pigs) != 2 || lvl.Pigs[0].Radius != 15 || lvl.Pigs[1].Radius != 0 {
		t.Errorf("pigs = %+v", lvl.Pigs)
	}
	want := sim.BlockPlacement{X: 10, Y: 20, W: 30, H: 40, Material: sim.MaterialGlass, Angle: 0.5}
	if len(lvl.Blocks) != 1 || lvl.Blocks[0] != want {
		t.Errorf("blocks = %+v, want [%+v]", lvl.Blocks, want)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "name: x\n"},
		{"bad yaml", "id: [unterminated\n"},
		{"zero width block", "id: a\nblocks:\n  - {x: 0, y: 0, w: 0, h: 10, material: wood}\n"},
		{"negative pig radius", "id: a\npigs:\n  - {x: 0, y: 0, radius: -1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	lvl, err := ParseYAML([]byte("id: bare\n"))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.Name != "bare" {
		t.Errorf("name = %q, want the id", lvl.Name)
	}
	if lvl.DeckName != DefaultDeck || len(lvl.Deck) != 5 {
		t.Errorf("deck = %q %v", lvl.DeckName, lvl.Deck)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	loader := NewLoader(testdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// broken.yaml and notes.txt are skipped.
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}
}

func TestLoaderFallbacks(t *testing.T) {
	lvl, err := NewLoader(testdataPath()).LoadByID("beta")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.DeckName != "custom" {
		t.Errorf("deck name = %q, want custom", lvl.DeckName)
	}
	if len(lvl.Deck) != 2 || lvl.Deck[0] != sim.BirdBlack || lvl.Deck[1] != sim.BirdRed {
		t.Errorf("deck = %v, want [black red]", lvl.Deck)
	}
	if lvl.Blocks[0].Material != sim.MaterialUnknown {
		t.Errorf("material = %v, want unknown", lvl.Blocks[0].Material)
	}
	if filepath.Base(lvl.FilePath) != "beta.yml" {
		t.Errorf("file path = %q", lvl.FilePath)
	}
}

func TestLoaderLoadByIDMissing(t *testing.T) {
	if _, err := NewLoader(testdataPath()).LoadByID("nope"); err == nil {
		t.Error("expected an error for a missing level")
	}
}

func TestLoaderMissingDirectory(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll(); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestBuiltinCampaign(t *testing.T) {
	lvls, err := Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 5 {
		t.Fatalf("expected 5 builtin levels, got %d", len(lvls))
	}
	if lvls[0].ID != "01-warmup" {
		t.Errorf("first level = %q", lvls[0].ID)
	}

	tuning := sim.DefaultTuning()
	for _, lvl := range lvls {
		if len(lvl.Pigs) == 0 || len(lvl.Deck) == 0 {
			t.Errorf("%s: %d pigs, %d birds", lvl.ID, len(lvl.Pigs), len(lvl.Deck))
		}
		for i, b := range lvl.Blocks {
			if b.Material == sim.MaterialUnknown {
				t.Errorf("%s: block %d has an unknown material", lvl.ID, i)
			}
			if b.Y+b.H > tuning.FloorY() {
				t.Errorf("%s: block %d sinks below the floor", lvl.ID, i)
			}
		}
		for i, p := range lvl.Pigs {
			if p.Y+p.Radius > tuning.FloorY() {
				t.Errorf("%s: pig %d sinks below the floor", lvl.ID, i)
			}
		}

		// Every builtin level must survive a few idle seconds without the
		// round ending on its own.
		w := sim.NewWorld(lvl.Level, tuning)
		for range 180 {
			w.Step(1.0 / 60.0)
		}
		if w.Result() != sim.ResultPlaying {
			t.Errorf("%s: idle world ended as %s", lvl.ID, w.Result())
		}
	}
}

func TestCampaignOverrides(t *testing.T) {
	lvls, err := Campaign(testdataPath())
	if err != nil {
		t.Fatalf("Campaign failed: %v", err)
	}
	if len(lvls) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(lvls))
	}

	warm, err := Find(lvls, "01-warmup")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if warm.Name != "Custom Warm-up" {
		t.Errorf("override not applied: %q", warm.Name)
	}
	if Index(lvls, "alpha") < 0 || Index(lvls, "zzz") != -1 {
		t.Error("Index mismatch")
	}
}

package prefabs

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadEmbeddedSpecs(t *testing.T) {
	world, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if world.Gravity != 0.6 || world.Width != 800 || world.Height != 600 {
		t.Fatalf("unexpected world spec %+v", world)
	}
	if world.KillY() != 800 {
		t.Fatalf("expected kill line at 800, got %v", world.KillY())
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	cfg := ResolverConfig(player.Movement, player.Dash, world)
	if cfg.MaxRun != 4 || cfg.JumpSpeed != 12 || cfg.DashSpeed != 10 {
		t.Fatalf("unexpected resolver config %+v", cfg)
	}
	if cfg.Bounds.L != -400 || cfg.Bounds.T != 1000 {
		t.Fatalf("unexpected bounds %+v", cfg.Bounds)
	}

	enemies, err := LoadEnemySpecs()
	if err != nil {
		t.Fatalf("enemies: %v", err)
	}
	kinds := enemies.Kinds()
	if len(kinds) != 2 || kinds[0] != "crawler" || kinds[1] != "stalker" {
		t.Fatalf("unexpected enemy kinds %v", kinds)
	}
	if enemies.Enemies["crawler"].Name != "crawler" {
		t.Fatalf("enemy name should default to its key")
	}
	for _, k := range kinds {
		if _, err := LoadScript(enemies.Enemies[k].Script); err != nil {
			t.Fatalf("script for %s: %v", k, err)
		}
	}
}

func TestLoadSpecMissingFile(t *testing.T) {
	if _, err := LoadSpec[WorldSpec]("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing prefab")
	}
}

func TestWorldSpecValidate(t *testing.T) {
	cases := []struct {
		name string
		spec WorldSpec
		ok   bool
	}{
		{"valid", WorldSpec{Width: 10, Height: 10, BoundsMargin: 5, KillMargin: 2}, true},
		{"no_bounds", WorldSpec{Width: 10, Height: 10, KillMargin: 2}, true},
		{"zero_size", WorldSpec{Width: 0, Height: 10}, false},
		{"kill_past_bounds", WorldSpec{Width: 10, Height: 10, BoundsMargin: 5, KillMargin: 5}, false},
		{"negative_margin", WorldSpec{Width: 10, Height: 10, BoundsMargin: -1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if c.ok && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !c.ok && !errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("expected ErrInvalidSpec, got %v", err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
		err  bool
	}{
		{"'#ff0000'", color.NRGBA{R: 255, A: 255}, false},
		{"'#00ff0080'", color.NRGBA{G: 255, A: 128}, false},
		{"lime", color.RGBA{G: 255, A: 255}, false},
		{"'#123'", nil, true},
		{"[1, 2]", nil, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.err {
				if err == nil {
					t.Fatalf("expected error, got %v", got.Color)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("expected %v, got %v", c.want, got.Color)
			}
		})
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"chase.tengo":                  "scripts/chase.tengo",
		"scripts/chase.tengo":          "scripts/chase.tengo",
		"prefabs/scripts/chase.tengo":  "scripts/chase.tengo",
		"prefabs/scripts/a/b.tengo":    "scripts/a/b.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatcherReportsYAMLWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("name: p\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case change := <-w.Events:
		if change.Name != "player.yaml" || change.Script {
			t.Fatalf("unexpected change %+v", change)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("no change reported")
	}
}

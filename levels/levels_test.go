package levels

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/cavehop/common"
	"github.com/milk9111/cavehop/physics"
)

func TestGenerateIsDeterministic(t *testing.T) {
	opts := DefaultOptions()
	opts.EnemyKinds = []string{"crawler", "stalker"}

	a, err := Generate(opts, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(opts, 42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(a.Platforms) != len(b.Platforms) {
		t.Fatalf("platform count differs: %d vs %d", len(a.Platforms), len(b.Platforms))
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
	for i := range a.Enemies {
		if a.Enemies[i] != b.Enemies[i] {
			t.Fatalf("enemy %d differs: %+v vs %+v", i, a.Enemies[i], b.Enemies[i])
		}
	}
}

func TestGenerateLayout(t *testing.T) {
	opts := DefaultOptions()
	for _, seed := range []uint64{0, 1, 7, 1234, 99999} {
		stage, err := Generate(opts, seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if got := len(stage.Platforms); got != opts.Platforms+1 {
			t.Fatalf("seed %d: expected %d platforms, got %d", seed, opts.Platforms+1, got)
		}

		bouncy := 0
		for i, p := range stage.Platforms[1:] {
			r := p.Rect()
			if r.W != 100 || r.H != 20 {
				t.Fatalf("seed %d: ledge %d has size %vx%v", seed, i, r.W, r.H)
			}
			if want := 100 + float64(i)*60; r.Y != want {
				t.Fatalf("seed %d: ledge %d y=%v, want %v", seed, i, r.Y, want)
			}
			if r.X < 0 || r.Right() > opts.Width {
				t.Fatalf("seed %d: ledge %d outside stage: %+v", seed, i, r)
			}
			if p.Bouncy() {
				bouncy++
				if p.BounceVelocity() != physics.DefaultBounceVelocity {
					t.Fatalf("seed %d: bounce velocity %v", seed, p.BounceVelocity())
				}
			}
		}
		if bouncy != 1 {
			t.Fatalf("seed %d: expected exactly one bouncy ledge, got %d", seed, bouncy)
		}
		if stage.Platforms[0].Bouncy() || stage.Platforms[0].Rect().Y != 580 {
			t.Fatalf("seed %d: first platform should be the solid floor", seed)
		}
		if len(stage.Enemies) != opts.Enemies {
			t.Fatalf("seed %d: expected %d enemies, got %d", seed, opts.Enemies, len(stage.Enemies))
		}
	}
}

func TestGenerateEnemiesAvoidBouncyLedge(t *testing.T) {
	opts := DefaultOptions()
	opts.Enemies = 20
	stage, err := GenerateWith(opts, rand.New(rand.NewPCG(3, 4)))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, e := range stage.Enemies {
		for _, p := range stage.Platforms {
			r := p.Rect()
			if p.Bouncy() && e.Y == r.Y && e.X == r.CenterX() {
				t.Fatalf("enemy spawned on bouncy ledge: %+v", e)
			}
		}
	}
}

func TestGenerateRejectsBadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no_platforms", func(o *Options) { o.Platforms = 0 }},
		{"zero_width", func(o *Options) { o.Width = 0 }},
		{"ledge_wider_than_stage", func(o *Options) { o.PlatformWidth = 900 }},
		{"negative_enemies", func(o *Options) { o.Enemies = -1 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			opts := DefaultOptions()
			c.mutate(&opts)
			if _, err := Generate(opts, 1); !errors.Is(err, ErrBadOptions) {
				t.Fatalf("expected ErrBadOptions, got %v", err)
			}
		})
	}
}

func TestLoadEmbeddedLevel(t *testing.T) {
	stage, err := Load("training")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stage.Name != "training" || len(stage.Platforms) != 7 {
		t.Fatalf("unexpected stage %s with %d platforms", stage.Name, len(stage.Platforms))
	}
	bouncy := 0
	for _, p := range stage.Platforms {
		if p.Bouncy() {
			bouncy++
		}
	}
	if bouncy != 1 {
		t.Fatalf("expected one bouncy platform, got %d", bouncy)
	}
	if len(stage.Enemies) != 2 || stage.Enemies[0].Kind != "crawler" {
		t.Fatalf("unexpected enemies %+v", stage.Enemies)
	}

	found := false
	for _, n := range Names() {
		if n == "training" {
			found = true
		}
	}
	if !found {
		t.Fatalf("training missing from Names(): %v", Names())
	}
}

func TestLevelStageRejectsBadPlatform(t *testing.T) {
	lvl := &Level{
		Name:   "broken",
		Width:  100,
		Height: 100,
		Platforms: []PlatformEntry{
			{X: 0, Y: 90, W: 100, H: 10},
			{X: 0, Y: 0, W: -5, H: 10},
		},
	}
	if _, err := lvl.Stage(); !errors.Is(err, physics.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestFromStageRebuildsSameStage(t *testing.T) {
	stage, err := Generate(DefaultOptions(), 77)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	rebuilt, err := FromStage(stage).Stage()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if len(rebuilt.Platforms) != len(stage.Platforms) {
		t.Fatalf("platform count differs")
	}
	for i := range stage.Platforms {
		if rebuilt.Platforms[i] != stage.Platforms[i] {
			t.Fatalf("platform %d differs: %+v vs %+v", i, rebuilt.Platforms[i], stage.Platforms[i])
		}
	}
	if rebuilt.PlayerSpawn != stage.PlayerSpawn || rebuilt.Name != stage.Name {
		t.Fatalf("spawn or name lost")
	}
}

func TestGenerateLeavesHeadroomAboveFloor(t *testing.T) {
	const playerH = 60
	opts := DefaultOptions()
	for _, seed := range []uint64{0, 3, 42, 500} {
		stage, err := Generate(opts, seed)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		standing := common.Rect{X: 0, Y: stage.PlayerSpawn.Y - playerH, W: opts.Width, H: playerH}
		for i, p := range stage.Platforms[1:] {
			if standing.Intersects(p.Rect()) {
				t.Fatalf("seed %d: ledge %d %+v cuts into a player standing on the floor", seed, i, p.Rect())
			}
		}
	}
}

package system

import (
	"fmt"
	"testing"

	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
)

func addBrainEnemy(t *testing.T, w *ecs.World, brain *component.Brain, x, y float64) ecs.Entity {
	t.Helper()
	e := addActor(t, w, component.KindEnemy, component.FactionCave, x, y, 30, 50)
	mustAdd(t, w, e, component.BrainComponent.Kind(), brain)
	mustAdd(t, w, e, component.AttackComponent.Kind(), &component.Attack{ActiveFrames: 5})
	mustAdd(t, w, e, component.SpawnComponent.Kind(), &component.Spawn{X: x, Y: y})
	return e
}

func inlineScripts(scripts map[string]string) ScriptLoader {
	return func(path string) ([]byte, error) {
		src, ok := scripts[path]
		if !ok {
			return nil, fmt.Errorf("no script %s", path)
		}
		return []byte(src), nil
	}
}

func TestAIChaseScript(t *testing.T) {
	cases := []struct {
		name       string
		playerX    float64
		wantMove   float64
		wantAttack bool
	}{
		{"far_right_in_range", 400, 1, false},
		{"left_in_range", 20, -1, false},
		{"close_enough_to_swing", 230, 1, true},
		{"beyond_follow_range", 700, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addActor(t, w, component.KindPlayer, component.FactionHero, c.playerX, 490, 40, 60)
			e := addBrainEnemy(t, w, &component.Brain{ScriptPath: "chase.tengo", FollowRange: 260, AttackRange: 40}, 200, 500)

			NewAISystem().Update(w)

			intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
			atk, _ := ecs.Get(w, e, component.AttackComponent.Kind())
			if intent.MoveX != c.wantMove {
				t.Fatalf("expected move %v, got %v", c.wantMove, intent.MoveX)
			}
			if atk.Requested != c.wantAttack {
				t.Fatalf("expected attack=%v, got %v", c.wantAttack, atk.Requested)
			}
		})
	}
}

func TestAIPatrolTurnsAtWalls(t *testing.T) {
	cases := []struct {
		name     string
		contacts physics.Contacts
		want     float64
	}{
		{"keeps_facing", physics.Contacts{}, -1},
		{"wall_left", physics.Contacts{WallLeft: true}, 1},
		{"wall_right", physics.Contacts{WallRight: true}, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addBrainEnemy(t, w, &component.Brain{
				ScriptPath:  "patrol.tengo",
				AttackRange: 24,
				Params:      map[string]float64{"patrol_range": 80},
			}, 300, 300)
			contacts := c.contacts
			mustAdd(t, w, e, component.ContactsComponent.Kind(), &contacts)

			NewAISystem().Update(w)

			intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
			if intent.MoveX != c.want {
				t.Fatalf("expected move %v, got %v", c.want, intent.MoveX)
			}
		})
	}
}

func TestAIPatrolReturnsToSpawn(t *testing.T) {
	w := ecs.NewWorld()
	e := addBrainEnemy(t, w, &component.Brain{
		ScriptPath: "patrol.tengo",
		Params:     map[string]float64{"patrol_range": 80},
	}, 300, 300)
	bodyOf(t, w, e).X = 200

	NewAISystem().Update(w)

	intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
	if intent.MoveX != 1 {
		t.Fatalf("expected to head back right toward spawn, got %v", intent.MoveX)
	}
}

func TestAIScriptOutputs(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		wantMove float64
		wantJump bool
	}{
		{"params", "move = params.hint", 0.5, false},
		{"clamped", "move = 5", 1, false},
		{"jump", "jump = self.grounded == false", 0, true},
		{"compile_error", "move = ", 0, false},
		{"runtime_error", "move = 1 / 0", 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := addBrainEnemy(t, w, &component.Brain{
				ScriptPath: "test.tengo",
				Params:     map[string]float64{"hint": 0.5},
			}, 0, 0)
			intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
			intent.MoveX = -1

			NewAISystemWithLoader(inlineScripts(map[string]string{"test.tengo": c.src})).Update(w)

			if intent.MoveX != c.wantMove || intent.Jump != c.wantJump {
				t.Fatalf("expected move=%v jump=%v, got %+v", c.wantMove, c.wantJump, intent)
			}
		})
	}
}

func TestAIInvalidateRecompiles(t *testing.T) {
	scripts := map[string]string{"live.tengo": "move = -1"}
	w := ecs.NewWorld()
	e := addBrainEnemy(t, w, &component.Brain{ScriptPath: "live.tengo"}, 0, 0)
	sys := NewAISystemWithLoader(inlineScripts(scripts))
	intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())

	sys.Update(w)
	if intent.MoveX != -1 {
		t.Fatalf("expected -1, got %v", intent.MoveX)
	}

	scripts["live.tengo"] = "move = 1"
	sys.Update(w)
	if intent.MoveX != -1 {
		t.Fatalf("cached script should still run, got %v", intent.MoveX)
	}

	sys.Invalidate("prefabs/scripts/live.tengo")
	sys.Update(w)
	if intent.MoveX != 1 {
		t.Fatalf("expected recompiled script, got %v", intent.MoveX)
	}
}

func TestAIScriptsArePerEntity(t *testing.T) {
	w := ecs.NewWorld()
	src := "move = self.x > 100 ? 1 : -1"
	a := addBrainEnemy(t, w, &component.Brain{ScriptPath: "s.tengo"}, 50, 0)
	b := addBrainEnemy(t, w, &component.Brain{ScriptPath: "s.tengo"}, 150, 0)

	NewAISystemWithLoader(inlineScripts(map[string]string{"s.tengo": src})).Update(w)

	ia, _ := ecs.Get(w, a, component.IntentComponent.Kind())
	ib, _ := ecs.Get(w, b, component.IntentComponent.Kind())
	if ia.MoveX != -1 || ib.MoveX != 1 {
		t.Fatalf("expected -1 and 1, got %v and %v", ia.MoveX, ib.MoveX)
	}
}

func TestAIScriptPanicIdlesOnlyThatEnemy(t *testing.T) {
	w := ecs.NewWorld()
	src := "d := 0\nmove = self.x > 100 ? 1 : 10 / d"
	bad := addBrainEnemy(t, w, &component.Brain{ScriptPath: "div.tengo"}, 50, 0)
	good := addBrainEnemy(t, w, &component.Brain{ScriptPath: "div.tengo"}, 150, 0)
	sys := NewAISystemWithLoader(inlineScripts(map[string]string{"div.tengo": src}))

	ib, _ := ecs.Get(w, bad, component.IntentComponent.Kind())
	ig, _ := ecs.Get(w, good, component.IntentComponent.Kind())
	for frame := 0; frame < 2; frame++ {
		ib.MoveX, ib.Jump = -1, true

		sys.Update(w)

		if ib.MoveX != 0 || ib.Jump {
			t.Fatalf("frame %d: expected failing enemy to idle, got %+v", frame, ib)
		}
		if ig.MoveX != 1 {
			t.Fatalf("frame %d: expected healthy enemy to keep moving, got %v", frame, ig.MoveX)
		}
	}
}

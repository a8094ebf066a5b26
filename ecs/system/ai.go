package system

import (
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
	"github.com/milk9111/cavehop/prefabs"
)

// ScriptLoader returns the source of an AI script by path.
type ScriptLoader func(path string) ([]byte, error)

// AISystem writes enemy intents from tengo scripts. Scripts are compiled
// once per path and cloned per entity so script globals never leak between
// enemies. A failing script leaves its enemy idle.
type AISystem struct {
	load     ScriptLoader
	compiled map[string]*tengo.Compiled
	runtimes map[ecs.Entity]*aiScriptRuntime
	failed   map[ecs.Entity]string
}

func NewAISystem() *AISystem {
	return NewAISystemWithLoader(prefabs.LoadScript)
}

func NewAISystemWithLoader(load ScriptLoader) *AISystem {
	return &AISystem{
		load:     load,
		compiled: map[string]*tengo.Compiled{},
		runtimes: map[ecs.Entity]*aiScriptRuntime{},
		failed:   map[ecs.Entity]string{},
	}
}

// Invalidate drops the cached script at path so the next frame recompiles
// it. An empty path drops every script.
func (a *AISystem) Invalidate(path string) {
	path = cleanScriptKey(path)
	for key := range a.compiled {
		if path == "" || sameScript(key, path) {
			delete(a.compiled, key)
		}
	}
	for e, rt := range a.runtimes {
		if path == "" || sameScript(rt.scriptPath, path) {
			delete(a.runtimes, e)
			delete(a.failed, e)
		}
	}
	for e, p := range a.failed {
		if path == "" || sameScript(p, path) {
			delete(a.failed, e)
		}
	}
}

func (a *AISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player := playerView(w)

	entities := w.Query(
		component.BrainComponent.Kind(),
		component.ActorComponent.Kind(),
		component.IntentComponent.Kind(),
		component.BodyComponent.Kind(),
	)
	for _, e := range entities {
		brain, _ := ecs.Get(w, e, component.BrainComponent.Kind())
		actor, _ := ecs.Get(w, e, component.ActorComponent.Kind())
		intent, _ := ecs.Get(w, e, component.IntentComponent.Kind())
		body, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		rt, err := a.runtime(e, brain.ScriptPath)
		if err != nil {
			a.fail(e, brain.ScriptPath, err)
			*intent = physics.Intent{}
			continue
		}

		out, err := rt.run(selfView(w, e, actor, body), relativeTo(player, body), paramsView(brain))
		if err != nil {
			a.fail(e, brain.ScriptPath, err)
			*intent = physics.Intent{}
			continue
		}
		delete(a.failed, e)

		move := out.Move
		if math.IsNaN(move) || math.IsInf(move, 0) {
			move = 0
		}
		intent.MoveX = cp.Clamp(move, -1, 1)
		intent.Jump = out.Jump
		intent.Dash = false

		if out.Attack {
			if atk, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
				atk.Requested = true
			}
		}
	}

	for e := range a.runtimes {
		if !w.IsAlive(e) {
			delete(a.runtimes, e)
			delete(a.failed, e)
		}
	}
}

func (a *AISystem) runtime(e ecs.Entity, path string) (*aiScriptRuntime, error) {
	path = cleanScriptKey(path)
	if rt, ok := a.runtimes[e]; ok && rt.scriptPath == path {
		return rt, nil
	}

	base, ok := a.compiled[path]
	if !ok {
		src, err := a.load(path)
		if err != nil {
			return nil, err
		}
		base, err = compileAIScript(path, src)
		if err != nil {
			return nil, err
		}
		a.compiled[path] = base
	}

	rt := &aiScriptRuntime{scriptPath: path, compiled: base.Clone()}
	a.runtimes[e] = rt
	return rt, nil
}

// fail logs the first error of a broken script per entity.
func (a *AISystem) fail(e ecs.Entity, path string, err error) {
	if prev, ok := a.failed[e]; ok && prev == path {
		return
	}
	a.failed[e] = path
	log.Printf("ai: entity=%v script %s error: %v", e, path, err)
}

type playerInfo struct {
	alive bool
	x, y  float64
}

func playerView(w *ecs.World) playerInfo {
	e, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return playerInfo{}
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return playerInfo{}
	}
	if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.Dead() {
		return playerInfo{}
	}
	r := body.Rect()
	return playerInfo{alive: true, x: r.CenterX(), y: r.CenterY()}
}

func relativeTo(p playerInfo, body *physics.Body) map[string]any {
	if !p.alive {
		return map[string]any{"alive": false, "x": 0.0, "y": 0.0, "dx": 0.0, "dy": 0.0, "dist": math.MaxFloat64}
	}
	r := body.Rect()
	dx := p.x - r.CenterX()
	dy := p.y - r.CenterY()
	return map[string]any{
		"alive": true,
		"x":     p.x,
		"y":     p.y,
		"dx":    dx,
		"dy":    dy,
		"dist":  math.Hypot(dx, dy),
	}
}

func selfView(w *ecs.World, e ecs.Entity, actor *component.Actor, body *physics.Body) map[string]any {
	var contacts physics.Contacts
	if c, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
		contacts = *c
	}
	spawnX, spawnY := body.X, body.Y
	if s, ok := ecs.Get(w, e, component.SpawnComponent.Kind()); ok {
		spawnX, spawnY = s.X, s.Y
	}
	return map[string]any{
		"x":          body.X,
		"y":          body.Y,
		"vx":         body.VX,
		"vy":         body.VY,
		"grounded":   body.Grounded,
		"facing":     actor.Facing,
		"wall_left":  contacts.WallLeft,
		"wall_right": contacts.WallRight,
		"spawn_x":    spawnX,
		"spawn_y":    spawnY,
	}
}

func paramsView(brain *component.Brain) map[string]any {
	params := make(map[string]any, len(brain.Params)+2)
	for k, v := range brain.Params {
		params[k] = v
	}
	params["follow_range"] = brain.FollowRange
	params["attack_range"] = brain.AttackRange
	return params
}

func sameScript(a, b string) bool {
	return prefabs.ScriptName(a) == prefabs.ScriptName(b)
}

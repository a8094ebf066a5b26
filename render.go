package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cavehop/common"
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/component"
	"github.com/milk9111/cavehop/physics"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.RGBA{R: 0x14, G: 0x12, B: 0x1c, A: 0xff}
	hitboxColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}
)

func fillRect(dst *ebiten.Image, r common.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(dst *ebiten.Image, r common.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, clr, false)
}

// drawWorld draws the stage and every body as flat rectangles.
func drawWorld(screen *ebiten.Image, w *ecs.World, debug bool) {
	screen.Fill(backgroundColor)
	if w == nil {
		return
	}

	if e, ok := w.First(component.StageComponent.Kind()); ok {
		stage, _ := ecs.Get(w, e, component.StageComponent.Kind())
		for _, p := range stage.Platforms {
			clr := colornames.Saddlebrown
			if p.Bouncy() {
				clr = colornames.Lime
			}
			fillRect(screen, p.Rect(), clr)
		}
	}

	ecs.ForEach2(w, component.BodyComponent.Kind(), component.AppearanceComponent.Kind(), func(e ecs.Entity, body *physics.Body, look *component.Appearance) {
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.IFrames > 0 && (h.IFrames/4)%2 == 0 {
			return
		}
		fillRect(screen, body.Rect(), look.Color)
		drawSwing(screen, w, e, body)
		if debug {
			drawBodyDebug(screen, w, e, body)
		}
	})
}

func drawSwing(screen *ebiten.Image, w *ecs.World, e ecs.Entity, body *physics.Body) {
	atk, ok := ecs.Get(w, e, component.AttackComponent.Kind())
	if !ok || !atk.Active() {
		return
	}
	actor, ok := ecs.Get(w, e, component.ActorComponent.Kind())
	if !ok {
		return
	}
	box, ok := physics.Hitbox(body.Rect(), physics.Attack{Facing: actor.Facing, Reach: atk.Reach, Height: atk.Height, Active: true})
	if ok {
		fillRect(screen, box, hitboxColor)
	}
}

func drawBodyDebug(screen *ebiten.Image, w *ecs.World, e ecs.Entity, body *physics.Body) {
	r := body.Rect()
	strokeRect(screen, r, colornames.Yellow)

	c, ok := ecs.Get(w, e, component.ContactsComponent.Kind())
	if !ok {
		return
	}
	flags := ""
	for _, f := range []struct {
		on   bool
		name string
	}{
		{body.Grounded, "G"},
		{c.WallLeft, "L"},
		{c.WallRight, "R"},
		{c.Bounced, "B"},
		{c.HeadBump, "H"},
		{c.Clamped, "C"},
		{c.Sanitized, "!"},
	} {
		if f.on {
			flags += f.name
		}
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%v %s", e, flags), int(r.X), int(r.Y)-16)
}

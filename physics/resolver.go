package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cavehop/common"
)

// Contacts reports what happened to a body during one Step.
type Contacts struct {
	WallLeft  bool
	WallRight bool
	// Landed is set when the body came to rest on a solid platform.
	Landed bool
	// Bounced is set when a bouncy platform launched the body.
	Bounced  bool
	HeadBump bool
	// Clamped is set when the soft world bounds moved the body.
	Clamped bool
	// Sanitized is set when non-finite state was repaired.
	Sanitized bool
}

// Blocked reports whether horizontal movement was stopped by a platform.
func (c Contacts) Blocked() bool {
	return c.WallLeft || c.WallRight
}

// Resolver integrates intent and gravity into a body and pushes it out of the
// platforms it overlaps, one axis at a time. It keeps no per-body state.
type Resolver struct {
	cfg Config
}

func NewResolver(cfg Config) *Resolver {
	if cfg.Bounds.R <= cfg.Bounds.L || cfg.Bounds.T <= cfg.Bounds.B {
		cfg.Bounds = unbounded()
	}
	return &Resolver{cfg: cfg}
}

func (r *Resolver) Config() Config {
	return r.cfg
}

// Step advances body by one frame. The order of the passes matters: intent,
// jump, gravity, X move and resolve, Y move and resolve, bounds clamp.
// Overlaps are resolved in platform list order and the last one wins.
func (r *Resolver) Step(body *Body, in Intent, gravity float64, platforms []Platform) Contacts {
	var c Contacts
	if r == nil || body == nil {
		return c
	}

	lastX, lastY := body.X, body.Y
	if r.sanitize(body, lastX, lastY) {
		c.Sanitized = true
		lastX, lastY = body.X, body.Y
	}

	if !common.Finite(in.MoveX) {
		if r.cfg.Strict {
			panic(fmt.Errorf("%w: move intent %g", ErrNonFinite, in.MoveX))
		}
		in.MoveX = 0
		c.Sanitized = true
	}
	r.applyRunIntent(body, in)

	if in.Jump && body.Grounded {
		body.VY = -r.cfg.JumpSpeed
		body.Grounded = false
	}

	body.VY += gravity

	r.moveX(body, platforms, &c)
	r.moveY(body, platforms, &c)
	r.clampBounds(body, &c)

	if r.sanitize(body, lastX, lastY) {
		c.Sanitized = true
	}
	return c
}

func (r *Resolver) applyRunIntent(body *Body, in Intent) {
	limit := r.cfg.MaxRun
	if in.Dash && r.cfg.DashSpeed > limit {
		limit = r.cfg.DashSpeed
	}

	target := cp.Clamp(in.MoveX, -1, 1) * limit
	if r.cfg.RunAccel > 0 {
		body.VX = common.Approach(body.VX, target, r.cfg.RunAccel)
	} else {
		body.VX = target
	}
	body.VX = cp.Clamp(body.VX, -limit, limit)
}

func (r *Resolver) moveX(body *Body, platforms []Platform, c *Contacts) {
	body.X += body.VX

	dir := common.Sign(body.VX)
	if dir == 0 {
		return
	}

	for _, p := range platforms {
		if !body.Rect().Intersects(p.rect) {
			continue
		}
		if dir > 0 {
			body.X = p.rect.X - body.w
			c.WallRight, c.WallLeft = true, false
		} else {
			body.X = p.rect.X + p.rect.W
			c.WallLeft, c.WallRight = true, false
		}
		body.VX = 0
	}
}

func (r *Resolver) moveY(body *Body, platforms []Platform, c *Contacts) {
	body.Y += body.VY
	body.Grounded = false

	// Direction is fixed for the whole pass: a bounce flips VY but the body
	// still arrived from above.
	falling := body.VY >= 0

	for _, p := range platforms {
		if !body.Rect().Intersects(p.rect) {
			continue
		}
		if !falling {
			body.Y = p.rect.Y + p.rect.H
			body.VY = 0
			c.HeadBump = true
			continue
		}

		body.Y = p.rect.Y - body.h
		if p.bouncy {
			body.VY = -p.bounce
			body.Grounded = false
			c.Bounced, c.Landed = true, false
		} else {
			body.VY = 0
			body.Grounded = true
			c.Landed, c.Bounced = true, false
		}
	}
}

func (r *Resolver) clampBounds(body *Body, c *Contacts) {
	if !common.Finite(body.X, body.Y) {
		return
	}
	pos := cp.Vector{X: body.X, Y: body.Y}
	clamped := r.cfg.Bounds.ClampVect(&pos)
	if clamped.X != body.X || clamped.Y != body.Y {
		body.X, body.Y = clamped.X, clamped.Y
		c.Clamped = true
	}
}

// sanitize repairs non-finite state, or panics in strict mode. Position falls
// back to (fallbackX, fallbackY) when those are finite, otherwise to the
// bounds origin.
func (r *Resolver) sanitize(body *Body, fallbackX, fallbackY float64) bool {
	if common.Finite(body.X, body.Y, body.VX, body.VY) {
		return false
	}
	if r.cfg.Strict {
		panic(fmt.Errorf("%w: body at (%g, %g) moving (%g, %g)", ErrNonFinite, body.X, body.Y, body.VX, body.VY))
	}

	if !common.Finite(body.VX) {
		body.VX = 0
	}
	if !common.Finite(body.VY) {
		body.VY = 0
	}

	origin := r.cfg.Bounds.ClampVect(&cp.Vector{})
	if !common.Finite(body.X) {
		body.X = origin.X
		if common.Finite(fallbackX) {
			body.X = fallbackX
		}
	}
	if !common.Finite(body.Y) {
		body.Y = origin.Y
		if common.Finite(fallbackY) {
			body.Y = fallbackY
		}
	}
	body.Grounded = false
	return true
}

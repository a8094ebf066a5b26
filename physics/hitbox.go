package physics

import "github.com/milk9111/cavehop/common"

// HitboxOverlap pulls a left-facing hitbox back into the attacker so a target
// pressed against the attacker's left edge is still reached.
const HitboxOverlap = 4.0

// Attack describes an attacker's swing for one frame.
type Attack struct {
	// Facing is +1 for right and -1 for left. 0 is treated as right.
	Facing int
	Reach  float64
	Height float64
	Active bool
}

// Hitbox returns the area covered by the swing, vertically centred on the
// owner and placed against its leading edge. ok is false when the attack is
// not active.
func Hitbox(owner common.Rect, atk Attack) (box common.Rect, ok bool) {
	if !atk.Active || atk.Reach <= 0 || atk.Height <= 0 {
		return common.Rect{}, false
	}

	box = common.Rect{
		Y: owner.Y + (owner.H-atk.Height)/2,
		W: atk.Reach,
		H: atk.Height,
	}
	if atk.Facing < 0 {
		box.X = owner.X - atk.Reach + HitboxOverlap
	} else {
		box.X = owner.X + owner.W
	}
	return box, true
}

// Overlaps is the half-open AABB test used for hitboxes and platforms alike.
func Overlaps(hitbox, target common.Rect) bool {
	return hitbox.Intersects(target)
}

package physics

import (
	"errors"
	"math"
	"testing"
)

func mustBody(t *testing.T, x, y, w, h float64) *Body {
	t.Helper()
	b, err := NewBody(x, y, w, h)
	if err != nil {
		t.Fatalf("NewBody(%g, %g, %g, %g): %v", x, y, w, h, err)
	}
	return b
}

func mustPlatform(t *testing.T, x, y, w, h float64) Platform {
	t.Helper()
	p, err := NewPlatform(x, y, w, h)
	if err != nil {
		t.Fatalf("NewPlatform(%g, %g, %g, %g): %v", x, y, w, h, err)
	}
	return p
}

func mustBouncy(t *testing.T, x, y, w, h, bounce float64) Platform {
	t.Helper()
	p, err := NewBouncyPlatform(x, y, w, h, bounce)
	if err != nil {
		t.Fatalf("NewBouncyPlatform: %v", err)
	}
	return p
}

func TestNewBodyValidation(t *testing.T) {
	cases := []struct {
		name       string
		x, y, w, h float64
		want       error
	}{
		{"ok", 10, 20, 40, 60, nil},
		{"zero_width", 0, 0, 0, 10, ErrInvalidSize},
		{"negative_height", 0, 0, 10, -1, ErrInvalidSize},
		{"nan_width", 0, 0, math.NaN(), 10, ErrInvalidSize},
		{"inf_height", 0, 0, 10, math.Inf(1), ErrInvalidSize},
		{"nan_x", math.NaN(), 0, 10, 10, ErrNonFinite},
		{"inf_y", 0, math.Inf(-1), 10, 10, ErrNonFinite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := NewBody(c.x, c.y, c.w, c.h)
			if c.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				r := b.Rect()
				if r.X != c.x || r.Y != c.y || r.W != c.w || r.H != c.h {
					t.Fatalf("Rect() = %+v", r)
				}
				if b.Grounded || b.VX != 0 || b.VY != 0 {
					t.Fatalf("new body should be at rest and airborne: %+v", b)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
			if b != nil {
				t.Fatalf("expected nil body on error")
			}
		})
	}
}

func TestNewPlatformValidation(t *testing.T) {
	cases := []struct {
		name  string
		build func() (Platform, error)
		want  error
	}{
		{"solid", func() (Platform, error) { return NewPlatform(0, 0, 100, 20) }, nil},
		{"zero_size", func() (Platform, error) { return NewPlatform(0, 0, 0, 20) }, ErrInvalidSize},
		{"bouncy_bad_size", func() (Platform, error) { return NewBouncyPlatform(0, 0, 100, -20, 15) }, ErrInvalidSize},
		{"bouncy_nan_bounce", func() (Platform, error) { return NewBouncyPlatform(0, 0, 100, 20, math.NaN()) }, ErrNonFinite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.build()
			if c.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestBouncyPlatformVelocity(t *testing.T) {
	cases := []struct {
		name   string
		bounce float64
		want   float64
	}{
		{"magnitude", 18, 18},
		{"negative_is_magnitude", -18, 18},
		{"zero_uses_default", 0, DefaultBounceVelocity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := mustBouncy(t, 0, 0, 100, 20, c.bounce)
			if !p.Bouncy() || p.BounceVelocity() != c.want {
				t.Fatalf("bouncy=%v bounce=%g, want true %g", p.Bouncy(), p.BounceVelocity(), c.want)
			}
		})
	}

	solid := mustPlatform(t, 0, 0, 100, 20)
	if solid.Bouncy() || solid.BounceVelocity() != 0 {
		t.Fatalf("solid platform reports bounce: %+v", solid)
	}
}

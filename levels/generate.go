package levels

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/cavehop/physics"
)

// pcgStream is the fixed second PCG word; the seed alone picks the stage.
const pcgStream = 0x9e3779b97f4a7c15

var ErrBadOptions = errors.New("levels: invalid generator options")

// Point is a spawn anchor: X is the horizontal centre, Y the floor line the
// entity stands on.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Spawn struct {
	Kind string `json:"kind"`
	Point
}

// Stage is a ready-to-simulate level. Platform order is the order the
// resolver sees them in.
type Stage struct {
	Name        string
	Seed        uint64
	Width       float64
	Height      float64
	Platforms   []physics.Platform
	PlayerSpawn Point
	Enemies     []Spawn
}

// Options shape a generated cave.
type Options struct {
	Width  float64
	Height float64
	// Platforms is the number of floating ledges, one of which is bouncy.
	Platforms      int
	PlatformWidth  float64
	PlatformHeight float64
	// FirstRow is the y of the top ledge; RowGap separates the ledges.
	FirstRow       float64
	RowGap         float64
	FloorHeight    float64
	BounceVelocity float64
	Enemies        int
	EnemyKinds     []string
}

func DefaultOptions() Options {
	return Options{
		Width:          800,
		Height:         600,
		Platforms:      7,
		PlatformWidth:  100,
		PlatformHeight: 20,
		FirstRow:       100,
		RowGap:         60,
		FloorHeight:    20,
		BounceVelocity: physics.DefaultBounceVelocity,
		Enemies:        2,
	}
}

func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: stage size %vx%v", ErrBadOptions, o.Width, o.Height)
	case o.Platforms < 1:
		return fmt.Errorf("%w: need at least one platform, got %d", ErrBadOptions, o.Platforms)
	case o.PlatformWidth <= 0 || o.PlatformWidth > o.Width:
		return fmt.Errorf("%w: platform width %v", ErrBadOptions, o.PlatformWidth)
	case o.Enemies < 0:
		return fmt.Errorf("%w: enemies %d", ErrBadOptions, o.Enemies)
	}
	return nil
}

// Generate builds a cave from seed. The same options and seed always give
// the same stage.
func Generate(opts Options, seed uint64) (*Stage, error) {
	stage, err := GenerateWith(opts, rand.New(rand.NewPCG(seed, pcgStream)))
	if err != nil {
		return nil, err
	}
	stage.Seed = seed
	stage.Name = fmt.Sprintf("cave-%d", seed)
	return stage, nil
}

// GenerateWith builds a cave drawing every random choice from rng.
func GenerateWith(opts Options, rng *rand.Rand) (*Stage, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	floorY := opts.Height - opts.FloorHeight
	floor, err := physics.NewPlatform(0, floorY, opts.Width, opts.FloorHeight)
	if err != nil {
		return nil, fmt.Errorf("levels: floor: %w", err)
	}

	stage := &Stage{
		Width:       opts.Width,
		Height:      opts.Height,
		Platforms:   make([]physics.Platform, 0, opts.Platforms+1),
		PlayerSpawn: Point{X: opts.Width / 2, Y: floorY},
	}
	stage.Platforms = append(stage.Platforms, floor)

	bouncy := rng.IntN(opts.Platforms)
	ledges := make([]int, 0, opts.Platforms)
	for i := 0; i < opts.Platforms; i++ {
		x := rng.Float64() * (opts.Width - opts.PlatformWidth)
		y := opts.FirstRow + float64(i)*opts.RowGap

		var p physics.Platform
		if i == bouncy {
			p, err = physics.NewBouncyPlatform(x, y, opts.PlatformWidth, opts.PlatformHeight, opts.BounceVelocity)
		} else {
			p, err = physics.NewPlatform(x, y, opts.PlatformWidth, opts.PlatformHeight)
			ledges = append(ledges, len(stage.Platforms))
		}
		if err != nil {
			return nil, fmt.Errorf("levels: platform %d: %w", i, err)
		}
		stage.Platforms = append(stage.Platforms, p)
	}

	for i := 0; i < opts.Enemies; i++ {
		kind := ""
		if len(opts.EnemyKinds) > 0 {
			kind = opts.EnemyKinds[rng.IntN(len(opts.EnemyKinds))]
		}
		// With no solid ledge left, enemies start on the floor.
		r := floor.Rect()
		if len(ledges) > 0 {
			r = stage.Platforms[ledges[rng.IntN(len(ledges))]].Rect()
		}
		stage.Enemies = append(stage.Enemies, Spawn{
			Kind:  kind,
			Point: Point{X: r.CenterX(), Y: r.Y},
		})
	}

	return stage, nil
}

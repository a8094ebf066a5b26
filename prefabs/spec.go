package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/cavehop/physics"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec is the stage-wide tuning in world.yaml.
type WorldSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
	// BoundsMargin is how far outside the stage a body may drift before the
	// resolver clamps it.
	BoundsMargin float64 `yaml:"bounds_margin"`
	// KillMargin is the depth below the stage at which bodies are removed.
	// It must be smaller than BoundsMargin or nothing ever falls out.
	KillMargin     float64 `yaml:"kill_margin"`
	Strict         bool    `yaml:"strict"`
	Platforms      int     `yaml:"platforms"`
	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`
	FloorHeight    float64 `yaml:"floor_height"`
	FirstRow       float64 `yaml:"first_row"`
	RowGap         float64 `yaml:"row_gap"`
	BounceVelocity float64 `yaml:"bounce_velocity"`
	Enemies        int     `yaml:"enemies"`
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *WorldSpec) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidSpec, s.Width, s.Height)
	case s.BoundsMargin < 0 || s.KillMargin < 0:
		return fmt.Errorf("%w: negative margins", ErrInvalidSpec)
	case s.BoundsMargin > 0 && s.KillMargin >= s.BoundsMargin:
		return fmt.Errorf("%w: kill_margin %v must be below bounds_margin %v", ErrInvalidSpec, s.KillMargin, s.BoundsMargin)
	}
	return nil
}

// Bounds is the soft world box handed to every resolver. A zero margin
// disables clamping.
func (s *WorldSpec) Bounds() cp.BB {
	if s.BoundsMargin == 0 {
		return cp.BB{}
	}
	return physics.SoftBounds(s.Width, s.Height, s.BoundsMargin)
}

func (s *WorldSpec) KillY() float64 {
	return s.Height + s.KillMargin
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type MovementSpec struct {
	RunSpeed  float64 `yaml:"run_speed"`
	RunAccel  float64 `yaml:"run_accel"`
	JumpSpeed float64 `yaml:"jump_speed"`
	// GravityScale multiplies the world gravity; 0 means 1.
	GravityScale float64 `yaml:"gravity_scale"`
}

type DashSpec struct {
	Speed          float64 `yaml:"speed"`
	DurationFrames int     `yaml:"duration_frames"`
	CooldownFrames int     `yaml:"cooldown_frames"`
}

type AttackSpec struct {
	Reach          float64 `yaml:"reach"`
	Height         float64 `yaml:"height"`
	Damage         int     `yaml:"damage"`
	ActiveFrames   int     `yaml:"active_frames"`
	CooldownFrames int     `yaml:"cooldown_frames"`
}

type HealthSpec struct {
	Max                int `yaml:"max"`
	InvulnerableFrames int `yaml:"invulnerable_frames"`
}

// ResolverConfig turns movement and dash tuning into a physics config.
func ResolverConfig(m MovementSpec, d DashSpec, world *WorldSpec) physics.Config {
	cfg := physics.Config{
		MaxRun:    m.RunSpeed,
		RunAccel:  m.RunAccel,
		JumpSpeed: m.JumpSpeed,
		DashSpeed: d.Speed,
	}
	if world != nil {
		cfg.Bounds = world.Bounds()
		cfg.Strict = world.Strict
	}
	return cfg
}

type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Color    YAMLColor    `yaml:"color"`
	Collider ColliderSpec `yaml:"collider"`
	Movement MovementSpec `yaml:"movement"`
	Dash     DashSpec     `yaml:"dash"`
	Attack   AttackSpec   `yaml:"attack"`
	Health   HealthSpec   `yaml:"health"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Collider.validate("player"); err != nil {
		return nil, err
	}
	return &spec, nil
}

type EnemySpec struct {
	Name        string             `yaml:"name"`
	Color       YAMLColor          `yaml:"color"`
	Collider    ColliderSpec       `yaml:"collider"`
	Movement    MovementSpec       `yaml:"movement"`
	Attack      AttackSpec         `yaml:"attack"`
	Health      HealthSpec         `yaml:"health"`
	Script      string             `yaml:"script"`
	FollowRange float64            `yaml:"follow_range"`
	AttackRange float64            `yaml:"attack_range"`
	Params      map[string]float64 `yaml:"params"`
}

// EnemiesSpec is enemy.yaml: every enemy kind keyed by name.
type EnemiesSpec struct {
	Enemies map[string]EnemySpec `yaml:"enemies"`
}

func LoadEnemySpecs() (*EnemiesSpec, error) {
	spec, err := LoadSpec[EnemiesSpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Enemies) == 0 {
		return nil, fmt.Errorf("%w: enemy.yaml defines no enemies", ErrInvalidSpec)
	}
	for name, e := range spec.Enemies {
		if err := e.Collider.validate(name); err != nil {
			return nil, err
		}
		if strings.TrimSpace(e.Script) == "" {
			return nil, fmt.Errorf("%w: enemy %s has no script", ErrInvalidSpec, name)
		}
		if e.Name == "" {
			e.Name = name
			spec.Enemies[name] = e
		}
	}
	return &spec, nil
}

// Kinds returns the enemy names in a stable order.
func (s *EnemiesSpec) Kinds() []string {
	kinds := make([]string, 0, len(s.Enemies))
	for name := range s.Enemies {
		kinds = append(kinds, name)
	}
	slices.Sort(kinds)
	return kinds
}

func (c ColliderSpec) validate(owner string) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %s collider %vx%v", ErrInvalidSpec, owner, c.Width, c.Height)
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i*2 < len(s); i++ {
		v, err := parse(i * 2)
		if err != nil {
			return err
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}

// Or returns the parsed colour, or fallback when none was given.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

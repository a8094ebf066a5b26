package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/cavehop/physics"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is the on-disk form of a hand-made stage.
type Level struct {
	Name        string          `json:"name"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	PlayerSpawn Point           `json:"player_spawn"`
	Platforms   []PlatformEntry `json:"platforms"`
	Enemies     []Spawn         `json:"enemies,omitempty"`
}

type PlatformEntry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Bouncy bool    `json:"bouncy,omitempty"`
	Bounce float64 `json:"bounce,omitempty"`
}

// Names lists the embedded levels without their extension.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}

func LoadLevelFromFS(name string) (*Level, error) {
	if path.Ext(name) == "" {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	return &lvl, nil
}

// Load reads an embedded level and builds its stage. Platforms go through the
// physics constructors, so a bad rectangle fails here and never reaches the
// resolver.
func Load(name string) (*Stage, error) {
	lvl, err := LoadLevelFromFS(name)
	if err != nil {
		return nil, err
	}
	return lvl.Stage()
}

func (l *Level) Stage() (*Stage, error) {
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("level %s: invalid size %vx%v", l.Name, l.Width, l.Height)
	}

	stage := &Stage{
		Name:        l.Name,
		Width:       l.Width,
		Height:      l.Height,
		PlayerSpawn: l.PlayerSpawn,
		Enemies:     append([]Spawn(nil), l.Enemies...),
		Platforms:   make([]physics.Platform, 0, len(l.Platforms)),
	}
	for i, p := range l.Platforms {
		var (
			plat physics.Platform
			err  error
		)
		if p.Bouncy {
			plat, err = physics.NewBouncyPlatform(p.X, p.Y, p.W, p.H, p.Bounce)
		} else {
			plat, err = physics.NewPlatform(p.X, p.Y, p.W, p.H)
		}
		if err != nil {
			return nil, fmt.Errorf("level %s: platform %d: %w", l.Name, i, err)
		}
		stage.Platforms = append(stage.Platforms, plat)
	}
	return stage, nil
}

// FromStage converts a stage back to its JSON form, for baking generated
// caves into hand-editable levels.
func FromStage(s *Stage) *Level {
	lvl := &Level{
		Name:        s.Name,
		Width:       s.Width,
		Height:      s.Height,
		PlayerSpawn: s.PlayerSpawn,
		Enemies:     append([]Spawn(nil), s.Enemies...),
		Platforms:   make([]PlatformEntry, 0, len(s.Platforms)),
	}
	for _, p := range s.Platforms {
		r := p.Rect()
		entry := PlatformEntry{X: r.X, Y: r.Y, W: r.W, H: r.H}
		if p.Bouncy() {
			entry.Bouncy = true
			entry.Bounce = p.BounceVelocity()
		}
		lvl.Platforms = append(lvl.Platforms, entry)
	}
	return lvl
}

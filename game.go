package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/cavehop/common"
	"github.com/milk9111/cavehop/ecs"
	"github.com/milk9111/cavehop/ecs/entity"
	"github.com/milk9111/cavehop/ecs/system"
	"github.com/milk9111/cavehop/levels"
	"github.com/milk9111/cavehop/prefabs"
	"golang.design/x/clipboard"
)

const statusFrames = 120

type GameOptions struct {
	LevelName string
	Seed      uint64
	Debug     bool
	Watch     bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	ai        *system.AISystem
	eventLog  *system.EventLogSystem
	specs     *entity.Specs

	levelName string
	seed      uint64
	debug     bool

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI

	watcher     *prefabs.Watcher
	clipboardOK bool

	status       string
	statusFrames int
}

func NewGame(opts GameOptions) (*Game, error) {
	specs, err := entity.LoadSpecs()
	if err != nil {
		return nil, err
	}

	g := &Game{
		specs:     specs,
		levelName: opts.LevelName,
		seed:      opts.Seed,
		debug:     opts.Debug,
		ai:        system.NewAISystem(),
		eventLog:  system.NewEventLogSystem(opts.Debug),
	}
	if g.seed == 0 {
		g.seed = rand.Uint64()
	}

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(NewInput()),
		g.ai,
		system.NewControllerSystem(),
		system.NewPhysicsSystem(),
		system.NewCombatSystem(),
		g.eventLog,
	)

	if err := g.loadStage(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("prefabs: watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	return g, nil
}

// loadStage throws away the current world and builds a fresh one from the
// named level or, without one, from the current seed.
func (g *Game) loadStage() error {
	var (
		stage *levels.Stage
		err   error
	)
	if g.levelName != "" {
		stage, err = levels.Load(g.levelName)
	} else {
		stage, err = levels.Generate(entity.GeneratorOptions(g.specs), g.seed)
	}
	if err != nil {
		return fmt.Errorf("load stage: %w", err)
	}

	world := ecs.NewWorld()
	if _, err := entity.BuildStage(world, stage, g.specs); err != nil {
		return fmt.Errorf("build stage %s: %w", stage.Name, err)
	}
	g.world = world
	g.ai.Invalidate("")
	return nil
}

// regenerate switches to a freshly seeded cave.
func (g *Game) regenerate() {
	g.levelName = ""
	g.seed = rand.Uint64()
	if err := g.loadStage(); err != nil {
		log.Printf("regenerate: %v", err)
		return
	}
	g.paused = false
	g.setStatus("cave " + strconv.FormatUint(g.seed, 10))
}

func (g *Game) copySeed() {
	seed := strconv.FormatUint(g.seed, 10)
	if !g.clipboardOK {
		g.setStatus("seed " + seed)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(seed))
	g.setStatus("seed " + seed + " copied")
}

func (g *Game) setStatus(s string) {
	g.status = s
	g.statusFrames = statusFrames
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copySeed()
	}
	if g.statusFrames > 0 {
		g.statusFrames--
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(change prefabs.Change) {
	if change.Script {
		g.ai.Invalidate(change.Name)
		log.Printf("prefabs: reloaded %s", change.Name)
		return
	}

	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Printf("prefabs: reload %s: %v", change.Name, err)
		return
	}
	if err := entity.ApplySpecs(g.world, specs); err != nil {
		log.Printf("prefabs: apply %s: %v", change.Name, err)
		return
	}
	g.specs = specs
	log.Printf("prefabs: reloaded %s", change.Name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.debug)

	if g.debug {
		ebitenutil.DebugPrint(screen, g.debugText())
	}
	if g.statusFrames > 0 {
		ebitenutil.DebugPrintAt(screen, g.status, 8, common.BaseHeight-20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) debugText() string {
	return fmt.Sprintf("FPS: %.1f  frame: %d  seed: %d  entities: %d\nlanded: %d  bounced: %d  hits: %d  deaths: %d",
		ebiten.ActualFPS(),
		g.world.Frame(),
		g.seed,
		len(g.world.Entities()),
		g.eventLog.Count(ecs.EventLanded),
		g.eventLog.Count(ecs.EventBounced),
		g.eventLog.Count(ecs.EventHit),
		g.eventLog.Count(ecs.EventDeath),
	)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	err := g.watcher.Close()
	g.watcher = nil
	return err
}

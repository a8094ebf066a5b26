package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cavehop/common"
)

func main() {
	debug := flag.Bool("debug", false, "draw hitboxes, contacts and event counts")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "embedded level name in levels/ (.json optional); empty generates a cave")
	seed := flag.Uint64("seed", 0, "cave generator seed; 0 picks one at random")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml and prefabs/scripts/*.tengo on change")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("cavehop")

	game, err := NewGame(GameOptions{
		LevelName: *levelName,
		Seed:      *seed,
		Debug:     *debug,
		Watch:     *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// Command cavegen bakes a generated cave into a level JSON file that can be
// hand-edited and embedded under levels/.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/milk9111/cavehop/ecs/entity"
	"github.com/milk9111/cavehop/levels"
)

func main() {
	seed := flag.Uint64("seed", 1, "generator seed")
	name := flag.String("name", "", "level name (default cave-<seed>)")
	out := flag.String("out", "", "output file (default levels/<name>.json, - for stdout)")
	flag.Parse()

	specs, err := entity.LoadSpecs()
	if err != nil {
		log.Fatal(err)
	}
	stage, err := levels.Generate(entity.GeneratorOptions(specs), *seed)
	if err != nil {
		log.Fatal(err)
	}

	lvl := levels.FromStage(stage)
	if *name != "" {
		lvl.Name = *name
	}

	if err := save(lvl, *out); err != nil {
		log.Fatal(err)
	}
}

func save(lvl *levels.Level, filename string) error {
	if filename == "-" {
		return encode(os.Stdout, lvl)
	}
	if filename == "" {
		filename = filepath.Join("levels", lvl.Name+".json")
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode(f, lvl); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	log.Printf("cavegen: wrote %s (%d platforms, %d enemies)", filename, len(lvl.Platforms), len(lvl.Enemies))
	return nil
}

func encode(f *os.File, lvl *levels.Level) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(lvl)
}

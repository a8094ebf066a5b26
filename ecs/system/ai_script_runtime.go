package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Scripts read the globals self, player and params and write move, jump and
// attack. Every run starts with the outputs reset.
var aiScriptInputs = []string{"self", "player", "params"}

type aiScriptOutput struct {
	Move   float64
	Jump   bool
	Attack bool
}

type aiScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
}

func compileAIScript(path string, src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	for _, name := range aiScriptInputs {
		_ = script.Add(name, map[string]any{})
	}
	_ = script.Add("move", 0.0)
	_ = script.Add("jump", false)
	_ = script.Add("attack", false)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	script.SetMaxAllocs(4096)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return compiled, nil
}

// run executes one frame of the script. A panic inside the VM (integer
// division by zero, bad operand types) is returned as an error.
func (rt *aiScriptRuntime) run(self, player, params map[string]any) (out aiScriptOutput, err error) {
	if rt == nil || rt.compiled == nil {
		return out, fmt.Errorf("nil script runtime")
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = aiScriptOutput{}, fmt.Errorf("script %s panic: %v", rt.scriptPath, r)
		}
	}()

	inputs := map[string]any{"self": self, "player": player, "params": params}
	for _, name := range aiScriptInputs {
		if err := rt.compiled.Set(name, inputs[name]); err != nil {
			return out, err
		}
	}
	if err := rt.compiled.Set("move", 0.0); err != nil {
		return out, err
	}
	if err := rt.compiled.Set("jump", false); err != nil {
		return out, err
	}
	if err := rt.compiled.Set("attack", false); err != nil {
		return out, err
	}

	if err := rt.compiled.Run(); err != nil {
		return out, err
	}

	out.Move = rt.compiled.Get("move").Float()
	out.Jump = rt.compiled.Get("jump").Bool()
	out.Attack = rt.compiled.Get("attack").Bool()
	return out, nil
}

func cleanScriptKey(path string) string {
	return strings.TrimSpace(path)
}

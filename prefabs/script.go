package prefabs

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"

	"pacman/ecs/component"
	"pacman/ecs/system"
	"pacman/maze"
)

// Script variables: player tile (px, py), player direction vector
// (pdx, pdy), this ghost's tile (gx, gy), blinky's tile (bx, by), scatter
// corner (sx, sy). The script must assign tx and ty.
var scriptVars = []string{"px", "py", "pdx", "pdy", "gx", "gy", "bx", "by", "sx", "sy"}

// CompileTarget turns a Tengo targeting script into a TargetFunc. A script
// that fails at runtime falls back to the built-in rule for the ghost.
func CompileTarget(name component.GhostName, src string) (system.TargetFunc, error) {
	script := tengo.NewScript([]byte(src))
	for _, v := range scriptVars {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("add %s: %w", v, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	return func(ctx system.TargetContext) maze.Location {
		c := compiled.Clone()
		dir := ctx.PlayerDir.Vector()
		for v, val := range map[string]float64{
			"px": ctx.Player.X, "py": ctx.Player.Y,
			"pdx": dir.X, "pdy": dir.Y,
			"gx": ctx.Ghost.X, "gy": ctx.Ghost.Y,
			"bx": ctx.Blinky.X, "by": ctx.Blinky.Y,
			"sx": ctx.Scatter.X, "sy": ctx.Scatter.Y,
		} {
			if err := c.Set(v, val); err != nil {
				log.Printf("prefabs: %s: set %s: %v", name, v, err)
				return system.DefaultChaseTarget(name, ctx)
			}
		}
		if err := c.Run(); err != nil {
			log.Printf("prefabs: %s script: %v", name, err)
			return system.DefaultChaseTarget(name, ctx)
		}
		if !c.IsDefined("tx") || !c.IsDefined("ty") {
			log.Printf("prefabs: %s script: missing tx/ty", name)
			return system.DefaultChaseTarget(name, ctx)
		}
		return maze.Loc(c.Get("tx").Float(), c.Get("ty").Float())
	}, nil
}

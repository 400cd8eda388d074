// Package prefabs loads ghost tuning from YAML: scatter corners and
// optional Tengo targeting scripts. The defaults ship embedded; an external
// file can override them and is hot-reloadable in development.
package prefabs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pacman/ecs/component"
	"pacman/ecs/entity"
	"pacman/ecs/system"
	"pacman/maze"
)

//go:embed ghosts.yaml
var defaultConfig []byte

// Point is a board location in a prefab file.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// GhostPrefab tunes one ghost.
type GhostPrefab struct {
	Scatter      *Point `yaml:"scatter"`
	TargetScript string `yaml:"target_script"`
}

// Config is the parsed prefab file, keyed by ghost name.
type Config struct {
	Ghosts map[string]GhostPrefab `yaml:"ghosts"`
}

// Load returns the embedded defaults, overlaid by the file at path when it
// exists. An empty path skips the overlay.
func Load(path string) (Config, error) {
	cfg, err := parse(defaultConfig)
	if err != nil {
		return Config{}, fmt.Errorf("prefabs: embedded defaults: %w", err)
	}
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("prefabs: read %s: %w", path, err)
	}
	override, err := parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("prefabs: parse %s: %w", path, err)
	}
	for name, g := range override.Ghosts {
		base := cfg.Ghosts[name]
		if g.Scatter != nil {
			base.Scatter = g.Scatter
		}
		if g.TargetScript != "" {
			base.TargetScript = g.TargetScript
		}
		cfg.Ghosts[name] = base
	}
	return cfg, nil
}

func parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Ghosts == nil {
		cfg.Ghosts = make(map[string]GhostPrefab)
	}
	return cfg, nil
}

// ApplyScatter overwrites the scatter corners in the given specs with the
// prefab values.
func (c Config) ApplyScatter(specs []entity.GhostSpec) {
	for i := range specs {
		g, ok := c.Ghosts[specs[i].Name.String()]
		if !ok || g.Scatter == nil {
			continue
		}
		specs[i].Scatter = maze.Loc(g.Scatter.X, g.Scatter.Y)
	}
}

// TargetOverrides compiles every targeting script into a TargetFunc.
func (c Config) TargetOverrides() (map[component.GhostName]system.TargetFunc, error) {
	out := make(map[component.GhostName]system.TargetFunc)
	for _, name := range []component.GhostName{component.Blinky, component.Pinky, component.Inky, component.Clyde} {
		g, ok := c.Ghosts[name.String()]
		if !ok || g.TargetScript == "" {
			continue
		}
		fn, err := CompileTarget(name, g.TargetScript)
		if err != nil {
			return nil, fmt.Errorf("prefabs: %s script: %w", name, err)
		}
		out[name] = fn
	}
	return out, nil
}

package prefabs

import (
	"os"
	"path/filepath"
	"testing"

	"pacman/ecs/component"
	"pacman/ecs/entity"
	"pacman/ecs/system"
	"pacman/maze"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range []string{"blinky", "pinky", "inky", "clyde"} {
		g, ok := cfg.Ghosts[name]
		if !ok {
			t.Fatalf("missing ghost %q", name)
		}
		if g.Scatter == nil {
			t.Fatalf("%s has no scatter corner", name)
		}
		if g.TargetScript == "" {
			t.Fatalf("%s has no targeting script", name)
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghosts.yaml")
	body := "ghosts:\n  blinky:\n    scatter: {x: 5, y: 5}\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.Ghosts["blinky"].Scatter; got.X != 5 || got.Y != 5 {
		t.Fatalf("scatter = %+v, want (5,5)", got)
	}
	// The overlay must not wipe the embedded script.
	if cfg.Ghosts["blinky"].TargetScript == "" {
		t.Fatal("overlay dropped the default script")
	}
	if cfg.Ghosts["pinky"].Scatter == nil {
		t.Fatal("overlay dropped the other ghosts")
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Ghosts) != 4 {
		t.Fatalf("ghosts = %d, want embedded defaults", len(cfg.Ghosts))
	}
}

func TestDefaultScriptsMatchBuiltinRules(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	overrides, err := cfg.TargetOverrides()
	if err != nil {
		t.Fatalf("TargetOverrides: %v", err)
	}

	tests := []struct {
		name  string
		ghost component.GhostName
		ctx   system.TargetContext
	}{
		{
			name:  "blinky",
			ghost: component.Blinky,
			ctx:   system.TargetContext{Player: maze.Loc(10, 22)},
		},
		{
			name:  "pinky",
			ghost: component.Pinky,
			ctx:   system.TargetContext{Player: maze.Loc(10, 10), PlayerDir: maze.Left},
		},
		{
			name:  "inky",
			ghost: component.Inky,
			ctx:   system.TargetContext{Player: maze.Loc(4, 4), PlayerDir: maze.Right, Blinky: maze.Loc(1, 2)},
		},
		{
			name:  "clyde_far",
			ghost: component.Clyde,
			ctx:   system.TargetContext{Player: maze.Loc(0, 0), Ghost: maze.Loc(20, 0), Scatter: maze.Loc(0, -1)},
		},
		{
			name:  "clyde_near",
			ghost: component.Clyde,
			ctx:   system.TargetContext{Player: maze.Loc(0, 0), Ghost: maze.Loc(3, 0), Scatter: maze.Loc(0, -1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, ok := overrides[tt.ghost]
			if !ok {
				t.Fatal("no compiled override")
			}
			got := fn(tt.ctx)
			want := system.DefaultChaseTarget(tt.ghost, tt.ctx)
			if got != want {
				t.Fatalf("script target = %v, built-in rule = %v", got, want)
			}
		})
	}
}

func TestCompileTargetBadScript(t *testing.T) {
	if _, err := CompileTarget(component.Blinky, "tx :="); err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestCompileTargetRuntimeFallback(t *testing.T) {
	fn, err := CompileTarget(component.Blinky, `tx := 1 / 0; ty := py`)
	if err != nil {
		t.Fatalf("CompileTarget: %v", err)
	}
	ctx := system.TargetContext{Player: maze.Loc(7, 9)}
	if got := fn(ctx); got != system.DefaultChaseTarget(component.Blinky, ctx) {
		t.Fatalf("target = %v, want built-in fallback", got)
	}
}

func TestCompileTargetMissingResultFallback(t *testing.T) {
	fn, err := CompileTarget(component.Blinky, `unused := px`)
	if err != nil {
		t.Fatalf("CompileTarget: %v", err)
	}
	ctx := system.TargetContext{Player: maze.Loc(3, 14)}
	if got := fn(ctx); got != system.DefaultChaseTarget(component.Blinky, ctx) {
		t.Fatalf("target = %v, want built-in fallback", got)
	}
}

func TestApplyScatter(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	specs := entity.DefaultGhostSpecs(maze.Default())
	cfg.ApplyScatter(specs)
	for _, spec := range specs {
		g := cfg.Ghosts[spec.Name.String()]
		if spec.Scatter != maze.Loc(g.Scatter.X, g.Scatter.Y) {
			t.Fatalf("%s scatter = %v, want %v", spec.Name, spec.Scatter, g.Scatter)
		}
	}
}

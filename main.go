package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pacman/config"
	"pacman/ecs/system"
)

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetTPS(system.TicksPerSecond)
	ebiten.SetWindowSize(system.ScreenWidth*cfg.Scale, system.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle("pacman")

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"
	"unicode"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pacman/assets"
	"pacman/config"
	"pacman/ecs"
	"pacman/ecs/component"
	"pacman/ecs/entity"
	"pacman/ecs/render"
	"pacman/ecs/system"
	"pacman/maze"
	"pacman/prefabs"
	"pacman/scores"
)

type appState int

const (
	stateMenu appState = iota
	stateLevelStart
	statePlaying
	stateDeath
	stateLevelComplete
	stateGameOver
	stateNameEntry
	stateLeaderboard
)

type menuAction int

const (
	menuActionNone menuAction = iota
	menuActionPlay
	menuActionLeaderboard
	menuActionQuit
)

const (
	firstReadyTicks   = 4 * system.TicksPerSecond
	laterReadyTicks   = 2 * system.TicksPerSecond
	deathTicks        = 2 * system.TicksPerSecond
	levelClearTicks   = 6 * system.TicksPerSecond
	gameOverSignTicks = 3 * system.TicksPerSecond
	ghostPopupTicks   = system.TicksPerSecond
	fruitPopupTicks   = 3 * system.TicksPerSecond
	// The cleared board starts flashing partway into the level-complete
	// pause, alternating twice a second.
	flashDelayTicks    = 3 * system.TicksPerSecond
	flashIntervalTicks = system.TicksPerSecond / 2
	cursorBlinkTicks   = system.TicksPerSecond / 2
	maxNameLength      = 10
	leaderboardRows    = 10
)

// Game is the ebiten application: the outer state machine around the
// fixed-tick world.
type Game struct {
	cfg  config.Config
	m    *maze.Map
	reg  *render.Registry
	text *render.TextCache

	store     *scores.Store
	prefabCfg prefabs.Config
	overrides map[component.GhostName]system.TargetFunc
	watcher   *prefabs.Watcher
	prefabIn  chan prefabs.Config

	world    *ecs.World
	sess     *component.Session
	sim      *ecs.Scheduler
	visual   *ecs.Scheduler
	siren    *system.Siren
	bonus    *system.Bonus
	ghostAI  *system.GhostAI
	renderer *system.Renderer

	state      appState
	stateTicks int

	menu       *ebitenui.UI
	menuAction menuAction

	nameEntry   string
	inputRunes  []rune
	leaderboard []scores.Entry
	lbOffset    int
}

// NewGame wires up assets, persistence, and prefabs. The world itself is
// built when a game starts.
func NewGame(cfg config.Config) (*Game, error) {
	m := maze.Default()

	store, err := scores.Open(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	prefabCfg, err := prefabs.Load(cfg.PrefabPath)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("game: %w", err)
	}
	overrides, err := prefabCfg.TargetOverrides()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		m:         m,
		reg:       render.NewRegistry(m),
		text:      render.NewTextCache(),
		store:     store,
		prefabCfg: prefabCfg,
		overrides: overrides,
		renderer:  system.NewRenderer(),
		state:     stateMenu,
		prefabIn:  make(chan prefabs.Config, 1),
	}
	g.menu = newMainMenu(g)

	if cfg.WatchPrefabs && cfg.PrefabPath != "" {
		w, err := prefabs.Watch(cfg.PrefabPath, func(c prefabs.Config) {
			select {
			case g.prefabIn <- c:
			default:
			}
		})
		if err != nil {
			log.Printf("game: prefab watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// Close releases the watcher and database.
func (g *Game) Close() error {
	if g.watcher != nil {
		g.watcher.Close()
	}
	return g.store.Close()
}

func (g *Game) Layout(_, _ int) (int, int) {
	return system.ScreenWidth, system.ScreenHeight
}

func (g *Game) Update() error {
	select {
	case cfg := <-g.prefabIn:
		g.applyPrefabs(cfg)
	default:
	}

	switch g.state {
	case stateMenu:
		return g.updateMenu()
	case stateLevelStart:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.abortToGameOver()
			return nil
		}
		g.visual.Update(g.world)
		g.stateTicks--
		if g.stateTicks <= 0 {
			destroyAll(g.world, component.ReadySignComponent.Kind())
			g.state = statePlaying
		}
	case statePlaying:
		g.updatePlaying()
	case stateDeath:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.abortToGameOver()
			return nil
		}
		g.updateDeath()
	case stateLevelComplete:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.abortToGameOver()
			return nil
		}
		g.visual.Update(g.world)
		g.flashBoard(levelClearTicks - g.stateTicks)
		g.stateTicks--
		if g.stateTicks <= 0 {
			g.sess.Levels.Next()
			if err := g.buildLevel(); err != nil {
				return err
			}
			g.enterLevelStart(laterReadyTicks)
		}
	case stateGameOver:
		g.visual.Update(g.world)
		g.stateTicks--
		if g.stateTicks <= 0 {
			if g.sess.Score > 0 {
				g.nameEntry = ""
				g.state = stateNameEntry
			} else {
				g.showLeaderboard()
			}
		}
	case stateNameEntry:
		g.updateNameEntry()
	case stateLeaderboard:
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) && g.lbOffset > 0 {
			g.lbOffset--
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.lbOffset < len(g.leaderboard)-1 {
			g.lbOffset++
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.toMenu()
		}
	}
	return nil
}

func (g *Game) updateMenu() error {
	g.menu.Update()
	action := g.menuAction
	g.menuAction = menuActionNone
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		action = menuActionPlay
	}

	switch action {
	case menuActionPlay:
		if err := g.startGame(); err != nil {
			return err
		}
	case menuActionLeaderboard:
		g.showLeaderboard()
	case menuActionQuit:
		return ebiten.Termination
	}
	return nil
}

func (g *Game) updatePlaying() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.abortToGameOver()
		return
	}

	if g.sess.PauseTicks > 0 {
		g.sess.PauseTicks--
	} else {
		g.sim.Update(g.world)
	}
	g.visual.Update(g.world)
	if !g.cfg.Mute {
		g.siren.Update(g.world)
	}

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case system.EventGhostEaten:
			if data, ok := evt.Data.(system.GhostEaten); ok {
				entity.SpawnScorePopup(g.world, g.playerLoc(), data.Points, ghostPopupTicks)
			}
		case system.EventFruitEaten:
			if data, ok := evt.Data.(system.FruitEaten); ok {
				entity.SpawnScorePopup(g.world, g.fruitSpawn(), data.Points, fruitPopupTicks)
			}
		case system.EventPlayerDied:
			g.startDeath()
			return
		case system.EventLevelCleared:
			g.stopSiren()
			g.state = stateLevelComplete
			g.stateTicks = levelClearTicks
			return
		}
	}
}

func (g *Game) startDeath() {
	g.stopSiren()
	g.state = stateDeath
	g.stateTicks = deathTicks

	ecs.ForEach(g.world, component.GhostComponent.Kind(), func(e ecs.Entity, _ *component.Ghost) {
		if sprite, ok := ecs.Get(g.world, e, component.SpriteComponent.Kind()); ok {
			sprite.Hidden = true
		}
	})
	if e, ok := ecs.First(g.world, component.PlayerComponent.Kind()); ok {
		if a, ok := ecs.Get(g.world, e, component.AudioComponent.Kind()); ok {
			a.Trigger(assets.SoundDeath)
		}
	}
}

func (g *Game) updateDeath() {
	g.visual.Update(g.world)
	g.stateTicks--

	// Second half of the sequence: spin the player away.
	if g.stateTicks < deathTicks/2 {
		if e, ok := ecs.First(g.world, component.PlayerComponent.Kind()); ok {
			if sprite, ok := ecs.Get(g.world, e, component.SpriteComponent.Kind()); ok {
				sprite.Rotation += 0.2
				sprite.ScaleX *= 0.97
				sprite.ScaleY *= 0.97
			}
		}
	}

	if g.stateTicks > 0 {
		return
	}
	g.sess.Lives--
	if g.sess.Lives <= 0 {
		entity.SpawnGameOverSign(g.world)
		g.state = stateGameOver
		g.stateTicks = gameOverSignTicks
		return
	}
	if err := g.respawnCharacters(); err != nil {
		log.Printf("game: respawn: %v", err)
	}
	g.enterLevelStart(laterReadyTicks)
}

// abortToGameOver ends the run early. The final score still flows through
// the game-over screen like any finished game.
func (g *Game) abortToGameOver() {
	g.stopSiren()
	entity.SpawnGameOverSign(g.world)
	g.state = stateGameOver
	g.stateTicks = gameOverSignTicks
}

// flashBoard alternates the cleared maze between blue and white walls.
func (g *Game) flashBoard(elapsed int) {
	if elapsed < flashDelayTicks {
		return
	}
	img := g.reg.Board
	if (elapsed/flashIntervalTicks)%2 == 0 {
		img = g.reg.BoardFlash
	}
	ecs.ForEach(g.world, component.BoardComponent.Kind(), func(e ecs.Entity, _ *component.Board) {
		if sprite, ok := ecs.Get(g.world, e, component.SpriteComponent.Kind()); ok {
			sprite.Image = img
		}
	})
}

func (g *Game) updateNameEntry() {
	g.stateTicks++
	g.inputRunes = ebiten.AppendInputChars(g.inputRunes[:0])
	for _, r := range g.inputRunes {
		if len(g.nameEntry) < maxNameLength && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ') {
			g.nameEntry += string(unicode.ToUpper(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.nameEntry) > 0 {
		g.nameEntry = g.nameEntry[:len(g.nameEntry)-1]
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.saveScore()
		g.showLeaderboard()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.saveScore()
		g.toMenu()
	}
}

// saveScore records the run under the typed name. An empty name skips the
// board entirely.
func (g *Game) saveScore() {
	if strings.TrimSpace(g.nameEntry) == "" {
		return
	}
	if _, err := g.store.Add(g.nameEntry, g.sess.Score, g.sess.Levels.Current); err != nil {
		log.Printf("game: save score: %v", err)
	}
}

func (g *Game) startGame() error {
	g.sess = &component.Session{Lives: g.cfg.Lives}
	g.sess.Levels.Reset()
	g.sess.Levels.Next()

	high, err := g.store.HighScore()
	if err != nil {
		log.Printf("game: high score: %v", err)
	} else {
		g.sess.HighScore = high
	}

	if err := g.buildLevel(); err != nil {
		return err
	}
	g.enterLevelStart(firstReadyTicks)
	return nil
}

// buildLevel creates a fresh world for the current level, carrying the
// session across.
func (g *Game) buildLevel() error {
	w := ecs.NewWorld()
	entity.SpawnSession(w, g.sess)

	entity.SpawnBoard(w, g.m, g.reg)
	n := entity.SpawnPellets(w, g.m, g.reg)
	g.sess.PelletsLeft = n
	g.sess.PelletsEaten = 0
	g.sess.GhostChain = 0
	g.sess.GhostsEatenTotal = 0
	g.sess.PauseTicks = 0

	entity.SpawnHUD(w, g.reg)
	entity.SpawnLevelCounter(w, g.reg, &g.sess.Levels)

	if _, err := entity.SpawnPlayer(w, g.m, g.reg); err != nil {
		return err
	}
	entity.SpawnGhosts(w, g.ghostSpecs(), g.reg, &g.sess.Levels)

	if !g.cfg.Mute {
		if _, err := entity.SpawnSiren(w); err != nil {
			return err
		}
	}

	g.world = w
	g.bonus = system.NewBonus(g.reg, g.fruitSpawn())
	g.buildSchedulers()
	return nil
}

// respawnCharacters puts the player and ghosts back at their spawns after a
// death, keeping the remaining pellets. The scatter/chase clock restarts.
func (g *Game) respawnCharacters() error {
	w := g.world
	if e, ok := ecs.First(w, component.PlayerComponent.Kind()); ok {
		ecs.DestroyEntity(w, e)
	}
	ecs.ForEach(w, component.GhostComponent.Kind(), func(e ecs.Entity, _ *component.Ghost) {
		ecs.DestroyEntity(w, e)
	})
	ecs.ForEach(w, component.BonusComponent.Kind(), func(e ecs.Entity, _ *component.Bonus) {
		ecs.DestroyEntity(w, e)
	})
	destroyAll(w, component.TTLComponent.Kind())

	if _, err := entity.SpawnPlayer(w, g.m, g.reg); err != nil {
		return err
	}
	entity.SpawnGhosts(w, g.ghostSpecs(), g.reg, &g.sess.Levels)
	g.sess.PauseTicks = 0
	g.buildSchedulers()
	return nil
}

func (g *Game) buildSchedulers() {
	g.ghostAI = system.NewGhostAI(g.m, g.overrides)
	g.sim = ecs.NewScheduler(
		system.NewInput(),
		system.NewPlayerMovement(g.m),
		g.ghostAI,
		system.NewTunnel(g.m),
		system.NewPellets(),
		g.bonus,
		system.NewCollision(),
	)
	g.visual = ecs.NewScheduler(
		system.NewScore(),
		system.NewHUD(),
		system.NewGhostSkins(g.reg),
		system.NewAnimations(),
		system.NewLabels(g.text),
		system.NewBlinks(),
		system.NewTTLs(),
	)
	if !g.cfg.Mute {
		g.visual.Add(system.NewAudio())
	}
	g.siren = system.NewSiren()
}

func (g *Game) ghostSpecs() []entity.GhostSpec {
	specs := entity.DefaultGhostSpecs(g.m)
	g.prefabCfg.ApplyScatter(specs)
	return specs
}

func (g *Game) enterLevelStart(ticks int) {
	destroyAll(g.world, component.ReadySignComponent.Kind())
	entity.SpawnReadySign(g.world)
	g.stopSiren()
	g.state = stateLevelStart
	g.stateTicks = ticks
}

func (g *Game) showLeaderboard() {
	top, err := g.store.Top(100)
	if err != nil {
		log.Printf("game: leaderboard: %v", err)
	}
	g.leaderboard = top
	g.lbOffset = 0
	g.state = stateLeaderboard
}

func (g *Game) toMenu() {
	if g.world != nil {
		g.stopSiren()
	}
	g.world = nil
	g.state = stateMenu
	g.menuAction = menuActionNone
}

func (g *Game) stopSiren() {
	if g.world == nil {
		return
	}
	ecs.ForEach(g.world, component.SirenPlayerComponent.Kind(), func(_ ecs.Entity, sp *component.SirenPlayer) {
		for _, p := range sp.Players {
			p.Pause()
		}
		sp.CurrentVolume = 0
	})
}

// applyPrefabs swaps in a hot-reloaded prefab config: new targeting
// scripts immediately, new scatter corners on live ghosts.
func (g *Game) applyPrefabs(cfg prefabs.Config) {
	overrides, err := cfg.TargetOverrides()
	if err != nil {
		log.Printf("game: prefab reload: %v", err)
		return
	}
	g.prefabCfg = cfg
	g.overrides = overrides
	if g.ghostAI != nil {
		g.ghostAI.SetOverrides(overrides)
	}
	if g.world == nil {
		return
	}
	byName := make(map[component.GhostName]maze.Location)
	for _, spec := range g.ghostSpecs() {
		byName[spec.Name] = spec.Scatter
	}
	ecs.ForEach(g.world, component.GhostComponent.Kind(), func(_ ecs.Entity, ghost *component.Ghost) {
		if scatter, ok := byName[ghost.Name]; ok {
			ghost.ScatterTarget = scatter
		}
	})
	log.Printf("game: prefabs reloaded")
}

func destroyAll[T any](w *ecs.World, kind component.ComponentKind[T]) {
	ecs.ForEach(w, kind, func(e ecs.Entity, _ *T) {
		ecs.DestroyEntity(w, e)
	})
}

func (g *Game) playerLoc() maze.Location {
	e, ok := ecs.First(g.world, component.PlayerComponent.Kind())
	if !ok {
		return maze.Location{}
	}
	pos, ok := ecs.Get(g.world, e, component.PositionComponent.Kind())
	if !ok {
		return maze.Location{}
	}
	return pos.Loc
}

func (g *Game) fruitSpawn() maze.Location {
	return maze.Loc(float64(g.m.Width())/2-0.5, 13)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	switch g.state {
	case stateMenu:
		g.menu.Draw(screen)
	case stateNameEntry:
		g.drawNameEntry(screen)
	case stateLeaderboard:
		g.drawLeaderboard(screen)
	default:
		if g.world != nil {
			g.renderer.Draw(g.world, screen)
		}
	}
}

func (g *Game) drawNameEntry(screen *ebiten.Image) {
	cx := float64(system.ScreenWidth) / 2
	g.drawCentered(screen, "GAME OVER", cx, 50, color.RGBA{R: 255, A: 255})
	if g.sess.Score >= g.sess.HighScore {
		g.drawCentered(screen, "HIGH SCORE!", cx, 80, color.RGBA{R: 255, G: 255, A: 255})
	}
	g.drawCentered(screen, fmt.Sprintf("SCORE %d", g.sess.Score), cx, 100, color.White)
	g.drawCentered(screen, "ENTER YOUR NAME", cx, 140, color.White)
	name := g.nameEntry
	if len(name) < maxNameLength && (g.stateTicks/cursorBlinkTicks)%2 == 0 {
		name += "_"
	}
	g.drawCentered(screen, name, cx, 160, color.RGBA{R: 255, G: 255, A: 255})
	g.drawCentered(screen, "PRESS ENTER", cx, 220, color.RGBA{R: 128, G: 128, B: 128, A: 255})
}

func (g *Game) drawLeaderboard(screen *ebiten.Image) {
	cx := float64(system.ScreenWidth) / 2
	g.drawCentered(screen, "LEADERBOARD", cx, 40, color.RGBA{R: 255, G: 255, A: 255})
	if len(g.leaderboard) == 0 {
		g.drawCentered(screen, "NO SCORES YET", cx, 120, color.White)
	}
	for i := 0; i < leaderboardRows; i++ {
		idx := g.lbOffset + i
		if idx >= len(g.leaderboard) {
			break
		}
		e := g.leaderboard[idx]
		line := fmt.Sprintf("%2d. %-10s %6d", idx+1, e.Name, e.Score)
		g.drawCentered(screen, line, cx, 70+float64(i)*18, color.White)
	}
	g.drawCentered(screen, "PRESS ENTER", cx, 260, color.RGBA{R: 128, G: 128, B: 128, A: 255})
}

func (g *Game) drawCentered(screen *ebiten.Image, text string, cx, cy float64, col color.Color) {
	img := g.text.Render(text, col)
	if img == nil {
		return
	}
	bounds := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(cx-float64(bounds.Dx())/2, cy-float64(bounds.Dy())/2)
	screen.DrawImage(img, &op)
}

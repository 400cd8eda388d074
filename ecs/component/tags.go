package component

// NoWrap opts an entity out of tunnel wrapping (HUD and signs).
type NoWrap struct{}

var NoWrapComponent = NewComponent[NoWrap]()

// Board marks the maze backdrop entity.
type Board struct{}

var BoardComponent = NewComponent[Board]()

// ReadySign marks the READY! text between level start and play.
type ReadySign struct{}

var ReadySignComponent = NewComponent[ReadySign]()

// GameOverSign marks the GAME OVER text on the board.
type GameOverSign struct{}

var GameOverSignComponent = NewComponent[GameOverSign]()

// LifeIcon marks one HUD life indicator.
type LifeIcon struct {
	Index int
}

var LifeIconComponent = NewComponent[LifeIcon]()

// LevelCounter marks one HUD fruit in the level counter row.
type LevelCounter struct{}

var LevelCounterComponent = NewComponent[LevelCounter]()

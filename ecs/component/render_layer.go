package component

// RenderLayer orders drawing; lower indexes draw first.
type RenderLayer struct {
	Index int
}

// Draw order, bottom to top.
const (
	LayerBoard = iota
	LayerPellets
	LayerBonus
	LayerOnBoardText
	LayerPlayer
	LayerGhosts
	LayerEyes
	LayerHUD
)

var RenderLayerComponent = NewComponent[RenderLayer]()

package component

import "image/color"

// Label is board-space text. The label system rasterizes it into the
// entity's sprite whenever Text or Color changes.
type Label struct {
	Text  string
	Color color.Color
	Scale float64

	rendered string
}

// Dirty reports whether the label needs re-rasterizing.
func (l *Label) Dirty() bool {
	return l.rendered != l.Text
}

// MarkRendered records that Text has been rasterized.
func (l *Label) MarkRendered() {
	l.rendered = l.Text
}

var LabelComponent = NewComponent[Label]()

// ScoreKind binds a label to a live session number.
type ScoreKind int

const (
	ScoreCurrent ScoreKind = iota
	ScoreHigh
)

type ScoreBinding struct {
	Kind ScoreKind
}

var ScoreBindingComponent = NewComponent[ScoreBinding]()

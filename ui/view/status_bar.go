package view

import (
	"github.com/soocke/box-annotator/ui/theme"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the session summary and the interaction state.
type StatusBar struct {
	statusLbl *TLabelWidget
	stateLbl  *TLabelWidget
}

// NewStatusBar creates the status and state labels in parent at row.
func NewStatusBar(parent *FrameWidget, row int) *StatusBar {
	s := &StatusBar{
		statusLbl: TLabel(Txt("No image loaded"), Anchor("w"), Style(theme.StyleStatusLabel)),
		stateLbl:  TLabel(Txt("State: idle"), Style(theme.StyleStateLabel)),
	}
	Grid(s.statusLbl, In(parent), Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	Grid(s.stateLbl, In(parent), Row(row), Column(1), Sticky("e"), Padx("0.4m"), Pady("0.3m"))
	return s
}

// SetStatus updates the session summary.
func (s *StatusBar) SetStatus(text string) {
	if s == nil || s.statusLbl == nil {
		return
	}
	s.statusLbl.Configure(Txt(text))
}

// SetStateLabel updates the state label.
func (s *StatusBar) SetStateLabel(text string) {
	if s == nil || s.stateLbl == nil {
		return
	}
	s.stateLbl.Configure(Txt(text))
}

package presenter

import (
	"github.com/soocke/box-annotator/domain/annotate"
)

// Toolbar captions.
const (
	CaptionDraw       = "Draw Bounding Box"
	CaptionCancelDraw = "Cancel Drawing"
	CaptionEdit       = "Edit Bounding Box"
	CaptionCancelEdit = "Cancel Editing"
)

// ModeView updates the toolbar buttons.
type ModeView interface {
	SetDrawCaption(string)
	SetEditCaption(string)
	SetDeleteEnabled(bool)
}

// ModePresenter drives the draw/edit toggle buttons.
type ModePresenter struct {
	modes annotate.ModeControl
	view  ModeView
}

func NewModePresenter(modes annotate.ModeControl, view ModeView) *ModePresenter {
	return &ModePresenter{modes: modes, view: view}
}

// ToggleDraw flips draw mode.
func (p *ModePresenter) ToggleDraw() {
	if p == nil || p.modes == nil {
		return
	}
	p.modes.OnToggleDrawMode(!p.modes.DrawEnabled())
}

// ToggleEdit flips edit mode.
func (p *ModePresenter) ToggleEdit() {
	if p == nil || p.modes == nil {
		return
	}
	p.modes.OnToggleEditMode(!p.modes.EditEnabled())
}

// OnRender refreshes captions from a snapshot.
func (p *ModePresenter) OnRender(rs annotate.RenderState) {
	if p == nil || p.view == nil {
		return
	}
	if rs.DrawEnabled {
		p.view.SetDrawCaption(CaptionCancelDraw)
	} else {
		p.view.SetDrawCaption(CaptionDraw)
	}
	if rs.EditEnabled {
		p.view.SetEditCaption(CaptionCancelEdit)
	} else {
		p.view.SetEditCaption(CaptionEdit)
	}
	p.view.SetDeleteEnabled(rs.HasSelection())
}

package presenter

import (
	"strconv"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/geometry"
)

// FormView is the X/Y/Width/Height edit form.
type FormView interface {
	SetFields(x, y, width, height string)
	SetFormEnabled(bool)
}

// FormPresenter mirrors the selected box into the edit form and forwards edits.
type FormPresenter struct {
	editor annotate.SelectionEditor
	view   FormView

	shown   geometry.Rect
	hasShow bool
}

func NewFormPresenter(editor annotate.SelectionEditor, view FormView) *FormPresenter {
	return &FormPresenter{editor: editor, view: view}
}

// OnRender repopulates the form from the selected box's canonical rect. The
// form is disabled and cleared without a selection.
func (p *FormPresenter) OnRender(rs annotate.RenderState) {
	if p == nil || p.view == nil {
		return
	}
	r, ok := rs.SelectedRect()
	if !ok {
		if p.hasShow {
			p.hasShow = false
			p.view.SetFields("", "", "", "")
			p.view.SetFormEnabled(false)
		}
		return
	}
	if p.hasShow && r == p.shown {
		return
	}
	if !p.hasShow {
		p.view.SetFormEnabled(true)
	}
	p.shown, p.hasShow = r, true
	p.restore()
}

// restore writes the last shown rect back, discarding rejected input.
func (p *FormPresenter) restore() {
	if !p.hasShow || p.view == nil {
		return
	}
	r := p.shown
	p.view.SetFields(strconv.Itoa(r.XMin), strconv.Itoa(r.YMin), strconv.Itoa(r.Width()), strconv.Itoa(r.Height()))
}

// FieldEdited forwards a single committed field. Unknown field ids are ignored.
func (p *FormPresenter) FieldEdited(field, value string) {
	if p == nil || p.editor == nil {
		return
	}
	f, ok := annotate.ParseField(field)
	if !ok {
		return
	}
	p.editor.OnFieldEdit(f, value)
	p.restore()
}

// Apply forwards all four fields at once ("Apply Changes").
func (p *FormPresenter) Apply(x, y, width, height string) {
	if p == nil || p.editor == nil {
		return
	}
	p.editor.ApplyFields(x, y, width, height)
	p.restore()
}

// Delete removes the selected box.
func (p *FormPresenter) Delete() bool {
	if p == nil || p.editor == nil {
		return false
	}
	return p.editor.OnDeleteSelected()
}

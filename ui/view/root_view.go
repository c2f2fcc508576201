package view

import (
	"image"
	"log/slog"

	"github.com/soocke/box-annotator/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are the user actions the root view forwards to presenters.
type Handlers struct {
	LoadImage  func()
	Capture    func()
	ToggleDraw func()
	ToggleEdit func()
	Delete     func()
	Save       func()
	Exit       func()

	Press   func(x, y int)
	Motion  func(x, y int)
	Release func(x, y int)

	FieldEdited func(field, value string)
	Apply       func(x, y, width, height string)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	logger *slog.Logger

	// Subviews
	Canvas *ImageCanvas
	Form   *EditForm
	Status *StatusBar

	// Widgets
	drawBtn   *TButtonWidget
	editBtn   *TButtonWidget
	deleteBtn *TButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowImage(img image.Image)
	Origin() image.Point
	SetStateLabel(text string)
	SetStatus(text string)
	SetDrawCaption(text string)
	SetEditCaption(text string)
	SetDeleteEnabled(enabled bool)
	SetFields(x, y, width, height string)
	SetFormEnabled(enabled bool)
	ShowInfo(title, msg string)
	ShowError(title, msg string)
	Confirm(title, msg string) bool
}

var _ UI = (*RootView)(nil)

func NewRootView(logger *slog.Logger) *RootView {
	return &RootView{logger: logger}
}

// Build constructs the layout: toolbar on row 0, canvas and form on row 1,
// status bar on row 2. canvasW and canvasH size the empty canvas.
func (rv *RootView) Build(h Handlers, canvasW, canvasH int) {
	if rv == nil {
		return
	}
	toolbar := Frame()
	Grid(toolbar, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addButton := func(caption, style string, fn func()) *TButtonWidget {
		opts := []Opt{Txt(caption), Command(func() {
			if fn != nil {
				fn()
			}
		})}
		if style != "" {
			opts = append(opts, Style(style))
		}
		b := TButton(opts...)
		Grid(b, In(toolbar), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
		return b
	}
	addButton("Load Image", "", h.LoadImage)
	addButton("Capture Screen", "", h.Capture)
	rv.drawBtn = addButton("Draw Bounding Box", "", h.ToggleDraw)
	rv.editBtn = addButton("Edit Bounding Box", "", h.ToggleEdit)
	rv.deleteBtn = addButton("Delete Selected Box", theme.StyleDeleteButton, h.Delete)
	addButton("Save Annotations", theme.StyleSaveButton, h.Save)
	addButton("Exit", "", h.Exit)
	rv.SetDeleteEnabled(false)

	canvasFrame := Frame()
	Grid(canvasFrame, Row(1), Column(0), Sticky("nwes"), Padx("0.3m"), Pady("0.3m"))
	rv.Canvas = NewImageCanvas(canvasFrame, canvasW, canvasH)
	rv.Canvas.BindPointer(orNoop(h.Press), orNoop(h.Motion), orNoop(h.Release))

	formFrame := Frame()
	Grid(formFrame, Row(1), Column(1), Sticky("n"), Padx("0.3m"), Pady("0.3m"))
	rv.Form = NewEditForm(formFrame, 0, h.FieldEdited, h.Apply)

	statusFrame := Frame()
	Grid(statusFrame, Row(2), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.2m"))
	rv.Status = NewStatusBar(statusFrame, 0)

	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 1, Weight(1))
	GridColumnConfigure(statusFrame, 0, Weight(1))
}

func orNoop(fn func(x, y int)) func(x, y int) {
	if fn == nil {
		return func(int, int) {}
	}
	return fn
}

// ShowImage proxies to the canvas.
func (rv *RootView) ShowImage(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.ShowImage(img)
	}
}

// Origin proxies to the canvas.
func (rv *RootView) Origin() image.Point {
	if rv == nil || rv.Canvas == nil {
		return image.Pt(canvasBorder, canvasBorder)
	}
	return rv.Canvas.Origin()
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStateLabel(text)
	}
}

// SetStatus updates the session summary.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetStatus(text)
	}
}

func (rv *RootView) SetDrawCaption(text string) {
	if rv != nil && rv.drawBtn != nil {
		rv.drawBtn.Configure(Txt(text))
	}
}

func (rv *RootView) SetEditCaption(text string) {
	if rv != nil && rv.editBtn != nil {
		rv.editBtn.Configure(Txt(text))
	}
}

// SetDeleteEnabled toggles the delete button.
func (rv *RootView) SetDeleteEnabled(enabled bool) {
	if rv == nil || rv.deleteBtn == nil {
		return
	}
	state := "disabled"
	if enabled {
		state = "normal"
	}
	rv.deleteBtn.Configure(State(state))
}

// SetFields proxies to the edit form.
func (rv *RootView) SetFields(x, y, width, height string) {
	if rv != nil && rv.Form != nil {
		rv.Form.SetFields(x, y, width, height)
	}
}

// SetFormEnabled proxies to the edit form.
func (rv *RootView) SetFormEnabled(enabled bool) {
	if rv != nil && rv.Form != nil {
		rv.Form.SetFormEnabled(enabled)
	}
}

func (rv *RootView) ShowInfo(title, msg string)     { ShowInfo(title, msg) }
func (rv *RootView) ShowError(title, msg string)    { ShowError(title, msg) }
func (rv *RootView) Confirm(title, msg string) bool { return Confirm(title, msg) }

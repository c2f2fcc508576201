package view

import (
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// EditForm is the X/Y/Width/Height panel for the selected box.
type EditForm struct {
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by field id
	order    []string
	enabled  bool

	onField func(field, value string)
	onApply func(x, y, width, height string)
}

// NewEditForm builds the form inside parent starting at startRow. Fields start
// disabled until a box is selected.
func NewEditForm(parent *FrameWidget, startRow int, onField func(field, value string), onApply func(x, y, width, height string)) *EditForm {
	f := &EditForm{widgets: make(map[string]*TextWidget), onField: onField, onApply: onApply}
	row := startRow
	title := Label(Txt("Selected Box"), Anchor("w"))
	Grid(title, In(parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	row++
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		Bind(w, "<KeyRelease-Return>", Command(func() { f.commit(id) }))
		Bind(w, "<FocusOut>", Command(func() { f.commit(id) }))
		f.widgets[id] = w
		f.order = append(f.order, id)
		row++
	}
	makeRow("x", "X")
	makeRow("y", "Y")
	makeRow("width", "Width")
	makeRow("height", "Height")
	f.applyBtn = Button(Txt("Apply Changes"), Command(f.apply))
	Grid(f.applyBtn, In(parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	f.enabled = true
	f.SetFormEnabled(false)
	return f
}

func (f *EditForm) commit(id string) {
	if f == nil || !f.enabled || f.onField == nil {
		return
	}
	f.onField(id, f.text(id))
}

func (f *EditForm) apply() {
	if f == nil || !f.enabled || f.onApply == nil {
		return
	}
	f.onApply(f.text("x"), f.text("y"), f.text("width"), f.text("height"))
}

func (f *EditForm) text(id string) string {
	w := f.widgets[id]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

// SetFields replaces the four field values.
func (f *EditForm) SetFields(x, y, width, height string) {
	if f == nil {
		return
	}
	vals := map[string]string{"x": x, "y": y, "width": width, "height": height}
	for _, id := range f.order {
		w := f.widgets[id]
		if w == nil {
			continue
		}
		// Disabled text widgets ignore inserts.
		w.Configure(State("normal"))
		w.Delete("1.0", END)
		w.Insert("1.0", vals[id])
		if !f.enabled {
			w.Configure(State("disabled"))
		}
	}
}

// SetFormEnabled toggles field and button editability.
func (f *EditForm) SetFormEnabled(enabled bool) {
	if f == nil || f.enabled == enabled {
		return
	}
	f.enabled = enabled
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range f.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if f.applyBtn != nil {
		f.applyBtn.Configure(State(state))
	}
}

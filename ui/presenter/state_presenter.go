package presenter

import (
	"github.com/soocke/box-annotator/domain/annotate"
)

// StateView sets the state label in the view.
type StateView interface{ SetStateLabel(string) }

// StatePresenter receives machine transitions and reflects the latest one in
// the view on Tick.
type StatePresenter struct {
	view    StateView
	latest  annotate.State
	shown   bool
	pending []annotate.State
}

func NewStatePresenter(view StateView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from the machine listener.
func (p *StatePresenter) OnState(_, next annotate.State) {
	if p == nil {
		return
	}
	p.pending = append(p.pending, next)
}

// Tick updates the view with the most recent queued state.
func (p *StatePresenter) Tick() {
	if p == nil || p.view == nil || len(p.pending) == 0 {
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	if p.shown && last == p.latest {
		return
	}
	p.latest, p.shown = last, true
	p.view.SetStateLabel("State: " + last.String())
}

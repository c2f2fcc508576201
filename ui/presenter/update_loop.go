package presenter

// Loop aggregates feature presenters and drives periodic view updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe).
type Loop struct {
	Canvas   *CanvasPresenter
	State    *StatePresenter
	Session  *SessionPresenter
	Schedule func()
}

func NewLoop(canvas *CanvasPresenter, state *StatePresenter, session *SessionPresenter, schedule func()) *Loop {
	return &Loop{Canvas: canvas, State: state, Session: session, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	if l.Canvas != nil {
		l.Canvas.Tick()
	}
	if l.State != nil {
		l.State.Tick()
	}
	if l.Session != nil {
		l.Session.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}

package view

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// eventXY returns the pointer position of a mouse binding relative to the
// widget that received it.
func eventXY(e *Event) (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.X, e.Y
}

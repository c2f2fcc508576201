package boxes

import (
	"errors"
	"fmt"
	"iter"

	"github.com/soocke/box-annotator/domain/geometry"
)

// ErrIndex is returned for any access outside [0, Len()).
var ErrIndex = errors.New("box index out of range")

// Collection is an ordered list of boxes. Insertion order is the drawing order and
// the export order. The collection does not validate boxes; callers reject
// degenerate ones before Append. The zero value is an empty, usable collection.
type Collection struct {
	items []geometry.Box
}

// NewCollection returns an empty collection.
func NewCollection() *Collection { return &Collection{} }

// Append adds b after all existing boxes and returns its index.
func (c *Collection) Append(b geometry.Box) int {
	c.items = append(c.items, b)
	return len(c.items) - 1
}

// Get returns the box at i.
func (c *Collection) Get(i int) (geometry.Box, error) {
	if err := c.check(i); err != nil {
		return geometry.Box{}, err
	}
	return c.items[i], nil
}

// Replace overwrites the box at i.
func (c *Collection) Replace(i int, b geometry.Box) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.items[i] = b
	return nil
}

// RemoveAt deletes the box at i, shifting later boxes down by one.
func (c *Collection) RemoveAt(i int) error {
	if err := c.check(i); err != nil {
		return err
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Len returns the number of boxes.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// InRange reports whether i addresses an existing box.
func (c *Collection) InRange(i int) bool { return i >= 0 && i < c.Len() }

// All yields index and box in insertion order.
func (c *Collection) All() iter.Seq2[int, geometry.Box] {
	return func(yield func(int, geometry.Box) bool) {
		if c == nil {
			return
		}
		for i, b := range c.items {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Backward yields index and box from the most recently added to the oldest.
func (c *Collection) Backward() iter.Seq2[int, geometry.Box] {
	return func(yield func(int, geometry.Box) bool) {
		if c == nil {
			return
		}
		for i := len(c.items) - 1; i >= 0; i-- {
			if !yield(i, c.items[i]) {
				return
			}
		}
	}
}

// Boxes returns a copy of the stored boxes.
func (c *Collection) Boxes() []geometry.Box {
	if c == nil {
		return nil
	}
	out := make([]geometry.Box, len(c.items))
	copy(out, c.items)
	return out
}

// Clear removes every box.
func (c *Collection) Clear() { c.items = c.items[:0] }

func (c *Collection) check(i int) error {
	if !c.InRange(i) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndex, i, c.Len())
	}
	return nil
}

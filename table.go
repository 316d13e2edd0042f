package nru

import "iter"

type (
	// View is read-only access to page states.
	// Implemented by [Table] and returned by [Memory.Table].
	View interface {
		// Size returns the number of pages.
		Size() int
		// Get returns the state of page.
		Get(page int) (State, error)
	}
	// Table holds the [State] of each page.
	// Concurrent access must be guarded by the caller.
	// Constructed by [NewTable].
	Table struct {
		flags []State
	}
	readOnly struct{ table *Table }
)

// NewTable creates a [Table] of pageCount pages,
// all of which start as [NotRefNotMod].
func NewTable(pageCount int) (*Table, error) {
	if pageCount <= 0 {
		return nil, sizeError("page count", pageCount)
	}
	return &Table{
		flags: make([]State, pageCount),
	}, nil
}

// Size returns the number of pages in the table.
func (t *Table) Size() int { return len(t.flags) }

// Get returns the state of page.
func (t *Table) Get(page int) (State, error) {
	if err := t.checkPage(page); err != nil {
		return NotRefNotMod, err
	}
	return t.flags[page], nil
}

// MarkReferenced sets the Referenced bit of page,
// leaving its Modified bit as is.
func (t *Table) MarkReferenced(page int) error {
	if err := t.checkPage(page); err != nil {
		return err
	}
	t.flags[page] = t.flags[page].reference()
	return nil
}

// MarkModified sets the Modified bit of page,
// leaving its Referenced bit as is.
func (t *Table) MarkModified(page int) error {
	if err := t.checkPage(page); err != nil {
		return err
	}
	t.flags[page] = t.flags[page].modify()
	return nil
}

// Tick clears the Referenced bit of every page.
// Modified bits are retained.
func (t *Table) Tick() {
	for page, state := range t.flags {
		t.flags[page] = state.tick()
	}
}

// All returns an iterator over page numbers
// and their states, in ascending page order.
func (t *Table) All() iter.Seq2[int, State] {
	return func(yield func(int, State) bool) {
		for page, state := range t.flags {
			if !yield(page, state) {
				return
			}
		}
	}
}

func (t *Table) checkPage(page int) error {
	if page < 0 || page >= len(t.flags) {
		return pageError(page, len(t.flags))
	}
	return nil
}

func (ro readOnly) Size() int                   { return ro.table.Size() }
func (ro readOnly) Get(page int) (State, error) { return ro.table.Get(page) }

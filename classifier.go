package nru

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"
)

type (
	// Classifier partitions pages into NRU classes
	// and selects eviction victims from them.
	// Classes are a snapshot of the last [Classifier.Classify] call
	// and are not updated when the underlying table changes.
	// Concurrent access must be guarded by the caller.
	// Constructed by [NewClassifier].
	Classifier struct {
		rng     *rand.Rand
		classes [ClassCount][]int
	}
	// Option configures a [Classifier].
	Option func(*Classifier)
)

// WithRand sets the source used to pick
// a victim from within a class.
func WithRand(rng *rand.Rand) Option {
	return func(c *Classifier) { c.rng = rng }
}

// NewClassifier creates a [Classifier] with empty classes.
// If no source is provided via [WithRand],
// the classifier seeds its own.
func NewClassifier(options ...Option) *Classifier {
	classifier := new(Classifier)
	for _, apply := range options {
		apply(classifier)
	}
	if classifier.rng == nil {
		classifier.rng = rand.New(
			rand.NewPCG(rand.Uint64(), rand.Uint64()),
		)
	}
	return classifier
}

// Classify rebuilds every class from view.
// Pages are appended in ascending order to
// the class matching their [State].
// If the view returns an error, all classes are left empty.
func (c *Classifier) Classify(view View) error {
	c.clear()
	pageCount := view.Size()
	for page := range pageCount {
		state, err := view.Get(page)
		if err != nil {
			c.clear()
			return err
		}
		if !state.valid() {
			c.clear()
			return fmt.Errorf(
				"page %d has invalid state: %d",
				page, state)
		}
		c.classes[state] = append(c.classes[state], page)
	}
	if debugging {
		assert(c.Len() == pageCount,
			"classes do not partition the table")
	}
	return nil
}

func (c *Classifier) clear() {
	for i := range c.classes {
		c.classes[i] = c.classes[i][:0]
	}
}

// Victim returns a page chosen uniformly from the
// lowest non-empty class.
func (c *Classifier) Victim() (int, error) {
	for _, class := range c.classes {
		if len(class) == 0 {
			continue
		}
		return class[c.rng.IntN(len(class))], nil
	}
	return -1, ErrNoPages
}

// Class returns a copy of the pages in the class for state.
func (c *Classifier) Class(state State) []int {
	if !state.valid() {
		return nil
	}
	return slices.Clone(c.classes[state])
}

// Len returns the number of classified pages.
func (c *Classifier) Len() int {
	var total int
	for _, class := range c.classes {
		total += len(class)
	}
	return total
}

// WriteTo writes the size and members of each class to w.
func (c *Classifier) WriteTo(w io.Writer) (int64, error) {
	const width = 80
	var (
		rule  = strings.Repeat("=", width)
		title = " NRU stats "
		side  = strings.Repeat("~", (width-len(title))/2)
		out   strings.Builder
	)
	fmt.Fprintln(&out, rule)
	fmt.Fprintln(&out, side+title+side)
	for class, pages := range c.classes {
		fmt.Fprintf(&out, "Class %d (%s) - %d pages total\n",
			class, State(class), len(pages))
		fmt.Fprintf(&out, "Class %d pages: %v\n", class, pages)
	}
	fmt.Fprintln(&out, rule)
	n, err := io.WriteString(w, out.String())
	return int64(n), err
}

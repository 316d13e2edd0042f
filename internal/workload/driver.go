package workload

import (
	"fmt"
	"log/slog"

	"github.com/djdv/go-nru"
)

type (
	// Sample is the outcome of one clock tick.
	Sample struct {
		// Tick counts from 1.
		Tick int
		// Access is the number of accesses replayed before this tick.
		Access int
		// Victim is the page selected for eviction,
		// and State its state at the time of selection.
		Victim int
		State  nru.State
		// Classes holds the size of each NRU class.
		Classes [nru.ClassCount]int
	}
	// Recorder receives a [Sample] on every tick.
	Recorder interface {
		Record(Sample) error
	}
	// Summary counts what a [Driver] did.
	Summary struct {
		Reads, Writes, Ticks int
		// Victims counts selected victims by class.
		Victims [nru.ClassCount]int
	}
	// Driver replays accesses against a [nru.Memory]
	// and periodically selects a victim, then ticks the clock.
	// Constructed by [NewDriver].
	Driver struct {
		memory       *nru.Memory
		classifier   *nru.Classifier
		recorder     Recorder
		log          *slog.Logger
		tickInterval int
	}
	// DriverOption configures a [Driver].
	DriverOption func(*Driver)
)

// WithRecorder sends every [Sample] to recorder.
func WithRecorder(recorder Recorder) DriverOption {
	return func(d *Driver) { d.recorder = recorder }
}

// WithLogger sets the logger used for per-tick diagnostics.
func WithLogger(log *slog.Logger) DriverOption {
	return func(d *Driver) { d.log = log }
}

// NewDriver creates a [Driver] which ticks
// every tickInterval accesses.
func NewDriver(
	memory *nru.Memory, classifier *nru.Classifier,
	tickInterval int, options ...DriverOption,
) (*Driver, error) {
	if tickInterval <= 0 {
		return nil, intervalError(tickInterval)
	}
	driver := &Driver{
		memory:       memory,
		classifier:   classifier,
		tickInterval: tickInterval,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, apply := range options {
		apply(driver)
	}
	return driver, nil
}

// Run replays accesses in order. The first failed
// access or recording stops the run.
func (d *Driver) Run(accesses []Access) (Summary, error) {
	var summary Summary
	for i, access := range accesses {
		if err := d.replay(access, &summary); err != nil {
			return summary, fmt.Errorf("access %d: %w", i, err)
		}
		if (i+1)%d.tickInterval != 0 {
			continue
		}
		if err := d.tick(i+1, &summary); err != nil {
			return summary, fmt.Errorf("tick %d: %w", summary.Ticks+1, err)
		}
	}
	return summary, nil
}

func (d *Driver) replay(access Access, summary *Summary) error {
	if access.Write {
		if err := d.memory.Write(access.Address, byte(access.Address)); err != nil {
			return err
		}
		summary.Writes++
		return nil
	}
	if _, err := d.memory.Read(access.Address); err != nil {
		return err
	}
	summary.Reads++
	return nil
}

func (d *Driver) tick(accessCount int, summary *Summary) error {
	view := d.memory.Table()
	if err := d.classifier.Classify(view); err != nil {
		return err
	}
	victim, err := d.classifier.Victim()
	if err != nil {
		return err
	}
	state, err := view.Get(victim)
	if err != nil {
		return err
	}
	summary.Ticks++
	summary.Victims[state]++
	sample := Sample{
		Tick:   summary.Ticks,
		Access: accessCount,
		Victim: victim,
		State:  state,
	}
	for class := range sample.Classes {
		sample.Classes[class] = len(d.classifier.Class(nru.State(class)))
	}
	d.log.Debug("tick",
		"tick", sample.Tick,
		"victim", victim,
		"state", state,
		"classes", sample.Classes,
	)
	if d.recorder != nil {
		if err := d.recorder.Record(sample); err != nil {
			return err
		}
	}
	d.memory.Reset()
	return nil
}

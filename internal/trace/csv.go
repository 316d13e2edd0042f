// Package trace records driver samples to disk.
package trace

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/djdv/go-nru/internal/workload"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVWriter stores every [workload.Sample] as a row of a CSV file.
// Rows are buffered and written when the buffer fills,
// on [CSVWriter.Flush], or when the program exits via [atexit.Exit].
type CSVWriter struct {
	path       string
	file       *os.File
	out        *bufio.Writer
	samples    []workload.Sample
	bufferSize int
}

const header = "Tick, Access, Victim, State, Class0, Class1, Class2, Class3\n"

// NewCSVWriter creates a [CSVWriter] for path, without the ".csv" extension.
// If path is empty, a unique name is generated on [CSVWriter.Init].
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the trace file.
// An existing file is never overwritten.
func (w *CSVWriter) Init() error {
	if w.path == "" {
		w.path = "nru_trace_" + xid.New().String()
	}
	filename := w.Path()
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating trace: %w", err)
	}
	if err := w.start(file); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}
	atexit.Register(func() {
		if err := w.Close(); err != nil {
			fmt.Fprintln(os.Stderr, "closing trace:", err)
		}
	})
	return nil
}

// start writes the header to file, closing it on failure.
func (w *CSVWriter) start(file *os.File) error {
	out := bufio.NewWriter(file)
	if _, err := out.WriteString(header); err != nil {
		return errors.Join(err, file.Close())
	}
	if err := out.Flush(); err != nil {
		return errors.Join(err, file.Close())
	}
	w.file = file
	w.out = out
	return nil
}

// Path returns the name of the trace file.
func (w *CSVWriter) Path() string { return w.path + ".csv" }

// Record implements [workload.Recorder].
func (w *CSVWriter) Record(sample workload.Sample) error {
	w.samples = append(w.samples, sample)
	if len(w.samples) >= w.bufferSize {
		return w.Flush()
	}
	return nil
}

// Flush writes buffered samples to the file.
func (w *CSVWriter) Flush() error {
	if w.file == nil {
		return nil
	}
	for _, sample := range w.samples {
		if _, err := fmt.Fprintf(w.out, "%d, %d, %d, %s, %d, %d, %d, %d\n",
			sample.Tick,
			sample.Access,
			sample.Victim,
			sample.State,
			sample.Classes[0],
			sample.Classes[1],
			sample.Classes[2],
			sample.Classes[3],
		); err != nil {
			return err
		}
	}
	w.samples = nil
	return w.out.Flush()
}

// Close flushes and closes the file.
// Closing more than once is not an error.
func (w *CSVWriter) Close() error {
	if w.file == nil {
		return nil
	}
	flushErr := w.Flush()
	closeErr := w.file.Close()
	w.file = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

package write

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteSettings configures where per-iteration solver values are written.
type WriteSettings struct {
	TraceWriters []Writer // Where the iteration trace is written. Empty means no trace
}

// DefaultWriteSettings returns settings with no writers. Tracing is opt-in
// so that solvers produce no output unless asked to.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the solver run for
	// future postprocessing. The data is written as csv with one row per
	// iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the solver.
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display writes the per-iteration values contributed by the registered
// DataAdders. Displayer writers only print at specific times, Logger writers
// log every iteration. Assumption is that headings don't change over a run.
type Display struct {
	traceValues []*Value

	headings []string
	values   []string

	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder
}

func NewDisplay() *Display {
	// return settings so that headings and values are displayed on first iteration
	return &Display{
		lastHeadingDisplay: headingInterval + 1,
		lastValueDisplay:   time.Now().Add(-valueInterval),
	}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.traceValues = d.traceValues[:0]
	for _, add := range d.dataAdders {
		d.traceValues = add.AppendWriteData(d.traceValues)
	}
}

// Init initializes the writers according to their Type. Logger writers get
// their csv header row written immediately.
func (d *Display) Init(w *WriteSettings) error {
	d.existsDisplayer = false
	d.existsLogger = false
	d.writers = nil
	if w == nil || len(w.TraceWriters) == 0 {
		return nil
	}
	d.writers = w.TraceWriters

	d.accumulateValues()
	d.headings = d.headings[:0]
	for _, dat := range d.traceValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, wr := range d.writers {
		switch wr.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			d.existsLogger = true
			if err := writeCSVRow(wr, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
		}
	}
	return nil
}

// Iterate is the write action performed at every iteration of the solver,
// according to the Writers and dataAdders set during initialization
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}

	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		// Limit printing with really quick functions
		displayValues = time.Since(d.lastValueDisplay) > valueInterval
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		// Display headings again after a certain number of value printings
		displayHeadings = d.lastHeadingDisplay > headingInterval
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	if !d.existsLogger && !displayValues && !displayHeadings {
		return nil
	}

	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.traceValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}
	for _, w := range d.writers {
		switch w.T {
		default:
			panic("write: unknown writer type")
		case Logger:
			if err := writeCSVRow(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := w.Write([]byte("\n")); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, fields []string) error {
	for i, field := range fields {
		if _, err := w.Write([]byte(field)); err != nil {
			return err
		}
		if i != len(fields)-1 {
			if _, err := w.Write([]byte(",")); err != nil {
				return err
			}
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := w.Write([]byte(s)); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("\n"))
	return err
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

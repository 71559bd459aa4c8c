package diagnostics

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Collector is an append-only list of events. It is not safe for concurrent use.
type Collector struct {
	events   []Event
	failures int

	// Logger receives every recorded event at debug level, it may be nil.
	Logger *logrus.Entry
}

// NewCollector creates a collector that logs to logger (which may be nil).
func NewCollector(logger *logrus.Entry) *Collector {
	return &Collector{Logger: logger}
}

// Record appends an event.
func (c *Collector) Record(e Event) {
	c.events = append(c.events, e)
	if e.Kind.Failure() {
		c.failures++
	}

	if c.Logger != nil {
		c.Logger.WithField("kind", e.Kind.String()).Debug(e.Message)
	}
}

func (c *Collector) Found(format string, args ...interface{}) {
	c.Record(Event{Kind: KindFound, Message: fmt.Sprintf(format, args...)})
}

func (c *Collector) NotFound(format string, args ...interface{}) {
	c.Record(Event{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)})
}

func (c *Collector) Error(format string, args ...interface{}) {
	c.Record(Event{Kind: KindError, Message: fmt.Sprintf(format, args...)})
}

// Events returns a copy of the recorded events in the order they were recorded.
func (c *Collector) Events() []Event {
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *Collector) Len() int {
	return len(c.events)
}

// Failures returns the number of failure events recorded so far. Comparing the
// value before and after a step tells whether that step failed.
func (c *Collector) Failures() int {
	return c.failures
}

func (c *Collector) Failed() bool {
	return c.failures > 0
}

// Merge appends all events of other, keeping their order.
func (c *Collector) Merge(other *Collector) {
	if other == nil {
		return
	}
	for _, e := range other.events {
		c.events = append(c.events, e)
		if e.Kind.Failure() {
			c.failures++
		}
	}
}

// Digest bundles the recorded events with a summary.
func (c *Collector) Digest(summary string) *Digest {
	return &Digest{
		Summary: summary,
		Events:  c.Events(),
	}
}

// RaiseIfFatal returns the digest as error if fatal is set. Otherwise it only
// returns the events collected so far.
func (c *Collector) RaiseIfFatal(fatal bool, summary string) ([]Event, error) {
	if !fatal {
		return c.Events(), nil
	}
	return c.Events(), c.Digest(summary)
}

// Digest is the aggregated failure report of one scan.
type Digest struct {
	Summary string
	Events  []Event

	// ScanID correlates the digest with log output, it may be empty.
	ScanID string
	// Cause is returned by Unwrap.
	Cause error
}

func (d *Digest) render(colored bool) string {
	var sb strings.Builder
	sb.WriteString(d.Summary)
	for _, e := range d.Events {
		sb.WriteString("\n")
		sb.WriteString(e.Kind.colorGlyph(colored))
		sb.WriteString(" ")
		sb.WriteString(e.Message)
	}
	return sb.String()
}

// Error never contains colour codes.
func (d *Digest) Error() string {
	return d.render(false)
}

// Fprint writes the digest followed by a newline. The glyphs are coloured
// only when w is a terminal and NO_COLOR is not set.
func (d *Digest) Fprint(w io.Writer) error {
	_, err := io.WriteString(w, d.render(IsTerminal(w))+"\n")
	return err
}

// FprintEvents writes one line per event, coloured like Digest.Fprint.
func FprintEvents(w io.Writer, events []Event) error {
	colored := IsTerminal(w)
	for _, e := range events {
		if _, err := fmt.Fprintln(w, e.Kind.colorGlyph(colored), e.Message); err != nil {
			return err
		}
	}
	return nil
}

// IsTerminal reports whether colour output makes sense on w.
func IsTerminal(w io.Writer) bool {
	if _, found := os.LookupEnv("NO_COLOR"); found {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (d *Digest) Unwrap() error {
	return d.Cause
}

// SPDX-License-Identifier: MIT

// Package elimination - diagnostic trace side channel.
//
// Purpose:
//   - Let callers observe every sub-step of an elimination run (swap, scale,
//     eliminate) without the kernels printing anything themselves.
//   - Events carry a deep-copied snapshot, so sinks may keep them freely.
//
// Behavior highlights:
//   - Snapshots are only built when a Tracer is installed.
//   - Tracers never influence the computed result; their return is not consumed.

package elimination

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/linsolve/matrix"
)

// EventKind classifies a trace event.
type EventKind int

const (
	// EventSwap follows a pivot row exchange.
	EventSwap EventKind = iota + 1
	// EventScale follows normalizing the pivot row (Gauss-Jordan only).
	EventScale
	// EventEliminate follows clearing one row against the pivot row.
	EventEliminate
)

// String returns a lowercase name suitable for log attributes.
func (k EventKind) String() string {
	switch k {
	case EventSwap:
		return "swap"
	case EventScale:
		return "scale"
	case EventEliminate:
		return "eliminate"
	default:
		return "unknown"
	}
}

// Event describes the matrix state right after one elimination sub-step.
type Event struct {
	Op     string    // "Solve" or "Decompose"
	Kind   EventKind // sub-step classification
	Step   int       // zero-based elimination step
	Row    int       // row that was mutated (for swaps: the pivot position)
	Source int       // pivot row used as source (for swaps: the row swapped in)
	Factor float64   // scale: 1/pivot (±Inf for a subnormal pivot), eliminate: row factor
	Label  string    // human-readable, 1-based description

	// Snapshot is a private copy of the working state: the augmented
	// [A|b] matrix for Solve, the partially reduced U for Decompose.
	Snapshot *matrix.Dense
}

// Tracer is the diagnostic sink invoked at every checkpoint.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts an ordinary function to Tracer.
type TracerFunc func(ev Event)

// Trace calls f(ev).
func (f TracerFunc) Trace(ev Event) { f(ev) }

// Recorder keeps every event in memory, in emission order.
// Not safe for concurrent use; install one Recorder per call.
type Recorder struct {
	Events []Event
}

// Trace appends ev.
func (r *Recorder) Trace(ev Event) { r.Events = append(r.Events, ev) }

// Labels returns the labels of all recorded events.
func (r *Recorder) Labels() []string {
	out := make([]string, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Label
	}

	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }

// defaultTracePrecision is the number of decimals used for snapshot attributes.
const defaultTracePrecision = 4

// SlogTracer writes each event as one structured log record.
type SlogTracer struct {
	logger *slog.Logger
	level  slog.Level
	prec   int
}

// NewSlogTracer returns a tracer logging at Debug level through logger.
// A nil logger falls back to slog.Default().
func NewSlogTracer(logger *slog.Logger) *SlogTracer {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogTracer{logger: logger, level: slog.LevelDebug, prec: defaultTracePrecision}
}

// WithLevel returns a copy of t that logs at level.
func (t *SlogTracer) WithLevel(level slog.Level) *SlogTracer {
	cp := *t
	cp.level = level

	return &cp
}

// WithPrecision returns a copy of t that renders snapshots with prec decimals.
func (t *SlogTracer) WithPrecision(prec int) *SlogTracer {
	cp := *t
	cp.prec = prec

	return &cp
}

// Trace implements Tracer.
func (t *SlogTracer) Trace(ev Event) {
	ctx := context.Background()
	if !t.logger.Enabled(ctx, t.level) {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", ev.Op),
		slog.String("kind", ev.Kind.String()),
		slog.Int("step", ev.Step),
		slog.Int("row", ev.Row),
		slog.Int("source", ev.Source),
		slog.Float64("factor", ev.Factor),
	}
	if ev.Snapshot != nil {
		attrs = append(attrs, slog.String("matrix", ev.Snapshot.FormatFixed(t.prec)))
	}
	t.logger.LogAttrs(ctx, t.level, ev.Label, attrs...)
}

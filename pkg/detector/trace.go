package detector

import (
	"fmt"
	"io"
)

// Event describes one fired signal. Events exist for operator diagnosis only
// and never influence the detection result.
type Event struct {
	Framework string
	Type      SignalType
	Weight    int
	Detail    string
}

// Tracer receives one Event per fired signal when debug mode is on.
type Tracer interface {
	Record(Event)
}

// WriterTracer writes fired signals to an io.Writer, one line per event.
type WriterTracer struct {
	W io.Writer
}

func (t *WriterTracer) Record(e Event) {
	fmt.Fprintf(t.W, "%-14s %-10s +%d  %s\n", e.Framework, e.Type, e.Weight, e.Detail)
}

// CaptureTracer collects events in memory so callers can inspect them.
type CaptureTracer struct {
	Events []Event
}

func (t *CaptureTracer) Record(e Event) {
	t.Events = append(t.Events, e)
}

// record builds and delivers an event. The detail string is only formatted
// when a tracer is attached, so the non-debug path pays for nothing.
func record(tr Tracer, framework string, typ SignalType, weight int, format string, args ...any) {
	if tr == nil {
		return
	}
	tr.Record(Event{
		Framework: framework,
		Type:      typ,
		Weight:    weight,
		Detail:    fmt.Sprintf(format, args...),
	})
}

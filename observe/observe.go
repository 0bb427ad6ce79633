// Package observe is the structured event sink injected into the service
// facade and the JavaScript transports.
//
// The facade reports every call as a sequence of events sharing a call id:
//
//	call.start -> call.ok | call.failed | call.rejected
//
// call.rejected means local validation stopped the call before the native
// boundary; call.failed means the boundary reported a failure. Use
// LogObserver to route events to apex/log and Recorder to assert on them in
// tests.
package observe

import (
	"sync"
	"time"

	"github.com/apex/log"
)

// Event names.
const (
	CallStart    = "call.start"
	CallOK       = "call.ok"
	CallFailed   = "call.failed"
	CallRejected = "call.rejected"
	PageOverflow = "page.overflow"
	LinkFailed   = "link.failed"
)

// Event is one observation.
type Event struct {
	Name     string
	CallID   string
	Op       string
	Duration time.Duration
	Err      error
	Fields   map[string]any
}

// Observer receives events. Implementations must be safe for concurrent use.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// Observe calls f.
func (f ObserverFunc) Observe(ev Event) {
	f(ev)
}

// Discard drops every event.
var Discard Observer = ObserverFunc(func(Event) {})

// ValidObserverOrDefault returns o, or Discard when o is nil.
func ValidObserverOrDefault(o Observer) Observer {
	if o != nil {
		return o
	}
	return Discard
}

// LogObserver writes events to an apex/log logger.
type LogObserver struct {
	// Logger defaults to log.Log.
	Logger log.Interface
}

var _ Observer = &LogObserver{}

// Observe implements Observer.
func (o *LogObserver) Observe(ev Event) {
	logger := o.Logger
	if logger == nil {
		logger = log.Log
	}
	fields := log.Fields{"op": ev.Op}
	if ev.CallID != "" {
		fields["call"] = ev.CallID
	}
	if ev.Duration > 0 {
		fields["duration"] = ev.Duration.String()
	}
	for k, v := range ev.Fields {
		fields[k] = v
	}
	entry := logger.WithFields(fields)
	if ev.Err != nil {
		entry = entry.WithError(ev.Err)
	}
	switch ev.Name {
	case CallFailed, PageOverflow, LinkFailed:
		entry.Warn(ev.Name)
	case CallRejected:
		entry.Info(ev.Name)
	default:
		entry.Debug(ev.Name)
	}
}

// Recorder keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Observer = &Recorder{}

// Observe implements Observer.
func (r *Recorder) Observe(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Names returns the recorded event names in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Name)
	}
	return out
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

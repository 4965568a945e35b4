package errortracker

import (
	"sync"
)

// Recorder is an in-memory Tracker for other packages' tests.
type Recorder struct {
	mu       sync.Mutex
	Captured []CapturedException
}

func (r *Recorder) CaptureException(err error, tags map[string]string, extra map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Captured = append(r.Captured, CapturedException{Error: err.Error(), Tags: tags, Extra: extra})
}

func (r *Recorder) All() []CapturedException {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]CapturedException, len(r.Captured))
	copy(out, r.Captured)
	return out
}

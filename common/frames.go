package common

// Frames schedules display-refresh callbacks, the way
// requestAnimationFrame does in the browser.
type Frames interface {
	// Request schedules cb for the next frame and returns its handle.
	// cb receives a timestamp in milliseconds.
	Request(cb func(ts float64)) int

	// Cancel drops a pending request. Unknown handles are ignored.
	Cancel(id int)
}

// ManualFrames delivers frames only when Tick is called.
type ManualFrames struct {
	next    int
	pending map[int]func(float64)
	order   []int
}

// NewManualFrames returns an empty frame source.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{pending: make(map[int]func(float64))}
}

// Request implements Frames.
func (f *ManualFrames) Request(cb func(ts float64)) int {
	f.next++
	f.pending[f.next] = cb
	f.order = append(f.order, f.next)
	return f.next
}

// Cancel implements Frames.
func (f *ManualFrames) Cancel(id int) {
	delete(f.pending, id)
}

// Pending returns the number of outstanding requests.
func (f *ManualFrames) Pending() int {
	return len(f.pending)
}

// Tick delivers one frame at ts to every request made before the call.
// Requests made from inside a callback wait for the next Tick.
func (f *ManualFrames) Tick(ts float64) {
	order := f.order
	f.order = nil
	for _, id := range order {
		cb, ok := f.pending[id]
		if !ok {
			continue
		}
		delete(f.pending, id)
		cb(ts)
	}
}

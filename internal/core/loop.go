package core

import (
	"context"
	"time"
)

const inboxSize = 256

// Loop drives one physics step and one render step per frame on a single
// goroutine. Anything that mutates simulation state from elsewhere must go
// through Post so it runs between steps on the loop goroutine.
type Loop struct {
	physics  func(dt float64)
	render   func()
	clock    *FrameClock
	interval time.Duration
	inbox    chan func()
	frames   uint64
}

// NewLoop constructs a loop ticking at fps frames per second. Either callback
// may be nil.
func NewLoop(fps int, physics func(dt float64), render func()) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		physics:  physics,
		render:   render,
		clock:    NewFrameClock(),
		interval: time.Second / time.Duration(fps),
		inbox:    make(chan func(), inboxSize),
	}
}

// Post queues fn to run on the loop goroutine before the next physics step.
// It never blocks and reports false when the queue is full.
func (l *Loop) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	select {
	case l.inbox <- fn:
		return true
	default:
		return false
	}
}

// Frame runs queued mutations, then the physics step, then the render step.
func (l *Loop) Frame(dt float64) {
	l.drain()
	if l.physics != nil {
		l.physics(dt)
	}
	if l.render != nil {
		l.render()
	}
	l.frames++
}

// Frames reports how many frames have completed.
func (l *Loop) Frames() uint64 { return l.frames }

// Run ticks frames with measured wall-clock dt until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	l.clock.Reset()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Frame(l.clock.Tick())
		}
	}
}

// RunFrames executes n frames back to back with a fixed dt. Useful for
// deterministic headless rendering.
func (l *Loop) RunFrames(n int, dt float64) {
	for range n {
		l.Frame(dt)
	}
}

func (l *Loop) drain() {
	for {
		select {
		case fn := <-l.inbox:
			fn()
		default:
			return
		}
	}
}

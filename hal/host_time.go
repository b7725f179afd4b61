package hal

import "time"

// tickPeriod is the length of one Time tick.
const tickPeriod = time.Millisecond

// hostTime turns wall-clock progress between frames into millisecond ticks.
// Ticks are dropped, not queued, once the channel is full.
type hostTime struct {
	ch  chan uint64
	seq uint64

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step publishes the ticks elapsed since the previous call. The first call
// publishes n ticks to start the stream.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.publish(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now
	if ticks := uint64(t.acc / tickPeriod); ticks > 0 {
		t.acc %= tickPeriod
		t.publish(ticks)
	}
}

func (t *hostTime) publish(n uint64) {
	for ; n > 0; n-- {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}

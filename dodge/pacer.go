package dodge

import "time"

// Pacer throttles simulation passes to one per interval. It is polled
// every host frame; polls arriving too early are simply declined.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

func NewPacer(interval time.Duration, now time.Time) *Pacer {
	return &Pacer{interval: interval, last: now}
}

func (p *Pacer) Reset(now time.Time) {
	p.last = now
}

// Due reports whether more than one interval has elapsed since the last
// accepted pass, and if so records now as that pass.
func (p *Pacer) Due(now time.Time) bool {
	if now.Sub(p.last) <= p.interval {
		return false
	}
	p.last = now
	return true
}

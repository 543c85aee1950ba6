package dodge

// Dispatcher fans key presses out to one-shot listeners. It is driven
// from the game loop and is not safe for concurrent use.
type Dispatcher struct {
	nextID    int
	listeners map[int]*listener
}

type listener struct {
	match func(Key) bool
	done  chan struct{}
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[int]*listener)}
}

// AnyKey matches every key.
func AnyKey(Key) bool { return true }

// Once registers a listener that fires on the first key satisfying match.
// The returned channel is closed when it fires; the listener removes
// itself at that point. cancel unregisters it without firing.
func (d *Dispatcher) Once(match func(Key) bool) (done <-chan struct{}, cancel func()) {
	id := d.nextID
	d.nextID++

	l := &listener{match: match, done: make(chan struct{})}
	d.listeners[id] = l

	return l.done, func() {
		delete(d.listeners, id)
	}
}

func (d *Dispatcher) Dispatch(k Key) {
	for id, l := range d.listeners {
		if l.match(k) {
			delete(d.listeners, id)
			close(l.done)
		}
	}
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

func fired(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

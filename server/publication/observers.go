package publication

// observers is an ordered list of change callbacks. Callbacks are invoked
// synchronously in registration order.
type observers struct {
	nextID  int
	entries []observer
}

type observer struct {
	id int
	fn func()
}

// add registers fn and returns a func that removes it. Calling the returned
// func more than once is a no-op.
func (o *observers) add(fn func()) (off func()) {
	o.nextID++
	id := o.nextID

	o.entries = append(o.entries, observer{id: id, fn: fn})

	return func() {
		for i, entry := range o.entries {
			if entry.id == id {
				o.entries = append(o.entries[:i:i], o.entries[i+1:]...)

				return
			}
		}
	}
}

// notify iterates over a snapshot so observers can register or unregister
// from within a callback.
func (o *observers) notify() {
	if len(o.entries) == 0 {
		return
	}

	entries := make([]observer, len(o.entries))
	copy(entries, o.entries)

	for _, entry := range entries {
		entry.fn()
	}
}

func (o *observers) len() int {
	return len(o.entries)
}

package tween

// Callbacks holds the subscriber lists of a tween, one list per firing slot.
//
// Slots are coarser than events: Begin subscribes through Start's list,
// Complete through End's, and BackComplete through BackEnd's. A subscriber
// added for any event of a slot is invoked for every event of that slot and
// receives the event that actually fired, so a Start subscriber observing
// (Begin, Start, Start, ...) can tell the first entry apart from repeats.
//
// Registration is append-only. Subscribers must not register further
// callbacks on the same tween while a dispatch is in flight.
type Callbacks struct {
	start     []Callback
	end       []Callback
	backStart []Callback
	backEnd   []Callback
}

func (c *Callbacks) slot(ev Event) *[]Callback {
	switch ev {
	case Begin, Start:
		return &c.start
	case End, Complete:
		return &c.end
	case BackStart:
		return &c.backStart
	case BackEnd, BackComplete:
		return &c.backEnd
	}
	panic("tween: unknown event " + ev.String())
}

// Add appends cb to the slot serving ev.
func (c *Callbacks) Add(ev Event, cb Callback) {
	if cb == nil {
		return
	}
	list := c.slot(ev)
	*list = append(*list, cb)
}

// Fire invokes every subscriber of ev's slot in registration order, passing
// the event that fired.
func (c *Callbacks) Fire(ev Event, t *Tween) {
	list := *c.slot(ev)
	for i := 0; i < len(list); i++ {
		list[i](ev, t)
	}
}

func (c *Callbacks) reset() {
	c.start = nil
	c.end = nil
	c.backStart = nil
	c.backEnd = nil
}

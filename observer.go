package rollcube

// subscriber pairs a handler with the handle returned by Subscribe.
type subscriber struct {
	id int
	fn func()
}

// Subscribe registers fn to run after every successful mutation of the
// puzzle (Reset, CopyFrom, and each legal Move). Handlers run
// synchronously on the mutating goroutine, in subscription order, and
// carry no payload: they read the puzzle back through its accessors.
// Handlers must not mutate the same puzzle reentrantly.
//
// The returned handle identifies the subscription for Unsubscribe.
func (p *Puzzle) Subscribe(fn func()) int {
	p.nextSub++
	p.subs = append(p.subs, subscriber{id: p.nextSub, fn: fn})
	return p.nextSub
}

// Unsubscribe removes the subscription with the given handle. Unknown
// handles are ignored.
func (p *Puzzle) Unsubscribe(id int) {
	for i, s := range p.subs {
		if s.id == id {
			p.subs = append(p.subs[:i], p.subs[i+1:]...)
			return
		}
	}
}

// notify runs the handlers over a snapshot of the registry, so a handler
// may Unsubscribe during notification without skipping a sibling.
func (p *Puzzle) notify() {
	subs := make([]subscriber, len(p.subs))
	copy(subs, p.subs)
	for _, s := range subs {
		s.fn()
	}
}

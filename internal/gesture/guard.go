package gesture

// Guard ties globally attached pointer listeners to the lifetime of one
// session: acquired on session start, released unconditionally on session end
// or teardown. Release is idempotent so a teardown racing a pointer-up cannot
// detach twice.
type Guard struct {
	acquire AcquireFunc
	release func()
}

func newGuard(acquire AcquireFunc) *Guard {
	return &Guard{acquire: acquire}
}

// Acquire attaches the listeners if an acquire hook was provided.
func (g *Guard) Acquire() {
	if g.acquire == nil || g.release != nil {
		return
	}
	g.release = g.acquire()
}

// Release detaches the listeners. No-op when nothing is held.
func (g *Guard) Release() {
	if g.release == nil {
		return
	}
	g.release()
	g.release = nil
}

// Held reports whether the listeners are currently attached.
func (g *Guard) Held() bool {
	return g.release != nil
}

package websocket

// Semaphore caps how many safety monitoring connections may be held at
// once. Acquire never blocks; callers refuse the connection when no
// slot is free.
type Semaphore struct {
	slots chan struct{}
}

func NewSemaphore(maxConnections int) *Semaphore {
	return &Semaphore{
		slots: make(chan struct{}, maxConnections),
	}
}

// Acquire claims one slot, reporting false when the cap is reached.
func (s *Semaphore) Acquire() bool {
	select {
	case s.slots <- struct{}{}:
		return true
	default:
		return false
	}
}

// Release frees one slot. Releasing more than was acquired is a no-op.
func (s *Semaphore) Release() {
	select {
	case <-s.slots:
	default:
	}
}

// GetCurrentConnections reports the number of slots currently held.
func (s *Semaphore) GetCurrentConnections() int {
	return len(s.slots)
}

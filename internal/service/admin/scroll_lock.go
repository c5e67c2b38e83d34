package admin

import "sync"

// ScrollLock is a reference-counted lock held while any admin console is
// open. The console UI disables page scrolling while it is locked.
type ScrollLock struct {
	mu       sync.Mutex
	holders  int
	onChange func(locked bool)
}

// NewScrollLock creates an unlocked ScrollLock. onChange, if set, is called
// on every transition between locked and unlocked.
func NewScrollLock(onChange func(locked bool)) *ScrollLock {
	return &ScrollLock{onChange: onChange}
}

// Acquire takes one hold on the lock. The returned release func drops it;
// calling release more than once has no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	if l.holders == 1 && l.onChange != nil {
		l.onChange(true)
	}
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.holders--
			if l.holders == 0 && l.onChange != nil {
				l.onChange(false)
			}
		})
	}
}

// Locked reports whether any holder remains.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

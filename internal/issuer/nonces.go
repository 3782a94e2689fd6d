package issuer

import (
	"sync"
	"time"
)

// nonceCache remembers nonces handed out during the last one or two
// rotation periods.
type nonceCache struct {
	lock    sync.Mutex
	past    map[string]bool
	present map[string]bool
	rotated time.Time
	period  time.Duration
	now     func() time.Time
}

func newNonceCache(period time.Duration) *nonceCache {
	return &nonceCache{
		past:    map[string]bool{},
		present: map[string]bool{},
		rotated: time.Now(),
		period:  period,
		now:     time.Now,
	}
}

// Add records k and reports false if k was already seen.
func (n *nonceCache) Add(k string) bool {
	n.lock.Lock()
	defer n.lock.Unlock()

	if now := n.now(); now.Sub(n.rotated) >= n.period {
		n.past = n.present
		n.present = map[string]bool{}
		n.rotated = now
	}
	if n.present[k] || n.past[k] {
		return false
	}
	n.present[k] = true
	return true
}

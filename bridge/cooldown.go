package bridge

import (
	"strconv"
	"time"

	"github.com/admediate/admediate-server/session"
)

// lastFireKey is the session store entry recording the moment of the most
// recent admitted trigger, as decimal epoch milliseconds.
const lastFireKey = "last_ad_time"

// Gate admits at most one trigger per cooldown window within a session.
type Gate struct {
	store      session.Store
	clock      Clock
	cooldownMS int64
}

func NewGate(store session.Store, clock Clock, cooldown time.Duration) *Gate {
	return &Gate{
		store:      store,
		clock:      clock,
		cooldownMS: int64(cooldown / time.Millisecond),
	}
}

// Admit reports whether enough time has passed since the session's last
// admitted trigger. A stored value that does not parse as a non-negative
// integer is treated as absent.
func (g *Gate) Admit(sid string) bool {
	raw, found := g.store.Get(sid, lastFireKey)
	if !found {
		return true
	}
	last, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || last < 0 {
		return true
	}
	return g.clock.NowMillis()-last >= g.cooldownMS
}

// mark records the current time as the session's last admitted trigger.
func (g *Gate) mark(sid string) error {
	return g.store.Set(sid, lastFireKey, strconv.FormatInt(g.clock.NowMillis(), 10))
}

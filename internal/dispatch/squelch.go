package dispatch

import (
	"sync"
	"time"
)

// DefaultSquelchWindow is how long a conversation stays muted after a
// squelch command.
const DefaultSquelchWindow = 10 * time.Minute

// Squelch tracks per-conversation mute expiries. State lives only for the
// process lifetime; restarts unmute everything.
type Squelch struct {
	window time.Duration
	now    func() time.Time

	mu     sync.Mutex
	expiry map[string]time.Time
}

func NewSquelch(window time.Duration) *Squelch {
	if window <= 0 {
		window = DefaultSquelchWindow
	}
	return &Squelch{
		window: window,
		now:    time.Now,
		expiry: make(map[string]time.Time),
	}
}

// Set mutes or unmutes a conversation. Muting starts a fresh window;
// unmuting moves the expiry to now, which is equivalent to no entry.
// Direct messages (empty conversation id) cannot be squelched.
func (s *Squelch) Set(conversation string, on bool) {
	if conversation == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.expiry[conversation] = s.now().Add(s.window)
	} else {
		s.expiry[conversation] = s.now()
	}
}

// Active reports whether the conversation is currently muted. An expiry at
// or before now counts as not muted.
func (s *Squelch) Active(conversation string) bool {
	if conversation == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.expiry[conversation]
	return ok && exp.After(s.now())
}

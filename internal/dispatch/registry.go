package dispatch

import (
	"sort"
	"sync"

	"github.com/sandevgo/heraldbot/internal/core"
)

// Registry holds the registered command and listener specs in insertion
// order and performs trigger matching. Registration happens during startup;
// the collections are effectively immutable once dispatching begins.
type Registry struct {
	mu        sync.RWMutex
	commands  []core.Command
	listeners []core.Listener
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) AddCommand(cmd core.Command) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
}

func (r *Registry) AddListener(l core.Listener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, l)
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []core.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// CommandMatch is the winning command for a message plus the argument text
// left after the matched trigger.
type CommandMatch struct {
	Command core.Command
	Length  int
	Rest    string
}

// MatchCommand finds the best command for text, which must already have any
// address prompt stripped. Triggers are tested anchored at offset 0. While
// the conversation is squelched only core commands are candidates. The
// longest matched substring wins; on a tie the first-registered command
// keeps the slot.
func (r *Registry) MatchCommand(text string, squelched bool) (CommandMatch, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := CommandMatch{Length: -1}
	for _, cmd := range r.commands {
		n := cmd.Trigger.MatchStart(text)
		if n < 0 {
			continue
		}
		if squelched && !cmd.Core {
			continue
		}
		if n > best.Length {
			best = CommandMatch{Command: cmd, Length: n, Rest: text[n:]}
		}
	}
	if best.Length < 0 {
		return CommandMatch{}, false
	}
	return best, true
}

// ListenerMatch is one listener candidate with the substring its trigger
// matched.
type ListenerMatch struct {
	Listener core.Listener
	Match    string
}

// MatchListeners returns every listener whose trigger matches anywhere in
// text, ordered by descending matched length so the most specific candidate
// is tried first. The sort is stable, so equal-length candidates keep
// registration order.
func (r *Registry) MatchListeners(text string) []ListenerMatch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []ListenerMatch
	for _, l := range r.listeners {
		if m, ok := l.Trigger.Find(text); ok {
			out = append(out, ListenerMatch{Listener: l, Match: m})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Match) > len(out[j].Match)
	})
	return out
}

package dispatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/heraldbot/internal/core"
)

func noopCommand(name, expr string, isCore bool) core.Command {
	return core.Command{
		Name:    name,
		Trigger: core.MustTrigger(expr),
		Core:    isCore,
		Handler: func(ctx context.Context, route core.Route, args []string) error { return nil },
	}
}

func noopListener(name, expr string) core.Listener {
	return core.Listener{
		Name:    name,
		Trigger: core.MustTrigger(expr),
		Handler: func(ctx context.Context, route core.Route, message string) (bool, error) { return false, nil },
	}
}

func TestMatchCommand_AnchoredAtStart(t *testing.T) {
	reg := NewRegistry()
	reg.AddCommand(noopCommand("ping", `ping\b`, false))

	_, ok := reg.MatchCommand("well ping", false)
	assert.False(t, ok, "a match past offset 0 is not a command match")

	m, ok := reg.MatchCommand("ping now", false)
	require.True(t, ok)
	assert.Equal(t, "ping", m.Command.Name)
	assert.Equal(t, 4, m.Length)
	assert.Equal(t, " now", m.Rest)
}

func TestMatchCommand_LongestWins(t *testing.T) {
	reg := NewRegistry()
	reg.AddCommand(noopCommand("short", `ping`, false))
	reg.AddCommand(noopCommand("long", `ping st\w+`, false))

	m, ok := reg.MatchCommand("ping status", false)
	require.True(t, ok)
	assert.Equal(t, "long", m.Command.Name)
	assert.Equal(t, len("ping status"), m.Length)
}

func TestMatchCommand_TieKeepsFirstRegistered(t *testing.T) {
	reg := NewRegistry()
	reg.AddCommand(noopCommand("first", `deploy`, false))
	reg.AddCommand(noopCommand("second", `deploy`, false))

	m, ok := reg.MatchCommand("deploy web", false)
	require.True(t, ok)
	assert.Equal(t, "first", m.Command.Name)
}

func TestMatchCommand_SquelchedKeepsOnlyCore(t *testing.T) {
	reg := NewRegistry()
	reg.AddCommand(noopCommand("chatty", `status`, false))
	reg.AddCommand(noopCommand("vital", `status`, true))

	m, ok := reg.MatchCommand("status", true)
	require.True(t, ok)
	assert.Equal(t, "vital", m.Command.Name)

	reg2 := NewRegistry()
	reg2.AddCommand(noopCommand("chatty", `status`, false))
	_, ok = reg2.MatchCommand("status", true)
	assert.False(t, ok, "a non-core command is no candidate while squelched")

	_, ok = reg2.MatchCommand("status", false)
	assert.True(t, ok)
}

func TestMatchListeners_Unanchored(t *testing.T) {
	reg := NewRegistry()
	reg.AddListener(noopListener("coffee", `coffee`))

	got := reg.MatchListeners("anyone up for coffee today?")
	require.Len(t, got, 1)
	assert.Equal(t, "coffee", got[0].Listener.Name)
	assert.Equal(t, "coffee", got[0].Match)
}

func TestMatchListeners_OrderedByDescendingMatchLength(t *testing.T) {
	reg := NewRegistry()
	reg.AddListener(noopListener("broad", `build`))
	reg.AddListener(noopListener("specific", `build failed on \w+`))
	reg.AddListener(noopListener("medium", `build failed`))

	got := reg.MatchListeners("the build failed on main again")
	require.Len(t, got, 3)
	assert.Equal(t, "specific", got[0].Listener.Name)
	assert.Equal(t, "medium", got[1].Listener.Name)
	assert.Equal(t, "broad", got[2].Listener.Name)
}

func TestMatchListeners_StableOnEqualLength(t *testing.T) {
	reg := NewRegistry()
	reg.AddListener(noopListener("one", `alpha`))
	reg.AddListener(noopListener("two", `bravo`))

	got := reg.MatchListeners("alpha bravo")
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Listener.Name)
	assert.Equal(t, "two", got[1].Listener.Name)
}

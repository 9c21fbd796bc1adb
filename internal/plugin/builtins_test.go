package plugin

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/heraldbot/internal/core"
	"github.com/sandevgo/heraldbot/internal/dispatch"
)

type stubRoute struct {
	conversation string

	mu     sync.Mutex
	sent   []string
	direct []string
}

func (r *stubRoute) Conversation() string { return r.conversation }

func (r *stubRoute) Send(ctx context.Context, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, text)
	return nil
}

func (r *stubRoute) Direct() core.Route { return &stubDirect{parent: r} }

type stubDirect struct {
	parent *stubRoute
}

func (r *stubDirect) Conversation() string { return "" }

func (r *stubDirect) Send(ctx context.Context, text string) error {
	r.parent.mu.Lock()
	defer r.parent.mu.Unlock()
	r.parent.direct = append(r.parent.direct, text)
	return nil
}

func (r *stubDirect) Direct() core.Route { return r }

func newBotEngine() *dispatch.Engine {
	e := dispatch.New(dispatch.Config{
		Names:         []string{"herald"},
		SquelchWindow: 10 * time.Minute,
	})
	RegisterBuiltins(e, []string{"herald"})
	return e
}

func TestBuiltins_Ping(t *testing.T) {
	e := newBotEngine()

	route := &stubRoute{conversation: ""}
	e.HandleMessage(context.Background(), route, "ping")

	assert.Equal(t, []string{"pong"}, route.sent)
}

func TestBuiltins_SquelchCycle(t *testing.T) {
	e := newBotEngine()
	ctx := context.Background()

	route := &stubRoute{conversation: "room-1"}
	e.HandleMessage(ctx, route, "herald: squelch")

	assert.True(t, e.Squelched("room-1"))
	assert.Empty(t, route.sent, "confirmation goes to the direct channel")
	assert.Len(t, route.direct, 1)

	// Core commands still work while squelched.
	e.HandleMessage(ctx, route, "herald: unsquelch")
	assert.False(t, e.Squelched("room-1"))
}

func TestBuiltins_SquelchInDirectChatIsRefused(t *testing.T) {
	e := newBotEngine()

	route := &stubRoute{conversation: ""}
	e.HandleMessage(context.Background(), route, "squelch")

	assert.False(t, e.Squelched(""))
	require.Len(t, route.sent, 1)
	assert.Contains(t, route.sent[0], "nothing to squelch")
}

func TestBuiltins_HelpListsCommands(t *testing.T) {
	e := newBotEngine()

	route := &stubRoute{conversation: ""}
	e.HandleMessage(context.Background(), route, "help")

	require.Len(t, route.sent, 1)
	for _, want := range []string{"ping", "squelch", "unsquelch", "help"} {
		assert.True(t, strings.Contains(route.sent[0], want), "help should mention %q", want)
	}
}

func TestBuiltins_MentionListener(t *testing.T) {
	e := newBotEngine()

	route := &stubRoute{conversation: "room-1"}
	e.HandleMessage(context.Background(), route, "is herald awake?")

	assert.Equal(t, []string{"You called?"}, route.sent)
}

func TestBuiltins_ActivityListenerStaysQuiet(t *testing.T) {
	e := newBotEngine()

	route := &stubRoute{conversation: "room-1"}
	e.HandleMessage(context.Background(), route, "nothing of note")

	assert.Empty(t, route.sent)
	assert.Empty(t, route.direct)
}

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleRoute_IsDirect(t *testing.T) {
	route := newConsoleRoute(&bytes.Buffer{})

	assert.Equal(t, "", route.Conversation())
	assert.Same(t, route, route.Direct())
}

func TestConsoleRoute_SendWritesLine(t *testing.T) {
	var out bytes.Buffer
	route := newConsoleRoute(&out)

	err := route.Send(context.Background(), "pong")
	assert.NoError(t, err)
	assert.Equal(t, "pong\n", out.String())
}

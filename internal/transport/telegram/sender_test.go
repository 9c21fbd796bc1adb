package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHTML_ShortTextSingleChunk(t *testing.T) {
	chunks := splitHTML("pong", 4000)
	assert.Equal(t, []string{"pong"}, chunks)
}

func TestSplitHTML_PrefersNewlineBreaks(t *testing.T) {
	text := strings.Repeat("a", 60) + "\n" + strings.Repeat("b", 60)
	chunks := splitHTML(text, 100)

	assert.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("a", 60), chunks[0])
	assert.Equal(t, strings.Repeat("b", 60), chunks[1])
}

func TestSplitHTML_HardCutWithoutNewlines(t *testing.T) {
	text := strings.Repeat("x", 250)
	chunks := splitHTML(text, 100)

	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

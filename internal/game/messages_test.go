package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for i := range 5 {
		l.Add(float64(i), fmt.Sprintf("msg %d", i), MsgInfo)
	}
	require.Len(t, l.Messages, 3)
	assert.Equal(t, "msg 2", l.Messages[0].Text)
	assert.Equal(t, "msg 4", l.Messages[2].Text)
	assert.Equal(t, 4.0, l.Messages[2].Day)
}

func TestMessageLogWrapsLongLines(t *testing.T) {
	l := NewMessageLog(10)
	long := strings.Repeat("word ", 20)
	l.Add(1, long, MsgWarning)
	require.Greater(t, len(l.Messages), 1)
	for _, m := range l.Messages {
		assert.LessOrEqual(t, len(m.Text), commsWidth)
		assert.Equal(t, MsgWarning, m.Priority)
	}
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrapText("short", 10))
	assert.Equal(t, []string{"one two", "three"}, wrapText("one two three", 9))
	assert.Equal(t, []string{"a", "enormousword", "b"}, wrapText("a enormousword b", 5))
}

func TestRecent(t *testing.T) {
	l := NewMessageLog(10)
	assert.Empty(t, l.Recent(4))
	l.Add(0, "a", MsgInfo)
	l.Add(0, "b", MsgNav)
	got := l.Recent(4)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Text)
	assert.Len(t, l.Recent(1), 1)
}

func TestMsgPriorityName(t *testing.T) {
	assert.Equal(t, "Contact", MsgPriorityName(MsgContact))
	assert.Equal(t, "Unknown", MsgPriorityName(MsgPriority(99)))
}

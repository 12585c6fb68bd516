package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturingLoggerRecordsFormattedMessages(t *testing.T) {
	var l CapturingLogger
	l.Printf("hello %s", "world")
	l.Printf("count=%d", 2)

	out := l.Output()
	require.Len(t, out, 2)
	assert.Equal(t, "hello world", out[0].Message)
	assert.Equal(t, "count=2", out[1].Message)
	assert.False(t, out[0].Time.IsZero())
}

func TestCapturingLoggerOutputIsACopy(t *testing.T) {
	var l CapturingLogger
	l.Printf("one")
	first := l.Output()
	l.Printf("two")
	assert.Len(t, first, 1)
	assert.Len(t, l.Output(), 2)
}

func TestDumpMessagesPrefixesEachLine(t *testing.T) {
	var l CapturingLogger
	l.Printf("alpha")
	l.Printf("beta")

	var buf bytes.Buffer
	DumpMessages(&buf, l.Output(), "  DEBUG ")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, bytes.HasPrefix(line, []byte("  DEBUG [")))
	}
	assert.Contains(t, buf.String(), "alpha")
	assert.Contains(t, buf.String(), "beta")
}

func TestNullLoggerDiscards(t *testing.T) {
	NullLogger().Printf("goes nowhere %d", 1)
}

// Package logging provides the minimal logging abstractions used by the
// check engine and its plugins: a Printf-style Logger interface, a null
// implementation, and a thread-safe capturing logger whose output can be
// dumped after a check finishes.
package logging

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped message recorded by a CapturingLogger.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturingLogger accumulates messages in memory instead of writing them
// anywhere. The engine gives each check its own instance so that debug
// output can be shown selectively after the check has finished.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() []CapturedMessage {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// DumpMessages writes captured messages to dest, one per line, each prefixed
// with the given string and its capture timestamp.
func DumpMessages(dest io.Writer, messages []CapturedMessage, prefix string) {
	for _, m := range messages {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(timestampFormat),
			m.Message,
		)
	}
}

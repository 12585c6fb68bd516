package engine

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/niptools/niptest/logging"
)

// Context is passed to a check's Run function. It plays the same role as
// Go's *testing.T, but outside the Go test runner: the check reports
// failures through Errorf/FailNow, can skip itself, and can write debug
// output that is only shown when the run asks for it.
type Context struct {
	id          CheckID
	reportLog   ReportLogger
	debugLogger logging.CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

func (c *Context) ID() CheckID {
	return c.id
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.reportLog.CheckError(c.id, err)
}

// FailNow stops the check immediately. The panic value is recognized and
// absorbed by the engine's runner.
func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}

// runCheck executes one check, converting panics into results: a panic with
// the context itself means FailNow or Skip was called, anything else is an
// unexpected panic and fails the check with a stack trace.
func runCheck(check Check, reportLog ReportLogger) (CheckResult, []logging.CapturedMessage) {
	c := &Context{id: check.ID, reportLog: reportLog}

	func() {
		defer func() {
			r := recover()
			if r == nil || c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("check failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				reportLog.CheckError(c.id, addError)
			}
		}()
		check.Run(c)
	}()

	result := CheckResult{ID: check.ID, Errors: c.errors}
	switch {
	case c.skipped:
		result.Status = StatusSkipped
		result.Reason = c.skipReason
	case c.failed:
		result.Status = StatusFailed
	default:
		result.Status = StatusPassed
	}
	return result, c.debugLogger.Output()
}

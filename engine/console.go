package engine

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/fatih/color"

	"github.com/niptools/niptest/logging"
)

// ReportLogger receives progress events while checks are running.
type ReportLogger interface {
	CheckStarted(id CheckID)
	CheckError(id CheckID, err error)
	CheckFinished(result CheckResult, debugOutput []logging.CapturedMessage)
	CheckSkipped(id CheckID, reason string)
}

type nullReportLogger struct{}

func (n nullReportLogger) CheckStarted(CheckID)                                 {}
func (n nullReportLogger) CheckError(CheckID, error)                            {}
func (n nullReportLogger) CheckFinished(CheckResult, []logging.CapturedMessage) {}
func (n nullReportLogger) CheckSkipped(CheckID, string)                         {}

var (
	failedColor  = color.New(color.FgRed).SprintFunc()
	skippedColor = color.New(color.FgYellow).SprintFunc()
	knownColor   = color.New(color.FgMagenta).SprintFunc()
)

// ConsoleReportLogger prints progress to Output as checks run. Debug output
// captured by a check is shown only according to the two Debug fields.
type ConsoleReportLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleReportLogger) CheckStarted(id CheckID) {
	fmt.Fprintf(c.Output, "[%s]\n", id)
}

func (c *ConsoleReportLogger) CheckError(id CheckID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.Output, "  %s\n", line)
	}
}

func (c *ConsoleReportLogger) CheckFinished(result CheckResult, debugOutput []logging.CapturedMessage) {
	switch result.Status {
	case StatusFailed:
		fmt.Fprintf(c.Output, "  %s: %s\n", failedColor("FAILED"), result.ID)
	case StatusKnownFailure:
		if result.Reason == "" {
			fmt.Fprintf(c.Output, "  %s: %s\n", knownColor("KNOWN FAILURE"), result.ID)
		} else {
			fmt.Fprintf(c.Output, "  %s: %s (%s)\n", knownColor("KNOWN FAILURE"), result.ID, result.Reason)
		}
	}
	passed := result.Status == StatusPassed
	if len(debugOutput) > 0 &&
		((!passed && c.DebugOutputOnFailure) || (passed && c.DebugOutputOnSuccess)) {
		logging.DumpMessages(c.Output, debugOutput, "    DEBUG ")
	}
}

func (c *ConsoleReportLogger) CheckSkipped(id CheckID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.Output, "  %s: %s\n", skippedColor("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.Output, "  %s: %s (%s)\n", skippedColor("SKIPPED"), id, reason)
	}
}

// PrintSummary writes the final tally, plus a shell-ready command line for
// rerunning just the failed checks if there were any.
func PrintSummary(w io.Writer, results Results) {
	var passed, failed, skipped, known int
	for _, r := range results.Checks {
		switch r.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		case StatusKnownFailure:
			known++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Ran %d checks: %d passed, %d failed, %d skipped, %d known failures\n",
		len(results.Checks), passed, failed, skipped, known)

	if !results.OK() {
		fmt.Fprintln(w, "Failed checks:")
		for _, f := range results.Failures {
			fmt.Fprintf(w, "  %s\n", f.ID)
		}
		var cmd commandBuilder
		cmd.add(programName)
		for _, f := range results.Failures {
			cmd.add("--run", "^"+regexp.QuoteMeta(f.ID.String())+"$")
		}
		fmt.Fprintf(w, "To rerun failed checks: %s\n", cmd)
	}
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

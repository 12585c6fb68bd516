package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/niptools/niptest/logging"
)

const programName = "niptest"

// Main is the program entry point of the engine. It parses the argument
// sequence, configures the given plugins, collects checks from those that
// are enabled, runs them, and returns the process exit code: 0 if every
// check passed (or was skipped or reclassified as a known failure), 1 if
// any check failed, 2 on argument or collection errors.
func Main(argv []string, plugins ...Plugin) int {
	p := Program{Output: os.Stdout, ErrOutput: os.Stderr}
	return p.Run(argv, plugins...)
}

// Program is the engine with its output streams made explicit, so runs can
// be captured.
type Program struct {
	Output    io.Writer
	ErrOutput io.Writer
	// ReportLogger overrides the default console logger when non-nil.
	ReportLogger ReportLogger
}

func (p Program) Run(argv []string, plugins ...Plugin) int {
	var filters RegexFilters
	var firstPackageWins, debugFlag, debugAll bool

	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	fs.SetOutput(p.ErrOutput)
	fs.SetNormalizeFunc(normalizeOptName)
	fs.Var(&filters.MustMatch, "run", "regex pattern(s) to select checks to run")
	fs.Var(&filters.MustNotMatch, "skip", "regex pattern(s) to select checks not to run")
	fs.BoolVar(&firstPackageWins, "first-package-wins", false,
		"when two collected checks share an ID, keep the first instead of failing")
	fs.BoolVar(&debugFlag, "debug", false, "show debug output for failed checks")
	fs.BoolVar(&debugAll, "debug-all", false, "show debug output for all checks")
	for _, pl := range plugins {
		pl.AddFlags(fs)
	}

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	var debugLogger logging.Logger = logging.NullLogger()
	if debugAll {
		debugLogger = log.New(p.Output, "", log.LstdFlags)
	}

	opts := Options{Logger: debugLogger}
	for _, pl := range plugins {
		if err := pl.Configure(opts); err != nil {
			fmt.Fprintf(p.ErrOutput, "plugin %s: %s\n", pl.Name(), err)
			return 2
		}
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	checks, err := collectChecks(plugins, paths, firstPackageWins, debugLogger)
	if err != nil {
		fmt.Fprintln(p.ErrOutput, err)
		return 2
	}

	reportLog := p.ReportLogger
	if reportLog == nil {
		reportLog = &ConsoleReportLogger{
			Output:               p.Output,
			DebugOutputOnFailure: debugFlag || debugAll,
			DebugOutputOnSuccess: debugAll,
		}
	}

	results := runChecks(checks, filters.AsFilter, reportLog, activeReporters(plugins))
	PrintSummary(p.Output, results)
	if !results.OK() {
		return 1
	}
	return 0
}

// normalizeOptName maps the option spellings of earlier releases onto their
// current names.
func normalizeOptName(fs *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "first-pkg-wins" {
		name = "first-package-wins"
	}
	return pflag.NormalizedName(name)
}

func collectChecks(plugins []Plugin, paths []string, firstPackageWins bool, logger logging.Logger) ([]Check, error) {
	seen := make(map[string]bool)
	var checks []Check
	for _, pl := range plugins {
		if !pl.Enabled() {
			continue
		}
		collector, ok := pl.(Collector)
		if !ok {
			continue
		}
		collected, err := collector.Collect(paths, logger)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: %w", pl.Name(), err)
		}
		for _, check := range collected {
			key := check.ID.String()
			if seen[key] {
				if firstPackageWins {
					logger.Printf("dropping duplicate check %s", key)
					continue
				}
				return nil, fmt.Errorf("duplicate check ID %q (use --first-package-wins to keep the first one)", key)
			}
			seen[key] = true
			checks = append(checks, check)
		}
	}
	return checks, nil
}

func activeReporters(plugins []Plugin) []Reporter {
	var reporters []Reporter
	for _, pl := range plugins {
		if !pl.Enabled() {
			continue
		}
		if r, ok := pl.(Reporter); ok {
			reporters = append(reporters, r)
		}
	}
	return reporters
}

func runChecks(checks []Check, filter Filter, reportLog ReportLogger, reporters []Reporter) Results {
	var results Results
	for _, check := range checks {
		reportLog.CheckStarted(check.ID)

		if filter != nil && !filter(check.ID) {
			reason := "excluded by filter parameters"
			reportLog.CheckSkipped(check.ID, reason)
			results.Checks = append(results.Checks, CheckResult{
				ID:     check.ID,
				Status: StatusSkipped,
				Reason: reason,
			})
			continue
		}

		result, debugOutput := runCheck(check, reportLog)
		for _, r := range reporters {
			r.Classify(&result)
		}

		if result.Status == StatusSkipped {
			reportLog.CheckSkipped(result.ID, result.Reason)
		} else {
			reportLog.CheckFinished(result, debugOutput)
		}
		results.Checks = append(results.Checks, result)
		if result.Status == StatusFailed {
			results.Failures = append(results.Failures, result)
		}
	}
	return results
}

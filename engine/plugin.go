package engine

import (
	"github.com/spf13/pflag"

	"github.com/niptools/niptest/logging"
)

// Plugin is the base interface for extensions passed to Main. A plugin binds
// its own command-line flags, is configured once after parsing, and reports
// whether the parsed flags left it enabled for this run.
//
// Behavior beyond that is expressed through capability interfaces that the
// engine discovers by type assertion: a plugin that implements Collector
// contributes checks, and one that implements Reporter can reclassify
// check outcomes before they are recorded.
type Plugin interface {
	Name() string
	AddFlags(fs *pflag.FlagSet)
	Configure(opts Options) error
	Enabled() bool
}

// Collector is implemented by plugins that discover checks under the path
// selectors given on the command line.
type Collector interface {
	Collect(paths []string, logger logging.Logger) ([]Check, error)
}

// Reporter is implemented by plugins that want to adjust a check's result
// before it is recorded, such as marking an expected failure.
type Reporter interface {
	Classify(result *CheckResult)
}

// Options carries engine state that plugins may need while configuring
// themselves.
type Options struct {
	Logger logging.Logger
}

// Check is a single runnable unit of work produced by a Collector.
type Check struct {
	ID  CheckID
	Run func(*Context)
}

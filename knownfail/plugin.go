// Package knownfail implements the known-failure plugin: checks listed in a
// TOML file that fail are reclassified as expected failures instead of
// counting against the run.
package knownfail

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/niptools/niptest/engine"
)

// DefaultFile is the known-failure list that is loaded when present. A file
// named explicitly with --knownfail-file must exist.
const DefaultFile = ".niptest.toml"

type Plugin struct {
	disabled bool
	file     string
	entries  map[string]string
}

func New() *Plugin {
	return &Plugin{file: DefaultFile}
}

func (p *Plugin) Name() string {
	return "knownfailure"
}

func (p *Plugin) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&p.disabled, "no-knownfail", false,
		"report known failures as ordinary failures")
	fs.StringVar(&p.file, "knownfail-file", p.file,
		"TOML file listing known-failing check IDs")
}

func (p *Plugin) Configure(opts engine.Options) error {
	if p.disabled {
		return nil
	}
	entries, err := loadFile(p.file)
	if err != nil {
		if os.IsNotExist(err) && p.file == DefaultFile {
			return nil
		}
		return err
	}
	opts.Logger.Printf("loaded %d known-failure entries from %s", len(entries), p.file)
	p.entries = entries
	return nil
}

func (p *Plugin) Enabled() bool {
	return !p.disabled
}

// Classify reclassifies a failed check as a known failure if its ID is
// listed. Results in any other status are left alone.
func (p *Plugin) Classify(result *engine.CheckResult) {
	if result.Status != engine.StatusFailed {
		return
	}
	reason, ok := p.entries[result.ID.String()]
	if !ok {
		return
	}
	result.Status = engine.StatusKnownFailure
	result.Reason = reason
}

type fileContents struct {
	Checks []checkEntry `toml:"check"`
}

type checkEntry struct {
	ID     string `toml:"id"`
	Reason string `toml:"reason"`
}

func loadFile(path string) (map[string]string, error) {
	var contents fileContents
	if _, err := toml.DecodeFile(path, &contents); err != nil {
		return nil, err
	}
	entries := make(map[string]string, len(contents.Checks))
	for i, c := range contents.Checks {
		if c.ID == "" {
			return nil, fmt.Errorf("%s: check entry %d is missing an id", path, i+1)
		}
		entries[c.ID] = c.Reason
	}
	return entries, nil
}

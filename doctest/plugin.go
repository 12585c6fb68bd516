// Package doctest implements the documentation-example plugin: it collects
// example sessions from documentation files and turns each one into a check
// that evaluates the example's expression against the shared numeric
// namespace and compares the rendered result with the expected output.
package doctest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/spf13/pflag"

	"github.com/niptools/niptest/engine"
	"github.com/niptools/niptest/logging"
	"github.com/niptools/niptest/numspace"
)

const defaultExtensions = "md,txt"

type Plugin struct {
	enabled    bool
	extensions string
	evalCtx    *hcl.EvalContext
}

func New() *Plugin {
	return &Plugin{extensions: defaultExtensions}
}

func (p *Plugin) Name() string {
	return "nipydoctest"
}

func (p *Plugin) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&p.enabled, "with-nipydoctest", false,
		"run documentation examples as checks")
	fs.StringVar(&p.extensions, "doctest-extensions", p.extensions,
		"comma-separated extensions of documentation files to scan")
}

func (p *Plugin) Configure(opts engine.Options) error {
	if !p.enabled {
		return nil
	}
	ns, err := numspace.Namespace()
	if err != nil {
		return fmt.Errorf("numeric namespace unavailable: %w", err)
	}
	p.evalCtx = ns
	return nil
}

func (p *Plugin) Enabled() bool {
	return p.enabled
}

func (p *Plugin) Collect(paths []string, logger logging.Logger) ([]engine.Check, error) {
	exts := make(map[string]bool)
	for _, e := range strings.Split(p.extensions, ",") {
		if e = strings.TrimSpace(e); e != "" {
			exts[e] = true
		}
	}

	var checks []engine.Check
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				name := d.Name()
				if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
					return filepath.SkipDir
				}
				return nil
			}
			if !exts[strings.TrimPrefix(filepath.Ext(d.Name()), ".")] {
				return nil
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			examples := parseExamples(data)
			if len(examples) == 0 {
				return nil
			}
			file := filepath.ToSlash(path)
			logger.Printf("collected %d documentation examples from %s", len(examples), file)
			for _, ex := range examples {
				checks = append(checks, engine.Check{
					ID:  engine.CheckID{Path: []string{file, fmt.Sprintf("line %d", ex.Line)}},
					Run: p.runExample(file, ex),
				})
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collecting documentation examples under %s: %w", root, err)
		}
	}
	return checks, nil
}

func (p *Plugin) runExample(file string, ex example) func(*engine.Context) {
	return func(c *engine.Context) {
		if ex.Skip {
			c.SkipWithReason("skip directive")
		}
		expr, diags := hclsyntax.ParseExpression([]byte(ex.Source), file, hcl.Pos{Line: ex.Line, Column: 1})
		if diags.HasErrors() {
			c.Errorf("cannot parse example: %s", diags.Error())
			c.FailNow()
		}
		val, diags := expr.Value(p.evalCtx)
		if diags.HasErrors() {
			c.Errorf("evaluation failed: %s", diags.Error())
			c.FailNow()
		}
		got := FormatValue(val)
		c.Debug("%s evaluated to %s", ex.Source, got)
		if ex.Expected == "" {
			return
		}
		if got != ex.Expected {
			c.Errorf("expected output:\n%s\nactual output:\n%s", ex.Expected, got)
		}
	}
}

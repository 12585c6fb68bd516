// Package engine implements the check-execution engine that the niptest
// command delegates to.
//
// The general model is:
//
// 1. The engine itself owns the run loop, reporting, and exit-code
// determination, but discovers no checks on its own. Checks come from
// plugins that are passed to the entry point at invocation time.
//
// 2. A plugin binds its own command-line flags and may implement the
// Collector capability (contributing checks for the selected paths) and the
// Reporter capability (reclassifying outcomes before they are recorded).
//
// 3. Each check runs against a Context which is similar to Go's *testing.T,
// allowing the check to report errors, stop early, skip itself, and write
// debug output that is shown only on demand.
package engine

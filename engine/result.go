package engine

import "strings"

// Status is the final classification of one executed check.
type Status int

const (
	StatusPassed Status = iota
	StatusFailed
	StatusSkipped
	// StatusKnownFailure marks a check that failed but was reclassified as
	// an expected failure by a Reporter plugin. It does not count against
	// the exit code.
	StatusKnownFailure
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusKnownFailure:
		return "known failure"
	}
	return "unknown"
}

// CheckID identifies a check as a path of name components, such as the
// source file it was collected from followed by a position within it.
type CheckID struct {
	Path []string
}

func (c CheckID) String() string {
	return strings.Join(c.Path, "/")
}

type CheckResult struct {
	ID     CheckID
	Status Status
	Errors []error
	// Reason explains a skipped or known-failure status.
	Reason string
}

type Results struct {
	Checks   []CheckResult
	Failures []CheckResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

package main

import "github.com/niptools/niptest/engine"

// withoutDoctestOpt is our own convention, not an engine flag: it must be
// stripped from the arguments before they are handed to the engine.
const withoutDoctestOpt = "--without-doctest"

const withDoctestOpt = "--with-nipydoctest"

// buildArgs turns the raw invocation arguments into the sequence passed to
// the engine: the first-package-wins option is always appended, and unless
// the caller opted out with --without-doctest, documentation-example checks
// are switched on.
func buildArgs(args []string) []string {
	argv := make([]string, 0, len(args)+2)
	withoutDoctest := false
	for _, a := range args {
		if a == withoutDoctestOpt {
			withoutDoctest = true
			continue
		}
		argv = append(argv, a)
	}
	argv = append(argv, fpwOptString())
	if !withoutDoctest {
		argv = append(argv, withDoctestOpt)
	}
	return argv
}

// fpwOptString returns the first-package-wins option in the spelling the
// engine expects. Releases before 1.2 only understood the short form.
func fpwOptString() string {
	if engine.VersionAtLeast(1, 2) {
		return "--first-package-wins"
	}
	return "--first-pkg-wins"
}

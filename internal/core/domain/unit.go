package domain

// BuildUnit is one translation unit: a single source file compiled
// independently of its siblings.
type BuildUnit struct {
	Source string
	// CPP marks C++ dialect sources (.cpp/.cc/.cxx as opposed to .c).
	CPP bool
	// Output is the object file (pipeline) or binary (test runner)
	// produced for this unit.
	Output string
}

// BuildResult captures the outcome of compiling one unit. Ephemeral;
// never persisted.
type BuildResult struct {
	Unit   BuildUnit
	OK     bool
	Stdout string
	Stderr string
}

// CompletionReport aggregates the per-unit results of one pipeline run.
type CompletionReport struct {
	Results []BuildResult
}

// Failed returns the number of units that did not compile.
func (r *CompletionReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.OK {
			n++
		}
	}
	return n
}

// AllOK reports whether every unit compiled.
func (r *CompletionReport) AllOK() bool { return r.Failed() == 0 }

// TestOutcome classifies one test file after the run phase.
type TestOutcome string

const (
	// TestPassed means the binary ran and exited zero.
	TestPassed TestOutcome = "PASS"
	// TestFailed means the binary ran and exited nonzero.
	TestFailed TestOutcome = "FAIL"
	// TestExecFailed means the binary could not be launched.
	TestExecFailed TestOutcome = "EXEC FAIL"
	// TestCompileFailed means the file never produced a binary.
	TestCompileFailed TestOutcome = "COMPILE FAIL"
)

// TestResult is the outcome for one discovered test file.
type TestResult struct {
	Name    string
	Outcome TestOutcome
}

// TestSummary is the final pass/fail accounting of a test run, ordered by
// discovery order.
type TestSummary struct {
	Results []TestResult
}

// Total returns the number of discovered test files.
func (s *TestSummary) Total() int { return len(s.Results) }

// Passed returns the number of passing tests.
func (s *TestSummary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Outcome == TestPassed {
			n++
		}
	}
	return n
}

// Success reports overall command success: at least one test, all passing.
func (s *TestSummary) Success() bool {
	return s.Total() > 0 && s.Passed() == s.Total()
}

package domain

// Test case execution states.
const (
	TestCaseNotRun  = "not_run"
	TestCasePassed  = "passed"
	TestCaseFailed  = "failed"
	TestCaseBlocked = "blocked"
)

// ValidTestCaseStatus reports whether s is a known execution state.
func ValidTestCaseStatus(s string) bool {
	switch s {
	case TestCaseNotRun, TestCasePassed, TestCaseFailed, TestCaseBlocked:
		return true
	}
	return false
}

// TestCase is a single case inside a suite. Stored as JSON inside the
// test-cases artifact, so the struct carries its wire tags.
type TestCase struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Priority       string   `json:"priority"`
	Type           string   `json:"type"`
	Preconditions  []string `json:"preconditions,omitempty"`
	Steps          []string `json:"steps"`
	ExpectedResult string   `json:"expected_result"`
	Status         string   `json:"status"`
	LastRunAt      string   `json:"last_run_at,omitempty"`
}

// TestSuite groups related test cases.
type TestSuite struct {
	Name      string      `json:"name"`
	TestCases []*TestCase `json:"test_cases"`
}

// TestRun summarizes one execution of the whole case set.
type TestRun struct {
	ID         string  `json:"id"`
	ExecutedAt string  `json:"executed_at"`
	ExecutedBy string  `json:"executed_by"`
	Total      int     `json:"total"`
	Passed     int     `json:"passed"`
	Failed     int     `json:"failed"`
	PassRate   float64 `json:"pass_rate"`
	DurationMS int     `json:"duration_ms"`
}

// TestCaseSet is the full payload stored in the test-cases artifact.
// TestRuns accumulates across executions; LatestRun mirrors the most
// recent entry for cheap dashboard reads.
type TestCaseSet struct {
	TestSuites []*TestSuite `json:"test_suites"`
	TestRuns   []*TestRun   `json:"test_runs,omitempty"`
	LatestRun  *TestRun     `json:"latest_run,omitempty"`
}

// FindCase returns the case with the given ID, or nil.
func (s *TestCaseSet) FindCase(id string) *TestCase {
	for _, suite := range s.TestSuites {
		for _, tc := range suite.TestCases {
			if tc.ID == id {
				return tc
			}
		}
	}
	return nil
}

// CountCases returns the total number of cases across suites.
func (s *TestCaseSet) CountCases() int {
	n := 0
	for _, suite := range s.TestSuites {
		n += len(suite.TestCases)
	}
	return n
}

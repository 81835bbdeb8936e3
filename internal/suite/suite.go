// Package suite loads and runs YAML check suites: lists of expressions with
// the result or error each one is expected to produce.
package suite

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	calc "github.com/aw-devel/Tacton-Code-Test-A"
)

// Case is one checked evaluation. Exactly one of Want and Error must be set:
// Want is compared exactly against the evaluated result, Error must be a
// substring of the raised error's message.
type Case struct {
	Expr  string   `yaml:"expr"`
	Want  *float64 `yaml:"want"`
	Error string   `yaml:"error"`
}

// Suite is a loaded check suite.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// ValidationError aggregates structural problems found in a suite file.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "suite: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("suite validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load parses and validates a suite file. Unknown YAML fields are rejected.
func Load(path string) (*Suite, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("suite: open %s: %w", path, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate() error {
	var issues []string
	if len(s.Cases) == 0 {
		issues = append(issues, "suite has no cases")
	}
	for i, c := range s.Cases {
		if strings.TrimSpace(c.Expr) == "" {
			issues = append(issues, fmt.Sprintf("case %d: expr is empty", i+1))
		}
		switch {
		case c.Want != nil && c.Error != "":
			issues = append(issues, fmt.Sprintf("case %d: both want and error are set", i+1))
		case c.Want == nil && c.Error == "":
			issues = append(issues, fmt.Sprintf("case %d: one of want or error is required", i+1))
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// Result is the outcome of running one case.
type Result struct {
	Case   Case
	Passed bool
	// Got describes what evaluation actually produced, for failure reports.
	Got string
}

// Run evaluates every case and returns a result per case, in order.
func (s *Suite) Run() []Result {
	results := make([]Result, 0, len(s.Cases))
	for _, c := range s.Cases {
		results = append(results, runCase(c))
	}
	return results
}

// Failed counts the results that did not pass.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}

func runCase(c Case) Result {
	r := Result{Case: c}
	got, err := calc.Evaluate(c.Expr)
	switch {
	case c.Error != "":
		if err == nil {
			r.Got = fmt.Sprintf("result %g, expected an error containing %q", got, c.Error)
		} else if !strings.Contains(err.Error(), c.Error) {
			r.Got = fmt.Sprintf("error %q, expected it to contain %q", err, c.Error)
		} else {
			r.Passed = true
		}
	default:
		if err != nil {
			r.Got = fmt.Sprintf("error %q, expected %g", err, *c.Want)
		} else if got != *c.Want {
			r.Got = fmt.Sprintf("result %g, expected %g", got, *c.Want)
		} else {
			r.Passed = true
		}
	}
	return r
}

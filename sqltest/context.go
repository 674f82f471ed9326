package sqltest

import (
	"fmt"
	"strings"
)

// Reporter is the part of testing.TB the asserts report through.
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
}

// AssertContext identifies the case under assertion in failure messages.
type AssertContext struct {
	CaseID  string
	SQL     string
	Dialect string
}

// Text prefixes msg with the case id, SQL and dialect.
func (c AssertContext) Text(msg string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SQL Case ID : %s\n", c.CaseID)
	fmt.Fprintf(&b, "SQL         : %s\n", c.SQL)
	if c.Dialect != "" {
		fmt.Fprintf(&b, "Dialect     : %s\n", c.Dialect)
	}
	b.WriteString("\n")
	b.WriteString(msg)
	return b.String()
}

// Recorder is a Reporter that keeps failures instead of failing a test.
type Recorder struct {
	Failures []string
}

func (r *Recorder) Helper() {}

func (r *Recorder) Errorf(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

// Failed reports whether anything was recorded.
func (r *Recorder) Failed() bool { return len(r.Failures) > 0 }

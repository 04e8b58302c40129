// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/atos-labs/chatbot-setup/internal/runner"
)

// Response is the scripted result of one command.
type Response struct {
	Output runner.Output
	// Err simulates a command that could not start.
	Err error
}

// Fake records every command and answers from a script keyed by the
// command line prefix. Unscripted commands succeed with empty output.
type Fake struct {
	mu        sync.Mutex
	responses map[string]Response
	missing   map[string]bool
	calls     []runner.Command
	// OnRun, when set, is called for each command before the response is
	// chosen. Tests use it to simulate side effects such as `git init`.
	OnRun func(runner.Command)
}

// New returns an empty Fake.
func New() *Fake {
	return &Fake{
		responses: make(map[string]Response),
		missing:   make(map[string]bool),
	}
}

// On scripts the response for commands whose line starts with prefix.
// The longest matching prefix wins.
func (f *Fake) On(prefix string, resp Response) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[prefix] = resp
	return f
}

// Fail scripts a non-zero exit with the given stderr.
func (f *Fake) Fail(prefix, stderr string) *Fake {
	return f.On(prefix, Response{Output: runner.Output{ExitCode: 1, Stderr: stderr}})
}

// Stdout scripts a successful run printing out.
func (f *Fake) Stdout(prefix, out string) *Fake {
	return f.On(prefix, Response{Output: runner.Output{Stdout: out}})
}

// Missing makes every command of the named binary fail to start.
func (f *Fake) Missing(names ...string) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range names {
		f.missing[n] = true
	}
	return f
}

// Run implements runner.Runner.
func (f *Fake) Run(_ context.Context, cmd runner.Command) (*runner.Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	hook := f.OnRun
	f.mu.Unlock()

	if hook != nil {
		hook(cmd)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.missing[cmd.Name] {
		return &runner.Output{}, fmt.Errorf("running %s: exec: %q: executable file not found in $PATH", cmd.Name, cmd.Name)
	}

	line := cmd.String()
	best := ""
	for prefix := range f.responses {
		if strings.HasPrefix(line, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return &runner.Output{}, nil
	}
	resp := f.responses[best]
	out := resp.Output
	return &out, resp.Err
}

// Calls returns the command lines run so far, in order.
func (f *Fake) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.calls))
	for i, c := range f.calls {
		lines[i] = c.String()
	}
	return lines
}

// Commands returns the raw commands run so far, in order.
func (f *Fake) Commands() []runner.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]runner.Command(nil), f.calls...)
}

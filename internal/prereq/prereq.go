package prereq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atos-labs/chatbot-setup/internal/runner"
	"github.com/rs/zerolog"
)

// ErrMissingTools is returned (wrapped) when at least one required tool is
// not installed.
var ErrMissingTools = errors.New("missing required tools")

// Tool is one external executable the pipeline depends on.
type Tool struct {
	Name string
	// Binary is the executable to probe; defaults to Name.
	Binary string
	// MinVersion is an optional semver constraint, e.g. ">=16.0.0".
	MinVersion string
}

func (t Tool) binary() string {
	if t.Binary != "" {
		return t.Binary
	}
	return t.Name
}

// Status is the outcome of probing one tool.
type Status int

const (
	Installed Status = iota
	Missing
	Outdated
)

func (s Status) String() string {
	switch s {
	case Installed:
		return "installed"
	case Missing:
		return "missing"
	case Outdated:
		return "outdated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the probe result for a single tool.
type Result struct {
	Tool    Tool
	Status  Status
	Version string
	// Err explains a Missing status, or a version that could not be compared.
	Err error
}

// Report aggregates the results of a Check, in tool order.
type Report struct {
	Results []Result
}

// Missing returns the names of tools that are not installed.
func (r *Report) Missing() []string {
	var names []string
	for _, res := range r.Results {
		if res.Status == Missing {
			names = append(names, res.Tool.Name)
		}
	}
	return names
}

// OK reports whether every tool is installed. Outdated tools count as installed.
func (r *Report) OK() bool {
	return len(r.Missing()) == 0
}

// Err returns nil when nothing is missing, else an error wrapping ErrMissingTools.
func (r *Report) Err() error {
	missing := r.Missing()
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMissingTools, strings.Join(missing, ", "))
}

// DefaultTools returns the tools the setup pipeline needs, in check order.
func DefaultTools() []Tool {
	return []Tool{
		{Name: "node", MinVersion: ">=16.0.0"},
		{Name: "npm"},
		{Name: "git"},
	}
}

// Checker probes tools through a Runner.
type Checker struct {
	Runner runner.Runner
	Logger zerolog.Logger
}

// Check probes each tool in order. It never stops early, so the report lists
// every missing tool at once.
func (c *Checker) Check(ctx context.Context, tools []Tool) *Report {
	report := &Report{Results: make([]Result, 0, len(tools))}
	for _, t := range tools {
		report.Results = append(report.Results, c.probe(ctx, t))
	}
	return report
}

func (c *Checker) probe(ctx context.Context, t Tool) Result {
	res := Result{Tool: t}

	out, err := c.Runner.Run(ctx, runner.New(t.binary(), "--version"))
	if err != nil {
		res.Status = Missing
		res.Err = err
		c.Logger.Debug().Err(err).Str("tool", t.Name).Msg("tool not runnable")
		return res
	}
	if !out.Succeeded() {
		res.Status = Missing
		res.Err = fmt.Errorf("%s --version exited with status %d", t.binary(), out.ExitCode)
		return res
	}

	res.Status = Installed
	res.Version = ExtractVersion(out.Stdout)
	if t.MinVersion == "" {
		return res
	}
	if res.Version == "" {
		res.Err = fmt.Errorf("could not determine %s version", t.Name)
		return res
	}

	ok, err := Satisfies(res.Version, t.MinVersion)
	if err != nil {
		res.Err = err
		return res
	}
	if !ok {
		res.Status = Outdated
		res.Err = fmt.Errorf("%s %s does not satisfy %s", t.Name, res.Version, t.MinVersion)
	}
	c.Logger.Debug().Str("tool", t.Name).Str("version", res.Version).Stringer("status", res.Status).Msg("probed tool")
	return res
}

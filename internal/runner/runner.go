package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Command is one external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// New builds a Command from a program name and its arguments.
func New(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// In returns a copy of c that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command line as a user would type it.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// Output captures the result of a finished command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the command exited with status 0.
func (o *Output) Succeeded() bool {
	return o != nil && o.ExitCode == 0
}

// Runner executes commands.
type Runner interface {
	// Run blocks until cmd exits. The error return is reserved for commands
	// that could not be started or were cancelled; a non-zero exit status
	// is reported through Output.ExitCode.
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Env, when non-nil, replaces the inherited environment.
	Env []string
	// Tee, when set, receives a copy of stdout and stderr as they stream.
	Tee    io.Writer
	Logger zerolog.Logger
}

// NewExecRunner returns an ExecRunner that logs to log.
func NewExecRunner(log zerolog.Logger) *ExecRunner {
	return &ExecRunner{Logger: log}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if r.Tee != nil {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, r.Tee)
		cmd.Stderr = io.MultiWriter(&stderrBuf, r.Tee)
	}

	start := time.Now()
	err := cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			output.ExitCode = exitErr.ExitCode()
			r.Logger.Debug().
				Str("cmd", c.String()).
				Str("dir", c.Dir).
				Int("exit", output.ExitCode).
				Dur("took", time.Since(start)).
				Msg("command exited non-zero")
			return output, nil
		}
		r.Logger.Debug().Err(err).Str("cmd", c.String()).Msg("command did not run")
		return output, fmt.Errorf("running %s: %w", c.Name, err)
	}

	r.Logger.Debug().
		Str("cmd", c.String()).
		Str("dir", c.Dir).
		Dur("took", time.Since(start)).
		Msg("command finished")
	return output, nil
}

package runner

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("POSIX shell not available")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{New("npm", "install"), "npm install"},
		{New("npm", "install", "-D", "tailwindcss", "postcss", "autoprefixer"), "npm install -D tailwindcss postcss autoprefixer"},
		{New("git", "commit", "-m", "Initial commit"), `git commit -m "Initial commit"`},
		{New("git"), "git"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.String())
	}
}

func TestCommandIn(t *testing.T) {
	c := New("npm", "install")
	d := c.In("/tmp/project")
	assert.Empty(t, c.Dir)
	assert.Equal(t, "/tmp/project", d.Dir)
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(zerolog.Nop())
	out, err := r.Run(context.Background(), New("sh", "-c", "echo hello; echo oops >&2"))
	require.NoError(t, err)
	assert.True(t, out.Succeeded())
	assert.Equal(t, "hello\n", out.Stdout)
	assert.Equal(t, "oops\n", out.Stderr)
}

func TestExecRunner_NonZeroExitIsNotAnError(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(zerolog.Nop())
	out, err := r.Run(context.Background(), New("sh", "-c", "echo failed >&2; exit 42"))
	require.NoError(t, err)
	assert.False(t, out.Succeeded())
	assert.Equal(t, 42, out.ExitCode)
	assert.Equal(t, "failed\n", out.Stderr)
}

func TestExecRunner_Dir(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	r := NewExecRunner(zerolog.Nop())
	out, err := r.Run(context.Background(), New("sh", "-c", "pwd -P").In(dir))
	require.NoError(t, err)

	want, err := exec.Command("sh", "-c", "cd "+dir+" && pwd -P").Output()
	require.NoError(t, err)
	assert.Equal(t, string(want), out.Stdout)
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := NewExecRunner(zerolog.Nop())
	_, err := r.Run(context.Background(), New("definitely-not-a-real-binary-4821"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-binary-4821")
}

func TestExecRunner_Tee(t *testing.T) {
	requireShell(t)

	var tee bytes.Buffer
	r := &ExecRunner{Tee: &tee, Logger: zerolog.Nop()}
	_, err := r.Run(context.Background(), New("sh", "-c", "echo streamed"))
	require.NoError(t, err)
	assert.Equal(t, "streamed\n", tee.String())
}

func TestOutputSucceeded_Nil(t *testing.T) {
	var o *Output
	assert.False(t, o.Succeeded())
}

package prereq

import (
	"context"
	"errors"
	"testing"

	"github.com/atos-labs/chatbot-setup/internal/runner/runnertest"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecker(f *runnertest.Fake) *Checker {
	return &Checker{Runner: f, Logger: zerolog.Nop()}
}

func TestCheck_AllInstalled(t *testing.T) {
	f := runnertest.New().
		Stdout("node --version", "v20.11.1\n").
		Stdout("npm --version", "10.2.4\n").
		Stdout("git --version", "git version 2.43.0\n")

	report := newChecker(f).Check(context.Background(), DefaultTools())

	require.True(t, report.OK())
	require.NoError(t, report.Err())
	require.Len(t, report.Results, 3)
	assert.Equal(t, "v20.11.1", report.Results[0].Version)
	assert.Equal(t, "10.2.4", report.Results[1].Version)
	assert.Equal(t, "2.43.0", report.Results[2].Version)
	for _, r := range report.Results {
		assert.Equal(t, Installed, r.Status, r.Tool.Name)
	}
	assert.Equal(t, []string{"node --version", "npm --version", "git --version"}, f.Calls())
}

func TestCheck_AllMissing(t *testing.T) {
	f := runnertest.New().Missing("node", "npm", "git")

	report := newChecker(f).Check(context.Background(), DefaultTools())

	assert.False(t, report.OK())
	assert.Equal(t, []string{"node", "npm", "git"}, report.Missing())
	err := report.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTools))
	assert.Contains(t, err.Error(), "node, npm, git")
	// Every tool is probed even after the first failure.
	assert.Len(t, f.Calls(), 3)
}

func TestCheck_NonZeroExitIsMissing(t *testing.T) {
	f := runnertest.New().
		Stdout("node --version", "v18.0.0").
		Fail("npm --version", "npm: broken install").
		Stdout("git --version", "git version 2.40.1")

	report := newChecker(f).Check(context.Background(), DefaultTools())

	assert.Equal(t, []string{"npm"}, report.Missing())
	assert.Equal(t, Missing, report.Results[1].Status)
	assert.Error(t, report.Results[1].Err)
}

func TestCheck_OutdatedIsNotMissing(t *testing.T) {
	f := runnertest.New().
		Stdout("node --version", "v14.21.3").
		Stdout("npm --version", "6.14.18").
		Stdout("git --version", "git version 2.30.0")

	report := newChecker(f).Check(context.Background(), DefaultTools())

	assert.True(t, report.OK())
	assert.Equal(t, Outdated, report.Results[0].Status)
	assert.Contains(t, report.Results[0].Err.Error(), ">=16.0.0")
}

func TestCheck_UnknownVersionWithConstraint(t *testing.T) {
	f := runnertest.New().Stdout("node --version", "development build")

	report := newChecker(f).Check(context.Background(), []Tool{{Name: "node", MinVersion: ">=16"}})

	require.Len(t, report.Results, 1)
	assert.Equal(t, Installed, report.Results[0].Status)
	assert.Error(t, report.Results[0].Err)
}

func TestCheck_CustomBinary(t *testing.T) {
	f := runnertest.New().Stdout("pnpm --version", "8.15.0")

	report := newChecker(f).Check(context.Background(), []Tool{{Name: "npm", Binary: "pnpm"}})

	assert.True(t, report.OK())
	assert.Equal(t, []string{"pnpm --version"}, f.Calls())
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v20.11.1\n", "v20.11.1"},
		{"10.2.4", "10.2.4"},
		{"git version 2.39.3 (Apple Git-145)", "2.39.3"},
		{"git version 2.43.0.windows.1", "2.43.0"},
		{"v21.0.0-nightly2023", "v21.0.0-nightly2023"},
		{"no version here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractVersion(tt.in), tt.in)
	}
}

func TestSatisfies(t *testing.T) {
	tests := []struct {
		version    string
		constraint string
		want       bool
		wantErr    bool
	}{
		{"v20.11.1", ">=16.0.0", true, false},
		{"v16.0.0", ">=16.0.0", true, false},
		{"v14.21.3", ">=16.0.0", false, false},
		{"2.43.0", "", true, false},
		{"2.43.0", "not a constraint", false, true},
		{"garbage", ">=1.0.0", false, true},
	}
	for _, tt := range tests {
		got, err := Satisfies(tt.version, tt.constraint)
		if tt.wantErr {
			assert.Error(t, err, "%s %s", tt.version, tt.constraint)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s %s", tt.version, tt.constraint)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "installed", Installed.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "outdated", Outdated.String())
}

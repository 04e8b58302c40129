//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	BinDir     string // stub node/npm/npx/git executables, the only PATH entry
	LogFile    string // every stub invocation is appended here
	ProjectDir string // where the project is scaffolded
}

// stubScript records its argv and answers --version. STUB_FAIL names a
// command line ("npm run build") that should exit 1.
const stubScript = `#!/bin/sh
name=${0##*/}
echo "$name $*" >> "$STUB_LOG"
if [ "$name $*" = "$STUB_FAIL" ]; then
  echo "stub failure" >&2
  exit 1
fi
case "$1" in
  --version) echo "$STUB_VERSION" ;;
esac
exit 0
`

// setupTestEnv creates isolated temp directories and points PATH at the stub
// executables. The env vars are restored after the test.
func setupTestEnv(t *testing.T, tools ...string) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables are shell scripts")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}

	env := &testEnv{
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(t.TempDir(), "calls.log")

	for _, tool := range tools {
		path := filepath.Join(env.BinDir, tool)
		if err := os.WriteFile(path, []byte(stubScript), 0755); err != nil {
			t.Fatalf("writing stub %s: %v", tool, err)
		}
	}

	t.Setenv("PATH", env.BinDir)
	t.Setenv("STUB_LOG", env.LogFile)
	t.Setenv("STUB_VERSION", "v18.17.0")
	t.Setenv("STUB_FAIL", "")
	t.Setenv("HOME", t.TempDir())
	return env
}

// calls returns the logged stub invocations in order.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading stub log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected path not to exist: %s", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

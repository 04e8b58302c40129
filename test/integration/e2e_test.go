//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atos-labs/chatbot-setup/internal/prereq"
	"github.com/atos-labs/chatbot-setup/internal/runner"
	"github.com/atos-labs/chatbot-setup/internal/scaffold"
	"github.com/atos-labs/chatbot-setup/internal/setup"
	"github.com/atos-labs/chatbot-setup/internal/ui"
	"github.com/rs/zerolog"
)

func newPipeline(dir string) (*setup.Pipeline, *bytes.Buffer) {
	var out bytes.Buffer
	r := runner.NewExecRunner(zerolog.Nop())
	return setup.New(r, ui.Plain(&out), dir, zerolog.Nop()), &out
}

// TestFullSetup runs the pipeline against stub tools and checks the command
// sequence and the files on disk.
func TestFullSetup(t *testing.T) {
	env := setupTestEnv(t, "node", "npm", "npx", "git")
	p, out := newPipeline(env.ProjectDir)

	summary, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir, GitInit: true})
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, out.String())
	}
	if len(summary.Failed) != 0 {
		t.Errorf("unexpected failed commands: %v", summary.Failed)
	}

	want := []string{
		"node --version",
		"npm --version",
		"git --version",
		"npm install",
		"npm install -D tailwindcss postcss autoprefixer",
		"npx tailwindcss init -p",
		"npm install lucide-react",
		"npm install gh-pages --save-dev",
		"git init",
		"git add .",
		"git commit -m Initial commit: Atos Chatbot with Copilot Studio integration",
		"npm run build",
	}
	got := env.calls(t)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("command sequence mismatch\ngot:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}

	files, err := scaffold.Manifest(scaffold.NewData())
	if err != nil {
		t.Fatalf("Manifest: %v", err)
	}
	for _, f := range files {
		path := filepath.Join(env.ProjectDir, filepath.FromSlash(f.Path))
		if content := readFile(t, path); content != string(f.Content) {
			t.Errorf("%s: content differs from the rendered template", f.Path)
		}
	}

	info, err := os.Stat(filepath.Join(env.ProjectDir, ".env"))
	if err != nil {
		t.Fatalf("stat .env: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf(".env mode = %o, want 600", perm)
	}

	if !strings.Contains(out.String(), "✅ Build successful!") {
		t.Errorf("missing build success line:\n%s", out.String())
	}
}

// TestRerunIsByteIdentical runs the pipeline twice into the same directory.
func TestRerunIsByteIdentical(t *testing.T) {
	env := setupTestEnv(t, "node", "npm", "npx", "git")

	snapshot := func() map[string]string {
		files, err := scaffold.Manifest(scaffold.NewData())
		if err != nil {
			t.Fatalf("Manifest: %v", err)
		}
		m := make(map[string]string, len(files))
		for _, f := range files {
			m[f.Path] = readFile(t, filepath.Join(env.ProjectDir, filepath.FromSlash(f.Path)))
		}
		return m
	}

	p, _ := newPipeline(env.ProjectDir)
	if _, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir}); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := snapshot()

	if _, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir}); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := snapshot()

	for path, content := range first {
		if second[path] != content {
			t.Errorf("%s changed between runs", path)
		}
	}
}

// TestMissingToolsWriteNothing uses an empty PATH.
func TestMissingToolsWriteNothing(t *testing.T) {
	env := setupTestEnv(t)
	p, out := newPipeline(env.ProjectDir)

	_, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir, GitInit: true})
	if !errors.Is(err, prereq.ErrMissingTools) {
		t.Fatalf("Run error = %v, want ErrMissingTools", err)
	}
	if !strings.Contains(out.String(), "Please install missing tools: node, npm, git") {
		t.Errorf("missing summary line:\n%s", out.String())
	}

	entries, err := os.ReadDir(env.ProjectDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("project dir should be empty, has %d entries", len(entries))
	}
}

// TestFailingBuildStillCompletes makes `npm run build` exit 1.
func TestFailingBuildStillCompletes(t *testing.T) {
	env := setupTestEnv(t, "node", "npm", "npx", "git")
	t.Setenv("STUB_FAIL", "npm run build")
	p, out := newPipeline(env.ProjectDir)

	summary, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir, GitInit: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Failed) != 1 || summary.Failed[0] != "npm run build" {
		t.Errorf("Failed = %v, want [npm run build]", summary.Failed)
	}
	if !strings.Contains(out.String(), "Command failed: stub failure") {
		t.Errorf("missing failure line:\n%s", out.String())
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "README.md"))
	assertFileExists(t, filepath.Join(env.ProjectDir, ".gitignore"))
}

// TestFailingInstallStillWritesFiles makes `npm install` exit 1.
func TestFailingInstallStillWritesFiles(t *testing.T) {
	env := setupTestEnv(t, "node", "npm", "npx", "git")
	t.Setenv("STUB_FAIL", "npm install")
	p, out := newPipeline(env.ProjectDir)

	if _, err := p.Run(context.Background(), setup.Options{Dir: env.ProjectDir}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Failed to install npm dependencies") {
		t.Errorf("missing install failure line:\n%s", out.String())
	}
	assertFileExists(t, filepath.Join(env.ProjectDir, "README.md"))
	assertFileExists(t, filepath.Join(env.ProjectDir, ".gitignore"))
	assertNotExists(t, filepath.Join(env.ProjectDir, "build"))
}

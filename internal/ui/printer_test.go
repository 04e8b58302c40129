package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlain_Lines(t *testing.T) {
	var buf bytes.Buffer
	p := Plain(&buf)

	p.Status("Running: %s", "npm install")
	p.Success("package.json created")
	p.Warning("Build failed - check for errors")
	p.Error("Command failed: %s", "boom")

	want := "🚀 Running: npm install\n" +
		"✅ package.json created\n" +
		"⚠️  Build failed - check for errors\n" +
		"❌ Command failed: boom\n"
	assert.Equal(t, want, buf.String())
}

func TestPlain_NoEscapeSequences(t *testing.T) {
	var buf bytes.Buffer
	p := Plain(&buf)

	p.Hint(Yellow, "1. Update .env")
	p.Command("npm start", "Start development server")

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "1. Update .env\n")
	assert.Contains(t, buf.String(), "npm start          # Start development server\n")
}

func TestNew_NoColorFlag(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Success("done")
	assert.Equal(t, "✅ done\n", buf.String())
}

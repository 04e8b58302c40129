// Package prereq verifies that the external tools the setup pipeline shells
// out to are installed. Each tool is probed with `<binary> --version`; a tool
// that cannot be started or exits non-zero is missing. An optional semver
// constraint flags tools that are present but older than required.
package prereq

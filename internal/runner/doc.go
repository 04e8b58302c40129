// Package runner invokes external programs (npm, npx, git) and captures their
// output. A non-zero exit status is data, not an error: callers decide whether
// a failed command is fatal.
package runner

// Package setup runs the end-to-end scaffolding pipeline: prerequisite
// checks, project files, npm dependency installs, the initial git commit,
// and a trial build.
//
// Only missing prerequisites abort a run. Every later step reports its
// failure and lets the remaining steps proceed, so a partially working
// environment still ends with a complete file tree.
package setup

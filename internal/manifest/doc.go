// Package manifest models the package.json of the scaffolded project and
// validates the generated files that have a machine-readable shape:
// package.json against an embedded JSON Schema, GitHub Actions workflows
// against the minimal structure Actions requires, and the .env templates
// against each other.
package manifest

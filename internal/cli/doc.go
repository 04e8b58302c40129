// Package cli defines the Cobra command tree for the chatbot-setup CLI. The
// root command runs the setup pipeline; each other file registers one
// subcommand. Commands delegate to internal packages for the work and only
// handle flags, settings, and output wiring.
package cli

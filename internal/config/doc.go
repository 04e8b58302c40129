// Package config manages user-level settings stored at ~/.chatbot-setup/config.yaml.
// Every key can also be supplied through a CHATBOT_SETUP_* environment variable,
// e.g. CHATBOT_SETUP_TOOLS_NPM=pnpm. Settings cover the binaries the setup
// pipeline invokes, minimum tool versions, the commit message, and the log level.
package config

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/atos-labs/chatbot-setup/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyToolNode       = "tools.node"
	KeyToolNPM        = "tools.npm"
	KeyToolNPX        = "tools.npx"
	KeyToolGit        = "tools.git"
	KeyMinNode        = "min_versions.node"
	KeyMinNPM         = "min_versions.npm"
	KeyMinGit         = "min_versions.git"
	KeyCommitMessage  = "commit_message"
	KeyGitInit        = "git_init"
	KeyLogLevel       = "log_level"
	DefaultCommitMsg  = "Initial commit: Atos Chatbot with Copilot Studio integration"
	DefaultLogLevel   = "warn"
	DefaultMinNodeVer = ">=16.0.0"
)

// Settings is the resolved view of every key the setup pipeline reads.
type Settings struct {
	NodeBin       string
	NPMBin        string
	NPXBin        string
	GitBin        string
	MinNode       string
	MinNPM        string
	MinGit        string
	CommitMessage string
	GitInit       bool
	LogLevel      string
}

// Dir returns the path to the config directory (~/.chatbot-setup/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.chatbot-setup/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault(KeyToolNode, "node")
	viper.SetDefault(KeyToolNPM, "npm")
	viper.SetDefault(KeyToolNPX, "npx")
	viper.SetDefault(KeyToolGit, "git")
	viper.SetDefault(KeyMinNode, DefaultMinNodeVer)
	viper.SetDefault(KeyMinNPM, "")
	viper.SetDefault(KeyMinGit, "")
	viper.SetDefault(KeyCommitMessage, DefaultCommitMsg)
	viper.SetDefault(KeyGitInit, true)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	setDefaults()
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	// Nested keys map to underscores: tools.npm -> CHATBOT_SETUP_TOOLS_NPM.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Current returns the resolved settings. Load must have been called.
func Current() Settings {
	return Settings{
		NodeBin:       viper.GetString(KeyToolNode),
		NPMBin:        viper.GetString(KeyToolNPM),
		NPXBin:        viper.GetString(KeyToolNPX),
		GitBin:        viper.GetString(KeyToolGit),
		MinNode:       viper.GetString(KeyMinNode),
		MinNPM:        viper.GetString(KeyMinNPM),
		MinGit:        viper.GetString(KeyMinGit),
		CommitMessage: viper.GetString(KeyCommitMessage),
		GitInit:       viper.GetBool(KeyGitInit),
		LogLevel:      viper.GetString(KeyLogLevel),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

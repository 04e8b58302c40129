// Package branding provides compile-time identity values for the CLI and for
// the project it scaffolds.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so a rebrand is an edit to that file and a rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	ProjectName        string `yaml:"project_name"`
	ProjectVersion     string `yaml:"project_version"`
	ProjectDescription string `yaml:"project_description"`
	RepoURL            string `yaml:"repo_url"`
	PagesURL           string `yaml:"pages_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:            "chatbot-setup",
			DisplayName:        "Atos AI Assistant",
			Description:        "Scaffolds the Atos AI Assistant React chatbot project",
			HomeDir:            ".chatbot-setup",
			EnvPrefix:          "CHATBOT_SETUP",
			GoModule:           "github.com/atos-labs/chatbot-setup",
			ProjectName:        "atos-chatbot",
			ProjectVersion:     "1.0.0",
			ProjectDescription: "Atos AI Assistant Chatbot with Copilot Studio integration",
			RepoURL:            "https://github.com/IN-PUN-COAONE-AUTOMATNSA/copilot-websearch.git",
			PagesURL:           "https://in-pun-coaone-automatnsa.github.io/copilot-websearch/",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "chatbot-setup").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the product name shown in the generated UI.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short CLI description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".chatbot-setup").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "CHATBOT_SETUP").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ProjectName returns the npm package name of the scaffolded project.
func ProjectName() string { load(); return defaults.ProjectName }

// ProjectVersion returns the initial version written to package.json.
func ProjectVersion() string { load(); return defaults.ProjectVersion }

// ProjectDescription returns the package.json description.
func ProjectDescription() string { load(); return defaults.ProjectDescription }

// RepoURL returns the git URL of the scaffolded project's upstream.
func RepoURL() string { load(); return defaults.RepoURL }

// PagesURL returns the GitHub Pages URL the project deploys to.
func PagesURL() string { load(); return defaults.PagesURL }

// RepoName returns the last path element of RepoURL without ".git"
// (e.g., "copilot-websearch").
func RepoName() string {
	u := strings.TrimSuffix(RepoURL(), ".git")
	if i := strings.LastIndex(u, "/"); i >= 0 {
		u = u[i+1:]
	}
	return u
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DIR") → "CHATBOT_SETUP_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

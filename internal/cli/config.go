package cli

import (
	"fmt"

	"github.com/atos-labs/chatbot-setup/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.chatbot-setup/config.yaml.

Keys:
  tools.node, tools.npm, tools.npx, tools.git   executables to invoke
  min_versions.node, min_versions.npm, min_versions.git
                                                semver constraints, e.g. ">=16.0.0"
  commit_message                                message for the initial commit
  git_init                                      run 'git init' when .git is absent
  log_level                                     diagnostic log level

Every key can also be set through the environment, e.g.
CHATBOT_SETUP_TOOLS_NPM=pnpm.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

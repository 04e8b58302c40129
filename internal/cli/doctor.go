package cli

import (
	"github.com/atos-labs/chatbot-setup/internal/config"
	"github.com/atos-labs/chatbot-setup/internal/prereq"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node, npm, and git are installed",
	Long: `Run the prerequisite check on its own, without writing any files.

Each tool is probed with --version. A tool below its configured minimum
version (min_versions.* in config) is reported as a warning; a missing tool
makes the command exit with status 1.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := printerFor(cmd)
		checker := &prereq.Checker{Runner: newRunner(logger), Logger: logger}
		report := checker.Check(cmd.Context(), toolsFrom(config.Current()))

		for _, res := range report.Results {
			switch res.Status {
			case prereq.Installed:
				if res.Version != "" {
					out.Success("%s is installed (%s)", res.Tool.Name, res.Version)
				} else {
					out.Success("%s is installed", res.Tool.Name)
				}
			case prereq.Outdated:
				out.Warning("%v", res.Err)
			case prereq.Missing:
				out.Error("%s is not installed", res.Tool.Name)
			}
		}

		if err := report.Err(); err != nil {
			return err
		}
		out.Success("All prerequisites found")
		return nil
	},
}

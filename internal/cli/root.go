package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/atos-labs/chatbot-setup/internal/branding"
	"github.com/atos-labs/chatbot-setup/internal/config"
	"github.com/atos-labs/chatbot-setup/internal/logging"
	"github.com/atos-labs/chatbot-setup/internal/prereq"
	"github.com/atos-labs/chatbot-setup/internal/runner"
	"github.com/atos-labs/chatbot-setup/internal/setup"
	"github.com/atos-labs/chatbot-setup/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagDir         string
	flagSkipInstall bool
	flagSkipBuild   bool
	flagSkipCommit  bool
	flagNoColor     bool
	flagLogLevel    string
)

// logger is built in PersistentPreRunE once settings are loaded.
var logger = zerolog.Nop()

// newRunner builds the command runner. Tests replace it with a fake.
var newRunner = func(log zerolog.Logger) runner.Runner {
	return runner.NewExecRunner(log)
}

func init() {
	rootCmd.Flags().StringVar(&flagDir, "dir", ".", "Project directory to scaffold into")
	rootCmd.Flags().BoolVar(&flagSkipInstall, "skip-install", false, "Skip npm dependency installation")
	rootCmd.Flags().BoolVar(&flagSkipBuild, "skip-build", false, "Skip the trial production build")
	rootCmd.Flags().BoolVar(&flagSkipCommit, "skip-commit", false, "Skip git init, add, and commit")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: `Scaffolds the ` + branding.DisplayName() + ` chatbot: a React single-page app that
talks to a Copilot Studio endpoint, with Tailwind styling, GitHub Pages and
Azure Static Web Apps workflows, and an initial git commit.

Run it with no arguments inside an empty directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		level := flagLogLevel
		if level == "" {
			level = config.Current().LogLevel
		}
		l, err := logging.New(os.Stderr, level, flagNoColor)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		dir := flagDir
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating project directory: %w", err)
		}

		p := setup.New(newRunner(logger), printerFor(cmd), dir, logger)
		_, err := p.Run(cmd.Context(), setup.Options{
			Dir:           dir,
			Tools:         toolsFrom(settings),
			CommitMessage: settings.CommitMessage,
			SkipInstall:   flagSkipInstall,
			SkipBuild:     flagSkipBuild,
			SkipCommit:    flagSkipCommit,
			GitInit:       settings.GitInit,
			Commands: setup.CommandSet{
				NPM: settings.NPMBin,
				NPX: settings.NPXBin,
				Git: settings.GitBin,
			},
		})
		return err
	},
}

// toolsFrom maps settings onto the prerequisite list.
func toolsFrom(s config.Settings) []prereq.Tool {
	return []prereq.Tool{
		{Name: "node", Binary: s.NodeBin, MinVersion: s.MinNode},
		{Name: "npm", Binary: s.NPMBin, MinVersion: s.MinNPM},
		{Name: "git", Binary: s.GitBin, MinVersion: s.MinGit},
	}
}

func printerFor(cmd *cobra.Command) *ui.Printer {
	return ui.New(cmd.OutOrStdout(), flagNoColor)
}

// Execute runs the root command with build info injected via ldflags. The
// returned error has already been printed.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, prereq.ErrMissingTools) {
		ui.New(os.Stderr, flagNoColor).Error("%v", err)
	}
	return err
}

package setup

import (
	"context"
	"strings"

	"github.com/atos-labs/chatbot-setup/internal/runner"
	"github.com/atos-labs/chatbot-setup/internal/ui"
	"github.com/spf13/afero"
)

// DefaultCommitMessage is used when Options.CommitMessage is empty.
const DefaultCommitMessage = "Initial commit: Atos Chatbot with Copilot Studio integration"

// exec runs one command in the project directory and narrates it. It reports
// whether the command succeeded; the error return is only for a cancelled
// context, which stops the pipeline.
func (p *Pipeline) exec(ctx context.Context, opts Options, s *Summary, cmd runner.Command) (bool, error) {
	cmd = cmd.In(opts.Dir)
	line := cmd.String()
	p.Printer.Status("Running: %s", line)

	out, err := p.Runner.Run(ctx, cmd)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, ctxErr
	}
	if err != nil {
		p.Printer.Error("Error running command: %v", err)
		s.Failed = append(s.Failed, line)
		return false, nil
	}
	if !out.Succeeded() {
		p.Printer.Error("Command failed: %s", strings.TrimSpace(out.Stderr))
		s.Failed = append(s.Failed, line)
		return false, nil
	}

	p.Printer.Success("Command completed successfully")
	if stdout := strings.TrimSpace(out.Stdout); stdout != "" {
		p.Printer.Println("Output: " + stdout)
	}
	return true, nil
}

type step struct {
	cmd     runner.Command
	onError func()
}

func (p *Pipeline) runSteps(ctx context.Context, opts Options, s *Summary, steps []step) error {
	for _, st := range steps {
		ok, err := p.exec(ctx, opts, s, st.cmd)
		if err != nil {
			return err
		}
		if !ok && st.onError != nil {
			st.onError()
		}
	}
	return nil
}

func (p *Pipeline) installDependencies(ctx context.Context, opts Options, s *Summary) error {
	npm, npx := opts.Commands.NPM, opts.Commands.NPX
	warn := func(msg string) func() {
		return func() { p.Printer.Warning("%s", msg) }
	}

	p.Printer.Status("Installing npm dependencies...")
	err := p.runSteps(ctx, opts, s, []step{{
		cmd:     runner.New(npm, "install"),
		onError: func() { p.Printer.Error("Failed to install npm dependencies") },
	}})
	if err != nil {
		return err
	}

	p.Printer.Status("Installing Tailwind CSS...")
	err = p.runSteps(ctx, opts, s, []step{
		{runner.New(npm, "install", "-D", "tailwindcss", "postcss", "autoprefixer"), warn("Failed to install Tailwind CSS via npm")},
		{runner.New(npx, "tailwindcss", "init", "-p"), warn("Failed to initialize Tailwind CSS")},
	})
	if err != nil {
		return err
	}

	p.Printer.Status("Installing additional dependencies...")
	return p.runSteps(ctx, opts, s, []step{
		{runner.New(npm, "install", "lucide-react"), warn("Failed to install lucide-react")},
		{runner.New(npm, "install", "gh-pages", "--save-dev"), warn("Failed to install gh-pages")},
	})
}

func (p *Pipeline) commit(ctx context.Context, opts Options, s *Summary) error {
	git := opts.Commands.Git
	p.Printer.Status("Setting up Git...")

	var steps []step
	if opts.GitInit {
		if ok, _ := afero.DirExists(p.Fs, ".git"); !ok {
			steps = append(steps, step{cmd: runner.New(git, "init")})
		}
	}
	steps = append(steps,
		step{cmd: runner.New(git, "add", ".")},
		step{cmd: runner.New(git, "commit", "-m", opts.CommitMessage)},
	)
	return p.runSteps(ctx, opts, s, steps)
}

func (p *Pipeline) printNextSteps() {
	out := p.Printer
	out.Success("🎉 Deployment automation completed successfully!")
	out.Blank()

	out.Status("📋 Next Steps:")
	for _, line := range []string{
		"1. Update .env file with your Copilot Studio API credentials",
		"2. Test locally: npm start",
		"3. Push to GitHub: git push origin main",
		"4. Enable GitHub Pages in repository settings",
	} {
		out.Hint(ui.Yellow, line)
	}
	out.Blank()

	out.Status("🔗 Your app will be available at:")
	out.Hint(ui.Green, p.Data.PagesURL)
	out.Blank()

	out.Status("🛠️ Development Commands:")
	out.Command("npm start", "Start development server")
	out.Command("npm run build", "Create production build")
	out.Command("npm run deploy", "Deploy to GitHub Pages")
	out.Command("npm test", "Run tests")
}

package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atos-labs/chatbot-setup/internal/prereq"
	"github.com/atos-labs/chatbot-setup/internal/runner"
	"github.com/atos-labs/chatbot-setup/internal/scaffold"
	"github.com/atos-labs/chatbot-setup/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CommandSet names the executables the pipeline invokes.
type CommandSet struct {
	NPM string
	NPX string
	Git string
}

// DefaultCommands returns the stock binary names.
func DefaultCommands() CommandSet {
	return CommandSet{NPM: "npm", NPX: "npx", Git: "git"}
}

func (c CommandSet) withDefaults() CommandSet {
	d := DefaultCommands()
	if c.NPM == "" {
		c.NPM = d.NPM
	}
	if c.NPX == "" {
		c.NPX = d.NPX
	}
	if c.Git == "" {
		c.Git = d.Git
	}
	return c
}

// Options controls a single pipeline run.
type Options struct {
	// Dir is the project directory. Commands run there and it is the
	// directory shown in the banner.
	Dir string
	// Tools to check before anything is written. Nil means prereq.DefaultTools().
	Tools         []prereq.Tool
	CommitMessage string
	SkipInstall   bool
	SkipBuild     bool
	SkipCommit    bool
	// GitInit runs `git init` when the project has no .git directory.
	GitInit  bool
	Commands CommandSet
}

// Summary records what a run did.
type Summary struct {
	Files    []string
	Warnings []string
	// Failed lists the command lines that exited non-zero or did not start.
	Failed []string
}

func (s *Summary) addResult(r *scaffold.Result) {
	if r == nil {
		return
	}
	s.Files = append(s.Files, r.Files...)
	s.Warnings = append(s.Warnings, r.Warnings...)
}

// Pipeline wires the collaborators of a run.
type Pipeline struct {
	Runner  runner.Runner
	Printer *ui.Printer
	// Fs is rooted at the project directory.
	Fs     afero.Fs
	Logger zerolog.Logger
	Data   *scaffold.Data
}

// New returns a Pipeline writing to the OS filesystem under dir.
func New(r runner.Runner, p *ui.Printer, dir string, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		Runner:  r,
		Printer: p,
		Fs:      afero.NewBasePathFs(afero.NewOsFs(), dir),
		Logger:  logger,
		Data:    scaffold.NewData(),
	}
}

// Run executes every step in order. The only error it returns is a wrapped
// prereq.ErrMissingTools (or a cancelled context); all other failures are
// printed and recorded in the Summary.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Summary, error) {
	opts.Commands = opts.Commands.withDefaults()
	if opts.Tools == nil {
		opts.Tools = prereq.DefaultTools()
	}
	if opts.CommitMessage == "" {
		opts.CommitMessage = DefaultCommitMessage
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if p.Data == nil {
		p.Data = scaffold.NewData()
	}

	summary := &Summary{}
	out := p.Printer

	out.Status("🎯 Atos Chatbot Deployment Automation Starting...")
	out.Status("Current directory: %s", displayDir(opts.Dir))

	if err := p.checkPrerequisites(ctx, opts.Tools); err != nil {
		return summary, err
	}

	emitter := scaffold.NewEmitter(p.Fs, p.Data, p.Logger)

	out.Status("Creating folder structure...")
	folders, err := emitter.CreateFolders()
	for _, f := range folders {
		out.Success("Created folder: %s", f)
	}
	if err != nil {
		out.Error("%v", err)
	}

	out.Status("Creating package.json...")
	res, err := emitter.WritePackage()
	p.report(summary, res, err, "package.json created")

	if opts.SkipInstall {
		out.Warning("Skipping npm dependency installation")
	} else if err := p.installDependencies(ctx, opts, summary); err != nil {
		return summary, err
	}

	for _, g := range scaffold.Groups() {
		out.Status("Creating %s...", g.Label())
		res, err := emitter.Emit(g)
		p.report(summary, res, err, doneMessage(g))
	}

	if opts.SkipCommit {
		out.Warning("Skipping git commit")
	} else if err := p.commit(ctx, opts, summary); err != nil {
		return summary, err
	}

	if opts.SkipBuild {
		out.Warning("Skipping build test")
	} else {
		out.Status("Testing build...")
		ok, err := p.exec(ctx, opts, summary, runner.New(opts.Commands.NPM, "run", "build"))
		if err != nil {
			return summary, err
		}
		if ok {
			out.Success("Build successful!")
		} else {
			out.Warning("Build failed - check for errors")
		}
	}

	p.printNextSteps()

	p.Logger.Debug().
		Int("files", len(summary.Files)).
		Int("warnings", len(summary.Warnings)).
		Strs("failed", summary.Failed).
		Msg("setup finished")
	return summary, nil
}

// report prints the outcome of a file-writing step and records it.
func (p *Pipeline) report(s *Summary, res *scaffold.Result, err error, done string) {
	s.addResult(res)
	if err != nil {
		p.Printer.Error("%v", err)
		return
	}
	for _, w := range res.Warnings {
		p.Printer.Warning("%s", w)
	}
	p.Printer.Success("%s", done)
}

func doneMessage(g scaffold.Group) string {
	switch g {
	case scaffold.GroupComponent:
		return "React component created"
	case scaffold.GroupConfig:
		return "Configuration files created"
	case scaffold.GroupEnv:
		return "Environment files created"
	case scaffold.GroupWorkflows:
		return "GitHub workflows created"
	case scaffold.GroupTests:
		return "Component tests created"
	default:
		return g.Label() + " created"
	}
}

func displayDir(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

func (p *Pipeline) checkPrerequisites(ctx context.Context, tools []prereq.Tool) error {
	p.Printer.Status("Checking prerequisites...")

	checker := &prereq.Checker{Runner: p.Runner, Logger: p.Logger}
	report := checker.Check(ctx, tools)
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, res := range report.Results {
		switch res.Status {
		case prereq.Installed:
			p.Printer.Success("%s is installed", res.Tool.Name)
			if res.Err != nil {
				p.Logger.Debug().Err(res.Err).Str("tool", res.Tool.Name).Msg("version not checked")
			}
		case prereq.Outdated:
			p.Printer.Warning("%v", res.Err)
		case prereq.Missing:
			p.Printer.Error("%s is not installed", res.Tool.Name)
		}
	}

	if err := report.Err(); err != nil {
		p.Printer.Error("Please install missing tools: %s", strings.Join(report.Missing(), ", "))
		return fmt.Errorf("checking prerequisites: %w", err)
	}
	return nil
}

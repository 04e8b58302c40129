package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/atos-labs/chatbot-setup/internal/branding"
	"github.com/atos-labs/chatbot-setup/internal/manifest"
)

//go:embed templates
var templateFS embed.FS

const (
	templatesRoot = "templates"
	tmplSuffix    = ".tmpl"
	dotPrefix     = "dot_"

	// PackageFileName is the manifest path relative to the project root.
	PackageFileName = "package.json"
)

// File permissions.
const (
	FilePerm       os.FileMode = 0644
	SecretFilePerm os.FileMode = 0600
	DirPerm        os.FileMode = 0755
)

// ErrUnknownGroup is returned for a group name with no templates.
var ErrUnknownGroup = errors.New("unknown file group")

// Data holds the values available to .tmpl files.
type Data struct {
	ProjectName string // npm package name, e.g. "atos-chatbot"
	DisplayName string // e.g. "Atos AI Assistant"
	Version     string
	Description string
	RepoURL     string
	RepoName    string // directory a clone lands in
	PagesURL    string
	ThemeColor  string
	NodeVersion string // Node major used by CI
}

// NewData returns Data populated from branding.
func NewData() *Data {
	return &Data{
		ProjectName: branding.ProjectName(),
		DisplayName: branding.DisplayName(),
		Version:     branding.ProjectVersion(),
		Description: branding.ProjectDescription(),
		RepoURL:     branding.RepoURL(),
		RepoName:    branding.RepoName(),
		PagesURL:    branding.PagesURL(),
		ThemeColor:  "#2563eb",
		NodeVersion: "18",
	}
}

// File is one generated file. Path is relative and slash-separated.
type File struct {
	Path    string
	Content []byte
	Perm    os.FileMode
}

// Group is a named set of files written together.
type Group string

const (
	GroupComponent Group = "component"
	GroupConfig    Group = "config"
	GroupEnv       Group = "env"
	GroupWorkflows Group = "workflows"
	GroupGitignore Group = "gitignore"
	GroupReadme    Group = "readme"
	GroupTests     Group = "tests"
)

type groupSpec struct {
	label   string
	sources []string // template paths, in write order
}

var groups = map[Group]groupSpec{
	GroupComponent: {"React component", []string{
		"src/components/AtosChatbot.js",
	}},
	GroupConfig: {"configuration files", []string{
		"src/App.js",
		"src/App.css",
		"src/index.js",
		"public/index.html.tmpl",
		"tailwind.config.js",
		"postcss.config.js",
	}},
	GroupEnv: {"environment files", []string{
		"dot_env.example.tmpl",
		"dot_env.tmpl",
	}},
	GroupWorkflows: {"GitHub Actions workflows", []string{
		"dot_github/workflows/deploy.yml",
		"dot_github/workflows/azure-static-web-apps.yml",
	}},
	GroupGitignore: {".gitignore", []string{
		"dot_gitignore",
	}},
	GroupReadme: {"README.md", []string{
		"README.md.tmpl",
	}},
	GroupTests: {"component tests", []string{
		"src/App.test.js",
	}},
}

// Groups returns every group in the order the pipeline writes them.
func Groups() []Group {
	return []Group{GroupComponent, GroupConfig, GroupTests, GroupEnv, GroupWorkflows, GroupGitignore, GroupReadme}
}

// Label returns the human-readable name of the group.
func (g Group) Label() string {
	if spec, ok := groups[g]; ok {
		return spec.label
	}
	return string(g)
}

// Folders returns the directories created before any file is written.
func Folders() []string {
	return []string{
		"src/components",
		"public",
		".github/workflows",
		"deployment",
	}
}

// OutputPath maps a template path to the path it is written to:
// "dot_github/workflows/x.yml" -> ".github/workflows/x.yml",
// "README.md.tmpl" -> "README.md".
func OutputPath(tmplPath string) string {
	segs := strings.Split(strings.TrimSuffix(tmplPath, tmplSuffix), "/")
	for i, s := range segs {
		if strings.HasPrefix(s, dotPrefix) {
			segs[i] = "." + strings.TrimPrefix(s, dotPrefix)
		}
	}
	return strings.Join(segs, "/")
}

// permFor returns the mode a generated file is written with. Real env files
// hold credentials once filled in.
func permFor(outPath string) os.FileMode {
	if path.Base(outPath) == ".env" {
		return SecretFilePerm
	}
	return FilePerm
}

// Render produces the files of one group.
func Render(g Group, data *Data) ([]File, error) {
	spec, ok := groups[g]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}

	files := make([]File, 0, len(spec.sources))
	for _, src := range spec.sources {
		f, err := renderOne(src, data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

func renderOne(src string, data *Data) (File, error) {
	raw, err := fs.ReadFile(templateFS, path.Join(templatesRoot, src))
	if err != nil {
		return File{}, fmt.Errorf("reading template %s: %w", src, err)
	}

	out := OutputPath(src)
	if !strings.HasSuffix(src, tmplSuffix) {
		return File{Path: out, Content: raw, Perm: permFor(out)}, nil
	}

	tmpl, err := template.New(src).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return File{}, fmt.Errorf("parsing template %s: %w", src, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("executing template %s: %w", src, err)
	}
	return File{Path: out, Content: buf.Bytes(), Perm: permFor(out)}, nil
}

// PackageFile returns the generated package.json.
func PackageFile(data *Data) (File, error) {
	content, err := manifest.DefaultPackage(data.ProjectName, data.Version, data.Description).Marshal()
	if err != nil {
		return File{}, err
	}
	return File{Path: PackageFileName, Content: content, Perm: FilePerm}, nil
}

// Manifest returns every file the tool generates: package.json followed by
// each group in write order.
func Manifest(data *Data) ([]File, error) {
	pkg, err := PackageFile(data)
	if err != nil {
		return nil, err
	}
	all := []File{pkg}
	for _, g := range Groups() {
		files, err := Render(g, data)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}

package scaffold

import (
	"fmt"
	"path"
	"strings"

	"github.com/atos-labs/chatbot-setup/internal/manifest"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Result holds the outcome of writing one batch of files.
type Result struct {
	Files    []string
	Warnings []string
}

// Emitter writes generated files into a filesystem rooted at the project
// directory. Every write truncates, so emitting twice yields identical files.
type Emitter struct {
	fs     afero.Fs
	data   *Data
	logger zerolog.Logger
}

// NewEmitter returns an Emitter writing into fsys. Paths are relative to the
// root of fsys; callers typically pass afero.NewBasePathFs(afero.NewOsFs(), dir).
func NewEmitter(fsys afero.Fs, data *Data, logger zerolog.Logger) *Emitter {
	if data == nil {
		data = NewData()
	}
	return &Emitter{fs: fsys, data: data, logger: logger}
}

// CreateFolders creates the project directory layout and returns the folders
// in creation order. Existing folders are left alone.
func (e *Emitter) CreateFolders() ([]string, error) {
	var created []string
	for _, dir := range Folders() {
		if err := e.fs.MkdirAll(dir, DirPerm); err != nil {
			return created, fmt.Errorf("creating folder %s: %w", dir, err)
		}
		created = append(created, dir)
	}
	return created, nil
}

// WritePackage writes package.json and validates it.
func (e *Emitter) WritePackage() (*Result, error) {
	f, err := PackageFile(e.data)
	if err != nil {
		return nil, err
	}
	return e.Write([]File{f})
}

// Emit renders and writes one group.
func (e *Emitter) Emit(g Group) (*Result, error) {
	files, err := Render(g, e.data)
	if err != nil {
		return nil, err
	}
	return e.Write(files)
}

// Write writes files in order, creating parent directories. It stops at the
// first filesystem error; files written before it stay on disk and are listed
// in the returned Result.
func (e *Emitter) Write(files []File) (*Result, error) {
	result := &Result{}
	for _, f := range files {
		if err := e.writeFile(f); err != nil {
			return result, err
		}
		result.Files = append(result.Files, f.Path)
		e.logger.Debug().Str("path", f.Path).Int("bytes", len(f.Content)).Msg("wrote file")
	}
	for _, f := range files {
		result.Warnings = append(result.Warnings, e.validate(f)...)
	}
	return result, nil
}

func (e *Emitter) writeFile(f File) error {
	if dir := path.Dir(f.Path); dir != "." {
		if err := e.fs.MkdirAll(dir, DirPerm); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	perm := f.Perm
	if perm == 0 {
		perm = FilePerm
	}
	if err := afero.WriteFile(e.fs, f.Path, f.Content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", f.Path, err)
	}
	// WriteFile applies perm only when it creates the file.
	if err := e.fs.Chmod(f.Path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", f.Path, err)
	}
	return nil
}

// validate checks a written file whose format has a known shape and returns
// findings as warnings.
func (e *Emitter) validate(f File) []string {
	var (
		result *manifest.ValidationResult
		err    error
	)
	switch {
	case f.Path == PackageFileName:
		result, err = manifest.ValidatePackage(f.Content)
	case strings.HasPrefix(f.Path, ".github/workflows/"):
		result, err = manifest.ValidateWorkflow(f.Content)
	case f.Path == ".env":
		example, readErr := afero.ReadFile(e.fs, ".env.example")
		if readErr != nil {
			return nil
		}
		result, err = manifest.CompareEnv(example, f.Content)
	default:
		return nil
	}

	if err != nil {
		return []string{fmt.Sprintf("%s: could not validate: %v", f.Path, err)}
	}
	if result.Valid {
		return nil
	}
	warnings := make([]string, 0, len(result.Issues))
	for _, msg := range result.Messages() {
		warnings = append(warnings, f.Path+": "+msg)
	}
	return warnings
}

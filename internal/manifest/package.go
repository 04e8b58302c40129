package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Package is the package.json of the scaffolded project. Struct field order
// is the key order in the written file.
type Package struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	Scripts         Scripts           `json:"scripts"`
	ESLintConfig    ESLintConfig      `json:"eslintConfig"`
	Browserslist    Browserslist      `json:"browserslist"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Scripts are the npm run targets.
type Scripts struct {
	Start  string `json:"start"`
	Build  string `json:"build"`
	Test   string `json:"test"`
	Eject  string `json:"eject"`
	Deploy string `json:"deploy"`
}

// ESLintConfig is the inline eslint configuration used by react-scripts.
type ESLintConfig struct {
	Extends []string `json:"extends"`
}

// Browserslist holds the build targets per environment.
type Browserslist struct {
	Production  []string `json:"production"`
	Development []string `json:"development"`
}

// DefaultPackage returns the manifest for a create-react-app project with
// Tailwind, lucide-react icons, and gh-pages deployment.
func DefaultPackage(name, version, description string) *Package {
	return &Package{
		Name:        name,
		Version:     version,
		Description: description,
		Private:     true,
		Dependencies: map[string]string{
			"@testing-library/jest-dom":   "^5.16.4",
			"@testing-library/react":      "^13.3.0",
			"@testing-library/user-event": "^13.5.0",
			"lucide-react":                "^0.263.1",
			"react":                       "^18.2.0",
			"react-dom":                   "^18.2.0",
			"react-scripts":               "5.0.1",
			"web-vitals":                  "^2.1.4",
		},
		Scripts: Scripts{
			Start:  "react-scripts start",
			Build:  "react-scripts build",
			Test:   "react-scripts test",
			Eject:  "react-scripts eject",
			Deploy: "npm run build && gh-pages -d build",
		},
		ESLintConfig: ESLintConfig{
			Extends: []string{"react-app", "react-app/jest"},
		},
		Browserslist: Browserslist{
			Production:  []string{">0.2%", "not dead", "not op_mini all"},
			Development: []string{"last 1 chrome version", "last 1 firefox version", "last 1 safari version"},
		},
		DevDependencies: map[string]string{
			"autoprefixer": "^10.4.14",
			"gh-pages":     "^5.0.0",
			"postcss":      "^8.4.24",
			"tailwindcss":  "^3.3.0",
		},
	}
}

// Marshal renders the manifest as 2-space indented JSON with a trailing
// newline. Dependency maps are written in sorted key order, so the output
// is stable across runs.
func (p *Package) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Keep ">0.2%" and "&&" readable instead of > / &.
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return buf.Bytes(), nil
}

// ParsePackage decodes package.json bytes.
func ParsePackage(data []byte) (*Package, error) {
	var p Package
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &p, nil
}

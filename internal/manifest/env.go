package manifest

import (
	"fmt"
	"sort"

	"github.com/joho/godotenv"
)

// CompareEnv parses an env template and a concrete env file and reports keys
// that appear in only one of them. Values are not compared; the template
// holds placeholders.
func CompareEnv(example, actual []byte) (*ValidationResult, error) {
	want, err := godotenv.Unmarshal(string(example))
	if err != nil {
		return nil, fmt.Errorf("parsing env template: %w", err)
	}
	got, err := godotenv.Unmarshal(string(actual))
	if err != nil {
		return nil, fmt.Errorf("parsing env file: %w", err)
	}

	var issues []ValidationIssue
	for _, k := range sortedKeys(want) {
		if _, ok := got[k]; !ok {
			issues = append(issues, ValidationIssue{Path: k, Keyword: "required", Message: "defined in template but missing from env file"})
		}
	}
	for _, k := range sortedKeys(got) {
		if _, ok := want[k]; !ok {
			issues = append(issues, ValidationIssue{Path: k, Keyword: "additionalProperties", Message: "not documented in env template"})
		}
	}

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// EnvKeys returns the sorted variable names defined in env file content.
func EnvKeys(data []byte) ([]string, error) {
	m, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing env file: %w", err)
	}
	return sortedKeys(m), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

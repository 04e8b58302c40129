package manifest

import (
	"fmt"
	"sort"

	"go.yaml.in/yaml/v3"
)

// ValidateWorkflow checks that a GitHub Actions workflow has the structure
// Actions needs before it will schedule anything: a name, triggers under
// "on", and at least one job with "runs-on" and a non-empty "steps" list.
// The error return is for YAML that cannot be parsed at all.
func ValidateWorkflow(data []byte) (*ValidationResult, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing workflow YAML: %w", err)
	}

	var issues []ValidationIssue
	add := func(path, keyword, format string, args ...any) {
		issues = append(issues, ValidationIssue{
			Path:    path,
			Keyword: keyword,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if name, _ := doc["name"].(string); name == "" {
		add("", "required", "missing property 'name'")
	}
	if doc["on"] == nil {
		add("", "required", "missing property 'on'")
	}

	jobs, _ := doc["jobs"].(map[string]any)
	if len(jobs) == 0 {
		add("/jobs", "minProperties", "workflow defines no jobs")
	}

	names := make([]string, 0, len(jobs))
	for name := range jobs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := "/jobs/" + name
		job, ok := jobs[name].(map[string]any)
		if !ok {
			add(path, "type", "job must be a mapping")
			continue
		}
		if job["runs-on"] == nil {
			add(path, "required", "missing property 'runs-on'")
		}
		steps, _ := job["steps"].([]any)
		if len(steps) == 0 {
			add(path+"/steps", "minItems", "job has no steps")
		}
		for i, s := range steps {
			step, ok := s.(map[string]any)
			if !ok {
				add(fmt.Sprintf("%s/steps/%d", path, i), "type", "step must be a mapping")
				continue
			}
			if step["uses"] == nil && step["run"] == nil {
				add(fmt.Sprintf("%s/steps/%d", path, i), "oneOf", "step needs 'uses' or 'run'")
			}
		}
	}

	return &ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

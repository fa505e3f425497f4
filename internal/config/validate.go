package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// normalize trims fields and fills unset values from defaults.
func normalize(cfg *Config) {
	defaults := Default()
	repo := &cfg.Source.Repo
	repo.User = strings.TrimSpace(repo.User)
	repo.Name = strings.TrimSpace(repo.Name)
	repo.Branch = strings.TrimSpace(repo.Branch)
	repo.Dir = strings.TrimSpace(repo.Dir)
	if repo.User == "" {
		repo.User = defaults.Source.Repo.User
	}
	if repo.Name == "" {
		repo.Name = defaults.Source.Repo.Name
	}
	if repo.Branch == "" {
		repo.Branch = defaults.Source.Repo.Branch
	}
	if repo.Dir == "" {
		repo.Dir = defaults.Source.Repo.Dir
	}
	if cfg.Quiz.PassThreshold == 0 {
		cfg.Quiz.PassThreshold = defaults.Quiz.PassThreshold
	}
}

// validate checks a normalized config.
func validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	if cfg.Quiz.PassThreshold < 0 || cfg.Quiz.PassThreshold > 1 {
		collector.add("quiz.pass_threshold", "must be between 0 and 1")
	}
	for field, value := range map[string]string{
		"source.repo.user":   cfg.Source.Repo.User,
		"source.repo.name":   cfg.Source.Repo.Name,
		"source.repo.branch": cfg.Source.Repo.Branch,
		"source.repo.dir":    cfg.Source.Repo.Dir,
	} {
		if strings.Contains(value, "/") || strings.Contains(value, " ") {
			collector.add(field, fmt.Sprintf("invalid value %q", value))
		}
	}
	return collector.result()
}

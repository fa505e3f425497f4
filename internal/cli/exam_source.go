package cli

import (
	"context"
	"flag"
	"fmt"

	"mcq/internal/config"
	"mcq/internal/source"
)

// sourceFlags holds the flags shared by commands that obtain exam markdown.
type sourceFlags struct {
	mode       string
	examNumber int
	examMD     string
	configPath string
}

func addSourceFlags(fs *flag.FlagSet) *sourceFlags {
	flags := &sourceFlags{}
	fs.StringVar(&flags.mode, "source", "", "Where to load the exam from: github (download) or local (file path)")
	fs.IntVar(&flags.examNumber, "exam-number", 0, "Exam number to fetch from GitHub (e.g., 16 => practice-exam-16.md)")
	fs.StringVar(&flags.examMD, "exam-md", "", "Local markdown file path (required if --source local)")
	fs.StringVar(&flags.configPath, "config", "", "Path to config file (default: "+config.DefaultPath+" when present)")
	return flags
}

// check validates flag combinations before any work happens. Failures here
// are usage errors.
func (flags *sourceFlags) check() error {
	switch flags.mode {
	case "github":
		if flags.examNumber <= 0 {
			return fmt.Errorf("please provide --exam-number when --source github")
		}
	case "local":
		if flags.examMD == "" {
			return fmt.Errorf("please provide --exam-md when --source local")
		}
	case "":
		return fmt.Errorf("--source is required (github or local)")
	default:
		return fmt.Errorf("invalid --source %q (expected github or local)", flags.mode)
	}
	return nil
}

// loadConfig resolves the config file for these flags.
func (flags *sourceFlags) loadConfig() (config.Config, error) {
	path := flags.configPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}
	return config.LoadOrDefault(path, explicit)
}

// loadText obtains the raw exam markdown from the selected source.
func (flags *sourceFlags) loadText(ctx context.Context, cfg config.Config) (string, error) {
	if flags.mode == "local" {
		return source.ReadLocal(flags.examMD)
	}
	repo := cfg.Source.Repo
	client := source.NewGitHubClient(source.Repo{
		User:   repo.User,
		Name:   repo.Name,
		Branch: repo.Branch,
		Dir:    repo.Dir,
	})
	return client.FetchExam(ctx, flags.examNumber)
}

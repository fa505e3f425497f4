// Package config loads the optional .mcq.yml file that points the github
// source at an exam repository and tunes quiz defaults. Command-line flags
// always take precedence over config values.
package config

// DefaultPath is where the config file is looked up when --config is not set.
const DefaultPath = ".mcq.yml"

// Config is the root configuration schema.
type Config struct {
	Version int          `yaml:"version"`
	Source  SourceConfig `yaml:"source"`
	Quiz    QuizConfig   `yaml:"quiz"`
}

// SourceConfig configures where remote exams are fetched from.
type SourceConfig struct {
	Repo RepoConfig `yaml:"repo"`
}

// RepoConfig identifies the repository holding the exam markdown files.
type RepoConfig struct {
	User   string `yaml:"user"`
	Name   string `yaml:"name"`
	Branch string `yaml:"branch"`
	Dir    string `yaml:"dir"`
}

// QuizConfig tunes quiz behaviour.
type QuizConfig struct {
	// PassThreshold is the fraction of correct answers required to pass.
	PassThreshold float64 `yaml:"pass_threshold"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		Version: 1,
		Source: SourceConfig{
			Repo: RepoConfig{
				User:   "kananinirav",
				Name:   "AWS-Certified-Cloud-Practitioner-Notes",
				Branch: "master",
				Dir:    "practice-exam",
			},
		},
		Quiz: QuizConfig{PassThreshold: 0.7},
	}
}

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultRawBaseURL = "https://raw.githubusercontent.com"

const fetchTimeout = 30 * time.Second

// Repo identifies the repository and directory holding the exam files.
type Repo struct {
	User   string
	Name   string
	Branch string
	Dir    string
}

// GitHubClient fetches exam markdown from a raw-content endpoint.
type GitHubClient struct {
	baseURL string
	repo    Repo
	client  *http.Client
}

// NewGitHubClient constructs a client for the given repository.
func NewGitHubClient(repo Repo) *GitHubClient {
	return NewGitHubClientWithBaseURL(repo, defaultRawBaseURL)
}

// NewGitHubClientWithBaseURL constructs a client against a custom base URL.
func NewGitHubClientWithBaseURL(repo Repo, baseURL string) *GitHubClient {
	return &GitHubClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		repo:    repo,
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

// ExamURL returns the raw-content URL for an exam number.
func (c *GitHubClient) ExamURL(examNumber int) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s/practice-exam-%d.md",
		c.baseURL, c.repo.User, c.repo.Name, c.repo.Branch, c.repo.Dir, examNumber)
}

// FetchExam downloads the markdown for an exam number.
func (c *GitHubClient) FetchExam(ctx context.Context, examNumber int) (string, error) {
	url := c.ExamURL(examNumber)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &Error{Source: "github", Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return "", &Error{Source: "github", Err: fmt.Errorf("fetch exam %d: %w", examNumber, err)}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: "github", Err: fmt.Errorf("fetch exam %d: HTTP %d from %s", examNumber, resp.StatusCode, url)}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: "github", Err: fmt.Errorf("read exam %d body: %w", examNumber, err)}
	}
	return string(body), nil
}

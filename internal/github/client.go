package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"

	"github.com/keptn-contrib/gh-label-sync/internal/label"
)

// LabelService is the interface the sync engine needs from the GitHub API:
// full retrieval of a repository's labels, plus create and update mutations.
type LabelService interface {
	ListLabels(ctx context.Context, owner, repo string) ([]label.Label, error)
	CreateLabel(ctx context.Context, owner, repo string, l label.Label) error
	UpdateLabel(ctx context.Context, owner, repo, currentName string, l label.Label) error
}

// Client wraps the GitHub REST API client.
type Client struct {
	github *github.Client
	retry  RetryStrategy
}

// Option configures a Client.
type Option func(*Client)

// WithRetryStrategy sets the retry strategy applied to API calls.
func WithRetryStrategy(rs RetryStrategy) Option {
	return func(c *Client) {
		c.retry = rs
	}
}

// WithBaseURL points the client at a different API endpoint. Used by tests
// and GitHub Enterprise setups.
func WithBaseURL(u *url.URL) Option {
	return func(c *Client) {
		c.github.BaseURL = u
	}
}

// NewClient creates a GitHub API client. With an empty token the client is
// unauthenticated; listing public repository labels works, mutations will be
// rejected by the API.
func NewClient(token string, opts ...Option) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	c := &Client{
		github: github.NewClient(httpClient),
		retry:  DefaultRetryStrategy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListLabels retrieves all labels of the repository, transparently fetching
// every page before returning.
func (c *Client) ListLabels(ctx context.Context, owner, repo string) ([]label.Label, error) {
	if err := validateRepo(owner, repo); err != nil {
		return nil, err
	}

	var labels []label.Label
	err := c.retry.withRetry(ctx, func() error {
		labels = labels[:0]
		opts := &github.ListOptions{PerPage: 100}
		for {
			page, resp, err := c.github.Issues.ListLabels(ctx, owner, repo, opts)
			if err != nil {
				return classifyError(err)
			}
			for _, gl := range page {
				labels = append(labels, fromGitHubLabel(gl))
			}
			if resp.NextPage == 0 {
				return nil
			}
			opts.Page = resp.NextPage
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list labels for %s/%s: %w", owner, repo, err)
	}
	return labels, nil
}

// CreateLabel creates the label in the repository.
func (c *Client) CreateLabel(ctx context.Context, owner, repo string, l label.Label) error {
	if err := validateRepo(owner, repo); err != nil {
		return err
	}

	err := c.retry.withRetry(ctx, func() error {
		_, _, err := c.github.Issues.CreateLabel(ctx, owner, repo, toGitHubLabel(l))
		return classifyError(err)
	})
	if err != nil {
		return fmt.Errorf("failed to create label %q in %s/%s: %w", l.Name, owner, repo, err)
	}
	return nil
}

// UpdateLabel updates the label currently named currentName to match l. A nil
// description is omitted from the payload so an existing description is never
// cleared by accident.
func (c *Client) UpdateLabel(ctx context.Context, owner, repo, currentName string, l label.Label) error {
	if err := validateRepo(owner, repo); err != nil {
		return err
	}

	err := c.retry.withRetry(ctx, func() error {
		_, _, err := c.github.Issues.EditLabel(ctx, owner, repo, currentName, toGitHubLabel(l))
		return classifyError(err)
	})
	if err != nil {
		return fmt.Errorf("failed to update label %q in %s/%s: %w", currentName, owner, repo, err)
	}
	return nil
}

func validateRepo(owner, repo string) error {
	if owner == "" {
		return errors.New("owner is required")
	}
	if repo == "" {
		return errors.New("repo is required")
	}
	return nil
}

func toGitHubLabel(l label.Label) *github.Label {
	gl := &github.Label{
		Name:  github.String(l.Name),
		Color: github.String(l.Color),
	}
	if l.Description != nil {
		gl.Description = github.String(*l.Description)
	}
	return gl
}

func fromGitHubLabel(gl *github.Label) label.Label {
	l := label.Label{
		Name:  gl.GetName(),
		Color: gl.GetColor(),
	}
	if gl.Description != nil {
		desc := gl.GetDescription()
		l.Description = &desc
	}
	return l
}

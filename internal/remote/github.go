// Package remote creates hosted repositories for new projects.
//
// From the caller's point of view creation either works or fails with
// ErrRemoteCreate; network, authentication and name collision failures are
// not told apart.
package remote

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	perrors "github.com/PolarWolf314/pm/internal/errors"
)

// Repository holds the URLs of a created repository.
type Repository struct {
	HTMLURL  string
	CloneURL string
}

// Creator creates a repository owned by the holder of token.
type Creator interface {
	CreateRepository(ctx context.Context, token, name string, private bool) (*Repository, error)
}

// GitHub creates repositories through the GitHub REST API.
type GitHub struct {
	baseURL string
}

// Option configures a GitHub creator.
type Option func(*GitHub)

// WithBaseURL points the client at another API root, such as a GitHub
// Enterprise instance or a test server.
func WithBaseURL(raw string) Option {
	return func(g *GitHub) {
		g.baseURL = raw
	}
}

// NewGitHub returns a GitHub creator.
func NewGitHub(opts ...Option) *GitHub {
	g := &GitHub{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateRepository creates name under the authenticated user.
func (g *GitHub) CreateRepository(ctx context.Context, token, name string, private bool) (*Repository, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: no token configured", perrors.ErrRemoteCreate)
	}

	client, err := g.client(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrRemoteCreate, err)
	}

	repo, _, err := client.Repositories.Create(ctx, "", &github.Repository{
		Name:    github.String(name),
		Private: github.Bool(private),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrRemoteCreate, err)
	}

	return &Repository{
		HTMLURL:  repo.GetHTMLURL(),
		CloneURL: repo.GetCloneURL(),
	}, nil
}

func (g *GitHub) client(ctx context.Context, token string) (*github.Client, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	client := github.NewClient(oauth2.NewClient(ctx, ts))

	if g.baseURL != "" {
		raw := g.baseURL
		if !strings.HasSuffix(raw, "/") {
			raw += "/"
		}
		base, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", g.baseURL, err)
		}
		client.BaseURL = base
	}
	return client, nil
}

// Package gitrepo scaffolds the local git repository of a new project.
package gitrepo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Init creates an empty repository in dir. An existing repository is left as is.
func Init(dir string) error {
	if _, err := git.PlainInit(dir, false); err != nil {
		if errors.Is(err, git.ErrRepositoryAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to initialize git repository in %s: %w", dir, err)
	}
	return nil
}

// AddOrigin registers url as the "origin" remote of the repository in dir.
func AddOrigin(dir, url string) error {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return fmt.Errorf("failed to open git repository in %s: %w", dir, err)
	}

	if _, err := repo.CreateRemote(&config.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{url},
	}); err != nil {
		return fmt.Errorf("failed to add remote %s: %w", git.DefaultRemoteName, err)
	}
	return nil
}

// OriginURL returns the first URL of the "origin" remote, or "" when there is none.
func OriginURL(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("failed to open git repository in %s: %w", dir, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", nil
		}
		return "", err
	}
	if urls := remote.Config().URLs; len(urls) > 0 {
		return urls[0], nil
	}
	return "", nil
}

// WebURL turns a clone URL into the repository's web page. SSH remotes of
// the form git@host:owner/repo.git become https://host/owner/repo. Anything
// that is not recognized yields "".
func WebURL(cloneURL string) string {
	u := strings.TrimSuffix(strings.TrimSpace(cloneURL), ".git")

	switch {
	case strings.HasPrefix(u, "https://"), strings.HasPrefix(u, "http://"):
		return u
	case strings.HasPrefix(u, "ssh://git@"):
		return "https://" + strings.TrimPrefix(u, "ssh://git@")
	case strings.HasPrefix(u, "git@"):
		host, path, ok := strings.Cut(strings.TrimPrefix(u, "git@"), ":")
		if !ok || host == "" || path == "" {
			return ""
		}
		return "https://" + host + "/" + path
	}
	return ""
}

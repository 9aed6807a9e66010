// Package git derives release reference links from the local git
// repository. It uses the go-git library; no git CLI is invoked.
package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
)

const originRemote = "origin"

// ReleaseLink derives a release page URL for the given version from the
// origin remote of the repository containing path. SSH remote URLs are
// normalized to https form, so git@github.com:user/repo.git yields
// https://github.com/user/repo/releases/tag/<version>.
func ReleaseLink(path, version string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(originRemote)
	if err != nil {
		return "", fmt.Errorf("looking up %s remote: %w", originRemote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%s remote has no URL configured", originRemote)
	}

	base, err := normalizeRemoteURL(urls[0])
	if err != nil {
		return "", err
	}
	return base + "/releases/tag/" + version, nil
}

// openRepo opens the repository at path, traversing up the directory
// tree to find the .git directory. An empty path means the current
// working directory.
func openRepo(path string) (*git.Repository, error) {
	if path == "" {
		path = "."
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return repo, nil
}

// normalizeRemoteURL rewrites a remote URL into a browsable https base.
// Handles SCP-style (git@host:user/repo.git), ssh://, and http(s)
// forms; the .git suffix and trailing slashes are stripped.
func normalizeRemoteURL(url string) (string, error) {
	base := url
	switch {
	case strings.HasPrefix(url, "git@"):
		rest := strings.TrimPrefix(url, "git@")
		host, repoPath, ok := strings.Cut(rest, ":")
		if !ok {
			return "", fmt.Errorf("unrecognized remote URL %q", url)
		}
		base = "https://" + host + "/" + repoPath
	case strings.HasPrefix(url, "ssh://"):
		rest := strings.TrimPrefix(url, "ssh://")
		rest = strings.TrimPrefix(rest, "git@")
		base = "https://" + rest
	case strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "http://"):
		// Already browsable.
	default:
		return "", fmt.Errorf("unrecognized remote URL %q", url)
	}

	base = strings.TrimSuffix(base, "/")
	base = strings.TrimSuffix(base, ".git")
	return base, nil
}

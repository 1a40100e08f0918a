// Package sync runs per-repository label reconciliation pipelines and the
// actions (execute or dry-run) that consume their plans.
package sync

import (
	"fmt"
	"regexp"
	"strings"
)

// Repo identifies one GitHub repository.
type Repo struct {
	Owner string
	Name  string
}

// String returns the owner/name form of the identifier.
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

var (
	httpsPattern = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+?)(?:\.git)?/?$`)
	sshPattern   = regexp.MustCompile(`^(?:ssh://)?git@github\.com[:/]([^/]+)/([^/]+?)(?:\.git)?$`)
)

// ParseRepo extracts owner and repository name from an identifier. Accepted
// forms:
//   - owner/repo
//   - https://github.com/owner/repo (optionally with .git)
//   - git@github.com:owner/repo (optionally with .git)
//
// Malformed identifiers are rejected here, before any network call is made.
func ParseRepo(s string) (Repo, error) {
	if matches := httpsPattern.FindStringSubmatch(s); len(matches) == 3 {
		return Repo{Owner: matches[1], Name: matches[2]}, nil
	}
	if matches := sshPattern.FindStringSubmatch(s); len(matches) == 3 {
		return Repo{Owner: matches[1], Name: matches[2]}, nil
	}

	owner, name, found := strings.Cut(s, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repo{}, fmt.Errorf("invalid repository identifier %q: expected owner/repo", s)
	}
	return Repo{Owner: owner, Name: name}, nil
}

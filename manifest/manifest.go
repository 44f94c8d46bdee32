// Package manifest parses the YAML manifest file into the []reposync.Repo
// list the synchronization core consumes. spec.md treats manifest
// parsing as an external collaborator; this package supplies a minimal,
// concrete implementation, the same way tsrc's own config.py loads and
// validates its own YAML documents.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsrc-dev/tsrc/reposync"
)

// Manifest is the top-level parsed document.
type Manifest struct {
	DefaultBranch string `yaml:"default_branch"`
	Repos         []Repo `yaml:"repos"`
}

// Repo is one manifest entry. Remotes accepts either the full
// `remotes: [{name: ..., url: ...}]` form or the `url: ...` shorthand,
// which is named "origin".
type Repo struct {
	Dest    string   `yaml:"dest"`
	URL     string   `yaml:"url"`
	Remotes []Remote `yaml:"remotes"`
	Branch  string   `yaml:"branch"`
	Tag     string   `yaml:"tag"`
	SHA1    string   `yaml:"sha1"`
}

// Remote is one `remotes:` entry.
type Remote struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// InvalidManifestError wraps a manifest load or validation failure with
// the file path that caused it, mirroring tsrc.config's InvalidConfig.
type InvalidManifestError struct {
	Path  string
	Cause error
}

func (e *InvalidManifestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Cause)
}

func (e *InvalidManifestError) Unwrap() error { return e.Cause }

// Load reads path, decodes it as a Manifest, applies default_branch,
// validates every entry, and returns the []reposync.Repo slice the
// synchronization core consumes.
func Load(path string) ([]reposync.Repo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InvalidManifestError{Path: path, Cause: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &InvalidManifestError{Path: path, Cause: err}
	}

	repos := make([]reposync.Repo, 0, len(m.Repos))
	for i, r := range m.Repos {
		repo, err := r.toRepo(m.DefaultBranch)
		if err != nil {
			return nil, &InvalidManifestError{Path: path, Cause: fmt.Errorf("repos[%d]: %w", i, err)}
		}
		repos = append(repos, repo)
	}

	return repos, nil
}

func (r Repo) toRepo(defaultBranch string) (reposync.Repo, error) {
	remotes := r.Remotes
	if len(remotes) == 0 && r.URL != "" {
		remotes = []Remote{{Name: "origin", URL: r.URL}}
	}

	branch := r.Branch
	if branch == "" && r.Tag == "" && r.SHA1 == "" {
		branch = defaultBranch
	}

	out := reposync.Repo{
		Dest:    r.Dest,
		Branch:  branch,
		Tag:     r.Tag,
		SHA1:    r.SHA1,
		Remotes: make([]reposync.Remote, 0, len(remotes)),
	}
	for _, rem := range remotes {
		out.Remotes = append(out.Remotes, reposync.Remote{Name: rem.Name, URL: rem.URL})
	}

	if err := out.Validate(); err != nil {
		return reposync.Repo{}, err
	}

	return out, nil
}

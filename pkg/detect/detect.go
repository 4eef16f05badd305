// Package detect decides which chapter manifests need to be examined on this
// run. It layers git-based strategies with a full-tree fallback so a missing
// history or a fresh checkout never breaks the pipeline.
package detect

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kerbaras/mangapages/pkg/crypt"
	"github.com/kerbaras/mangapages/pkg/data"
)

// Detector finds manifest paths under Root. Git is injectable so strategies
// can be tested without a repository.
type Detector struct {
	Root string
	Git  GitRunner
}

// New returns a Detector that shells out to the git binary.
func New(root string) *Detector {
	return &Detector{Root: root, Git: execGit}
}

// Manifests returns the manifest paths to examine this run. Strategy order:
// forced full scan; committed diff; uncommitted changes (only when the diff
// was empty); untracked files; and finally a full-tree scan keeping only
// manifests that are not yet encrypted. A strategy that errors contributes
// nothing rather than failing the run.
func (d *Detector) Manifests(force bool) []string {
	if force {
		all, err := d.scanAll()
		if err != nil {
			return nil
		}
		return all
	}

	paths, err := d.committed()
	if err != nil {
		paths = nil
	}
	if len(paths) == 0 {
		if more, err := d.modified(); err == nil {
			paths = append(paths, more...)
		}
	}
	if more, err := d.untracked(); err == nil {
		paths = append(paths, more...)
	}
	paths = dedupe(paths)

	if len(paths) == 0 {
		if fallback, err := d.unencrypted(); err == nil {
			paths = fallback
		}
	}
	return paths
}

// committed lists manifests changed between the previous and current revision.
func (d *Detector) committed() ([]string, error) {
	out, err := d.Git(d.Root, "diff", "--name-only", "HEAD~1", "HEAD")
	if err != nil {
		return nil, err
	}
	return d.filter(out), nil
}

// modified lists manifests with uncommitted changes in the working tree.
func (d *Detector) modified() ([]string, error) {
	out, err := d.Git(d.Root, "diff", "--name-only")
	if err != nil {
		return nil, err
	}
	return d.filter(out), nil
}

// untracked lists manifests git does not know about yet.
func (d *Detector) untracked() ([]string, error) {
	out, err := d.Git(d.Root, "ls-files", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return d.filter(out), nil
}

// filter keeps lines that name an existing, non-hidden manifest file and
// resolves them against Root.
func (d *Detector) filter(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || filepath.Base(line) != data.ManifestFile || hidden(line) {
			continue
		}
		full := filepath.Join(d.Root, filepath.FromSlash(line))
		if data.Exists(full) {
			paths = append(paths, full)
		}
	}
	return paths
}

// scanAll walks the tree for every manifest, skipping hidden directories.
func (d *Detector) scanAll() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() && path != d.Root && strings.HasPrefix(entry.Name(), ".") {
			return filepath.SkipDir
		}
		if !entry.IsDir() && entry.Name() == data.ManifestFile {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// unencrypted narrows a full scan to manifests whose first page is not
// already in encrypted form. Unreadable manifests are skipped here; the
// encryption pass reports them per file.
func (d *Detector) unencrypted() ([]string, error) {
	all, err := d.scanAll()
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, path := range all {
		m, err := data.Read[data.Manifest](path)
		if err != nil || len(m.Pages) == 0 {
			continue
		}
		if !crypt.IsEncrypted(m.Pages[0]) {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

func hidden(rel string) bool {
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

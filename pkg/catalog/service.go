// Package catalog maintains manga.json, the aggregate derived from the manga
// config and every chapter folder holding a manifest.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/kerbaras/mangapages/pkg/data"
)

// Folders on the top level that can never be chapters.
var excludedDirs = map[string]bool{
	"node_modules": true,
	"assets":       true,
	"scripts":      true,
	"images":       true,
}

// Service runs catalog operations against one site checkout.
type Service struct {
	Root string
}

func NewService(root string) *Service {
	return &Service{Root: root}
}

// Result summarizes what an operation changed. Warnings are surfaced to the
// operator without failing the run.
type Result struct {
	Added    []string
	Removed  []string
	Warnings []string
	Changed  bool
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (s *Service) path(name string) string {
	return filepath.Join(s.Root, name)
}

// chapterFolders lists top-level directories containing a manifest, sorted by
// the numeric value of the folder name.
func (s *Service) chapterFolders() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, fmt.Errorf("read site root: %w", err)
	}
	var folders []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") || excludedDirs[name] {
			continue
		}
		if data.Exists(filepath.Join(s.Root, name, data.ManifestFile)) {
			folders = append(folders, name)
		}
	}
	SortFolders(folders)
	return folders, nil
}

// SortFolders orders chapter folders numerically ("2" before "10", "5.5"
// between "5" and "6"). Folders that do not parse as numbers sort after the
// numeric ones, lexically.
func SortFolders(folders []string) {
	sort.SliceStable(folders, func(i, j int) bool {
		a, aok := chapterNumber(folders[i])
		b, bok := chapterNumber(folders[j])
		switch {
		case aok && bok:
			return a < b
		case aok:
			return true
		case bok:
			return false
		default:
			return folders[i] < folders[j]
		}
	})
}

func chapterNumber(folder string) (float64, bool) {
	n, err := strconv.ParseFloat(folder, 64)
	return n, err == nil
}

func (s *Service) readManifest(folder string) (*data.Manifest, error) {
	return data.Read[data.Manifest](filepath.Join(s.Root, folder, data.ManifestFile))
}

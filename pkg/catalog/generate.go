package catalog

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/data"
)

// Generate rebuilds manga.json from manga-config.json and every chapter
// folder holding a manifest. View counters and first-seen upload dates are
// carried forward from the previous catalog; everything else is re-derived.
func (s *Service) Generate() (*Result, error) {
	cfg, err := data.Read[data.MangaConfig](s.path(data.ConfigFile))
	if err != nil {
		return nil, fmt.Errorf("load manga config: %w", err)
	}

	res := &Result{}

	var prev *data.Catalog
	if data.Exists(s.path(data.CatalogFile)) {
		prev, err = data.Read[data.Catalog](s.path(data.CatalogFile))
		if err != nil {
			res.warnf("previous catalog unreadable, starting fresh: %v", err)
			prev = nil
		}
	}

	cat := &data.Catalog{
		Manga: data.MangaInfo{
			Title:     cfg.Title,
			Status:    cfg.Status,
			Type:      cfg.Type,
			RepoOwner: cfg.RepoOwner,
			RepoName:  cfg.RepoName,
		},
		Chapters: make(map[string]data.Chapter),
	}

	// The manga-level counter is never recomputed from chapter sums; the
	// previous catalog is its only source of truth.
	if prev != nil {
		cat.Manga.Views = prev.Manga.Views
	}

	if cfg.Status == data.StatusEnd {
		if cfg.EndChapter != "" {
			end := cfg.EndChapter
			cat.Manga.EndChapter = &end
		} else {
			res.warnf("status is END but manga-config.json declares no endChapter")
		}
	}

	folders, err := s.chapterFolders()
	if err != nil {
		return nil, err
	}
	for _, folder := range folders {
		m, err := s.readManifest(folder)
		if err != nil {
			res.warnf("skipping chapter %s: %v", folder, err)
			continue
		}
		num, _ := chapterNumber(folder)
		ch := data.Chapter{
			Title:   "Chapter " + folder,
			Chapter: num,
			Pages:   len(m.Pages),
			Locked:  cfg.IsLocked(folder),
		}
		if prevCh, ok := previous(prev, folder); ok {
			ch.Views = prevCh.Views
			ch.UploadDate = prevCh.UploadDate
		} else {
			ch.UploadDate = data.NowStamp()
		}
		cat.Chapters[folder] = ch
	}

	now := data.NowStamp()
	cat.LastUpdated = now
	cat.LastChapterUpdate = now

	if err := data.Write(s.path(data.CatalogFile), cat); err != nil {
		return nil, err
	}
	res.Changed = true
	return res, nil
}

func previous(prev *data.Catalog, folder string) (data.Chapter, bool) {
	if prev == nil {
		return data.Chapter{}, false
	}
	ch, ok := prev.Chapters[folder]
	return ch, ok
}

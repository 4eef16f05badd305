package catalog

import (
	"github.com/kerbaras/mangapages/pkg/data"
)

// Sync reconciles an existing catalog with the current folder set without
// regenerating it: new manifest-bearing folders are added with zeroed views,
// vanished folders are removed. With no catalog present it defers to
// Generate. An unchanged folder set performs zero writes.
func (s *Service) Sync() (*Result, error) {
	if !data.Exists(s.path(data.CatalogFile)) {
		return s.Generate()
	}

	res := &Result{}

	// Lock flags for incoming chapters come from the config; a missing or
	// broken config only costs us that flag.
	cfg, err := data.Read[data.MangaConfig](s.path(data.ConfigFile))
	if err != nil {
		res.warnf("manga config unreadable, new chapters default to unlocked: %v", err)
		cfg = &data.MangaConfig{}
	}

	folders, err := s.chapterFolders()
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(folders))
	for _, folder := range folders {
		present[folder] = true
	}

	changed, err := data.Update(s.path(data.CatalogFile), func(cat *data.Catalog) (bool, error) {
		if cat.Chapters == nil {
			cat.Chapters = make(map[string]data.Chapter)
		}
		for _, folder := range folders {
			if _, ok := cat.Chapters[folder]; ok {
				continue
			}
			m, err := s.readManifest(folder)
			if err != nil {
				res.warnf("skipping chapter %s: %v", folder, err)
				continue
			}
			num, _ := chapterNumber(folder)
			cat.Chapters[folder] = data.Chapter{
				Title:      "Chapter " + folder,
				Chapter:    num,
				UploadDate: data.NowStamp(),
				Pages:      len(m.Pages),
				Locked:     cfg.IsLocked(folder),
			}
			res.Added = append(res.Added, folder)
		}
		for folder := range cat.Chapters {
			if !present[folder] {
				delete(cat.Chapters, folder)
				res.Removed = append(res.Removed, folder)
			}
		}

		if len(res.Added) == 0 && len(res.Removed) == 0 {
			return false, nil
		}
		cat.LastUpdated = data.NowStamp()
		if len(res.Added) > 0 {
			cat.LastChapterUpdate = data.NowStamp()
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	res.Changed = changed
	return res, nil
}

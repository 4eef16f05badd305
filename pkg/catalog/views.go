package catalog

import (
	"fmt"

	"github.com/kerbaras/mangapages/pkg/data"
)

// MergeViews folds pending-views.json into the manga-level counter and
// resets the pending file. A missing or zeroed pending file is a no-op.
func (s *Service) MergeViews() (*Result, error) {
	res := &Result{}
	pendingPath := s.path(data.PendingViewsFile)
	if !data.Exists(pendingPath) {
		return res, nil
	}
	pending, err := data.Read[data.PendingViews](pendingPath)
	if err != nil {
		res.warnf("pending views unreadable, nothing merged: %v", err)
		return res, nil
	}
	if pending.Views == 0 {
		return res, nil
	}

	_, err = data.Update(s.path(data.CatalogFile), func(cat *data.Catalog) (bool, error) {
		cat.Manga.Views += pending.Views
		return true, nil
	})
	if err != nil {
		return nil, fmt.Errorf("merge views: %w", err)
	}
	if err := data.Write(pendingPath, &data.PendingViews{}); err != nil {
		return nil, err
	}
	res.Changed = true
	return res, nil
}

// MergeChapterViews folds pending-chapter-views.json into the per-chapter
// counters. Addends for chapters the catalog does not know are warned about
// and dropped; the pending file is reset either way.
func (s *Service) MergeChapterViews() (*Result, error) {
	res := &Result{}
	pendingPath := s.path(data.PendingChapterViewsFile)
	if !data.Exists(pendingPath) {
		return res, nil
	}
	pending, err := data.Read[data.PendingChapterViews](pendingPath)
	if err != nil {
		res.warnf("pending chapter views unreadable, nothing merged: %v", err)
		return res, nil
	}
	if len(pending.Chapters) == 0 {
		return res, nil
	}

	merged := false
	_, err = data.Update(s.path(data.CatalogFile), func(cat *data.Catalog) (bool, error) {
		for folder, views := range pending.Chapters {
			if views == 0 {
				continue
			}
			ch, ok := cat.Chapters[folder]
			if !ok {
				res.warnf("chapter %s not in catalog, dropping %d pending views", folder, views)
				continue
			}
			ch.Views += views
			cat.Chapters[folder] = ch
			merged = true
		}
		return merged, nil
	})
	if err != nil {
		return nil, fmt.Errorf("merge chapter views: %w", err)
	}
	reset := &data.PendingChapterViews{Chapters: map[string]int{}}
	if err := data.Write(pendingPath, reset); err != nil {
		return nil, err
	}
	res.Changed = merged
	return res, nil
}

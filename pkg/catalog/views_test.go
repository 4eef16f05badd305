package catalog

import (
	"testing"

	"github.com/kerbaras/mangapages/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteWithCatalog(t *testing.T, views int, chapters map[string]data.Chapter) *Service {
	t.Helper()
	s := NewService(t.TempDir())
	cat := &data.Catalog{
		Manga:    data.MangaInfo{Title: "Test", Status: data.StatusOngoing, Views: views},
		Chapters: chapters,
	}
	require.NoError(t, data.Write(s.path(data.CatalogFile), cat))
	return s
}

func TestMergeViews(t *testing.T) {
	s := siteWithCatalog(t, 100, map[string]data.Chapter{})
	require.NoError(t, data.Write(s.path(data.PendingViewsFile), &data.PendingViews{Views: 7}))

	res, err := s.MergeViews()
	require.NoError(t, err)
	assert.True(t, res.Changed)

	assert.Equal(t, 107, readCatalog(t, s).Manga.Views)

	pending, err := data.Read[data.PendingViews](s.path(data.PendingViewsFile))
	require.NoError(t, err)
	assert.Equal(t, 0, pending.Views, "pending file reset after the merge")
}

func TestMergeViewsNoPendingFile(t *testing.T) {
	s := siteWithCatalog(t, 100, map[string]data.Chapter{})

	res, err := s.MergeViews()
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 100, readCatalog(t, s).Manga.Views)
}

func TestMergeViewsZeroPending(t *testing.T) {
	s := siteWithCatalog(t, 100, map[string]data.Chapter{})
	require.NoError(t, data.Write(s.path(data.PendingViewsFile), &data.PendingViews{}))

	res, err := s.MergeViews()
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

func TestMergeChapterViews(t *testing.T) {
	s := siteWithCatalog(t, 0, map[string]data.Chapter{
		"1": {Title: "Chapter 1", Views: 10},
		"2": {Title: "Chapter 2", Views: 0},
	})
	require.NoError(t, data.Write(s.path(data.PendingChapterViewsFile), &data.PendingChapterViews{
		Chapters: map[string]int{"1": 5, "2": 3},
	}))

	res, err := s.MergeChapterViews()
	require.NoError(t, err)
	assert.True(t, res.Changed)

	cat := readCatalog(t, s)
	assert.Equal(t, 15, cat.Chapters["1"].Views)
	assert.Equal(t, 3, cat.Chapters["2"].Views)

	pending, err := data.Read[data.PendingChapterViews](s.path(data.PendingChapterViewsFile))
	require.NoError(t, err)
	assert.Empty(t, pending.Chapters)
}

func TestMergeChapterViewsUnknownChapterDropped(t *testing.T) {
	s := siteWithCatalog(t, 0, map[string]data.Chapter{
		"1": {Title: "Chapter 1", Views: 10},
	})
	require.NoError(t, data.Write(s.path(data.PendingChapterViewsFile), &data.PendingChapterViews{
		Chapters: map[string]int{"99": 5},
	}))

	res, err := s.MergeChapterViews()
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.NotEmpty(t, res.Warnings, "unknown chapter addend warns")
	assert.Equal(t, 10, readCatalog(t, s).Chapters["1"].Views)

	// dropped, not retained for a later run
	pending, err := data.Read[data.PendingChapterViews](s.path(data.PendingChapterViewsFile))
	require.NoError(t, err)
	assert.Empty(t, pending.Chapters)
}

func TestMergeChapterViewsNoPendingFile(t *testing.T) {
	s := siteWithCatalog(t, 0, map[string]data.Chapter{})
	res, err := s.MergeChapterViews()
	require.NoError(t, err)
	assert.False(t, res.Changed)
}

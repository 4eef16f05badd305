package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbaras/mangapages/pkg/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncWithoutCatalogGenerates(t *testing.T) {
	s := site(t, &data.MangaConfig{Title: "Test", Status: data.StatusOngoing},
		map[string]int{"1": 2})

	res, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Contains(t, readCatalog(t, s).Chapters, "1")
}

func TestSyncUnchangedPerformsZeroWrites(t *testing.T) {
	s := site(t, &data.MangaConfig{Title: "Test", Status: data.StatusOngoing},
		map[string]int{"1": 2, "2": 3})
	_, err := s.Generate()
	require.NoError(t, err)

	before, err := os.ReadFile(s.path(data.CatalogFile))
	require.NoError(t, err)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Removed)

	after, err := os.ReadFile(s.path(data.CatalogFile))
	require.NoError(t, err)
	assert.Equal(t, before, after, "lastUpdated must survive a no-op sync")
}

func TestSyncAddsNewChapter(t *testing.T) {
	s := site(t, &data.MangaConfig{Title: "Test", Status: data.StatusOngoing, LockedChapters: []string{"3"}},
		map[string]int{"1": 2})
	_, err := s.Generate()
	require.NoError(t, err)

	addChapter(t, s.Root, "3", 7)

	res, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"3"}, res.Added)

	cat := readCatalog(t, s)
	ch := cat.Chapters["3"]
	assert.Equal(t, "Chapter 3", ch.Title)
	assert.Equal(t, 7, ch.Pages)
	assert.Equal(t, 0, ch.Views)
	assert.True(t, ch.Locked)
	assert.NotEmpty(t, ch.UploadDate)
	assert.NotEmpty(t, cat.LastChapterUpdate)
}

func TestSyncRemovesVanishedChapter(t *testing.T) {
	s := site(t, &data.MangaConfig{Title: "Test", Status: data.StatusOngoing},
		map[string]int{"1": 2, "2": 3})
	_, err := s.Generate()
	require.NoError(t, err)
	previous := readCatalog(t, s)

	require.NoError(t, os.RemoveAll(filepath.Join(s.Root, "2")))

	res, err := s.Sync()
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, []string{"2"}, res.Removed)

	cat := readCatalog(t, s)
	assert.NotContains(t, cat.Chapters, "2")
	assert.Contains(t, cat.Chapters, "1")
	// removal-only runs leave the chapter-update stamp alone
	assert.Equal(t, previous.LastChapterUpdate, cat.LastChapterUpdate)
}

package data

// File names the automation reads and writes, relative to the site root.
const (
	ManifestFile            = "manifest.json"
	ConfigFile              = "manga-config.json"
	CatalogFile             = "manga.json"
	PendingViewsFile        = "pending-views.json"
	PendingChapterViewsFile = "pending-chapter-views.json"
	LocalCodesFile          = "chapter-codes-local.json"
)

// Publication status values used in manga-config.json.
const (
	StatusOngoing = "ONGOING"
	StatusHiatus  = "HIATUS"
	StatusEnd     = "END"
)

// TypeManga marks serialized titles whose locked chapters carry unlock codes.
const TypeManga = "manga"

// Manifest is the per-chapter page list. Once encrypted, every page entry is
// replaced by its hex(iv):hex(ciphertext) form.
type Manifest struct {
	Pages             []string `json:"pages"`
	Encrypted         bool     `json:"encrypted,omitempty"`
	EncryptionVersion string   `json:"encryption_version,omitempty"`
}

// MangaConfig is the author-maintained description of the title.
type MangaConfig struct {
	Title          string   `json:"title"`
	Status         string   `json:"status"` // ONGOING, HIATUS or END
	Type           string   `json:"type,omitempty"`
	EndChapter     string   `json:"endChapter,omitempty"`
	LockedChapters []string `json:"lockedChapters,omitempty"`
	RepoOwner      string   `json:"repoOwner"`
	RepoName       string   `json:"repoName"`
}

// IsLocked reports whether the chapter folder is in the locked set.
func (c *MangaConfig) IsLocked(folder string) bool {
	for _, locked := range c.LockedChapters {
		if locked == folder {
			return true
		}
	}
	return false
}

// MangaInfo is the manga-level record inside the catalog.
type MangaInfo struct {
	Title      string  `json:"title"`
	Status     string  `json:"status"`
	Type       string  `json:"type,omitempty"`
	EndChapter *string `json:"endChapter,omitempty"`
	Views      int     `json:"views"`
	RepoOwner  string  `json:"repoOwner"`
	RepoName   string  `json:"repoName"`
}

// Chapter is one catalog entry, keyed by its folder name.
type Chapter struct {
	Title      string  `json:"title"`
	Chapter    float64 `json:"chapter"`
	UploadDate string  `json:"uploadDate"`
	Pages      int     `json:"pages"`
	Locked     bool    `json:"locked"`
	Views      int     `json:"views"`
}

// Catalog is the aggregate manga.json derived from config + manifests.
// View counters and first-seen upload dates are the only state that survives
// a full regeneration.
type Catalog struct {
	Manga             MangaInfo          `json:"manga"`
	Chapters          map[string]Chapter `json:"chapters"`
	LastUpdated       string             `json:"lastUpdated"`
	LastChapterUpdate string             `json:"lastChapterUpdate"`
}

// PendingViews accumulates manga-level view counts between catalog runs.
type PendingViews struct {
	Views int `json:"views"`
}

// PendingChapterViews accumulates per-chapter view counts between runs.
type PendingChapterViews struct {
	Chapters map[string]int `json:"chapters"`
}

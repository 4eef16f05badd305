// Package codes pulls chapter unlock codes from the Cloudflare worker that
// fronts the key-value store, caching them next to the catalog.
package codes

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/mangapages/pkg/data"
	"github.com/kerbaras/mangapages/pkg/utils"
)

// Client fetches the full unlock-code map from the worker.
type Client struct {
	api *utils.API
}

func NewClient(workerURL string) *Client {
	return &Client{api: utils.NewAPI(workerURL)}
}

// FetchAll returns every unlock code the worker knows about. The payload is
// treated as an opaque folder→code mapping.
func (c *Client) FetchAll() (map[string]string, error) {
	var codes map[string]string
	if err := c.api.Get("/codes", nil, &codes); err != nil {
		return nil, fmt.Errorf("fetch codes: %w", err)
	}
	return codes, nil
}

// Sync populates chapter-codes-local.json from the worker when the local
// cache is empty. Only serialized manga titles carry unlock codes; any other
// config type is skipped. Callers treat errors as non-fatal.
func Sync(root, workerURL string) (bool, error) {
	cfg, err := data.Read[data.MangaConfig](filepath.Join(root, data.ConfigFile))
	if err != nil {
		return false, fmt.Errorf("load manga config: %w", err)
	}
	if cfg.Type != data.TypeManga {
		return false, nil
	}

	local := filepath.Join(root, data.LocalCodesFile)
	if data.Exists(local) {
		cached, err := data.Read[map[string]string](local)
		if err == nil && len(*cached) > 0 {
			return false, nil
		}
	}
	if workerURL == "" {
		return false, nil
	}

	codes, err := NewClient(workerURL).FetchAll()
	if err != nil {
		return false, err
	}
	if err := data.Write(local, codes); err != nil {
		return false, err
	}
	return true, nil
}

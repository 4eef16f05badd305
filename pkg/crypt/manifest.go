package crypt

import (
	"github.com/kerbaras/mangapages/pkg/data"
)

// State describes what ProcessManifest did with a file.
type State int

const (
	// Encrypted means the pages were encrypted and the file rewritten.
	Encrypted State = iota
	// AlreadyEncrypted means the manifest was left untouched.
	AlreadyEncrypted
	// NoPages means the manifest has no page list to encrypt.
	NoPages
)

// ProcessManifest encrypts every page of the manifest at path in place.
// Re-running on an encrypted manifest is a no-op: the encrypted flag and the
// syntactic check on the first page both short-circuit it.
func ProcessManifest(path string, key []byte) (State, error) {
	m, err := data.Read[data.Manifest](path)
	if err != nil {
		return NoPages, err
	}
	if len(m.Pages) == 0 {
		return NoPages, nil
	}
	if m.Encrypted || IsEncrypted(m.Pages[0]) {
		return AlreadyEncrypted, nil
	}
	for i, page := range m.Pages {
		enc, err := EncryptPage(key, page)
		if err != nil {
			return NoPages, err
		}
		m.Pages[i] = enc
	}
	m.Encrypted = true
	m.EncryptionVersion = Version
	if err := data.Write(path, m); err != nil {
		return NoPages, err
	}
	return Encrypted, nil
}

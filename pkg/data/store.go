package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// The site renders timestamps in GMT+7 regardless of where CI runs.
var siteZone = time.FixedZone("GMT+7", 7*60*60)

// Now is the clock used for timestamps, swappable in tests.
var Now = time.Now

// NowStamp returns the current wall-clock time as civil time in GMT+7 with an
// explicit +07:00 suffix, e.g. "2026-08-25T19:04:05+07:00".
func NowStamp() string {
	return Now().In(siteZone).Format("2006-01-02T15:04:05-07:00")
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Read loads and parses a whole JSON file into a fresh T.
func Read[T any](path string) (*T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	v := new(T)
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

// Write overwrites path with v pretty-printed at 2-space indent plus a
// trailing newline. Whole-file overwrite, no locking; every command assumes
// exclusive access for the duration of the run.
func Write(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	raw = append(raw, '\n')
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Update is the read-modify-write helper every JSON-mutating command goes
// through. fn mutates the document in place and reports whether it changed;
// the file is rewritten only when it did. Returns whether a write happened.
func Update[T any](path string, fn func(*T) (bool, error)) (bool, error) {
	v, err := Read[T](path)
	if err != nil {
		return false, err
	}
	changed, err := fn(v)
	if err != nil || !changed {
		return false, err
	}
	return true, Write(path, v)
}

package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EditorCache is a small on-disk record of a last-used external editor
// command. No module in this tree reads or writes it. Not on the
// required runtime path: a missing or corrupt cache file is silently
// treated as empty.
type EditorCache struct {
	LastEditor string `yaml:"last_editor"`
}

func cachePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "git-interactive-rebase-tool", "cache.yaml"), nil
}

// LoadEditorCache reads the cache file, returning a zero-value EditorCache
// (not an error) if it doesn't exist or fails to parse.
func LoadEditorCache() EditorCache {
	path, err := cachePath()
	if err != nil {
		return EditorCache{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return EditorCache{}
	}
	var c EditorCache
	if err := yaml.Unmarshal(data, &c); err != nil {
		return EditorCache{}
	}
	return c
}

// SaveEditorCache writes the cache file, creating its parent directory if
// needed.
func SaveEditorCache(c EditorCache) error {
	path, err := cachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

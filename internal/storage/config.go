// Package storage persists single JSON documents on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nyankohost/dctw/internal/logger"
)

// ConfigFile stores one JSON document at a fixed path. Reads that fail to
// parse are reported as absent so a corrupt file degrades to defaults
// instead of wedging startup.
type ConfigFile struct {
	path string
	log  logger.Logger
}

func NewConfigFile(path string, log logger.Logger) *ConfigFile {
	return &ConfigFile{path: path, log: log}
}

// Load decodes the document into v. The second return is false when no
// usable document exists.
func (s *ConfigFile) Load(v any) (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.log.Warn("config file is corrupt, ignoring it",
			logger.String("path", s.path),
			logger.Error(err))
		return false, nil
	}
	return true, nil
}

// Save writes the document, creating parent directories as needed. The file
// may hold an API key, hence 0600.
func (s *ConfigFile) Save(v any) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (s *ConfigFile) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

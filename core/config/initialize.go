package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir, creating dir if
// needed, and loads it. An existing configuration is left alone.
func Initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, ConfigurationName)
	switch _, err := fs.Stat(path); {
	case err == nil:
		logger.Printf("%s already exists, skipping", path)
	case os.IsNotExist(err):
		logger.Printf("writing %s", path)
		if err := afero.WriteFile(fs, path, defaultConfigData, 0600); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
	default:
		return nil, err
	}

	return Load(fs, dir)
}

package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory and loads
// it back. An existing config.yaml is left untouched.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	configFs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	exists, err := afero.Exists(configFs, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("%s already exists, leaving it as-is", ConfigurationName)
	default:
		if err := afero.WriteFile(configFs, ConfigurationName, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logger.Printf("created %s", ConfigurationName)
	}

	return Load(dir)
}

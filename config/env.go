package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// SettingsFromEnv reads Settings from <PREFIX>_BASE_HOST,
// <PREFIX>_DEFAULT_VERSION and <PREFIX>_AUTH_TOKEN. Unset variables leave
// the corresponding field empty.
func SettingsFromEnv(prefix string) (Settings, error) {
	var s Settings
	if err := envconfig.Process(prefix, &s); err != nil {
		return Settings{}, fmt.Errorf("config: read settings from env: %w", err)
	}
	return s, nil
}

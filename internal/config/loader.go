package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"firestige.xyz/netseg/internal/log"
)

// Load reads a profile file. Name and type are derived from the path, and
// NETSEG_* environment variables override file values (dots and hyphens in
// keys map to underscores).
func Load(path string) (*Profile, error) {
	v := viper.New()

	dir := filepath.Dir(path)
	filename := filepath.Base(path)
	ext := filepath.Ext(filename)

	v.SetConfigName(strings.TrimSuffix(filename, ext))
	v.SetConfigType(strings.TrimPrefix(ext, "."))
	v.AddConfigPath(dir)

	v.SetEnvPrefix("NETSEG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", path, err)
	}

	applyDefaults(&profile)

	return &profile, nil
}

func applyDefaults(profile *Profile) {
	if profile.Log == nil {
		profile.Log = &log.Config{
			Level:  "info",
			Format: "text",
		}
	}
}

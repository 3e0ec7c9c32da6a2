package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath        = "database.path"
	KeyOrganizationPattern = "organization.patterns"
	KeyLogLevel            = "logging.level"
	KeyLogFormat           = "logging.format"
)

// EnvPrefix is prepended to environment variable names, e.g. TRIAGE_ORGANIZATION_PATTERNS.
const EnvPrefix = "TRIAGE"

// Settings is the resolved configuration for one command invocation.
type Settings struct {
	DatabasePath        string
	OrganizationPattern string
	LogLevel            string
	LogFormat           string
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyOrganizationPattern, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
}

// BindEnv makes every key resolvable from TRIAGE_* environment variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load resolves settings from v and validates them.
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		DatabasePath:        v.GetString(KeyDatabasePath),
		OrganizationPattern: v.GetString(KeyOrganizationPattern),
		LogLevel:            v.GetString(KeyLogLevel),
		LogFormat:           v.GetString(KeyLogFormat),
	}

	if s.DatabasePath == "" {
		s.DatabasePath = DefaultDatabasePath
	}
	s.DatabasePath = ExpandPath(s.DatabasePath)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks the logging settings.
func (s Settings) Validate() error {
	if _, err := common.ParseLevel(s.LogLevel); err != nil {
		return err
	}
	switch s.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: invalid log format: %s", common.ErrInvalidConfig, s.LogFormat)
	}
	return nil
}

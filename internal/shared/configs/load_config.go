package configs

import (
	"fmt"
	"strings"

	"log-stats/internal/shared/validators"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LOGSTATS"

// Flag names bound onto config keys. Only flags the user actually set override file and env values.
const (
	FlagConfig        = "config"
	FlagLogLevel      = "log-level"
	FlagReportEvery   = "report-every"
	FlagReportMode    = "report-mode"
	FlagStatusCodes   = "status-codes"
	FlagServerEnabled = "server-enabled"
	FlagServerPort    = "server-port"
)

var flagKeys = map[string]string{
	FlagLogLevel:      "log.level",
	FlagReportEvery:   "report.every",
	FlagReportMode:    "report.mode",
	FlagStatusCodes:   "report.status_codes",
	FlagServerEnabled: "server.enabled",
	FlagServerPort:    "server.port",
}

// Defaults mirrors the documented configuration defaults.
var Defaults = map[string]any{
	"log.level":                  "warn",
	"report.every":               10,
	"report.mode":                "cumulative",
	"report.status_codes":        "allow_list",
	"server.enabled":             false,
	"server.port":                9090,
	"server.read_header_timeout": 5,
	"server.read_timeout":        10,
	"server.write_timeout":       10,
	"server.idle_timeout":        60,
	"server.shutdown_timeout":    5,
}

// LoadConfig merges defaults, an optional yaml file, LOGSTATS_* env vars and set flags, then validates.
// An empty configPath skips the file; flags may be nil.
var LoadConfig = func(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range Defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	if flags != nil {
		for flagName, key := range flagKeys {
			flag := flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %q: %w", flagName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()

	// "Config.report.every" -> "report.every"
	if parts := strings.Split(e.Namespace(), "."); len(parts) >= 2 {
		field = strings.Join(parts[1:], ".")
	}

	switch e.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}

package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"kma-forecast/pkg/log"
)

const propertiesPathEnv = "PROPERTIES_FILE_PATH"

var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

var defaults = map[string]any{
	"app.name":                       "kma-forecast",
	"app.log.level":                  "info",
	"app.server.port":                "8080",
	"app.server.context-path":        "/kma-forecast",
	"address.source-path":            "configs/grid_coordinates.csv",
	"weather.api.base-url":           "http://apis.data.go.kr/1360000/VilageFcstInfoService_2.0",
	"weather.api.num-of-rows":        12,
	"weather.api.connection-timeout": "10s",
	"weather.api.read-timeout":       "10s",
	"weather.api.rate-limit":         0.0,
	"weather.base-time.policy":       "fixed",
	"weather.base-time.fixed":        "0500",
	"weather.probe.nx":               60,
	"weather.probe.ny":               127,
	"credential.store":               "file",
	"credential.file.path":           "",
	"credential.redis.host":          "localhost",
	"credential.redis.port":          6379,
	"credential.redis.password":      "",
	"credential.redis.database":      0,
	"credential.redis.key-prefix":    "credential",
	"credential.revalidate-cron":     "@every 1h",
	"credential.service-key":         "",
}

func init() {
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
}

// PathFromEnv returns the properties file path from PROPERTIES_FILE_PATH, or the default location.
func PathFromEnv() string {
	if value, ok := os.LookupEnv(propertiesPathEnv); ok {
		return value
	}
	return "configs/application.yml"
}

// Init loads application properties from a YAML file, resolving ${ENV:default} placeholders.
// A missing file is not an error: defaults and environment variables still apply.
func Init(filepath string) error {
	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			log.Warnf("Properties file '%s' not found, using defaults", filepath)
			return nil
		}
		return fmt.Errorf("fail to read properties: %w", err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	for key, value := range properties {
		viper.Set(key, value)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if resolved, ok := resolveEnvVariable(v); ok {
				result[fullKey] = resolved
			}
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		}
	}
}

// resolveEnvVariable resolves a ${NAME:default} placeholder. Plain strings are reported as not resolved.
func resolveEnvVariable(value string) (string, bool) {
	matches := envPattern.FindStringSubmatch(value)
	if len(matches) == 0 {
		return "", false
	}

	envName := matches[1]
	defaultValue := ""
	if len(matches) > 2 {
		defaultValue = matches[2]
	}

	if envValue, exists := os.LookupEnv(envName); exists {
		return envValue, true
	}
	return defaultValue, true
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}

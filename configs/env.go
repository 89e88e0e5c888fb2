package configs

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"kma-forecast/pkg/log"
)

type EnvConfig struct {
	ApplicationName string
	ServiceKey      string
}

var Env *EnvConfig

func init() {
	// Variables already set in the environment win over the .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Failed to load .env file: %v", err)
	}

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "kma-forecast"),
		ServiceKey:      viper.GetString("SERVICE_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

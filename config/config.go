package config

import (
	"fmt"

	"github.com/spf13/viper"
)

func init() {
	viper.SetDefault("LISTEN_ADDR", ":80")
	viper.SetDefault("MONGODB_DATABASE", "travel-service")
	viper.SetDefault("RECOMMENDATION_LIMIT", 5)
	viper.AutomaticEnv()
}

// GetSecret reads a required value from the environment.
func GetSecret(key string) (string, error) {
	val := viper.GetString(key)
	if val == "" {
		return "", fmt.Errorf("no env variable with key %v", key)
	}
	return val, nil
}

func ListenAddr() string {
	return viper.GetString("LISTEN_ADDR")
}

func DatabaseName() string {
	return viper.GetString("MONGODB_DATABASE")
}

func RecommendationLimit() int {
	return viper.GetInt("RECOMMENDATION_LIMIT")
}

package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"shorecrew/internal/structures"
	"strings"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "SHORECREW_LOG_LEVEL")
	viper.BindEnv("persistence.filePath", "SHORECREW_STATE_FILE")
	viper.BindEnv("persistence.saveInterval", "SHORECREW_SAVE_INTERVAL")
	viper.BindEnv("weather.baseUrl", "SHORECREW_WEATHER_URL")
	viper.BindEnv("location.latitude", "SHORECREW_LATITUDE")
	viper.BindEnv("location.longitude", "SHORECREW_LONGITUDE")
	viper.BindEnv("cache.enabled", "SHORECREW_CACHE_ENABLED")
	viper.BindEnv("cache.size", "SHORECREW_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ShoreCrew"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}

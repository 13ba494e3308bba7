package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Agere98/orbits/api"
)

// envConfigDir names the directory holding conf.toml when no flag is provided.
const envConfigDir = "ORBITS_CONFIG"

type daemonConfig struct {
	Listen    string
	Server    api.Config
	LogLevel  logrus.Level
	LogFormat string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("server.listen", ":8080")
	v.SetDefault("server.ratelimit", 10.0)
	v.SetDefault("server.burst", 20)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetEnvPrefix("ORBITS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads conf.toml from dir, or from $ORBITS_CONFIG when dir is empty. A missing
// directory is not an error: defaults and environment variables apply.
func loadConfig(dir string) (daemonConfig, error) {
	v := newViper()
	if dir == "" {
		dir = os.Getenv(envConfigDir)
	}
	if dir != "" {
		v.SetConfigName("conf")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return daemonConfig{}, fmt.Errorf("%s/conf.toml: %w", dir, err)
			}
		}
	}
	return parseConfig(v)
}

func parseConfig(v *viper.Viper) (daemonConfig, error) {
	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return daemonConfig{}, err
	}
	format := strings.ToLower(v.GetString("log.format"))
	if format != "text" && format != "json" {
		return daemonConfig{}, fmt.Errorf("unknown log format `%s`", format)
	}
	if v.GetFloat64("server.ratelimit") < 0 {
		return daemonConfig{}, errors.New("server.ratelimit must not be negative")
	}
	return daemonConfig{
		Listen: v.GetString("server.listen"),
		Server: api.Config{
			RateLimit:       v.GetFloat64("server.ratelimit"),
			Burst:           v.GetInt("server.burst"),
			MetricsPath:     v.GetString("metrics.path"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

func newLogger(cfg daemonConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}

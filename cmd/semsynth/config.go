// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys. Each is settable from semsynth.yaml, a SEMSYNTH_* variable
// or the matching flag.
const (
	keyLogLevel   = "log_level"
	keyNoColor    = "no_color"
	keyAlpha      = "alpha"
	keyFormat     = "format"
	keySampleSize = "sample_size"

	envPrefix      = "SEMSYNTH"
	configName     = "semsynth"
	defaultSamples = 300
)

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyNoColor, false)
	v.SetDefault(keyAlpha, 0.05)
	v.SetDefault(keySampleSize, defaultSamples)
	return v
}

// loadConfig reads .env files, then the config file (an explicit path or
// ./semsynth.yaml when present), then the environment.
func loadConfig(v *viper.Viper, cfgFile string) error {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// bindFlags binds each config key to the flag of the given name.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if f := fs.Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// newLogger returns a console logger on w at the named level.
func newLogger(w io.Writer, level string, noColor bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

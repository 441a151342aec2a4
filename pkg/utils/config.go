// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ConfigurationFileDirectory string
)

// LoadConfiguration merges the named config file into viper. A missing file is
// only an error when required is set.
func LoadConfiguration(configFileName string, required bool) (bool, error) {
	viper.SetConfigName(configFileName)
	viper.AddConfigPath(ResolvePath(ConfigurationFileDirectory))
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.bucketmd")
	viper.AddConfigPath("/etc/bucketmd/")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("BUCKETMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if required {
				return false, err
			}
			log.Debug().Msgf("Config file not found: %s", configFileName)
			return false, nil
		}
		return false, err
	}
	log.Debug().Msgf("Loaded config file: %s", viper.ConfigFileUsed())

	return true, nil
}

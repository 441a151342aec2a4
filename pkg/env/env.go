// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package env names the deployment environment bucketmd runs in.
package env

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	Local      = "local"
	Production = "production"
	Testing    = "testing"
)

var Env = Local

func IsLocal() bool {
	return Env == Local
}

func IsProduction() bool {
	return Env == Production
}

func IsTesting() bool {
	return Env == Testing
}

// Load sets Env from the "env" config key (BUCKETMD_ENV). It must run after
// the config file is merged. Unknown or empty values fall back to Local.
func Load() string {
	switch v := strings.ToLower(viper.GetString("env")); v {
	case Production, Testing:
		Env = v
	default:
		Env = Local
	}
	return Env
}

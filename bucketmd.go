// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LeeDigitalWorks/bucketmd/cmd"

	"github.com/getsentry/sentry-go"
)

func main() {
	// DSN comes from SENTRY_DSN; without one the client is a no-op.
	err := sentry.Init(sentry.ClientOptions{
		SampleRate: 0.1,
		Release:    "bucketmd@" + cmd.Version,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sentry.Init: %v", err)
	}
	defer sentry.Flush(2 * time.Second)

	cmd.Execute()
}

// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, zerolog.InfoLevel)

	require.NoError(t, Configure(""))
	assert.Equal(t, zerolog.InfoLevel, Level())

	require.NoError(t, Configure("debug"))
	assert.Equal(t, zerolog.DebugLevel, Level())
	Debug().Str("bucket", "nameOfBucket").Msg("decoded")
	assert.Contains(t, buf.String(), `"bucket":"nameOfBucket"`)

	assert.Error(t, Configure("loud"))
	assert.Equal(t, zerolog.DebugLevel, Level())

	require.NoError(t, Configure("warn"))
	buf.Reset()
	Info().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestCtx(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))

	l := zerolog.Nop()
	ctx := WithLogger(context.Background(), &l)
	assert.Same(t, &l, Ctx(ctx))
}

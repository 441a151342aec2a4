// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types_test

import (
	"encoding/json"
	"testing"

	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// awsReplication uses the capitalized AWS shape, with a nested destination.
const awsReplication = `{
	"Role": "arn:aws:iam::123456789012:role/src-resource,arn:aws:iam::123456789012:role/dest-resource",
	"Rules": [
		{
			"Destination": {"Bucket": "arn:aws:s3:::destination-bucket"},
			"Prefix": "test-prefix",
			"Status": "Enabled"
		}
	]
}`

// singleActionLifecycle carries "action" as an object rather than an
// "actions" list.
const singleActionLifecycle = `{
	"rules": [
		{
			"ruleID": "new-rule",
			"ruleStatus": "Enabled",
			"filter": {"rulePrefix": "test-prefix"},
			"action": {"actionName": "NoncurrentVersionExpiration", "days": 0}
		}
	]
}`

func TestParseDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"object compacted", "{ \"Status\" : \"Enabled\",\n \"Extra\": \"x\" }", `{"Status":"Enabled","Extra":"x"}`},
		{"key order kept", `{"b":1,"a":2}`, `{"b":1,"a":2}`},
		{"html not escaped", `{"prefix":"a&b<c>"}`, `{"prefix":"a&b<c>"}`},
		{"array", `[1, 2]`, `[1,2]`},
		{"aws replication", awsReplication, `{"Role":"arn:aws:iam::123456789012:role/src-resource,arn:aws:iam::123456789012:role/dest-resource","Rules":[{"Destination":{"Bucket":"arn:aws:s3:::destination-bucket"},"Prefix":"test-prefix","Status":"Enabled"}]}`},
		{"single action lifecycle", singleActionLifecycle, `{"rules":[{"ruleID":"new-rule","ruleStatus":"Enabled","filter":{"rulePrefix":"test-prefix"},"action":{"actionName":"NoncurrentVersionExpiration","days":0}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d, err := s3types.ParseDocument([]byte(tt.input))
			require.NoError(t, err)
			assert.False(t, d.IsZero())
			assert.Equal(t, tt.want, d.String())
			assert.Equal(t, []byte(tt.want), d.Bytes())
		})
	}
}

func TestParseDocument_Absent(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  ", "null", " null\n"} {
		d, err := s3types.ParseDocument([]byte(input))
		require.NoError(t, err)
		assert.True(t, d.IsZero(), "input %q", input)
		assert.Nil(t, d.Bytes())
		assert.Equal(t, "null", d.String())
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"{", `{"a":}`, "nope", `{"a":1} {"b":2}`} {
		_, err := s3types.ParseDocument([]byte(input))
		assert.ErrorIs(t, err, s3types.ErrMalformedDocument, "input %q", input)
	}
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	d, err := s3types.NewDocument(&s3types.VersioningConfiguration{Status: s3types.VersioningEnabled})
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"Enabled"}`, d.String())

	d, err = s3types.NewDocument(nil)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = s3types.NewDocument(func() {})
	assert.ErrorIs(t, err, s3types.ErrMalformedDocument)
}

func TestDocument_BytesIsCopy(t *testing.T) {
	t.Parallel()

	d, err := s3types.ParseDocument([]byte(`{"Status":"Enabled"}`))
	require.NoError(t, err)
	b := d.Bytes()
	b[2] = 'X'
	assert.Equal(t, `{"Status":"Enabled"}`, d.String())
}

func TestDocument_Equal(t *testing.T) {
	t.Parallel()

	a, err := s3types.ParseDocument([]byte(`{ "a": 1 }`))
	require.NoError(t, err)
	b, err := s3types.ParseDocument([]byte(`{"a":1}`))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(s3types.Document{}))
	assert.Empty(t, cmp.Diff(a, b))
}

func TestDocument_Decode(t *testing.T) {
	t.Parallel()

	d, err := s3types.ParseDocument([]byte(awsReplication))
	require.NoError(t, err)

	var view s3types.ReplicationConfiguration
	require.NoError(t, d.Decode(&view))
	require.Len(t, view.Rules, 1)
	assert.Equal(t, "arn:aws:s3:::destination-bucket", view.Rules[0].Destination.Bucket)
	assert.Equal(t, s3types.ReplicationRuleStatusEnabled, view.Rules[0].Status)
	assert.Equal(t, "test-prefix", view.Rules[0].Prefix)

	assert.ErrorIs(t, s3types.Document{}.Decode(&view), s3types.ErrAbsentDocument)
}

func TestDocument_JSON(t *testing.T) {
	t.Parallel()

	type holder struct {
		Lifecycle s3types.Document `json:"lifecycle"`
		Missing   s3types.Document `json:"missing"`
	}

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"lifecycle": `+singleActionLifecycle+`, "missing": null}`), &h))
	assert.True(t, h.Missing.IsZero())

	out, err := json.Marshal(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"lifecycle": `+singleActionLifecycle+`, "missing": null}`, string(out))

	var again holder
	require.NoError(t, json.Unmarshal(out, &again))
	assert.True(t, h.Lifecycle.Equal(again.Lifecycle))
}

// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types_test

import (
	"testing"

	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermission(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"FULL_CONTROL", "WRITE", "WRITE_ACP", "READ", "READ_ACP"} {
		p, err := s3types.ParsePermission(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(p))
	}

	for _, name := range []string{"", "BOGUS", "read", "FULL-CONTROL"} {
		_, err := s3types.ParsePermission(name)
		assert.ErrorIs(t, err, s3types.ErrUnknownPermission, name)
	}
}

func TestParseValidCannedACL(t *testing.T) {
	t.Parallel()

	acl, err := s3types.ParseValidCannedACL("public-read")
	require.NoError(t, err)
	assert.Equal(t, s3types.ACLPublicRead, acl)

	_, err = s3types.ParseValidCannedACL("world-writable")
	assert.Error(t, err)
}

func TestAccessControlList_AddGrant(t *testing.T) {
	t.Parallel()

	acl := s3types.NewPrivateACL()
	require.NoError(t, acl.AddGrant("a", s3types.PermissionWriteACP))
	require.NoError(t, acl.AddGrant("a", s3types.PermissionWriteACP))
	require.NoError(t, acl.AddGrant("b", s3types.PermissionWriteACP))
	assert.Equal(t, []string{"a", "a", "b"}, acl.WriteACP)

	assert.ErrorIs(t, acl.AddGrant("a", "BOGUS"), s3types.ErrUnknownPermission)
	assert.ErrorIs(t, acl.AddGrant("", s3types.PermissionRead), s3types.ErrEmptyGrantee)
	assert.Empty(t, acl.Read)
	assert.Equal(t, s3types.ACLPrivate, acl.Canned)
}

func TestAccessControlList_Grantees(t *testing.T) {
	t.Parallel()

	acl := s3types.AccessControlList{Read: []string{"x"}}
	got, err := acl.Grantees(s3types.PermissionRead)
	require.NoError(t, err)
	got[0] = "y"
	assert.Equal(t, []string{"x"}, acl.Read)

	_, err = acl.Grantees("NOPE")
	assert.ErrorIs(t, err, s3types.ErrUnknownPermission)
}

func TestAccessControlList_CloneNormalizes(t *testing.T) {
	t.Parallel()

	acl := s3types.AccessControlList{Canned: s3types.ACLPublicReadWrite, Write: []string{"w"}}
	c := acl.Clone()
	assert.Equal(t, s3types.AccessControlList{
		Canned:      s3types.ACLPublicReadWrite,
		FullControl: []string{},
		Write:       []string{"w"},
		WriteACP:    []string{},
		Read:        []string{},
		ReadACP:     []string{},
	}, c)

	c.Write[0] = "changed"
	assert.Equal(t, []string{"w"}, acl.Write)
}

func TestAccessControlList_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, s3types.NewPrivateACL().Validate())
	assert.NoError(t, s3types.AccessControlList{}.Validate())
	err := s3types.AccessControlList{ReadACP: []string{"ok", ""}}.Validate()
	assert.ErrorIs(t, err, s3types.ErrEmptyGrantee)
	assert.Contains(t, err.Error(), "READ_ACP[1]")
}

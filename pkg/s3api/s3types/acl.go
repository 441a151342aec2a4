// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import (
	"errors"
	"fmt"
	"slices"
)

// Canned ACL types
type CannedACL string

const (
	ACLPrivate           CannedACL = "private"
	ACLPublicRead        CannedACL = "public-read"
	ACLPublicReadWrite   CannedACL = "public-read-write"
	ACLAuthenticatedRead CannedACL = "authenticated-read"
	ACLBucketOwnerRead   CannedACL = "bucket-owner-read"
	ACLBucketOwnerFull   CannedACL = "bucket-owner-full-control"
	ACLLogDeliveryWrite  CannedACL = "log-delivery-write"
	ACLAwsExecRead       CannedACL = "aws-exec-read"
)

func (ca CannedACL) String() string {
	return string(ca)
}

func ParseValidCannedACL(input string) (CannedACL, error) {
	switch input {
	case ACLPrivate.String(),
		ACLPublicRead.String(),
		ACLPublicReadWrite.String(),
		ACLAuthenticatedRead.String(),
		ACLBucketOwnerRead.String(),
		ACLBucketOwnerFull.String(),
		ACLLogDeliveryWrite.String(),
		ACLAwsExecRead.String():
		return CannedACL(input), nil
	default:
		return "", fmt.Errorf("invalid canned ACL: %s", input)
	}
}

// ACL permission types
type Permission string

const (
	PermissionFullControl Permission = "FULL_CONTROL"
	PermissionWrite       Permission = "WRITE"
	PermissionWriteACP    Permission = "WRITE_ACP"
	PermissionRead        Permission = "READ"
	PermissionReadACP     Permission = "READ_ACP"
)

// Permissions lists every grant list an AccessControlList carries, in
// encoding order.
var Permissions = []Permission{
	PermissionFullControl,
	PermissionWrite,
	PermissionWriteACP,
	PermissionRead,
	PermissionReadACP,
}

var (
	ErrUnknownPermission = errors.New("unknown permission")
	ErrEmptyGrantee      = errors.New("grantee id must not be empty")
)

// ParsePermission maps a grant type name onto its Permission.
func ParsePermission(input string) (Permission, error) {
	for _, p := range Permissions {
		if string(p) == input {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPermission, input)
}

// AccessControlList is the bucket ACL as stored in bucket metadata: a canned
// policy name next to five explicit grant lists. The canned name and the
// grants are independent; which one wins is decided by the policy evaluator.
type AccessControlList struct {
	Canned      CannedACL `json:"Canned"`
	FullControl []string  `json:"FULL_CONTROL"`
	Write       []string  `json:"WRITE"`
	WriteACP    []string  `json:"WRITE_ACP"`
	Read        []string  `json:"READ"`
	ReadACP     []string  `json:"READ_ACP"`
}

// NewPrivateACL returns an ACL with the "private" canned policy and no grants.
func NewPrivateACL() AccessControlList {
	return AccessControlList{
		Canned:      ACLPrivate,
		FullControl: []string{},
		Write:       []string{},
		WriteACP:    []string{},
		Read:        []string{},
		ReadACP:     []string{},
	}
}

// grants returns a pointer to the list holding p.
func (acl *AccessControlList) grants(p Permission) (*[]string, error) {
	switch p {
	case PermissionFullControl:
		return &acl.FullControl, nil
	case PermissionWrite:
		return &acl.Write, nil
	case PermissionWriteACP:
		return &acl.WriteACP, nil
	case PermissionRead:
		return &acl.Read, nil
	case PermissionReadACP:
		return &acl.ReadACP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPermission, p)
	}
}

// Grantees returns a copy of the grantee ids holding p.
func (acl AccessControlList) Grantees(p Permission) ([]string, error) {
	list, err := acl.grants(p)
	if err != nil {
		return nil, err
	}
	return slices.Clone(*list), nil
}

// AddGrant appends granteeID to the list for p. Duplicates are kept.
func (acl *AccessControlList) AddGrant(granteeID string, p Permission) error {
	list, err := acl.grants(p)
	if err != nil {
		return err
	}
	if granteeID == "" {
		return ErrEmptyGrantee
	}
	*list = append(*list, granteeID)
	return nil
}

// Validate checks the structural shape of the grant lists.
func (acl AccessControlList) Validate() error {
	for _, p := range Permissions {
		list, _ := acl.grants(p)
		for i, id := range *list {
			if id == "" {
				return fmt.Errorf("%s[%d]: %w", p, i, ErrEmptyGrantee)
			}
		}
	}
	return nil
}

// Clone returns a deep copy. Nil grant lists come back as empty lists so that
// every list is always present.
func (acl AccessControlList) Clone() AccessControlList {
	return AccessControlList{
		Canned:      acl.Canned,
		FullControl: cloneGrantList(acl.FullControl),
		Write:       cloneGrantList(acl.Write),
		WriteACP:    cloneGrantList(acl.WriteACP),
		Read:        cloneGrantList(acl.Read),
		ReadACP:     cloneGrantList(acl.ReadACP),
	}
}

func cloneGrantList(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

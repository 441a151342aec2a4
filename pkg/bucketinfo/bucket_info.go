// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

// Package bucketinfo holds the metadata record of a single bucket and its
// canonical JSON encoding.
//
// A BucketInfo owns everything it holds: values passed to New or to a setter
// are copied in, and accessors hand out copies, so a record never aliases
// caller-held structures. A BucketInfo is not safe for concurrent mutation.
package bucketinfo

import (
	"errors"
	"time"

	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"
)

// CurrentModelVersion is the newest schema version this package reads, and
// the version new records are given. Encoding writes the version a record
// holds, so a decoded older record re-encodes with its own version; bumping
// it is a migration concern.
const CurrentModelVersion = 6

// SupportedModelVersion reports whether records of version v can be read.
func SupportedModelVersion(v int) bool {
	return v >= 1 && v <= CurrentModelVersion
}

// creationDateLayout is the millisecond UTC form new creation dates use.
const creationDateLayout = "2006-01-02T15:04:05.000Z"

// FormatCreationDate renders t the way creation dates are stored.
func FormatCreationDate(t time.Time) string {
	return t.UTC().Format(creationDateLayout)
}

// Config carries the fields of a new BucketInfo. Name, Owner,
// OwnerDisplayName, CreationDate and ModelVersion are required; every other
// field may be left zero.
type Config struct {
	Name             string
	Owner            string // canonical id
	OwnerDisplayName string
	CreationDate     string // RFC 3339, kept verbatim
	ModelVersion     int

	// ACL defaults to the private canned policy with no grants when nil.
	ACL *s3types.AccessControlList

	Transient bool
	Deleted   bool

	LocationConstraint   string
	WebsiteConfiguration s3types.WebsiteConfiguration
	CORS                 []s3types.CORSRule

	// Pass-through documents, kept verbatim. The zero Document is unset.
	ServerSideEncryption     s3types.Document
	VersioningConfiguration  s3types.Document
	ReplicationConfiguration s3types.Document
	LifecycleConfiguration   s3types.Document
}

// BucketInfo is the metadata record of one bucket.
type BucketInfo struct {
	name             string
	owner            string
	ownerDisplayName string
	creationDate     string
	modelVersion     int
	acl              s3types.AccessControlList
	transient        bool
	deleted          bool

	locationConstraint   string
	websiteConfiguration s3types.WebsiteConfiguration
	cors                 []s3types.CORSRule

	serverSideEncryption     s3types.Document
	versioningConfiguration  s3types.Document
	replicationConfiguration s3types.Document
	lifecycleConfiguration   s3types.Document
}

// New validates cfg and builds a record from a copy of it.
func New(cfg Config) (*BucketInfo, error) {
	if cfg.Name == "" {
		return nil, missing("name")
	}
	if cfg.Owner == "" {
		return nil, missing("owner")
	}
	if cfg.OwnerDisplayName == "" {
		return nil, missing("ownerDisplayName")
	}
	if cfg.CreationDate == "" {
		return nil, missing("creationDate")
	}
	if _, err := time.Parse(time.RFC3339, cfg.CreationDate); err != nil {
		return nil, malformed("creationDate", err)
	}
	if cfg.ModelVersion == 0 {
		return nil, missing("mdBucketModelVersion")
	}
	if !SupportedModelVersion(cfg.ModelVersion) {
		return nil, &ValidationError{Field: "mdBucketModelVersion", Reason: "unsupported version"}
	}

	acl := s3types.NewPrivateACL()
	if cfg.ACL != nil {
		if err := cfg.ACL.Validate(); err != nil {
			return nil, malformed("acl", err)
		}
		acl = cfg.ACL.Clone()
	}

	website, err := cloneWebsite(cfg.WebsiteConfiguration)
	if err != nil {
		return nil, malformed("websiteConfiguration", err)
	}

	return &BucketInfo{
		name:                     cfg.Name,
		owner:                    cfg.Owner,
		ownerDisplayName:         cfg.OwnerDisplayName,
		creationDate:             cfg.CreationDate,
		modelVersion:             cfg.ModelVersion,
		acl:                      acl,
		transient:                cfg.Transient,
		deleted:                  cfg.Deleted,
		locationConstraint:       cfg.LocationConstraint,
		websiteConfiguration:     website,
		cors:                     s3types.CloneCORS(cfg.CORS),
		serverSideEncryption:     cfg.ServerSideEncryption,
		versioningConfiguration:  cfg.VersioningConfiguration,
		replicationConfiguration: cfg.ReplicationConfiguration,
		lifecycleConfiguration:   cfg.LifecycleConfiguration,
	}, nil
}

// Clone returns a deep copy of b. Documents are immutable and shared.
func (b *BucketInfo) Clone() *BucketInfo {
	website, _ := cloneWebsite(b.websiteConfiguration)
	c := *b
	c.acl = b.acl.Clone()
	c.websiteConfiguration = website
	c.cors = s3types.CloneCORS(b.cors)
	return &c
}

func (b *BucketInfo) Name() string             { return b.name }
func (b *BucketInfo) Owner() string            { return b.owner }
func (b *BucketInfo) OwnerDisplayName() string { return b.ownerDisplayName }
func (b *BucketInfo) CreationDate() string     { return b.creationDate }
func (b *BucketInfo) ModelVersion() int        { return b.modelVersion }
func (b *BucketInfo) IsTransient() bool        { return b.transient }
func (b *BucketInfo) IsDeleted() bool          { return b.deleted }

// LocationConstraint returns the region constraint, or "" when unset.
func (b *BucketInfo) LocationConstraint() string { return b.locationConstraint }

func (b *BucketInfo) ACL() s3types.AccessControlList { return b.acl.Clone() }

func (b *BucketInfo) ServerSideEncryption() s3types.Document { return b.serverSideEncryption }

func (b *BucketInfo) VersioningConfiguration() s3types.Document { return b.versioningConfiguration }

// IsVersioningEnabled reports whether the versioning document has status
// Enabled. A document that does not decode as a versioning view is treated as
// not enabled.
func (b *BucketInfo) IsVersioningEnabled() bool {
	var v s3types.VersioningConfiguration
	if err := b.versioningConfiguration.Decode(&v); err != nil {
		return false
	}
	return v.Status == s3types.VersioningEnabled
}

// WebsiteConfiguration returns nil when website hosting is not configured.
func (b *BucketInfo) WebsiteConfiguration() s3types.WebsiteConfiguration {
	website, _ := cloneWebsite(b.websiteConfiguration)
	return website
}

func (b *BucketInfo) CORS() []s3types.CORSRule { return s3types.CloneCORS(b.cors) }

func (b *BucketInfo) ReplicationConfiguration() s3types.Document { return b.replicationConfiguration }

func (b *BucketInfo) LifecycleConfiguration() s3types.Document { return b.lifecycleConfiguration }

// SetName renames the bucket.
func (b *BucketInfo) SetName(name string) error {
	if name == "" {
		return &InvalidArgumentError{Argument: "name", Value: name}
	}
	b.name = name
	return nil
}

// SetOwner transfers ownership to another canonical id.
func (b *BucketInfo) SetOwner(owner string) error {
	if owner == "" {
		return &InvalidArgumentError{Argument: "owner", Value: owner}
	}
	b.owner = owner
	return nil
}

func (b *BucketInfo) SetOwnerDisplayName(displayName string) error {
	if displayName == "" {
		return &InvalidArgumentError{Argument: "ownerDisplayName", Value: displayName}
	}
	b.ownerDisplayName = displayName
	return nil
}

// SetCannedACL replaces the canned policy name. Explicit grants are kept.
func (b *BucketInfo) SetCannedACL(canned s3types.CannedACL) {
	b.acl.Canned = canned
}

// SetSpecificACL appends granteeID to the grant list named by grantType.
// Repeated calls append duplicates.
func (b *BucketInfo) SetSpecificACL(granteeID string, grantType s3types.Permission) error {
	if err := b.acl.AddGrant(granteeID, grantType); err != nil {
		if errors.Is(err, s3types.ErrEmptyGrantee) {
			return &InvalidArgumentError{Argument: "granteeID", Value: granteeID, Err: err}
		}
		return &InvalidArgumentError{Argument: "grantType", Value: string(grantType), Err: err}
	}
	return nil
}

// SetFullACL replaces the whole ACL.
func (b *BucketInfo) SetFullACL(acl s3types.AccessControlList) error {
	if err := acl.Validate(); err != nil {
		return &InvalidArgumentError{Argument: "acl", Value: string(acl.Canned), Err: err}
	}
	b.acl = acl.Clone()
	return nil
}

// SetServerSideEncryption replaces the encryption document; the zero
// Document removes it. The same holds for the other document setters.
func (b *BucketInfo) SetServerSideEncryption(sse s3types.Document) {
	b.serverSideEncryption = sse
}

func (b *BucketInfo) SetVersioningConfiguration(v s3types.Document) {
	b.versioningConfiguration = v
}

func (b *BucketInfo) SetLocationConstraint(location string) {
	b.locationConstraint = location
}

// SetWebsiteConfiguration replaces the website configuration; nil removes it.
func (b *BucketInfo) SetWebsiteConfiguration(website s3types.WebsiteConfiguration) error {
	c, err := cloneWebsite(website)
	if err != nil {
		return &InvalidArgumentError{Argument: "websiteConfiguration", Err: err}
	}
	b.websiteConfiguration = c
	return nil
}

func (b *BucketInfo) SetCORS(rules []s3types.CORSRule) {
	b.cors = s3types.CloneCORS(rules)
}

func (b *BucketInfo) SetReplicationConfiguration(c s3types.Document) {
	b.replicationConfiguration = c
}

func (b *BucketInfo) SetLifecycleConfiguration(c s3types.Document) {
	b.lifecycleConfiguration = c
}

func (b *BucketInfo) MarkTransient()  { b.transient = true }
func (b *BucketInfo) ClearTransient() { b.transient = false }
func (b *BucketInfo) MarkDeleted()    { b.deleted = true }
func (b *BucketInfo) ClearDeleted()   { b.deleted = false }

// cloneWebsite validates and copies w. A typed nil counts as unset.
func cloneWebsite(w s3types.WebsiteConfiguration) (s3types.WebsiteConfiguration, error) {
	switch v := w.(type) {
	case nil:
		return nil, nil
	case *s3types.StaticWebsite:
		if v == nil {
			return nil, nil
		}
	case *s3types.RedirectAllWebsite:
		if v == nil {
			return nil, nil
		}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w.Clone(), nil
}

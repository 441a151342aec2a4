// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// Versioning represents the versioning state of a bucket
type Versioning string

const (
	VersioningEnabled   Versioning = "Enabled"
	VersioningSuspended Versioning = "Suspended"
	VersioningDisabled  Versioning = "" // Not set = disabled
)

// VersioningConfiguration is a typed view of a versioning Document.
type VersioningConfiguration struct {
	Status    Versioning `json:"Status,omitempty"`    // Enabled or Suspended
	MFADelete string     `json:"MfaDelete,omitempty"` // Disabled or Enabled (requires MFA)
}

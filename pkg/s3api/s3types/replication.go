// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// ReplicationConfiguration is a typed view of a replication Document in the
// AWS shape. Buckets may carry other shapes; the Document is authoritative.
type ReplicationConfiguration struct {
	Role  string            `json:"Role"` // IAM role ARN(s), comma separated
	Rules []ReplicationRule `json:"Rules"`
}

type ReplicationRule struct {
	ID       string                `json:"ID,omitempty"`
	Priority int                   `json:"Priority,omitempty"`
	Status   ReplicationRuleStatus `json:"Status"`
	Prefix   string                `json:"Prefix,omitempty"`

	Destination ReplicationDestination `json:"Destination"`
}

type ReplicationRuleStatus string

const (
	ReplicationRuleStatusEnabled  ReplicationRuleStatus = "Enabled"
	ReplicationRuleStatusDisabled ReplicationRuleStatus = "Disabled"
)

type ReplicationDestination struct {
	Bucket string `json:"Bucket"`

	Account string `json:"Account,omitempty"`

	StorageClass string `json:"StorageClass,omitempty"`
}

// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// ServerSideEncryption is a typed view of the default encryption Document
// attached to a bucket.
type ServerSideEncryption struct {
	CryptoScheme int    `json:"cryptoScheme"`
	Algorithm    string `json:"algorithm"` // AES256 or aws:kms
	MasterKeyID  string `json:"masterKeyId"`
	Mandatory    bool   `json:"mandatory"`
}

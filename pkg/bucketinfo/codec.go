// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package bucketinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/LeeDigitalWorks/bucketmd/pkg/s3api/s3types"
)

// document is the canonical encoded form. Field order is the key order of the
// encoding and must not change; every key is always written.
type document struct {
	ACL                      *aclDocument             `json:"acl"`
	Name                     string                   `json:"name"`
	Owner                    string                   `json:"owner"`
	OwnerDisplayName         string                   `json:"ownerDisplayName"`
	CreationDate             string                   `json:"creationDate"`
	ModelVersion             int                      `json:"mdBucketModelVersion"`
	Transient                bool                     `json:"transient"`
	Deleted                  bool                     `json:"deleted"`
	ServerSideEncryption     s3types.Document         `json:"serverSideEncryption"`
	VersioningConfiguration  s3types.Document         `json:"versioningConfiguration"`
	LocationConstraint       *string                  `json:"locationConstraint"`
	WebsiteConfiguration     *s3types.WebsiteDocument `json:"websiteConfiguration"`
	CORS                     []s3types.CORSRule       `json:"cors"`
	ReplicationConfiguration s3types.Document         `json:"replicationConfiguration"`
	LifecycleConfiguration   s3types.Document         `json:"lifecycleConfiguration"`
}

// documentKeys and aclKeys are the json names of document and aclDocument.
var (
	documentKeys = []string{
		"acl", "name", "owner", "ownerDisplayName", "creationDate",
		"mdBucketModelVersion", "transient", "deleted", "serverSideEncryption",
		"versioningConfiguration", "locationConstraint", "websiteConfiguration",
		"cors", "replicationConfiguration", "lifecycleConfiguration",
	}
	aclKeys = []string{"Canned", "FULL_CONTROL", "WRITE", "WRITE_ACP", "READ", "READ_ACP"}
)

// aclDocument uses pointers so a missing grant list can be told apart from an
// empty one.
type aclDocument struct {
	Canned      s3types.CannedACL `json:"Canned"`
	FullControl *[]string         `json:"FULL_CONTROL"`
	Write       *[]string         `json:"WRITE"`
	WriteACP    *[]string         `json:"WRITE_ACP"`
	Read        *[]string         `json:"READ"`
	ReadACP     *[]string         `json:"READ_ACP"`
}

func newACLDocument(acl s3types.AccessControlList) *aclDocument {
	acl = acl.Clone()
	return &aclDocument{
		Canned:      acl.Canned,
		FullControl: &acl.FullControl,
		Write:       &acl.Write,
		WriteACP:    &acl.WriteACP,
		Read:        &acl.Read,
		ReadACP:     &acl.ReadACP,
	}
}

func (d *aclDocument) accessControlList() (*s3types.AccessControlList, error) {
	lists := []struct {
		p    s3types.Permission
		list *[]string
	}{
		{s3types.PermissionFullControl, d.FullControl},
		{s3types.PermissionWrite, d.Write},
		{s3types.PermissionWriteACP, d.WriteACP},
		{s3types.PermissionRead, d.Read},
		{s3types.PermissionReadACP, d.ReadACP},
	}
	for _, l := range lists {
		if l.list == nil {
			return nil, &ValidationError{Field: "acl." + string(l.p), Reason: "required"}
		}
	}
	return &s3types.AccessControlList{
		Canned:      d.Canned,
		FullControl: *d.FullControl,
		Write:       *d.Write,
		WriteACP:    *d.WriteACP,
		Read:        *d.Read,
		ReadACP:     *d.ReadACP,
	}, nil
}

func (b *BucketInfo) document() document {
	doc := document{
		ACL:                      newACLDocument(b.acl),
		Name:                     b.name,
		Owner:                    b.owner,
		OwnerDisplayName:         b.ownerDisplayName,
		CreationDate:             b.creationDate,
		ModelVersion:             b.modelVersion,
		Transient:                b.transient,
		Deleted:                  b.deleted,
		ServerSideEncryption:     b.serverSideEncryption,
		VersioningConfiguration:  b.versioningConfiguration,
		CORS:                     b.cors,
		ReplicationConfiguration: b.replicationConfiguration,
		LifecycleConfiguration:   b.lifecycleConfiguration,
	}
	if b.locationConstraint != "" {
		location := b.locationConstraint
		doc.LocationConstraint = &location
	}
	if b.websiteConfiguration != nil {
		website := b.websiteConfiguration.Encode()
		doc.WebsiteConfiguration = &website
	}
	return doc
}

// MarshalJSON writes the canonical encoding. The output is deterministic and
// does not escape HTML characters. json.Marshal re-compacts a Marshaler's
// output with HTML escaping, so json.Marshal(b) differs from Serialize for
// values containing &, < or >; Serialize is the canonical form.
func (b *BucketInfo) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b.document()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON replaces b with the record decoded from data. b is left
// untouched on error.
func (b *BucketInfo) UnmarshalJSON(data []byte) error {
	decoded, err := decode(data)
	if err != nil {
		return err
	}
	*b = *decoded
	return nil
}

// Serialize returns the canonical encoding of b.
func (b *BucketInfo) Serialize() (string, error) {
	data, err := b.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize rebuilds a record from an encoding produced by Serialize or an
// equivalent hand-built document.
func Deserialize(data string) (*BucketInfo, error) {
	return decode([]byte(data))
}

func decode(data []byte) (*BucketInfo, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, classifyDecodeError(err)
	}
	if err := checkKeyCase(data); err != nil {
		return nil, err
	}

	cfg := Config{
		Name:                     doc.Name,
		Owner:                    doc.Owner,
		OwnerDisplayName:         doc.OwnerDisplayName,
		CreationDate:             doc.CreationDate,
		ModelVersion:             doc.ModelVersion,
		Transient:                doc.Transient,
		Deleted:                  doc.Deleted,
		ServerSideEncryption:     doc.ServerSideEncryption,
		VersioningConfiguration:  doc.VersioningConfiguration,
		CORS:                     doc.CORS,
		ReplicationConfiguration: doc.ReplicationConfiguration,
		LifecycleConfiguration:   doc.LifecycleConfiguration,
	}
	if doc.ACL != nil {
		acl, err := doc.ACL.accessControlList()
		if err != nil {
			return nil, err
		}
		cfg.ACL = acl
	}
	if doc.LocationConstraint != nil {
		cfg.LocationConstraint = *doc.LocationConstraint
	}
	if doc.WebsiteConfiguration != nil {
		website, err := s3types.WebsiteFromDocument(*doc.WebsiteConfiguration)
		if err != nil {
			return nil, malformed("websiteConfiguration", err)
		}
		cfg.WebsiteConfiguration = website
	}
	return New(cfg)
}

// checkKeyCase rejects keys that match a canonical key only when case is
// ignored, which encoding/json would otherwise bind silently. Unknown keys are
// allowed. Nested CORS and website documents keep encoding/json matching.
func checkKeyCase(data []byte) error {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil
	}
	if err := matchKeys("", top, documentKeys); err != nil {
		return err
	}
	var acl map[string]json.RawMessage
	if err := json.Unmarshal(top["acl"], &acl); err != nil {
		return nil
	}
	return matchKeys("acl.", acl, aclKeys)
}

func matchKeys(prefix string, fields map[string]json.RawMessage, canonical []string) error {
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		if slices.Contains(canonical, key) {
			continue
		}
		for _, want := range canonical {
			if strings.EqualFold(key, want) {
				return &ValidationError{Field: prefix + key, Reason: "non-canonical key, want " + want}
			}
		}
	}
	return nil
}

// classifyDecodeError separates unparsable input from well-formed JSON of the
// wrong shape.
func classifyDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &DecodeError{Err: err}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return malformed(typeErr.Field, err)
	}
	return malformed("document", err)
}

// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import "slices"

// CORSRule defines a single CORS rule. A bucket holds an ordered list of them.
type CORSRule struct {
	ID             string   `json:"id,omitempty"`
	AllowedMethods []string `json:"allowedMethods"`
	AllowedOrigins []string `json:"allowedOrigins"`
	AllowedHeaders []string `json:"allowedHeaders,omitempty"`
	MaxAgeSeconds  *int     `json:"maxAgeSeconds,omitempty"`
	ExposeHeaders  []string `json:"exposeHeaders,omitempty"`
}

// CloneCORS deep-copies a rule list. Optional lists that are empty come back
// nil, which is how they decode.
func CloneCORS(rules []CORSRule) []CORSRule {
	if rules == nil {
		return nil
	}
	out := make([]CORSRule, len(rules))
	for i, r := range rules {
		out[i] = CORSRule{
			ID:             r.ID,
			AllowedMethods: slices.Clone(r.AllowedMethods),
			AllowedOrigins: slices.Clone(r.AllowedOrigins),
			AllowedHeaders: cloneOptional(r.AllowedHeaders),
			ExposeHeaders:  cloneOptional(r.ExposeHeaders),
		}
		if r.MaxAgeSeconds != nil {
			age := *r.MaxAgeSeconds
			out[i].MaxAgeSeconds = &age
		}
	}
	return out
}

func cloneOptional(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

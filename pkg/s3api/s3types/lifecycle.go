// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

// LifecycleConfiguration is a typed view of a lifecycle Document. The rules
// are interpreted by the lifecycle engine, not here.
type LifecycleConfiguration struct {
	Rules []LifecycleRule `json:"rules"`
}

type LifecycleRule struct {
	ID      string            `json:"ruleID"`
	Status  LifecycleStatus   `json:"ruleStatus"`
	Filter  *LifecycleFilter  `json:"filter,omitempty"`
	Actions []LifecycleAction `json:"actions"`
}

type LifecycleStatus string

const (
	LifecycleStatusEnabled  LifecycleStatus = "Enabled"
	LifecycleStatusDisabled LifecycleStatus = "Disabled"
)

type LifecycleFilter struct {
	Prefix *string        `json:"rulePrefix,omitempty"`
	Tags   []LifecycleTag `json:"tag,omitempty"`
}

// LifecycleTag is a key/value pair matched by lifecycle filters.
type LifecycleTag struct {
	Key   string `json:"key"`
	Value string `json:"val"`
}

// LifecycleAction is one action of a rule, e.g. Expiration or
// NoncurrentVersionExpiration.
type LifecycleAction struct {
	Name         string `json:"actionName"`
	Days         *int64 `json:"days,omitempty"`
	Date         string `json:"date,omitempty"`
	DeleteMarker string `json:"deleteMarker,omitempty"`
}

// Copyright 2025 ZapFS Authors
// SPDX-License-Identifier: Apache-2.0

package s3types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
)

var ErrMalformedWebsite = errors.New("malformed website configuration")

// WebsiteConfiguration defines static website hosting. It is either a
// *StaticWebsite (index/error documents plus routing rules) or a
// *RedirectAllWebsite, never both.
type WebsiteConfiguration interface {
	// Encode returns the plain document form used in bucket metadata.
	Encode() WebsiteDocument
	// Clone returns a deep copy.
	Clone() WebsiteConfiguration
	// Validate checks the configuration shape.
	Validate() error

	website()
}

// StaticWebsite serves objects with an index and error document and
// optional routing rules.
type StaticWebsite struct {
	IndexDocument string
	ErrorDocument string
	RoutingRules  []RoutingRule
}

// RedirectAllWebsite redirects all requests to another host.
type RedirectAllWebsite struct {
	HostName string
	Protocol string
}

func (*StaticWebsite) website()      {}
func (*RedirectAllWebsite) website() {}

// RoutingRule defines a website routing rule.
type RoutingRule struct {
	Redirect  *RoutingRedirect  `json:"redirect,omitempty"`
	Condition *RoutingCondition `json:"condition,omitempty"`
}

// RoutingRedirect defines where to redirect.
type RoutingRedirect struct {
	HTTPRedirectCode     HTTPCode `json:"httpRedirectCode,omitempty"`
	HostName             string   `json:"hostName,omitempty"`
	Protocol             string   `json:"protocol,omitempty"`
	ReplaceKeyPrefixWith string   `json:"replaceKeyPrefixWith,omitempty"`
	ReplaceKeyWith       string   `json:"replaceKeyWith,omitempty"`
}

// RoutingCondition defines when to apply a routing rule.
type RoutingCondition struct {
	HTTPErrorCodeReturnedEquals HTTPCode `json:"httpErrorCodeReturnedEquals,omitempty"`
	KeyPrefixEquals             string   `json:"keyPrefixEquals,omitempty"`
}

// HTTPCode is an HTTP status code kept as text. It decodes from either a JSON
// string or a JSON number, since hand-built configurations use both.
type HTTPCode string

func (c *HTTPCode) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = HTTPCode(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = HTTPCode(n.String())
	return nil
}

// RedirectAllRequestsTo is the plain form of a RedirectAllWebsite.
type RedirectAllRequestsTo struct {
	HostName string `json:"hostName"`
	Protocol string `json:"protocol,omitempty"`
}

// WebsiteDocument is the flattened form of a WebsiteConfiguration. Exactly one
// of the index/error/routing group or RedirectAllRequestsTo is populated.
type WebsiteDocument struct {
	IndexDocument         string                 `json:"indexDocument,omitempty"`
	ErrorDocument         string                 `json:"errorDocument,omitempty"`
	RedirectAllRequestsTo *RedirectAllRequestsTo `json:"redirectAllRequestsTo,omitempty"`
	RoutingRules          []RoutingRule          `json:"routingRules,omitempty"`
}

func (w *StaticWebsite) Encode() WebsiteDocument {
	return WebsiteDocument{
		IndexDocument: w.IndexDocument,
		ErrorDocument: w.ErrorDocument,
		RoutingRules:  cloneRoutingRules(w.RoutingRules),
	}
}

func (w *StaticWebsite) Clone() WebsiteConfiguration {
	return &StaticWebsite{
		IndexDocument: w.IndexDocument,
		ErrorDocument: w.ErrorDocument,
		RoutingRules:  cloneRoutingRules(w.RoutingRules),
	}
}

func (w *RedirectAllWebsite) Encode() WebsiteDocument {
	return WebsiteDocument{
		RedirectAllRequestsTo: &RedirectAllRequestsTo{
			HostName: w.HostName,
			Protocol: w.Protocol,
		},
	}
}

func (w *RedirectAllWebsite) Clone() WebsiteConfiguration {
	c := *w
	return &c
}

// WebsiteFromDocument rebuilds a WebsiteConfiguration from its plain form.
func WebsiteFromDocument(doc WebsiteDocument) (WebsiteConfiguration, error) {
	if doc.RedirectAllRequestsTo != nil {
		if doc.IndexDocument != "" || doc.ErrorDocument != "" || len(doc.RoutingRules) > 0 {
			return nil, fmt.Errorf("%w: redirectAllRequestsTo cannot be combined with other settings", ErrMalformedWebsite)
		}
		w := &RedirectAllWebsite{
			HostName: doc.RedirectAllRequestsTo.HostName,
			Protocol: doc.RedirectAllRequestsTo.Protocol,
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}
		return w, nil
	}

	w := &StaticWebsite{
		IndexDocument: doc.IndexDocument,
		ErrorDocument: doc.ErrorDocument,
		RoutingRules:  cloneRoutingRules(doc.RoutingRules),
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks the index document and every routing rule.
func (w *StaticWebsite) Validate() error {
	if w.IndexDocument == "" {
		return fmt.Errorf("%w: indexDocument is required", ErrMalformedWebsite)
	}
	for i, rule := range w.RoutingRules {
		if err := rule.validate(); err != nil {
			return fmt.Errorf("%w: routingRules[%d]: %v", ErrMalformedWebsite, i, err)
		}
	}
	return nil
}

// Validate checks the redirect target.
func (w *RedirectAllWebsite) Validate() error {
	if w.HostName == "" {
		return fmt.Errorf("%w: redirectAllRequestsTo.hostName is required", ErrMalformedWebsite)
	}
	if err := validateProtocol(w.Protocol); err != nil {
		return fmt.Errorf("%w: redirectAllRequestsTo: %v", ErrMalformedWebsite, err)
	}
	return nil
}

func (r RoutingRule) validate() error {
	if r.Redirect == nil {
		return errors.New("redirect is required")
	}
	rd := r.Redirect
	if rd.HTTPRedirectCode == "" && rd.HostName == "" && rd.Protocol == "" &&
		rd.ReplaceKeyPrefixWith == "" && rd.ReplaceKeyWith == "" {
		return errors.New("redirect must specify at least one field")
	}
	if rd.ReplaceKeyPrefixWith != "" && rd.ReplaceKeyWith != "" {
		return errors.New("replaceKeyPrefixWith and replaceKeyWith are mutually exclusive")
	}
	if rd.HTTPRedirectCode != "" {
		if err := validateCode(rd.HTTPRedirectCode, 300, 399); err != nil {
			return fmt.Errorf("httpRedirectCode: %v", err)
		}
	}
	if err := validateProtocol(rd.Protocol); err != nil {
		return err
	}
	if c := r.Condition; c != nil {
		if c.HTTPErrorCodeReturnedEquals == "" && c.KeyPrefixEquals == "" {
			return errors.New("condition must specify at least one field")
		}
		if c.HTTPErrorCodeReturnedEquals != "" {
			if err := validateCode(c.HTTPErrorCodeReturnedEquals, 400, 599); err != nil {
				return fmt.Errorf("httpErrorCodeReturnedEquals: %v", err)
			}
		}
	}
	return nil
}

func validateCode(code HTTPCode, lo, hi int) error {
	n, err := strconv.Atoi(string(code))
	if err != nil {
		return fmt.Errorf("%q is not a number", code)
	}
	if n < lo || n > hi {
		return fmt.Errorf("%d is outside %d-%d", n, lo, hi)
	}
	return nil
}

func validateProtocol(p string) error {
	switch p {
	case "", "http", "https":
		return nil
	default:
		return fmt.Errorf("invalid protocol %q", p)
	}
}

func cloneRoutingRules(rules []RoutingRule) []RoutingRule {
	if len(rules) == 0 {
		return nil
	}
	out := slices.Clone(rules)
	for i := range out {
		if out[i].Redirect != nil {
			rd := *out[i].Redirect
			out[i].Redirect = &rd
		}
		if out[i].Condition != nil {
			c := *out[i].Condition
			out[i].Condition = &c
		}
	}
	return out
}

// Package model defines the core data types shared across the triage packages.
package model

import "strings"

// UnresolvedVendorSentinel marks a vendor string the upstream lookup could not resolve.
const UnresolvedVendorSentinel = "no match"

// RawRecord is a network observation as produced by the upstream analysis service.
// Fields are taken as-is; no validation happens at this layer.
type RawRecord struct {
	SSID         string `json:"ssid"`
	BSSID        string `json:"bssid"`
	Vendor       string `json:"vendor"`
	VendorSource string `json:"vendor_source,omitempty"`
	Flagged      bool   `json:"flagged"`
}

// NetworkRecord is a cleaned observation held by the record store.
// It is treated as immutable once stored.
type NetworkRecord struct {
	SSID         string `json:"ssid"`
	BSSID        string `json:"bssid"`
	Vendor       string `json:"vendor"`
	VendorSource string `json:"vendor_source,omitempty"`
	Flagged      bool   `json:"flagged"`
}

// HasUnknownVendor reports whether the vendor is empty or carries the unresolved sentinel.
func (r NetworkRecord) HasUnknownVendor() bool {
	return r.Vendor == "" || strings.Contains(r.Vendor, UnresolvedVendorSentinel)
}

// AnalysisResult is one result set returned by the upstream analysis service.
type AnalysisResult struct {
	Records []RawRecord
	Total   int
	Flagged int
}

// Package records provides a fluent builder for network record fixtures.
//
// Example usage:
//
//	recs := records.NewBuilder(t).
//		WithSurvey().
//		WithNetwork("Lab", "Intel Corporate").
//		Build()
package records

import (
	"fmt"
	"testing"

	"github.com/Veraticus/wifi-triage/internal/model"
)

// Records is an ordered list of raw fixture records.
type Records []model.RawRecord

// Network returns the records as already-cleaned network records.
func (r Records) Network() []model.NetworkRecord {
	out := make([]model.NetworkRecord, len(r))
	for i, raw := range r {
		out[i] = model.NetworkRecord(raw)
	}
	return out
}

// FlaggedCount returns how many records are flagged.
func (r Records) FlaggedCount() int {
	n := 0
	for _, raw := range r {
		if raw.Flagged {
			n++
		}
	}
	return n
}

// Builder assembles fixture records in order.
type Builder struct {
	t       *testing.T
	records Records
}

// NewBuilder creates an empty builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithNetwork appends a network with a generated BSSID. An empty vendor
// leaves the record unflagged; use WithFlagged for flagged records.
func (b *Builder) WithNetwork(ssid, vendor string) *Builder {
	b.records = append(b.records, model.RawRecord{
		SSID:   ssid,
		BSSID:  b.nextBSSID(),
		Vendor: vendor,
	})
	return b
}

// WithFlagged appends a flagged network with an unresolved vendor.
func (b *Builder) WithFlagged(ssid string) *Builder {
	b.records = append(b.records, model.RawRecord{
		SSID:    ssid,
		BSSID:   b.nextBSSID(),
		Vendor:  model.UnresolvedVendorSentinel,
		Flagged: true,
	})
	return b
}

// WithSurvey appends a small mixed survey: one organization network, one
// unknown vendor and two known vendors.
func (b *Builder) WithSurvey() *Builder {
	return b.
		WithNetwork("Company WiFi", "Cisco Systems").
		WithFlagged("Guest").
		WithNetwork("Printer", "Brother Industries, Ltd").
		WithNetwork("Lobby", "Ruckus Wireless")
}

// Build returns a copy of the assembled records.
func (b *Builder) Build() Records {
	b.t.Helper()
	out := make(Records, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Builder) nextBSSID() string {
	n := len(b.records) + 1
	return fmt.Sprintf("02:00:00:00:%02x:%02x", n>>8&0xff, n&0xff)
}

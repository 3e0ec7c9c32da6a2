// Package report renders classification results into copy-pasteable text.
//
// None of the renderers escape their output: values containing a double
// quote produce malformed quoted lists.
package report

import (
	"strings"

	"github.com/Veraticus/wifi-triage/internal/model"
)

// Placeholder sentences for empty buckets.
const (
	NoUnknownVendors = "No unknown vendor networks found (excluding organization networks)"
	NoKnownVendors   = "No known vendor networks found (excluding organization networks)"
)

// Divider separates the SSID list from the vendor list in the known-vendor report.
const Divider = "\n\n" + "----------------------------------------------" + "\n\n"

// mainReportRule sits between the BSSID and vendor columns of the main report.
const mainReportRule = "----"

// MainReport renders one "{ssid} {bssid} ---- {vendor}" line per record.
func MainReport(records []model.NetworkRecord) string {
	var sb strings.Builder
	for _, r := range records {
		sb.WriteString(r.SSID)
		sb.WriteByte(' ')
		sb.WriteString(r.BSSID)
		sb.WriteByte(' ')
		sb.WriteString(mainReportRule)
		sb.WriteByte(' ')
		sb.WriteString(r.Vendor)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// UnknownVendorReport renders the unknown bucket as a quoted, comma-separated SSID list.
func UnknownVendorReport(unknown []model.NetworkRecord) string {
	if len(unknown) == 0 {
		return NoUnknownVendors
	}
	return quotedList(unknown, ssidOf)
}

// KnownVendorReport renders the known bucket as a quoted SSID list and a
// quoted vendor list in the same order, separated by Divider.
func KnownVendorReport(known []model.NetworkRecord) string {
	if len(known) == 0 {
		return NoKnownVendors
	}
	return quotedList(known, ssidOf) + Divider + quotedList(known, vendorOf)
}

func ssidOf(r model.NetworkRecord) string   { return r.SSID }
func vendorOf(r model.NetworkRecord) string { return r.Vendor }

func quotedList(records []model.NetworkRecord, field func(model.NetworkRecord) string) string {
	quoted := make([]string, len(records))
	for i, r := range records {
		quoted[i] = `"` + field(r) + `"`
	}
	return strings.Join(quoted, ", ")
}

package classify

import (
	"testing"

	"github.com/Veraticus/wifi-triage/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []model.NetworkRecord {
	return []model.NetworkRecord{
		{SSID: "Guest", BSSID: "66:77:88:99:aa:bb", Vendor: "no match"},
		{SSID: "Company WiFi", BSSID: "00:11:22:33:44:55", Vendor: "Cisco"},
		{SSID: "Printer", BSSID: "3c:2a:f4:00:00:01", Vendor: "Brother Industries, Ltd"},
		{SSID: "Hidden", BSSID: "aa:bb:cc:dd:ee:ff", Vendor: ""},
		{SSID: "Lobby", BSSID: "f8:e7:1e:00:00:02", Vendor: "Ruckus Wireless"},
	}
}

func TestPartition(t *testing.T) {
	unknown, known := Partition(sampleRecords(), "Company")

	require.Len(t, unknown, 2)
	assert.Equal(t, "Guest", unknown[0].SSID)
	assert.Equal(t, "Hidden", unknown[1].SSID)

	require.Len(t, known, 2)
	assert.Equal(t, "Printer", known[0].SSID)
	assert.Equal(t, "Lobby", known[1].SSID)
}

func TestPartition_NoPatterns(t *testing.T) {
	unknown, known := Partition(sampleRecords(), "")

	assert.Len(t, unknown, 2)
	assert.Len(t, known, 3)
}

func TestPartition_AllOrganization(t *testing.T) {
	records := []model.NetworkRecord{
		{SSID: "Acme-Guest", Vendor: "no match"},
		{SSID: "ACME", Vendor: "Cisco"},
	}

	unknown, known := Partition(records, "acme")

	assert.Empty(t, unknown)
	assert.Empty(t, known)
}

func TestPartition_EmptyInput(t *testing.T) {
	unknown, known := Partition(nil, "acme")

	assert.Empty(t, unknown)
	assert.Empty(t, known)
}

func TestSplit_EveryRecordInExactlyOneBucket(t *testing.T) {
	records := sampleRecords()
	b := Split(records, ParsePatterns("company, lobby"))

	assert.Equal(t, len(records), len(b.Organization)+len(b.Unknown)+len(b.Known))

	seen := make(map[string]int)
	for _, bucket := range [][]model.NetworkRecord{b.Organization, b.Unknown, b.Known} {
		for _, r := range bucket {
			seen[r.BSSID]++
		}
	}
	for _, r := range records {
		assert.Equal(t, 1, seen[r.BSSID], "record %s", r.SSID)
	}

	require.Len(t, b.Organization, 2)
	assert.Equal(t, "Company WiFi", b.Organization[0].SSID)
	assert.Equal(t, "Lobby", b.Organization[1].SSID)
}

func TestSplit_EmptySSIDIsNeverOrganization(t *testing.T) {
	records := []model.NetworkRecord{{SSID: "", Vendor: "Cisco"}}
	b := Split(records, ParsePatterns("acme"))

	assert.Empty(t, b.Organization)
	assert.Len(t, b.Known, 1)
}

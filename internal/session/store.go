// Package session holds the record store for the active analysis session.
package session

import (
	"regexp"

	"github.com/Veraticus/wifi-triage/internal/model"
)

// boolPrefix matches the stringified boolean some upstream exports glue onto the SSID.
var boolPrefix = regexp.MustCompile(`^(?:True|False)\s+`)

// Stats are the aggregate counts shown above the record table.
type Stats struct {
	Total   int
	Flagged int
}

// Store holds the current list of network records. Each new analysis result
// replaces the previous list in full.
//
// A Store is owned by a single session and is not safe for concurrent use.
type Store struct {
	records []model.NetworkRecord
	stats   Stats
}

// NewStore returns an empty record store.
func NewStore() *Store {
	return &Store{}
}

// SetRecords replaces the stored records with cleaned copies of raw and
// returns the cleaned sequence. Counts are derived from the records.
func (s *Store) SetRecords(raw []model.RawRecord) []model.NetworkRecord {
	records := make([]model.NetworkRecord, 0, len(raw))
	flagged := 0
	for _, r := range raw {
		records = append(records, model.NetworkRecord{
			SSID:         CleanSSID(r.SSID),
			BSSID:        r.BSSID,
			Vendor:       r.Vendor,
			VendorSource: r.VendorSource,
			Flagged:      r.Flagged,
		})
		if r.Flagged {
			flagged++
		}
	}

	s.records = records
	s.stats = Stats{Total: len(records), Flagged: flagged}

	return s.Records()
}

// SetResult replaces the stored records from an upstream result set, keeping
// the counts the service reported.
func (s *Store) SetResult(result model.AnalysisResult) []model.NetworkRecord {
	records := s.SetRecords(result.Records)
	s.stats = Stats{Total: result.Total, Flagged: result.Flagged}
	return records
}

// Restore replaces the stored records with already-cleaned records, as read
// back from persistent storage.
func (s *Store) Restore(records []model.NetworkRecord, stats Stats) {
	s.records = append([]model.NetworkRecord(nil), records...)
	s.stats = stats
}

// Records returns a copy of the stored records in arrival order.
func (s *Store) Records() []model.NetworkRecord {
	out := make([]model.NetworkRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.records)
}

// Stats returns the aggregate counts for the stored result.
func (s *Store) Stats() Stats {
	return s.stats
}

// CleanSSID strips a single leading "True " or "False " token.
func CleanSSID(ssid string) string {
	return boolPrefix.ReplaceAllString(ssid, "")
}

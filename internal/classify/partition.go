package classify

import (
	"github.com/Veraticus/wifi-triage/internal/model"
)

// Buckets is the outcome of one classification run. Every input record lands
// in exactly one of the three slices, each in input order.
type Buckets struct {
	Organization []model.NetworkRecord
	Unknown      []model.NetworkRecord
	Known        []model.NetworkRecord
}

// Split classifies records against an already-normalized pattern set.
func Split(records []model.NetworkRecord, patterns PatternSet) Buckets {
	var b Buckets
	for _, r := range records {
		switch {
		case patterns.Matches(r.SSID):
			b.Organization = append(b.Organization, r)
		case r.HasUnknownVendor():
			b.Unknown = append(b.Unknown, r)
		default:
			b.Known = append(b.Known, r)
		}
	}
	return b
}

// Partition splits non-organization records into unknown and known vendor
// buckets. Organization networks are left out of both.
func Partition(records []model.NetworkRecord, patterns string) (unknown, known []model.NetworkRecord) {
	b := Split(records, ParsePatterns(patterns))
	return b.Unknown, b.Known
}

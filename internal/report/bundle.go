package report

import (
	"github.com/Veraticus/wifi-triage/internal/classify"
	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/model"
)

// RecordSource supplies the records of the active session.
type RecordSource interface {
	Records() []model.NetworkRecord
}

// Section names one of the text artifacts in a Bundle.
type Section string

const (
	SectionMain    Section = "main"
	SectionUnknown Section = "unknown"
	SectionKnown   Section = "known"
)

// Sections lists the artifacts in display order.
var Sections = []Section{SectionMain, SectionUnknown, SectionKnown}

// Bundle holds every artifact produced by one classification run.
type Bundle struct {
	Main              string
	Unknown           string
	Known             string
	UnknownRecords    []model.NetworkRecord
	KnownRecords      []model.NetworkRecord
	OrganizationCount int
}

// Text returns the artifact for section, or "" for an unrecognized section.
func (b Bundle) Text(section Section) string {
	switch section {
	case SectionMain:
		return b.Main
	case SectionUnknown:
		return b.Unknown
	case SectionKnown:
		return b.Known
	default:
		return ""
	}
}

// Reclassify runs the full classification over the current records using
// patternText, which is parsed afresh on every call.
func Reclassify(source RecordSource, patternText string) Bundle {
	records := source.Records()
	patterns := classify.ParsePatterns(patternText)
	buckets := classify.Split(records, patterns)

	common.LogDebug("reclassified networks", common.Fields{
		"records":      len(records),
		"patterns":     len(patterns),
		"organization": len(buckets.Organization),
		"unknown":      len(buckets.Unknown),
		"known":        len(buckets.Known),
	})

	return Bundle{
		Main:              MainReport(records),
		Unknown:           UnknownVendorReport(buckets.Unknown),
		Known:             KnownVendorReport(buckets.Known),
		UnknownRecords:    buckets.Unknown,
		KnownRecords:      buckets.Known,
		OrganizationCount: len(buckets.Organization),
	}
}

// ParseSection converts a user-supplied section name; ok is false for unknown names.
func ParseSection(name string) (Section, bool) {
	for _, s := range Sections {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Package ingest decodes result sets produced by the upstream analysis service.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/wifi-triage/internal/common"
	"github.com/Veraticus/wifi-triage/internal/config"
	"github.com/Veraticus/wifi-triage/internal/model"
)

// wireRecord mirrors one entry of the service's "results" array. Every field
// is kept raw so a value of the wrong type degrades to its zero value instead
// of rejecting the whole result set.
type wireRecord struct {
	SSID         json.RawMessage `json:"ssid"`
	BSSID        json.RawMessage `json:"bssid"`
	Vendor       json.RawMessage `json:"vendor"`
	VendorSource json.RawMessage `json:"vendor_source"`
	Flagged      json.RawMessage `json:"flagged"`
}

type wireResult struct {
	Total   json.RawMessage `json:"total"`
	Flagged json.RawMessage `json:"flagged"`
	Error   json.RawMessage `json:"error"`
	Results json.RawMessage `json:"results"`
}

// Decode reads one result set. It accepts either the service's response
// object or a bare JSON array of records. Only input that is not well-formed
// JSON is rejected; fields of an unexpected type are read as empty. A result
// with no records is returned together with common.ErrNoRecords.
func Decode(r io.Reader) (model.AnalysisResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to read analysis result: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return model.AnalysisResult{}, common.ErrEmptyInput
	}
	if !json.Valid(data) {
		return model.AnalysisResult{}, fmt.Errorf("failed to decode analysis result: %w", malformedError(data))
	}

	var wire wireResult
	switch data[0] {
	case '[':
		wire.Results = data
	case '{':
		if err := json.Unmarshal(data, &wire); err != nil {
			return model.AnalysisResult{}, fmt.Errorf("failed to decode analysis result: %w", err)
		}
		if msg := stringField(wire.Error); msg != "" {
			return model.AnalysisResult{}, fmt.Errorf("%w: %s", common.ErrUpstream, msg)
		}
	}

	result := toResult(wire)
	if len(result.Records) == 0 {
		return result, common.ErrNoRecords
	}

	common.LogDebug("decoded analysis result", common.Fields{
		"records": len(result.Records),
		"total":   result.Total,
		"flagged": result.Flagged,
	})

	return result, nil
}

// DecodeFile decodes the result set stored at path; "-" reads standard input.
func DecodeFile(path string) (model.AnalysisResult, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}

	f, err := os.Open(config.ExpandPath(path)) //nolint:gosec // user-supplied input file
	if err != nil {
		return model.AnalysisResult{}, fmt.Errorf("failed to open analysis result: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(f)
}

func toResult(wire wireResult) model.AnalysisResult {
	var entries []json.RawMessage
	// A "results" value that is not an array yields no records.
	_ = json.Unmarshal(wire.Results, &entries)

	records := make([]model.RawRecord, 0, len(entries))
	flagged := 0
	for _, entry := range entries {
		if len(entry) == 0 || entry[0] != '{' {
			continue
		}
		var w wireRecord
		if err := json.Unmarshal(entry, &w); err != nil {
			continue
		}
		rec := model.RawRecord{
			SSID:         stringField(w.SSID),
			BSSID:        stringField(w.BSSID),
			Vendor:       stringField(w.Vendor),
			VendorSource: stringField(w.VendorSource),
			Flagged:      boolField(w.Flagged),
		}
		if rec.Flagged {
			flagged++
		}
		records = append(records, rec)
	}

	result := model.AnalysisResult{
		Records: records,
		Total:   len(records),
		Flagged: flagged,
	}
	// Upstream counts win unless they are missing, not numbers, or zero.
	if n, ok := intField(wire.Total); ok && n > 0 {
		result.Total = n
	}
	if n, ok := intField(wire.Flagged); ok && n > 0 {
		result.Flagged = n
	}

	return result
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

func boolField(raw json.RawMessage) bool {
	var b bool
	if len(raw) == 0 || json.Unmarshal(raw, &b) != nil {
		return false
	}
	return b
}

func intField(raw json.RawMessage) (int, bool) {
	var n int
	if len(raw) == 0 || json.Unmarshal(raw, &n) != nil {
		return 0, false
	}
	return n, true
}

// malformedError reports where decoding of invalid JSON stopped.
func malformedError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return errors.New("invalid JSON")
}

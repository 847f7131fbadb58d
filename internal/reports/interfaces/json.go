package interfaces

import (
	"github.com/goccy/go-json"

	analytics "ispdesk/internal/analytics/domain"
)

// MarshalSnapshot serializes a statistics snapshot for the presentation
// layer or file export.
func MarshalSnapshot(snap analytics.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// UnmarshalSnapshot decodes a serialized statistics snapshot.
func UnmarshalSnapshot(data []byte) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return analytics.Snapshot{}, err
	}
	return snap, nil
}

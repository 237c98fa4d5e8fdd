package dto

import (
	"brawlstats-sync/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessoryRoundTrip(t *testing.T) {
	d, err := AccessoryFromRecord(map[string]any{"id": 23000255, "name": "FAST FORWARD"})
	require.NoError(t, err)
	assert.Equal(t, AccessoryDTO{ExtID: 23000255, Name: "FAST FORWARD"}, d)

	again, err := AccessoryFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestAccessoryFromRecord_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		rec   map[string]any
		field string
	}{
		{"empty record", map[string]any{}, "id"},
		{"missing id", map[string]any{"name": "FAST FORWARD"}, "id"},
		{"non numeric id", map[string]any{"id": "x", "name": "FAST FORWARD"}, "id"},
		{"list id", map[string]any{"id": []any{1}, "name": "FAST FORWARD"}, "id"},
		{"missing name", map[string]any{"id": 1}, "name"},
		{"empty name", map[string]any{"id": 1, "name": ""}, "name"},
		{"name not string", map[string]any{"id": 1, "name": 1.5}, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AccessoryFromRecord(tt.rec)
			requireInvalidField(t, err, "accessory", tt.field)
		})
	}
}

func TestAccessoryFromEntity(t *testing.T) {
	got := AccessoryFromEntity(domain.Accessory{ID: 3, ExtID: 23000255, Name: "FAST FORWARD"})
	assert.Equal(t, map[string]any{"id": int64(23000255), "name": "FAST FORWARD"}, got.ToRecord())
}

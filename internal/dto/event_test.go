package dto

import (
	"brawlstats-sync/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRecord() map[string]any {
	return map[string]any{
		"id":        15000005,
		"map":       "Hard Rock Mine",
		"mode":      "gemGrab",
		"modifiers": []any{"energyDrink", "angryRobo"},
	}
}

func TestEventRoundTrip(t *testing.T) {
	d, err := EventFromRecord(eventRecord())
	require.NoError(t, err)
	assert.Equal(t, []string{"energyDrink", "angryRobo"}, d.Modifiers)

	again, err := EventFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestEventRoundTrip_NoModifiers(t *testing.T) {
	rec := eventRecord()
	delete(rec, "modifiers")

	d, err := EventFromRecord(rec)
	require.NoError(t, err)

	again, err := EventFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestEventFromRecord_Mistyped(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(rec map[string]any)
		field  string
	}{
		{"non numeric id", func(rec map[string]any) { rec["id"] = "gem" }, "id"},
		{"empty map", func(rec map[string]any) { rec["map"] = "" }, "map"},
		{"map not string", func(rec map[string]any) { rec["map"] = 1 }, "map"},
		{"empty mode", func(rec map[string]any) { rec["mode"] = "" }, "mode"},
		{"mode not string", func(rec map[string]any) { rec["mode"] = []any{} }, "mode"},
		{"empty modifier", func(rec map[string]any) { rec["modifiers"] = []any{""} }, "modifiers[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := eventRecord()
			tt.mutate(rec)

			_, err := EventFromRecord(rec)
			requireInvalidField(t, err, "event", tt.field)
		})
	}
}

func TestEventFromEntity(t *testing.T) {
	e := domain.Event{
		ID:        2,
		ExtID:     15000005,
		Map:       domain.EventMap{ID: 1, Name: "Hard Rock Mine"},
		Mode:      domain.EventMode{ID: 1, Name: "gemGrab"},
		Modifiers: []domain.EventModifier{{ID: 1, Name: "energyDrink"}, {ID: 2, Name: "angryRobo"}},
	}

	want, err := EventFromRecord(eventRecord())
	require.NoError(t, err)
	assert.Equal(t, want, EventFromEntity(e))
}

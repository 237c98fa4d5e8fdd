package dto

import (
	"brawlstats-sync/internal/domain"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shellyRecord() map[string]any {
	return map[string]any{
		"id":   16000000,
		"name": "SHELLY",
		"gadgets": []any{
			map[string]any{"id": 23000255, "name": "FAST FORWARD"},
			map[string]any{"id": 23000288, "name": "CLAY PIGEONS"},
		},
		"starPowers": []any{
			map[string]any{"id": 23000076, "name": "SHELL SHOCK"},
			map[string]any{"id": 23000135, "name": "BAND-AID"},
		},
	}
}

func TestBrawlerFromRecord(t *testing.T) {
	d, err := BrawlerFromRecord(shellyRecord())
	require.NoError(t, err)

	assert.Equal(t, int64(16000000), d.ExtID)
	assert.Equal(t, "SHELLY", d.Name)
	assert.Equal(t, []AccessoryDTO{{23000255, "FAST FORWARD"}, {23000288, "CLAY PIGEONS"}}, d.Accessories)
	assert.Equal(t, []StarPowerDTO{{23000076, "SHELL SHOCK"}, {23000135, "BAND-AID"}}, d.StarPowers)
}

func TestBrawlerRoundTrip(t *testing.T) {
	d, err := BrawlerFromRecord(shellyRecord())
	require.NoError(t, err)

	again, err := BrawlerFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestBrawlerFromJSONNumbers(t *testing.T) {
	body := `{"id": 16000001, "name": "COLT", "gadgets": [{"id": 1.0, "name": "SPEEDLOADER"}], "starPowers": []}`
	dec := json.NewDecoder(bytesReader(body))
	dec.UseNumber()
	var rec map[string]any
	require.NoError(t, dec.Decode(&rec))

	d, err := BrawlerFromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, int64(16000001), d.ExtID)
	assert.Equal(t, int64(1), d.Accessories[0].ExtID)
	assert.Empty(t, d.StarPowers)
}

func TestBrawlerFromRecord_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(rec map[string]any)
		field    string
		wantCode int
	}{
		{"missing id", func(rec map[string]any) { delete(rec, "id") }, "id", http.StatusBadRequest},
		{"bool id", func(rec map[string]any) { rec["id"] = true }, "id", http.StatusBadRequest},
		{"non numeric id", func(rec map[string]any) { rec["id"] = "shelly" }, "id", http.StatusBadRequest},
		{"missing name", func(rec map[string]any) { delete(rec, "name") }, "name", http.StatusBadRequest},
		{"empty name", func(rec map[string]any) { rec["name"] = "" }, "name", http.StatusBadRequest},
		{"name not string", func(rec map[string]any) { rec["name"] = 7 }, "name", http.StatusBadRequest},
		{"missing gadgets", func(rec map[string]any) { delete(rec, "gadgets") }, "gadgets", http.StatusBadRequest},
		{"gadgets not list", func(rec map[string]any) { rec["gadgets"] = "none" }, "gadgets", http.StatusBadRequest},
		{"missing star powers", func(rec map[string]any) { delete(rec, "starPowers") }, "starPowers", http.StatusBadRequest},
		{
			"invalid gadget",
			func(rec map[string]any) { rec["gadgets"] = []any{map[string]any{"id": 1}} },
			"gadgets",
			http.StatusUnprocessableEntity,
		},
		{
			"invalid star power",
			func(rec map[string]any) { rec["starPowers"] = []any{map[string]any{"name": "X"}} },
			"starPowers",
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := shellyRecord()
			tt.mutate(rec)

			_, err := BrawlerFromRecord(rec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDTO)

			var invalid *InvalidDTOError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, "brawler", invalid.Entity)
			assert.Equal(t, tt.field, invalid.Field)
			assert.Equal(t, tt.wantCode, invalid.Code)
		})
	}
}

func TestBrawlerFromRecord_ShortCircuits(t *testing.T) {
	_, err := BrawlerFromRecord(map[string]any{"invalid": "data"})

	var invalid *InvalidDTOError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "id", invalid.Field)
	assert.Equal(t, `missing "id" in brawler`, invalid.Message)
}

func TestBrawlersFromList(t *testing.T) {
	t.Run("dedupes by ext id keeping the first", func(t *testing.T) {
		second := shellyRecord()
		second["name"] = "SHELLY AGAIN"

		got, err := BrawlersFromList([]any{shellyRecord(), second})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SHELLY", got[0].Name)
	})

	t.Run("one bad item fails the whole list", func(t *testing.T) {
		bad := shellyRecord()
		delete(bad, "name")

		got, err := BrawlersFromList([]any{shellyRecord(), bad})
		require.ErrorIs(t, err, ErrInvalidDTO)
		assert.Nil(t, got)
	})

	t.Run("non object item", func(t *testing.T) {
		_, err := BrawlersFromList([]any{"SHELLY"})
		require.ErrorIs(t, err, ErrInvalidDTO)
	})
}

func TestBrawlerFromEntity(t *testing.T) {
	e := domain.Brawler{
		ID:          4,
		ExtID:       16000000,
		Name:        "SHELLY",
		Accessories: []domain.Accessory{{ID: 1, ExtID: 23000255, Name: "FAST FORWARD"}},
		StarPowers:  []domain.StarPower{{ID: 2, ExtID: 23000076, Name: "SHELL SHOCK"}},
	}

	got := BrawlerFromEntity(e)
	fromRecord, err := BrawlerFromRecord(map[string]any{
		"id":         16000000,
		"name":       "SHELLY",
		"gadgets":    []any{map[string]any{"id": 23000255, "name": "FAST FORWARD"}},
		"starPowers": []any{map[string]any{"id": 23000076, "name": "SHELL SHOCK"}},
	})
	require.NoError(t, err)
	assert.Equal(t, fromRecord, got)
}

package dto

import (
	"brawlstats-sync/internal/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberRecord(tag, role string) map[string]any {
	return map[string]any{
		"tag":       tag,
		"name":      "Member " + tag,
		"nameColor": "0xffffffff",
		"role":      role,
		"trophies":  25000,
		"icon":      map[string]any{"id": 28000000},
	}
}

func playerRecord() map[string]any {
	return map[string]any{
		"tag":                                  "#2PP",
		"name":                                 "Frank",
		"nameColor":                            "0xff1ba5f5",
		"icon":                                 map[string]any{"id": 28000003},
		"trophies":                             51234,
		"highestTrophies":                      52000,
		"expLevel":                             250,
		"expPoints":                            312345,
		"isQualifiedFromChampionshipChallenge": false,
		"soloVictories":                        1200,
		"duoVictories":                         800,
		"3vs3Victories":                        15000,
		"bestRoboRumbleTime":                   10,
		"bestTimeAsBigBrawler":                 0,
		"club":                                 map[string]any{"tag": "#777", "name": "Lucky"},
		"brawlers": []any{
			map[string]any{
				"id":              16000000,
				"name":            "SHELLY",
				"power":           11,
				"rank":            30,
				"trophies":        1000,
				"highestTrophies": 1250,
				"gears":           []any{map[string]any{"id": 62000000, "name": "SPEED", "level": 3}},
				"starPowers":      []any{map[string]any{"id": 23000076, "name": "SHELL SHOCK"}},
				"gadgets":         []any{},
			},
		},
	}
}

func TestPlayerFromRecord(t *testing.T) {
	d, err := PlayerFromRecord(playerRecord())
	require.NoError(t, err)

	assert.Equal(t, "#2PP", d.Tag)
	assert.Equal(t, int64(28000003), d.IconID)
	require.NotNil(t, d.TrioVictories)
	assert.Equal(t, int64(15000), *d.TrioVictories)
	require.NotNil(t, d.BestTimeAsBigBrawler)
	assert.Equal(t, int64(0), *d.BestTimeAsBigBrawler)
	require.NotNil(t, d.IsQualifiedFromChampionshipChallenge)
	assert.False(t, *d.IsQualifiedFromChampionshipChallenge)
	assert.Nil(t, d.Role)
	assert.Equal(t, &PlayerClubDTO{Tag: "#777", Name: "Lucky"}, d.Club)

	require.Len(t, d.Brawlers, 1)
	pb := d.Brawlers[0]
	assert.Equal(t, int64(11), pb.Power)
	assert.Equal(t, []GearDTO{{ExtID: 62000000, Name: "SPEED", Level: 3}}, pb.Gears)
	assert.Empty(t, pb.Accessories)
}

func TestPlayerRoundTrip(t *testing.T) {
	d, err := PlayerFromRecord(playerRecord())
	require.NoError(t, err)

	again, err := PlayerFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestPlayerOptionalFieldsOmitted(t *testing.T) {
	rec := memberRecord("#9Q", "member")
	delete(rec, "role")

	d, err := PlayerFromRecord(rec)
	require.NoError(t, err)
	assert.Nil(t, d.HighestTrophies)
	assert.Nil(t, d.ExpLevel)
	assert.Nil(t, d.Club)
	assert.Nil(t, d.Brawlers)

	out := d.ToRecord()
	for _, key := range []string{"highestTrophies", "expLevel", "3vs3Victories", "role", "club", "brawlers", "isQualifiedFromChampionshipChallenge"} {
		assert.NotContains(t, out, key)
	}
}

func TestPlayerEmptyClubObject(t *testing.T) {
	rec := playerRecord()
	rec["club"] = map[string]any{}

	d, err := PlayerFromRecord(rec)
	require.NoError(t, err)
	assert.Nil(t, d.Club)
}

func TestPlayerEmptyRosterIsNotAbsent(t *testing.T) {
	rec := playerRecord()
	rec["brawlers"] = []any{}

	d, err := PlayerFromRecord(rec)
	require.NoError(t, err)
	assert.NotNil(t, d.Brawlers)
	assert.Empty(t, d.Brawlers)
}

func TestPlayerFromRecord_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(rec map[string]any)
		field    string
		wantCode int
	}{
		{"missing tag", func(rec map[string]any) { delete(rec, "tag") }, "tag", http.StatusBadRequest},
		{"empty name", func(rec map[string]any) { rec["name"] = "" }, "name", http.StatusBadRequest},
		{"missing name color", func(rec map[string]any) { delete(rec, "nameColor") }, "nameColor", http.StatusBadRequest},
		{"missing trophies", func(rec map[string]any) { delete(rec, "trophies") }, "trophies", http.StatusBadRequest},
		{"missing icon", func(rec map[string]any) { delete(rec, "icon") }, "icon", http.StatusBadRequest},
		{"icon without id", func(rec map[string]any) { rec["icon"] = map[string]any{} }, "icon", http.StatusUnprocessableEntity},
		{"optional wrong type", func(rec map[string]any) { rec["expLevel"] = "high" }, "expLevel", http.StatusBadRequest},
		{"bool wrong type", func(rec map[string]any) { rec["isQualifiedFromChampionshipChallenge"] = 1 }, "isQualifiedFromChampionshipChallenge", http.StatusBadRequest},
		{"role wrong type", func(rec map[string]any) { rec["role"] = 1 }, "role", http.StatusBadRequest},
		{"club without tag", func(rec map[string]any) { rec["club"] = map[string]any{"name": "Lucky"} }, "club", http.StatusUnprocessableEntity},
		{"brawlers not list", func(rec map[string]any) { rec["brawlers"] = map[string]any{} }, "brawlers", http.StatusBadRequest},
		{
			"brawler without power",
			func(rec map[string]any) {
				delete(rec["brawlers"].([]any)[0].(map[string]any), "power")
			},
			"brawlers",
			http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := playerRecord()
			tt.mutate(rec)

			_, err := PlayerFromRecord(rec)
			var invalid *InvalidDTOError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "player", invalid.Entity)
			assert.Equal(t, tt.field, invalid.Field)
			assert.Equal(t, tt.wantCode, invalid.Code)
		})
	}
}

func TestPlayerFromEntity(t *testing.T) {
	trophies := int64(52000)
	role := "president"
	e := domain.Player{
		Tag:             "#2PP",
		Name:            "Frank",
		NameColor:       "0xff1ba5f5",
		IconID:          28000003,
		Trophies:        51234,
		HighestTrophies: &trophies,
		Club:            &domain.ClubRef{ID: 3, Tag: "#777", Name: "Lucky"},
		ClubRole:        &role,
		Brawlers: []domain.PlayerBrawler{{
			Brawler:         domain.Brawler{ExtID: 16000000, Name: "SHELLY"},
			Power:           11,
			Rank:            30,
			Trophies:        1000,
			HighestTrophies: 1250,
			Gears:           []domain.Gear{{ExtID: 62000000, Name: "SPEED", Level: 3}},
		}},
	}

	d := PlayerFromEntity(e)
	assert.Equal(t, &role, d.Role)
	assert.Equal(t, &PlayerClubDTO{Tag: "#777", Name: "Lucky"}, d.Club)
	require.Len(t, d.Brawlers, 1)
	assert.Equal(t, "SHELLY", d.Brawlers[0].Name)
	assert.Equal(t, []GearDTO{{ExtID: 62000000, Name: "SPEED", Level: 3}}, d.Brawlers[0].Gears)
	assert.NotNil(t, d.Brawlers[0].Accessories)

	again, err := PlayerFromRecord(d.ToRecord())
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

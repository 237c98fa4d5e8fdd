package database

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	assert.Equal(t,
		"brawlstats.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate",
		buildDSN("brawlstats.db"))
	assert.Equal(t,
		"file:test?mode=memory&cache=shared&_foreign_keys=on&_busy_timeout=5000&_txlock=immediate",
		buildDSN("file:test?mode=memory&cache=shared"))
}

func TestOpenRunsMigrations(t *testing.T) {
	db, err := Open("file:database_test?mode=memory&cache=shared", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{
		"brawlers", "accessories", "gears", "star_powers", "brawler_accessories", "brawler_star_powers",
		"events", "event_maps", "event_modes", "event_modifiers", "event_event_modifiers",
		"event_rotations", "event_rotation_slots", "clubs", "players", "player_brawlers",
		"player_brawler_accessories", "player_brawler_gears", "player_brawler_star_powers",
	} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

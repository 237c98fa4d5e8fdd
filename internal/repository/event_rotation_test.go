package repository

import (
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rotation(slot int64, eventID int64, modifiers ...string) dto.EventRotationDTO {
	return dto.EventRotationDTO{
		StartTime: time.Date(2025, 12, 25, 13, 30, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 12, 26, 13, 30, 0, 0, time.UTC),
		Event: dto.EventDTO{
			ExtID:     eventID,
			Map:       "Hard Rock Mine",
			Mode:      "gemGrab",
			Modifiers: modifiers,
		},
		Slot: slot,
	}
}

func modifierNames(ms []domain.EventModifier) []string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.Name)
	}
	return names
}

func TestEventRotationCreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	rot, err := r.rotations.CreateOrUpdate(ctx, rotation(1, 15000001, "energyDrink"))
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 25, 13, 30, 0, 0, time.UTC), rot.StartTime)
	assert.Equal(t, time.Date(2025, 12, 26, 13, 30, 0, 0, time.UTC), rot.EndTime)
	assert.Equal(t, int64(1), rot.Slot.Position)
	assert.Equal(t, int64(15000001), rot.Event.ExtID)
	assert.Equal(t, "Hard Rock Mine", rot.Event.Map.Name)
	assert.Equal(t, "gemGrab", rot.Event.Mode.Name)
	assert.Equal(t, []string{"energyDrink"}, modifierNames(rot.Event.Modifiers))

	found, err := r.rotations.FindByWindow(ctx, rot.StartTime, rot.EndTime, 1)
	require.NoError(t, err)
	assert.Equal(t, rot, found)
}

func TestEventRotationCreateOrUpdate_SameWindowAndSlotIsOneRow(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	first, err := r.rotations.CreateOrUpdate(ctx, rotation(1, 15000001))
	require.NoError(t, err)

	// the same window can be repointed at another event
	second, err := r.rotations.CreateOrUpdate(ctx, rotation(1, 15000002))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, int64(15000002), second.Event.ExtID)
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM event_rotations`))
	assert.Equal(t, 2, r.count(t, `SELECT COUNT(*) FROM events`))
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM event_maps`))

	other, err := r.rotations.CreateOrUpdate(ctx, rotation(2, 15000002))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, 2, r.count(t, `SELECT COUNT(*) FROM event_rotation_slots`))
}

func TestEventRotationCreateOrUpdate_AcceptsNonUTCTimes(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	d := rotation(3, 15000003)
	paris := time.FixedZone("CET", 3600)
	d.StartTime = d.StartTime.In(paris)
	d.EndTime = d.EndTime.In(paris)

	first, err := r.rotations.CreateOrUpdate(ctx, d)
	require.NoError(t, err)
	second, err := r.rotations.CreateOrUpdate(ctx, rotation(3, 15000003))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, time.UTC, first.StartTime.Location())
}

func TestEventCreateOrUpdate_ReconcilesModifiers(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	d := dto.EventDTO{ExtID: 15000010, Map: "Snake Prairie", Mode: "bounty", Modifiers: []string{"a", "b", "c"}}
	first, err := r.events.CreateOrUpdate(ctx, d)
	require.NoError(t, err)

	d.Modifiers = []string{"b", "c", "d"}
	d.Map = "Shooting Star"
	second, err := r.events.CreateOrUpdate(ctx, d)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Shooting Star", second.Map.Name)
	assert.ElementsMatch(t, []string{"b", "c", "d"}, modifierNames(second.Modifiers))

	kept, err := r.modifiers.Find(ctx, ByName("a"))
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, 2, r.count(t, `SELECT COUNT(*) FROM event_maps`))
}

func TestEventRotationFind(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	rot, err := r.rotations.CreateOrUpdate(ctx, rotation(1, 15000001))
	require.NoError(t, err)

	byID, err := r.rotations.Find(ctx, ByID(rot.ID))
	require.NoError(t, err)
	assert.Equal(t, rot, byID)

	missing, err := r.rotations.FindByWindow(ctx, rot.StartTime, rot.EndTime, 9)
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = r.rotations.FindByWindow(ctx, rot.StartTime.Add(time.Hour), rot.EndTime, 1)
	require.NoError(t, err)
	assert.Nil(t, missing)

	slot, err := r.slots.Find(ctx, ByPosition(1))
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, rot.Slot.ID, slot.ID)
}

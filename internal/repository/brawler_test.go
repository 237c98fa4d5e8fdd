package repository

import (
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shelly() dto.BrawlerDTO {
	return dto.BrawlerDTO{
		ExtID:       16000000,
		Name:        "SHELLY",
		Accessories: []dto.AccessoryDTO{{ExtID: 1, Name: "Shell Shock"}},
		StarPowers:  []dto.StarPowerDTO{{ExtID: 2, Name: "Shell Shock"}},
	}
}

func accessoryExtIDs(as []domain.Accessory) []int64 {
	ids := make([]int64, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ExtID)
	}
	return ids
}

func TestBrawlerCreateOrUpdate(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	b, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, int64(16000000), b.ExtID)
	assert.Equal(t, "SHELLY", b.Name)
	require.Len(t, b.Accessories, 1)
	assert.Equal(t, "Shell Shock", b.Accessories[0].Name)
	require.Len(t, b.StarPowers, 1)
	assert.Equal(t, "Shell Shock", b.StarPowers[0].Name)

	found, err := r.brawlers.Find(ctx, ByExtID(16000000))
	require.NoError(t, err)
	assert.Equal(t, b, found)
}

func TestBrawlerCreateOrUpdate_Idempotent(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	first, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)
	second, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Accessories[0].ID, second.Accessories[0].ID)
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM brawlers`))
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM accessories`))
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM star_powers`))
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM brawler_accessories`))
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM brawler_star_powers`))
}

func TestBrawlerCreateOrUpdate_UpdatesSameRow(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	first, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)

	renamed := shelly()
	renamed.Name = "SHELLY II"
	renamed.Accessories[0].Name = "Shell Shocker"
	second, err := r.brawlers.CreateOrUpdate(ctx, renamed)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "SHELLY II", second.Name)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	require.Len(t, second.Accessories, 1)
	assert.Equal(t, first.Accessories[0].ID, second.Accessories[0].ID)
	assert.Equal(t, "Shell Shocker", second.Accessories[0].Name)
}

func TestBrawlerCreateOrUpdate_ReconcilesAccessories(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	d := dto.BrawlerDTO{
		ExtID: 16000001,
		Name:  "COLT",
		Accessories: []dto.AccessoryDTO{
			{ExtID: 10, Name: "A"},
			{ExtID: 11, Name: "B"},
			{ExtID: 12, Name: "C"},
		},
		StarPowers: []dto.StarPowerDTO{},
	}
	_, err := r.brawlers.CreateOrUpdate(ctx, d)
	require.NoError(t, err)

	// D already exists on its own before the brawler picks it up
	existingD, err := r.accessories.CreateOrUpdate(ctx, dto.AccessoryDTO{ExtID: 13, Name: "D"})
	require.NoError(t, err)

	d.Accessories = []dto.AccessoryDTO{
		{ExtID: 11, Name: "B"},
		{ExtID: 12, Name: "C"},
		{ExtID: 13, Name: "D"},
	}
	b, err := r.brawlers.CreateOrUpdate(ctx, d)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int64{11, 12, 13}, accessoryExtIDs(b.Accessories))
	for _, a := range b.Accessories {
		if a.ExtID == 13 {
			assert.Equal(t, existingD.ID, a.ID)
		}
	}

	detached, err := r.accessories.Find(ctx, ByExtID(10))
	require.NoError(t, err)
	require.NotNil(t, detached, "detached accessories are kept")
	assert.Equal(t, 4, r.count(t, `SELECT COUNT(*) FROM accessories`))
	assert.Equal(t, 3, r.count(t, `SELECT COUNT(*) FROM brawler_accessories`))
}

func TestBrawlerCreateOrUpdate_EmptyListsDetachEverything(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	_, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)

	bare := shelly()
	bare.Accessories = nil
	bare.StarPowers = nil
	b, err := r.brawlers.CreateOrUpdate(ctx, bare)
	require.NoError(t, err)

	assert.Empty(t, b.Accessories)
	assert.Empty(t, b.StarPowers)
	assert.Equal(t, 1, r.count(t, `SELECT COUNT(*) FROM accessories`))
}

func TestBrawlerCreateOrUpdate_RollsBackCreate(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	r.exec(t, `CREATE TRIGGER reject_star_power BEFORE INSERT ON star_powers
		WHEN NEW.ext_id = 999
		BEGIN SELECT RAISE(ABORT, 'star power rejected'); END`)

	d := shelly()
	d.StarPowers = []dto.StarPowerDTO{{ExtID: 999, Name: "Broken"}}
	_, err := r.brawlers.CreateOrUpdate(ctx, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "star power rejected")

	b, err := r.brawlers.Find(ctx, ByExtID(16000000))
	require.NoError(t, err)
	assert.Nil(t, b)

	a, err := r.accessories.Find(ctx, ByExtID(1))
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestBrawlerCreateOrUpdate_RollsBackUpdate(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)

	before, err := r.brawlers.CreateOrUpdate(ctx, shelly())
	require.NoError(t, err)

	r.exec(t, `CREATE TRIGGER reject_detach BEFORE DELETE ON brawler_accessories
		BEGIN SELECT RAISE(ABORT, 'detach rejected'); END`)

	d := shelly()
	d.Name = "RENAMED"
	d.Accessories = []dto.AccessoryDTO{{ExtID: 5, Name: "Replacement"}}
	_, err = r.brawlers.CreateOrUpdate(ctx, d)
	require.Error(t, err)

	after, err := r.brawlers.Find(ctx, ByExtID(16000000))
	require.NoError(t, err)
	assert.Equal(t, before, after)

	replacement, err := r.accessories.Find(ctx, ByExtID(5))
	require.NoError(t, err)
	assert.Nil(t, replacement)
}

package repository

import (
	"brawlstats-sync/internal/db"
	"brawlstats-sync/internal/domain"
)

func accessoryFromRow(r db.Accessory) domain.Accessory {
	return domain.Accessory{ID: r.ID, ExtID: r.ExtID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func gearFromRow(r db.Gear) domain.Gear {
	return domain.Gear{ID: r.ID, ExtID: r.ExtID, Name: r.Name, Level: r.Level, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func starPowerFromRow(r db.StarPower) domain.StarPower {
	return domain.StarPower{ID: r.ID, ExtID: r.ExtID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func brawlerFromRow(r db.Brawler) domain.Brawler {
	return domain.Brawler{ID: r.ID, ExtID: r.ExtID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func eventMapFromRow(r db.EventMap) domain.EventMap {
	return domain.EventMap{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func eventModeFromRow(r db.EventMode) domain.EventMode {
	return domain.EventMode{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func eventModifierFromRow(r db.EventModifier) domain.EventModifier {
	return domain.EventModifier{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func slotFromRow(r db.EventRotationSlot) domain.EventRotationSlot {
	return domain.EventRotationSlot{ID: r.ID, Position: r.Position, CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt}
}

func clubFromRow(r db.Club) domain.Club {
	return domain.Club{
		ID:               r.ID,
		Tag:              r.Tag,
		Name:             r.Name,
		Description:      r.Description,
		Type:             r.Type,
		BadgeID:          r.BadgeID,
		RequiredTrophies: r.RequiredTrophies,
		Trophies:         r.Trophies,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// playerFromRow maps the player's own columns. Club and Brawlers are left
// for the caller to resolve.
func playerFromRow(r db.Player) domain.Player {
	return domain.Player{
		ID:                                   r.ID,
		Tag:                                  r.Tag,
		Name:                                 r.Name,
		NameColor:                            r.NameColor,
		IconID:                               r.IconID,
		Trophies:                             r.Trophies,
		HighestTrophies:                      intPtr(r.HighestTrophies),
		ExpLevel:                             intPtr(r.ExpLevel),
		ExpPoints:                            intPtr(r.ExpPoints),
		IsQualifiedFromChampionshipChallenge: boolPtr(r.IsQualifiedFromChampionshipChallenge),
		SoloVictories:                        intPtr(r.SoloVictories),
		DuoVictories:                         intPtr(r.DuoVictories),
		TrioVictories:                        intPtr(r.TrioVictories),
		BestRoboRumbleTime:                   intPtr(r.BestRoboRumbleTime),
		BestTimeAsBigBrawler:                 intPtr(r.BestTimeAsBigBrawler),
		ClubRole:                             strPtr(r.ClubRole),
		CreatedAt:                            r.CreatedAt,
		UpdatedAt:                            r.UpdatedAt,
	}
}

func mapRows[R, E any](rows []R, fn func(R) E) []E {
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		out = append(out, fn(r))
	}
	return out
}

package dto

import "brawlstats-sync/internal/domain"

type ClubDTO struct {
	Tag              string
	Name             string
	Description      string
	Type             string
	BadgeID          int64
	RequiredTrophies int64
	Trophies         int64
	Members          []PlayerDTO
}

func ClubFromRecord(rec map[string]any) (ClubDTO, error) {
	f := read("club", rec)
	d := ClubDTO{
		Tag:              f.str("tag", "required"),
		Name:             f.str("name", "required"),
		Description:      f.str("description", "required"),
		Type:             f.str("type", "required,oneof=social competitive casual"),
		BadgeID:          f.integer("badgeId"),
		RequiredTrophies: f.integer("requiredTrophies"),
		Trophies:         f.integer("trophies"),
	}
	members := f.list("members")
	if f.err != nil {
		return ClubDTO{}, f.err
	}

	var err error
	d.Members, err = ClubMembersFromList(members)
	f.nested("members", err)
	if f.err != nil {
		return ClubDTO{}, f.err
	}
	return d, nil
}

func ClubFromEntity(e domain.Club) ClubDTO {
	d := ClubDTO{
		Tag:              e.Tag,
		Name:             e.Name,
		Description:      e.Description,
		Type:             e.Type,
		BadgeID:          e.BadgeID,
		RequiredTrophies: e.RequiredTrophies,
		Trophies:         e.Trophies,
		Members:          make([]PlayerDTO, 0, len(e.Members)),
	}
	for _, m := range e.Members {
		d.Members = append(d.Members, ClubMemberFromEntity(m))
	}
	return d
}

// ClubMemberFromEntity keeps only the fields a club lists for its members.
func ClubMemberFromEntity(e domain.Player) PlayerDTO {
	return PlayerDTO{
		Tag:       e.Tag,
		Name:      e.Name,
		NameColor: e.NameColor,
		IconID:    e.IconID,
		Trophies:  e.Trophies,
		Role:      e.ClubRole,
	}
}

func (d ClubDTO) ToRecord() map[string]any {
	return map[string]any{
		"tag":              d.Tag,
		"name":             d.Name,
		"description":      d.Description,
		"type":             d.Type,
		"badgeId":          d.BadgeID,
		"requiredTrophies": d.RequiredTrophies,
		"trophies":         d.Trophies,
		"members":          toRecords(d.Members),
	}
}

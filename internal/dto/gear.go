package dto

import "brawlstats-sync/internal/domain"

type GearDTO struct {
	ExtID int64
	Name  string
	Level int64
}

func GearFromRecord(rec map[string]any) (GearDTO, error) {
	f := read("gear", rec)
	d := GearDTO{
		ExtID: f.integer("id"),
		Name:  f.str("name", "required"),
		Level: f.integer("level"),
	}
	if f.err != nil {
		return GearDTO{}, f.err
	}
	return d, nil
}

func GearsFromList(items []any) ([]GearDTO, error) {
	return fromList("gear", items, GearFromRecord, func(d GearDTO) string { return extKey(d.ExtID) })
}

func GearFromEntity(e domain.Gear) GearDTO {
	return GearDTO{ExtID: e.ExtID, Name: e.Name, Level: e.Level}
}

func (d GearDTO) ToRecord() map[string]any {
	return map[string]any{
		"id":    d.ExtID,
		"name":  d.Name,
		"level": d.Level,
	}
}

package dto

import "brawlstats-sync/internal/domain"

type StarPowerDTO struct {
	ExtID int64
	Name  string
}

func StarPowerFromRecord(rec map[string]any) (StarPowerDTO, error) {
	f := read("star power", rec)
	d := StarPowerDTO{
		ExtID: f.integer("id"),
		Name:  f.str("name", "required"),
	}
	if f.err != nil {
		return StarPowerDTO{}, f.err
	}
	return d, nil
}

func StarPowersFromList(items []any) ([]StarPowerDTO, error) {
	return fromList("star power", items, StarPowerFromRecord, func(d StarPowerDTO) string { return extKey(d.ExtID) })
}

func StarPowerFromEntity(e domain.StarPower) StarPowerDTO {
	return StarPowerDTO{ExtID: e.ExtID, Name: e.Name}
}

func (d StarPowerDTO) ToRecord() map[string]any {
	return map[string]any{
		"id":   d.ExtID,
		"name": d.Name,
	}
}

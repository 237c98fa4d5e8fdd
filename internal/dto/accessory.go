package dto

import "brawlstats-sync/internal/domain"

// AccessoryDTO is a brawler gadget. Upstream calls accessories "gadgets".
type AccessoryDTO struct {
	ExtID int64
	Name  string
}

func AccessoryFromRecord(rec map[string]any) (AccessoryDTO, error) {
	f := read("accessory", rec)
	d := AccessoryDTO{
		ExtID: f.integer("id"),
		Name:  f.str("name", "required"),
	}
	if f.err != nil {
		return AccessoryDTO{}, f.err
	}
	return d, nil
}

func AccessoriesFromList(items []any) ([]AccessoryDTO, error) {
	return fromList("accessory", items, AccessoryFromRecord, func(d AccessoryDTO) string { return extKey(d.ExtID) })
}

func AccessoryFromEntity(e domain.Accessory) AccessoryDTO {
	return AccessoryDTO{ExtID: e.ExtID, Name: e.Name}
}

func (d AccessoryDTO) ToRecord() map[string]any {
	return map[string]any{
		"id":   d.ExtID,
		"name": d.Name,
	}
}

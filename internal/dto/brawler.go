package dto

import "brawlstats-sync/internal/domain"

type BrawlerDTO struct {
	ExtID       int64
	Name        string
	Accessories []AccessoryDTO
	StarPowers  []StarPowerDTO
}

func BrawlerFromRecord(rec map[string]any) (BrawlerDTO, error) {
	f := read("brawler", rec)
	d := BrawlerDTO{
		ExtID: f.integer("id"),
		Name:  f.str("name", "required"),
	}

	gadgets := f.list("gadgets")
	starPowers := f.list("starPowers")
	if f.err != nil {
		return BrawlerDTO{}, f.err
	}

	var err error
	d.Accessories, err = AccessoriesFromList(gadgets)
	f.nested("gadgets", err)
	d.StarPowers, err = StarPowersFromList(starPowers)
	f.nested("starPowers", err)
	if f.err != nil {
		return BrawlerDTO{}, f.err
	}
	return d, nil
}

func BrawlersFromList(items []any) ([]BrawlerDTO, error) {
	return fromList("brawler", items, BrawlerFromRecord, func(d BrawlerDTO) string { return extKey(d.ExtID) })
}

func BrawlerFromEntity(e domain.Brawler) BrawlerDTO {
	d := BrawlerDTO{
		ExtID:       e.ExtID,
		Name:        e.Name,
		Accessories: make([]AccessoryDTO, 0, len(e.Accessories)),
		StarPowers:  make([]StarPowerDTO, 0, len(e.StarPowers)),
	}
	for _, a := range e.Accessories {
		d.Accessories = append(d.Accessories, AccessoryFromEntity(a))
	}
	for _, sp := range e.StarPowers {
		d.StarPowers = append(d.StarPowers, StarPowerFromEntity(sp))
	}
	return d
}

func (d BrawlerDTO) ToRecord() map[string]any {
	return map[string]any{
		"id":         d.ExtID,
		"name":       d.Name,
		"gadgets":    toRecords(d.Accessories),
		"starPowers": toRecords(d.StarPowers),
	}
}

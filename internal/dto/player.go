package dto

import "brawlstats-sync/internal/domain"

// PlayerDTO covers both a full player profile and a club member entry. A
// member entry carries only the basic fields plus Role. Nil pointers mean
// the key was absent upstream.
type PlayerDTO struct {
	Tag       string
	Name      string
	NameColor string
	IconID    int64
	Trophies  int64
	Role      *string

	HighestTrophies                      *int64
	ExpLevel                             *int64
	ExpPoints                            *int64
	IsQualifiedFromChampionshipChallenge *bool
	SoloVictories                        *int64
	DuoVictories                         *int64
	TrioVictories                        *int64
	BestRoboRumbleTime                   *int64
	BestTimeAsBigBrawler                 *int64

	Club *PlayerClubDTO

	// nil when upstream sent no roster; an empty slice is an empty roster
	Brawlers []PlayerBrawlerDTO
}

type PlayerClubDTO struct {
	Tag  string
	Name string
}

type PlayerBrawlerDTO struct {
	ExtID           int64
	Name            string
	Power           int64
	Rank            int64
	Trophies        int64
	HighestTrophies int64
	Accessories     []AccessoryDTO
	Gears           []GearDTO
	StarPowers      []StarPowerDTO
}

func readPlayerBase(f *fields) PlayerDTO {
	d := PlayerDTO{
		Tag:       f.str("tag", "required"),
		Name:      f.str("name", "required"),
		NameColor: f.str("nameColor", "required"),
		Trophies:  f.integer("trophies"),
	}
	icon := f.object("icon")
	if f.err != nil {
		return d
	}
	iconFields := read("icon", icon)
	d.IconID = iconFields.integer("id")
	f.nested("icon", iconFields.err)
	return d
}

// ClubMemberFromRecord builds a member entry as listed by a club.
func ClubMemberFromRecord(rec map[string]any) (PlayerDTO, error) {
	f := read("club member", rec)
	d := readPlayerBase(f)
	role := f.str("role", "required")
	if f.err != nil {
		return PlayerDTO{}, f.err
	}
	d.Role = &role
	return d, nil
}

func ClubMembersFromList(items []any) ([]PlayerDTO, error) {
	return fromList("club member", items, ClubMemberFromRecord, func(d PlayerDTO) string { return d.Tag })
}

// PlayerFromRecord builds a full player profile.
func PlayerFromRecord(rec map[string]any) (PlayerDTO, error) {
	f := read("player", rec)
	d := readPlayerBase(f)
	d.Role = f.optStr("role")
	d.HighestTrophies = f.optInteger("highestTrophies")
	d.ExpLevel = f.optInteger("expLevel")
	d.ExpPoints = f.optInteger("expPoints")
	d.IsQualifiedFromChampionshipChallenge = f.optBool("isQualifiedFromChampionshipChallenge")
	d.SoloVictories = f.optInteger("soloVictories")
	d.DuoVictories = f.optInteger("duoVictories")
	d.TrioVictories = f.optInteger("3vs3Victories")
	d.BestRoboRumbleTime = f.optInteger("bestRoboRumbleTime")
	d.BestTimeAsBigBrawler = f.optInteger("bestTimeAsBigBrawler")
	club := f.optObject("club")
	brawlers, hasBrawlers := f.optList("brawlers")
	if f.err != nil {
		return PlayerDTO{}, f.err
	}

	// clubless players come back with "club": {}
	if len(club) > 0 {
		cf := read("club", club)
		c := PlayerClubDTO{
			Tag:  cf.str("tag", "required"),
			Name: cf.str("name", "required"),
		}
		f.nested("club", cf.err)
		d.Club = &c
	}

	if hasBrawlers {
		var err error
		d.Brawlers, err = PlayerBrawlersFromList(brawlers)
		f.nested("brawlers", err)
	}

	if f.err != nil {
		return PlayerDTO{}, f.err
	}
	return d, nil
}

func PlayerBrawlerFromRecord(rec map[string]any) (PlayerBrawlerDTO, error) {
	f := read("player brawler", rec)
	d := PlayerBrawlerDTO{
		ExtID:           f.integer("id"),
		Name:            f.str("name", "required"),
		Power:           f.integer("power"),
		Rank:            f.integer("rank"),
		Trophies:        f.integer("trophies"),
		HighestTrophies: f.integer("highestTrophies"),
	}
	gadgets, _ := f.optList("gadgets")
	gears, _ := f.optList("gears")
	starPowers, _ := f.optList("starPowers")
	if f.err != nil {
		return PlayerBrawlerDTO{}, f.err
	}

	var err error
	d.Accessories, err = AccessoriesFromList(gadgets)
	f.nested("gadgets", err)
	d.Gears, err = GearsFromList(gears)
	f.nested("gears", err)
	d.StarPowers, err = StarPowersFromList(starPowers)
	f.nested("starPowers", err)
	if f.err != nil {
		return PlayerBrawlerDTO{}, f.err
	}
	return d, nil
}

func PlayerBrawlersFromList(items []any) ([]PlayerBrawlerDTO, error) {
	return fromList("player brawler", items, PlayerBrawlerFromRecord, func(d PlayerBrawlerDTO) string { return extKey(d.ExtID) })
}

func PlayerFromEntity(e domain.Player) PlayerDTO {
	d := PlayerDTO{
		Tag:                                  e.Tag,
		Name:                                 e.Name,
		NameColor:                            e.NameColor,
		IconID:                               e.IconID,
		Trophies:                             e.Trophies,
		Role:                                 e.ClubRole,
		HighestTrophies:                      e.HighestTrophies,
		ExpLevel:                             e.ExpLevel,
		ExpPoints:                            e.ExpPoints,
		IsQualifiedFromChampionshipChallenge: e.IsQualifiedFromChampionshipChallenge,
		SoloVictories:                        e.SoloVictories,
		DuoVictories:                         e.DuoVictories,
		TrioVictories:                        e.TrioVictories,
		BestRoboRumbleTime:                   e.BestRoboRumbleTime,
		BestTimeAsBigBrawler:                 e.BestTimeAsBigBrawler,
	}
	if e.Club != nil {
		d.Club = &PlayerClubDTO{Tag: e.Club.Tag, Name: e.Club.Name}
	}
	if e.Brawlers != nil {
		d.Brawlers = make([]PlayerBrawlerDTO, 0, len(e.Brawlers))
		for _, pb := range e.Brawlers {
			d.Brawlers = append(d.Brawlers, PlayerBrawlerFromEntity(pb))
		}
	}
	return d
}

func PlayerBrawlerFromEntity(e domain.PlayerBrawler) PlayerBrawlerDTO {
	d := PlayerBrawlerDTO{
		ExtID:           e.Brawler.ExtID,
		Name:            e.Brawler.Name,
		Power:           e.Power,
		Rank:            e.Rank,
		Trophies:        e.Trophies,
		HighestTrophies: e.HighestTrophies,
		Accessories:     make([]AccessoryDTO, 0, len(e.Accessories)),
		Gears:           make([]GearDTO, 0, len(e.Gears)),
		StarPowers:      make([]StarPowerDTO, 0, len(e.StarPowers)),
	}
	for _, a := range e.Accessories {
		d.Accessories = append(d.Accessories, AccessoryFromEntity(a))
	}
	for _, g := range e.Gears {
		d.Gears = append(d.Gears, GearFromEntity(g))
	}
	for _, sp := range e.StarPowers {
		d.StarPowers = append(d.StarPowers, StarPowerFromEntity(sp))
	}
	return d
}

// ToRecord omits every optional key that is unset.
func (d PlayerDTO) ToRecord() map[string]any {
	rec := map[string]any{
		"tag":       d.Tag,
		"name":      d.Name,
		"nameColor": d.NameColor,
		"icon":      map[string]any{"id": d.IconID},
		"trophies":  d.Trophies,
	}
	putInt := func(key string, v *int64) {
		if v != nil {
			rec[key] = *v
		}
	}
	putInt("highestTrophies", d.HighestTrophies)
	putInt("expLevel", d.ExpLevel)
	putInt("expPoints", d.ExpPoints)
	putInt("soloVictories", d.SoloVictories)
	putInt("duoVictories", d.DuoVictories)
	putInt("3vs3Victories", d.TrioVictories)
	putInt("bestRoboRumbleTime", d.BestRoboRumbleTime)
	putInt("bestTimeAsBigBrawler", d.BestTimeAsBigBrawler)
	if d.IsQualifiedFromChampionshipChallenge != nil {
		rec["isQualifiedFromChampionshipChallenge"] = *d.IsQualifiedFromChampionshipChallenge
	}
	if d.Role != nil {
		rec["role"] = *d.Role
	}
	if d.Club != nil {
		rec["club"] = map[string]any{"tag": d.Club.Tag, "name": d.Club.Name}
	}
	if d.Brawlers != nil {
		rec["brawlers"] = toRecords(d.Brawlers)
	}
	return rec
}

func (d PlayerBrawlerDTO) ToRecord() map[string]any {
	return map[string]any{
		"id":              d.ExtID,
		"name":            d.Name,
		"power":           d.Power,
		"rank":            d.Rank,
		"trophies":        d.Trophies,
		"highestTrophies": d.HighestTrophies,
		"gadgets":         toRecords(d.Accessories),
		"gears":           toRecords(d.Gears),
		"starPowers":      toRecords(d.StarPowers),
	}
}

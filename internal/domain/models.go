package domain

import (
	"time"
)

type Accessory struct {
	ID        int64
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Gear struct {
	ID        int64
	ExtID     int64
	Name      string
	Level     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StarPower struct {
	ID        int64
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Brawler struct {
	ID          int64
	ExtID       int64
	Name        string
	Accessories []Accessory
	StarPowers  []StarPower
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EventMap struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventMode struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventModifier struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Event struct {
	ID        int64
	ExtID     int64 // upstream event id
	Map       EventMap
	Mode      EventMode
	Modifiers []EventModifier
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventRotationSlot struct {
	ID        int64
	Position  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventRotation struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Event     Event
	Slot      EventRotationSlot
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Club struct {
	ID               int64
	Tag              string
	Name             string
	Description      string
	Type             string // "social", "competitive" or "casual"; empty for clubs only seen through a player
	BadgeID          int64
	RequiredTrophies int64
	Trophies         int64
	Members          []Player
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsStub reports whether the club was only created from a player profile
// and has never been synced itself.
func (c Club) IsStub() bool {
	return c.Type == ""
}

// ClubRef is the club a player belongs to, without its members.
type ClubRef struct {
	ID   int64
	Tag  string
	Name string
}

type Player struct {
	ID        int64
	Tag       string
	Name      string
	NameColor string
	IconID    int64
	Trophies  int64

	// nil when upstream never reported the value
	HighestTrophies                      *int64
	ExpLevel                             *int64
	ExpPoints                            *int64
	IsQualifiedFromChampionshipChallenge *bool
	SoloVictories                        *int64
	DuoVictories                         *int64
	TrioVictories                        *int64
	BestRoboRumbleTime                   *int64
	BestTimeAsBigBrawler                 *int64

	Club     *ClubRef
	ClubRole *string
	Brawlers []PlayerBrawler

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PlayerBrawler struct {
	ID              int64
	Brawler         Brawler
	Power           int64
	Rank            int64
	Trophies        int64
	HighestTrophies int64
	Accessories     []Accessory
	Gears           []Gear
	StarPowers      []StarPower
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package db

import (
	"database/sql"
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
	ID        int64
	ExtID     int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
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
	ExtID     int64
	MapID     int64
	ModeID    int64
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
	EventID   int64
	SlotID    int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Club struct {
	ID               int64
	Tag              string
	Name             string
	Description      string
	Type             string
	BadgeID          int64
	RequiredTrophies int64
	Trophies         int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Player struct {
	ID                                   int64
	Tag                                  string
	Name                                 string
	NameColor                            string
	IconID                               int64
	Trophies                             int64
	HighestTrophies                      sql.NullInt64
	ExpLevel                             sql.NullInt64
	ExpPoints                            sql.NullInt64
	IsQualifiedFromChampionshipChallenge sql.NullBool
	SoloVictories                        sql.NullInt64
	DuoVictories                         sql.NullInt64
	TrioVictories                        sql.NullInt64
	BestRoboRumbleTime                   sql.NullInt64
	BestTimeAsBigBrawler                 sql.NullInt64
	ClubID                               sql.NullInt64
	ClubRole                             sql.NullString
	CreatedAt                            time.Time
	UpdatedAt                            time.Time
}

type PlayerBrawler struct {
	ID              int64
	PlayerID        int64
	BrawlerID       int64
	Power           int64
	Rank            int64
	Trophies        int64
	HighestTrophies int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

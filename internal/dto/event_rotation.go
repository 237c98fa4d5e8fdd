package dto

import (
	"brawlstats-sync/internal/domain"
	"fmt"
	"time"
)

const (
	// RotationTimeLayout is the layout upstream uses for rotation bounds.
	// Parsing also accepts any number of fractional second digits.
	RotationTimeLayout = "20060102T150405.000000Z"

	rotationParseLayout = "20060102T150405Z"
)

type EventRotationDTO struct {
	StartTime time.Time
	EndTime   time.Time
	Event     EventDTO
	Slot      int64
}

func EventRotationFromRecord(rec map[string]any) (EventRotationDTO, error) {
	f := read("event rotation", rec)
	rule := "required,datetime=" + rotationParseLayout
	start := f.str("startTime", rule)
	end := f.str("endTime", rule)
	slot := f.integer("slotId")
	event := f.object("event")
	if f.err != nil {
		return EventRotationDTO{}, f.err
	}

	d := EventRotationDTO{Slot: slot}
	var err error
	if d.StartTime, err = ParseRotationTime(start); err != nil {
		return EventRotationDTO{}, ruleFailed("event rotation", "startTime", err)
	}
	if d.EndTime, err = ParseRotationTime(end); err != nil {
		return EventRotationDTO{}, ruleFailed("event rotation", "endTime", err)
	}

	d.Event, err = EventFromRecord(event)
	f.nested("event", err)
	if f.err != nil {
		return EventRotationDTO{}, f.err
	}
	return d, nil
}

func EventRotationsFromList(items []any) ([]EventRotationDTO, error) {
	return fromList("event rotation", items, EventRotationFromRecord, func(d EventRotationDTO) string {
		return fmt.Sprintf("%s|%s|%d", FormatRotationTime(d.StartTime), FormatRotationTime(d.EndTime), d.Slot)
	})
}

func EventRotationFromEntity(e domain.EventRotation) EventRotationDTO {
	return EventRotationDTO{
		StartTime: e.StartTime.UTC(),
		EndTime:   e.EndTime.UTC(),
		Event:     EventFromEntity(e.Event),
		Slot:      e.Slot.Position,
	}
}

func (d EventRotationDTO) ToRecord() map[string]any {
	return map[string]any{
		"startTime": FormatRotationTime(d.StartTime),
		"endTime":   FormatRotationTime(d.EndTime),
		"slotId":    d.Slot,
		"event":     d.Event.ToRecord(),
	}
}

func ParseRotationTime(s string) (time.Time, error) {
	return time.Parse(rotationParseLayout, s)
}

func FormatRotationTime(t time.Time) string {
	return t.UTC().Format(RotationTimeLayout)
}

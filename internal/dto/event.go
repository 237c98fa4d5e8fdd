package dto

import (
	"brawlstats-sync/internal/domain"
	"fmt"
)

type EventDTO struct {
	ExtID     int64
	Map       string
	Mode      string
	Modifiers []string
}

func EventFromRecord(rec map[string]any) (EventDTO, error) {
	f := read("event", rec)
	d := EventDTO{
		ExtID: f.integer("id"),
		Map:   f.str("map", "required"),
		Mode:  f.str("mode", "required"),
	}

	// upstream omits modifiers on most events
	modifiers, _ := f.optList("modifiers")
	if f.err != nil {
		return EventDTO{}, f.err
	}

	d.Modifiers = make([]string, 0, len(modifiers))
	seen := make(map[string]struct{}, len(modifiers))
	for i, m := range modifiers {
		name, ok := m.(string)
		if !ok || name == "" {
			return EventDTO{}, invalidField("event", fmt.Sprintf("modifiers[%d]", i), "must be a non-empty string")
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		d.Modifiers = append(d.Modifiers, name)
	}
	return d, nil
}

func EventFromEntity(e domain.Event) EventDTO {
	d := EventDTO{
		ExtID:     e.ExtID,
		Map:       e.Map.Name,
		Mode:      e.Mode.Name,
		Modifiers: make([]string, 0, len(e.Modifiers)),
	}
	for _, m := range e.Modifiers {
		d.Modifiers = append(d.Modifiers, m.Name)
	}
	return d
}

func (d EventDTO) ToRecord() map[string]any {
	modifiers := make([]any, len(d.Modifiers))
	for i, m := range d.Modifiers {
		modifiers[i] = m
	}
	return map[string]any{
		"id":        d.ExtID,
		"map":       d.Map,
		"mode":      d.Mode,
		"modifiers": modifiers,
	}
}

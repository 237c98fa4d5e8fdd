package service

import (
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

type EventRotationSource interface {
	GetEventsRotation(ctx context.Context) ([]dto.EventRotationDTO, error)
}

type EventRotationStore interface {
	CreateOrUpdate(ctx context.Context, d dto.EventRotationDTO) (*domain.EventRotation, error)
}

type EventRotationParser struct {
	api    EventRotationSource
	repo   EventRotationStore
	logger zerolog.Logger
}

func NewEventRotationParser(api EventRotationSource, repo EventRotationStore, logger zerolog.Logger) *EventRotationParser {
	return &EventRotationParser{api: api, repo: repo, logger: logger.With().Str("parser", "event_rotation").Logger()}
}

func (p *EventRotationParser) ParseAll(ctx context.Context) ([]*domain.EventRotation, error) {
	ds, err := p.api.GetEventsRotation(ctx)
	if err != nil {
		return nil, fail(p.logger, "event rotations", "", err)
	}
	if len(ds) == 0 {
		return nil, fail(p.logger, "event rotations", "", ErrEmptyResult)
	}

	rotations := make([]*domain.EventRotation, 0, len(ds))
	for _, d := range ds {
		rot, err := p.repo.CreateOrUpdate(ctx, d)
		if err != nil {
			return nil, fail(p.logger, "event rotation", rotationID(d), err)
		}
		rotations = append(rotations, rot)
	}

	p.logger.Info().Int("count", len(rotations)).Msg("event rotations parsed")
	return rotations, nil
}

// rotationID names a rotation by its identity since upstream gives it none.
func rotationID(d dto.EventRotationDTO) string {
	return fmt.Sprintf("%d@%s-%s", d.Slot, dto.FormatRotationTime(d.StartTime), dto.FormatRotationTime(d.EndTime))
}

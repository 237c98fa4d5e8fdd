package service

import (
	"brawlstats-sync/internal/constants"
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"

	"github.com/rs/zerolog"
)

type ClubSource interface {
	GetClub(ctx context.Context, tag string) (dto.ClubDTO, error)
}

type ClubStore interface {
	CreateOrUpdate(ctx context.Context, d dto.ClubDTO) (*domain.Club, error)
}

type ClubParser struct {
	api    ClubSource
	repo   ClubStore
	logger zerolog.Logger
}

func NewClubParser(api ClubSource, repo ClubStore, logger zerolog.Logger) *ClubParser {
	return &ClubParser{api: api, repo: repo, logger: logger.With().Str("parser", "club").Logger()}
}

func (p *ClubParser) ParseByTag(ctx context.Context, tag string) (*domain.Club, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	d, err := p.api.GetClub(ctx, tag)
	if err != nil {
		return nil, fail(p.logger, "club", tag, err)
	}
	c, err := p.repo.CreateOrUpdate(ctx, d)
	if err != nil {
		return nil, fail(p.logger, "club", tag, err)
	}

	p.logger.Info().Str("tag", tag).Int("members", len(c.Members)).Msg("club parsed")
	return c, nil
}

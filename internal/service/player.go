package service

import (
	"brawlstats-sync/internal/constants"
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"

	"github.com/rs/zerolog"
)

type PlayerSource interface {
	GetPlayer(ctx context.Context, tag string) (dto.PlayerDTO, error)
}

type PlayerStore interface {
	CreateOrUpdate(ctx context.Context, d dto.PlayerDTO) (*domain.Player, error)
}

type PlayerParser struct {
	api    PlayerSource
	repo   PlayerStore
	logger zerolog.Logger
}

func NewPlayerParser(api PlayerSource, repo PlayerStore, logger zerolog.Logger) *PlayerParser {
	return &PlayerParser{api: api, repo: repo, logger: logger.With().Str("parser", "player").Logger()}
}

func (p *PlayerParser) ParseByTag(ctx context.Context, tag string) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	d, err := p.api.GetPlayer(ctx, tag)
	if err != nil {
		return nil, fail(p.logger, "player", tag, err)
	}
	player, err := p.repo.CreateOrUpdate(ctx, d)
	if err != nil {
		return nil, fail(p.logger, "player", tag, err)
	}

	p.logger.Info().
		Str("tag", tag).
		Int64("trophies", player.Trophies).
		Int("brawlers", len(player.Brawlers)).
		Msg("player parsed")
	return player, nil
}

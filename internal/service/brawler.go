package service

import (
	"brawlstats-sync/internal/constants"
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/dto"
	"context"
	"strconv"

	"github.com/rs/zerolog"
)

type BrawlerSource interface {
	GetBrawler(ctx context.Context, extID int64) (dto.BrawlerDTO, error)
	GetBrawlers(ctx context.Context) ([]dto.BrawlerDTO, error)
}

type BrawlerStore interface {
	CreateOrUpdate(ctx context.Context, d dto.BrawlerDTO) (*domain.Brawler, error)
}

type BrawlerParser struct {
	api    BrawlerSource
	repo   BrawlerStore
	logger zerolog.Logger
}

func NewBrawlerParser(api BrawlerSource, repo BrawlerStore, logger zerolog.Logger) *BrawlerParser {
	return &BrawlerParser{api: api, repo: repo, logger: logger.With().Str("parser", "brawler").Logger()}
}

func (p *BrawlerParser) ParseByExternalID(ctx context.Context, extID int64) (*domain.Brawler, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	id := strconv.FormatInt(extID, 10)
	p.logger.Debug().Str("id", id).Msg("parsing brawler")

	d, err := p.api.GetBrawler(ctx, extID)
	if err != nil {
		return nil, fail(p.logger, "brawler", id, err)
	}
	b, err := p.repo.CreateOrUpdate(ctx, d)
	if err != nil {
		return nil, fail(p.logger, "brawler", id, err)
	}

	p.logger.Info().Str("id", id).Str("name", b.Name).Msg("brawler parsed")
	return b, nil
}

// ParseAll stores every brawler upstream lists, one transaction each. It
// stops at the first failure; brawlers stored before it stay committed.
func (p *BrawlerParser) ParseAll(ctx context.Context) ([]*domain.Brawler, error) {
	ds, err := p.api.GetBrawlers(ctx)
	if err != nil {
		return nil, fail(p.logger, "brawlers", "", err)
	}
	if len(ds) == 0 {
		return nil, fail(p.logger, "brawlers", "", ErrEmptyResult)
	}

	brawlers := make([]*domain.Brawler, 0, len(ds))
	for _, d := range ds {
		b, err := p.repo.CreateOrUpdate(ctx, d)
		if err != nil {
			return nil, fail(p.logger, "brawler", strconv.FormatInt(d.ExtID, 10), err)
		}
		brawlers = append(brawlers, b)
	}

	p.logger.Info().Int("count", len(brawlers)).Msg("brawlers parsed")
	return brawlers, nil
}

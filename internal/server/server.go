package server

import (
	"brawlstats-sync/internal/domain"
	"brawlstats-sync/internal/repository"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type BrawlerParser interface {
	ParseByExternalID(ctx context.Context, extID int64) (*domain.Brawler, error)
	ParseAll(ctx context.Context) ([]*domain.Brawler, error)
}

type EventRotationParser interface {
	ParseAll(ctx context.Context) ([]*domain.EventRotation, error)
}

type ClubParser interface {
	ParseByTag(ctx context.Context, tag string) (*domain.Club, error)
}

type PlayerParser interface {
	ParseByTag(ctx context.Context, tag string) (*domain.Player, error)
}

type BrawlerFinder interface {
	Find(ctx context.Context, c repository.Criteria) (*domain.Brawler, error)
}

type ClubFinder interface {
	Find(ctx context.Context, c repository.Criteria) (*domain.Club, error)
}

type PlayerFinder interface {
	Find(ctx context.Context, c repository.Criteria) (*domain.Player, error)
}

type Syncer interface {
	RunOnce(ctx context.Context) error
}

// Deps groups what the admin surface triggers and reads.
type Deps struct {
	Brawlers       BrawlerParser
	EventRotations EventRotationParser
	Clubs          ClubParser
	Players        PlayerParser

	BrawlerStore BrawlerFinder
	ClubStore    ClubFinder
	PlayerStore  PlayerFinder

	Scheduler Syncer
}

type Server struct {
	deps   Deps
	logger zerolog.Logger
}

func New(deps Deps, logger zerolog.Logger) *Server {
	return &Server{deps: deps, logger: logger.With().Str("component", "server").Logger()}
}

// Routes builds the admin router. POST routes pull from upstream and store,
// GET routes serve what is stored.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", s.health)

	r.Route("/sync", func(r chi.Router) {
		r.Post("/", s.syncAll)
		r.Post("/brawlers", s.syncBrawlers)
		r.Post("/brawlers/{id}", s.syncBrawler)
		r.Post("/events/rotation", s.syncEventRotations)
		r.Post("/clubs/{tag}", s.syncClub)
		r.Post("/players/{tag}", s.syncPlayer)
	})

	r.Get("/brawlers/{id}", s.getBrawler)
	r.Get("/clubs/{tag}", s.getClub)
	r.Get("/players/{tag}", s.getPlayer)

	return r
}

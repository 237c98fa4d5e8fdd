package fx

import (
	"brawlstats-sync/internal/api"
	"brawlstats-sync/internal/config"
	"brawlstats-sync/internal/database"
	"brawlstats-sync/internal/db"
	"brawlstats-sync/internal/logger"
	"brawlstats-sync/internal/repository"
	"brawlstats-sync/internal/scheduler"
	"brawlstats-sync/internal/server"
	"brawlstats-sync/internal/service"
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// config.Load logs before LOG_LEVEL is known, so it gets the bootstrap
// logger and everything else gets the one re-levelled from the config.
const bootstrapLogger = `name:"bootstrap"`

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

func ProvideBrawlerParser(client *api.Client, repo *repository.BrawlerRepository, logger zerolog.Logger) *service.BrawlerParser {
	return service.NewBrawlerParser(client, repo, logger)
}

func ProvideEventRotationParser(client *api.Client, repo *repository.EventRotationRepository, logger zerolog.Logger) *service.EventRotationParser {
	return service.NewEventRotationParser(client, repo, logger)
}

func ProvideClubParser(client *api.Client, repo *repository.ClubRepository, logger zerolog.Logger) *service.ClubParser {
	return service.NewClubParser(client, repo, logger)
}

func ProvidePlayerParser(client *api.Client, repo *repository.PlayerRepository, logger zerolog.Logger) *service.PlayerParser {
	return service.NewPlayerParser(client, repo, logger)
}

func ProvideScheduler(
	cfg *config.Config,
	brawlers *service.BrawlerParser,
	rotations *service.EventRotationParser,
	logger zerolog.Logger,
) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg, brawlers, rotations, logger)
}

func ProvideServer(
	brawlers *service.BrawlerParser,
	rotations *service.EventRotationParser,
	clubs *service.ClubParser,
	players *service.PlayerParser,
	brawlerRepo *repository.BrawlerRepository,
	clubRepo *repository.ClubRepository,
	playerRepo *repository.PlayerRepository,
	sched *scheduler.Scheduler,
	logger zerolog.Logger,
) *server.Server {
	return server.New(server.Deps{
		Brawlers:       brawlers,
		EventRotations: rotations,
		Clubs:          clubs,
		Players:        players,
		BrawlerStore:   brawlerRepo,
		ClubStore:      clubRepo,
		PlayerStore:    playerRepo,
		Scheduler:      sched,
	}, logger)
}

var Module = fx.Options(
	fx.Provide(fx.Annotate(logger.New, fx.ResultTags(bootstrapLogger))),
	fx.Provide(fx.Annotate(config.Load, fx.ParamTags(bootstrapLogger))),
	fx.Provide(fx.Annotate(logger.ForConfig, fx.ParamTags(``, bootstrapLogger))),
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewAccessoryRepository),
	fx.Provide(repository.NewGearRepository),
	fx.Provide(repository.NewStarPowerRepository),
	fx.Provide(repository.NewBrawlerRepository),
	fx.Provide(repository.NewEventMapRepository),
	fx.Provide(repository.NewEventModeRepository),
	fx.Provide(repository.NewEventModifierRepository),
	fx.Provide(repository.NewEventRepository),
	fx.Provide(repository.NewEventRotationSlotRepository),
	fx.Provide(repository.NewEventRotationRepository),
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewClubRepository),
	// api client
	fx.Provide(api.NewClient),
	// parsers
	fx.Provide(ProvideBrawlerParser),
	fx.Provide(ProvideEventRotationParser),
	fx.Provide(ProvideClubParser),
	fx.Provide(ProvidePlayerParser),
	// scheduler
	fx.Provide(ProvideScheduler),
	// server
	fx.Provide(ProvideServer),
)

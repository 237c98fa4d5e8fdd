package fx

import (
	"brawlstats-sync/internal/scheduler"
	"brawlstats-sync/internal/server"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestModuleGraph(t *testing.T) {
	err := fx.ValidateApp(
		Module,
		fx.Invoke(func(*server.Server, *scheduler.Scheduler) {}),
	)
	require.NoError(t, err)
}

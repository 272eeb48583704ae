// Shared test setup for tests that need a full application or API server.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/vrsandeep/mango-chapters/internal/api"
	"github.com/vrsandeep/mango-chapters/internal/config"
	"github.com/vrsandeep/mango-chapters/internal/core"
	"github.com/vrsandeep/mango-chapters/internal/providers"
	"github.com/vrsandeep/mango-chapters/internal/providers/mockadex"
	"github.com/vrsandeep/mango-chapters/internal/websocket"
)

// SetupTestApp builds a core.App backed by an in-memory database and a
// temporary library directory.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()
	db := SetupTestDB(t)

	cfg := &config.Config{}
	cfg.Library.Path = t.TempDir()

	hub := websocket.NewHub()
	go hub.Run()

	return core.NewWithDependencies(cfg, db, hub, "test")
}

// SetupTestServer initializes a full core.App and api.Server for integration testing.
func SetupTestServer(t *testing.T) (*api.Server, *sql.DB) {
	t.Helper()
	app := SetupTestApp(t)

	t.Cleanup(providers.UnregisterAll)
	providers.Register(mockadex.New())

	return api.NewServer(app), app.DB()
}

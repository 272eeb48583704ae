package core

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/vrsandeep/mango-chapters/internal/config"
	"github.com/vrsandeep/mango-chapters/internal/db"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
	"github.com/vrsandeep/mango-chapters/internal/library"
	"github.com/vrsandeep/mango-chapters/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the CLI. It implements jobs.JobContext.
type App struct {
	config     *config.Config
	db         *sql.DB
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
	Version    string
}

func (a *App) Config() *config.Config       { return a.config }
func (a *App) DB() *sql.DB                  { return a.db }
func (a *App) WsHub() *websocket.Hub        { return a.wsHub }
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }

// New sets up and returns a new App instance. It handles loading the
// configuration, initializing the database connection, and running migrations.
// The returned hub is not running; the caller starts it.
func New(version string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.InitDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(database); err != nil {
		// We can't proceed without a valid database schema.
		database.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	log.Println("Core application setup complete.")
	return NewWithDependencies(cfg, database, websocket.NewHub(), version), nil
}

// NewWithDependencies builds an App from already initialised parts and
// registers the library jobs.
func NewWithDependencies(cfg *config.Config, database *sql.DB, hub *websocket.Hub, version string) *App {
	app := &App{
		config:  cfg,
		db:      database,
		wsHub:   hub,
		Version: version,
	}
	app.jobManager = jobs.NewManager(app)
	app.jobManager.Register(jobs.LibrarySyncJobID, "Library Sync", library.LibrarySync)
	app.jobManager.Register(library.ReparseJobID, "Re-parse Chapter Numbers", library.ReparseChapters)
	return app
}

// Close gracefully closes the application's resources, like the DB connection.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vrsandeep/mango-chapters/internal/api"
	"github.com/vrsandeep/mango-chapters/internal/core"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
	"github.com/vrsandeep/mango-chapters/internal/library"
	"github.com/vrsandeep/mango-chapters/internal/providers"
	"github.com/vrsandeep/mango-chapters/internal/providers/mockadex"
	"github.com/vrsandeep/mango-chapters/internal/providers/weebcentral"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New(version)
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}
	defer app.Close()

	go app.WsHub().Run()

	// Register all available chapter providers here.
	providers.Register(weebcentral.New())
	if os.Getenv("MANGO_MOCK_PROVIDER") != "" {
		providers.Register(mockadex.New())
	}

	// Initial sync, then periodic syncs through the scheduler.
	if err := app.JobManager().RunJob(jobs.LibrarySyncJobID, app); err != nil {
		log.Printf("Warning: initial library sync could not start: %v", err)
	}
	scheduler := jobs.StartJobs(app)
	defer scheduler.Stop()

	if app.Config().Library.Watch {
		watcher := library.NewWatcherService(app)
		if err := watcher.Start(); err != nil {
			log.Printf("Warning: file watcher could not start: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	// Setup the API server
	server := api.NewServer(app)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.Config().Port),
		Handler: server.Router(),
	}

	// --- Graceful Shutdown ---
	go func() {
		log.Printf("Starting web server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Allow existing connections to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// LibrarySyncJobID identifies the scheduled library scan.
const LibrarySyncJobID = "library-sync"

// StartJobs starts the background job scheduler and returns it so callers
// can stop it on shutdown.
func StartJobs(app JobContext) *gocron.Scheduler {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	startLibrarySyncJob(s, app)

	log.Println("Starting background job scheduler...")
	s.StartAsync()
	return s
}

func startLibrarySyncJob(s *gocron.Scheduler, app JobContext) {
	interval := app.Config().ScanInterval
	if interval <= 0 {
		log.Println("Library sync interval is 0, scheduled sync is disabled.")
		return
	}

	log.Printf("Scheduling job: '%s' to run every %d minutes.", LibrarySyncJobID, interval)

	_, err := s.Every(interval).Minutes().Do(func() {
		log.Println("Scheduler is triggering job:", LibrarySyncJobID)
		// Go through the manager so scheduled and manual runs never overlap.
		if err := app.JobManager().RunJob(LibrarySyncJobID, app); err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", LibrarySyncJobID, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", LibrarySyncJobID, err)
	}
}

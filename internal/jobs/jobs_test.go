package jobs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vrsandeep/mango-chapters/internal/config"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
)

func TestStartJobs_DisabledInterval(t *testing.T) {
	ctx := &fakeJobContext{cfg: &config.Config{ScanInterval: 0}}
	ctx.jobMgr = jobs.NewManager(ctx)

	s := jobs.StartJobs(ctx)
	defer s.Stop()

	assert.Empty(t, s.Jobs())
}

func TestStartJobs_SchedulesLibrarySync(t *testing.T) {
	ctx := &fakeJobContext{cfg: &config.Config{ScanInterval: 60}}
	mgr := jobs.NewManager(ctx)
	ctx.jobMgr = mgr

	ran := make(chan struct{}, 1)
	mgr.Register(jobs.LibrarySyncJobID, "Library Sync", func(ctx jobs.JobContext) {
		select {
		case ran <- struct{}{}:
		default:
		}
	})

	s := jobs.StartJobs(ctx)
	defer s.Stop()

	assert.Len(t, s.Jobs(), 1)
	// gocron runs a new job immediately once the scheduler starts.
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("library sync was not triggered")
	}
}

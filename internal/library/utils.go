// This file contains utility functions shared across the library package.

package library

import (
	"github.com/vrsandeep/mango-chapters/internal/jobs"
	"github.com/vrsandeep/mango-chapters/internal/models"
)

// sendProgress sends a progress update via WebSocket to connected clients.
func sendProgress(ctx jobs.JobContext, jobId string, message string, progress float64, done bool) {
	hub := ctx.WsHub()
	if hub == nil {
		return
	}
	hub.BroadcastJSON(models.ProgressUpdate{
		JobID:    jobId,
		Message:  message,
		Progress: progress,
		Done:     done,
	})
}

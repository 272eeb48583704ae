package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vrsandeep/mango-chapters/internal/jobs"
	"github.com/vrsandeep/mango-chapters/internal/testutil"
)

func TestAdminHandlers(t *testing.T) {
	server, _ := testutil.SetupTestServer(t)
	router := server.Router()

	t.Run("Get Version", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/version", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"version":"test"}`, rr.Body.String())
	})

	t.Run("Health", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Jobs Status", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/jobs/status", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var statuses []jobs.JobStatus
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &statuses))
		require.Len(t, statuses, 2)
		assert.Equal(t, "library-sync", statuses[0].ID)
		assert.Equal(t, "reparse-chapters", statuses[1].ID)
	})

	t.Run("Run Job", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/admin/jobs/run", strings.NewReader(`{"job_id":"reparse-chapters"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusAccepted, rr.Code, rr.Body.String())

		// Wait for the job to release the manager before the next subtests.
		require.Eventually(t, func() bool {
			req, _ := http.NewRequest("GET", "/api/admin/jobs/status", nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			var statuses []jobs.JobStatus
			json.Unmarshal(rr.Body.Bytes(), &statuses)
			return len(statuses) == 2 && statuses[1].Status == "success"
		}, 2*time.Second, 20*time.Millisecond)
	})

	t.Run("Run Unknown Job", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/admin/jobs/run", strings.NewReader(`{"job_id":"nope"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Run Job Invalid Payload", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/admin/jobs/run", strings.NewReader(`{`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

package api_test

import (
	"database/sql"
	"testing"

	"github.com/vrsandeep/mango-chapters/internal/api"
	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/store"
	"github.com/vrsandeep/mango-chapters/internal/testutil"
)

// setupLibraryServer returns a server whose database holds one series with
// two recognised chapters and one unrecognised chapter.
func setupLibraryServer(t *testing.T) (*api.Server, *sql.DB) {
	t.Helper()
	server, db := testutil.SetupTestServer(t)
	st := store.New(db)

	series, err := st.GetOrCreateSeries("Bleach", "/library/Bleach")
	if err != nil {
		t.Fatalf("Failed to create series: %v", err)
	}
	for _, title := range []string{"Bleach Oneshot", "Bleach 567.extra", "Bleach 567.a"} {
		number := chapter.ParseNumber(series.Title, title)
		if _, err := st.UpsertChapter(series.ID, "/library/Bleach/"+title+".cbz", title, number, 20); err != nil {
			t.Fatalf("Failed to create chapter: %v", err)
		}
	}
	return server, db
}

// A mock provider for development and testing purposes. It simulates
// searching and listing chapters without making network calls. Its chapter
// titles use the formats real sources publish, so the numbers shown are
// recognised the same way as scraped ones.
package mockadex

import (
	"fmt"
	"time"

	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/models"
	"github.com/vrsandeep/mango-chapters/internal/util"
)

type MockadexProvider struct{}

func New() *MockadexProvider {
	return &MockadexProvider{}
}

func (p *MockadexProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "mockadex",
		Name: "Mockadex",
	}
}

func (p *MockadexProvider) Search(query string) ([]models.SearchResult, error) {
	var results []models.SearchResult
	for i := 1; i <= 10; i++ {
		results = append(results, models.SearchResult{
			Title:      fmt.Sprintf("%s - Result %d", query, i),
			CoverURL:   fmt.Sprintf("https://placehold.co/400x600/2a2a2a/f0f0f0?text=Cover+%d", i),
			Identifier: fmt.Sprintf("mock-series-%d", i),
		})
	}
	return results, nil
}

// GetChapters returns 25 numbered chapters plus a few side chapters, newest
// first as most sites list them, then sorted into reading order.
func (p *MockadexProvider) GetChapters(seriesIdentifier, seriesTitle string) ([]models.ChapterResult, error) {
	titles := []string{
		"Vol. 1 Ch. 5.extra: Behind the Mock",
		"Ch. 12-a: Half a Mocking",
		"Announcement",
	}
	for i := 25; i >= 1; i-- {
		titles = append(titles, fmt.Sprintf("Vol. %d Ch. %d: The Mocking", (i-1)/10+1, i))
	}

	results := make([]models.ChapterResult, len(titles))
	for i, title := range titles {
		results[i] = models.ChapterResult{
			Identifier:  fmt.Sprintf("mock-chapter-%s-%d", seriesIdentifier, i),
			Title:       title,
			Number:      chapter.ParseNumber(seriesTitle, title),
			PublishedAt: time.Now().AddDate(0, 0, -i),
		}
	}
	util.SortChapterResults(results)
	return results, nil
}

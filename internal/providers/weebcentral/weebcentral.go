package weebcentral

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/vrsandeep/mango-chapters/internal/chapter"
	"github.com/vrsandeep/mango-chapters/internal/models"
	"github.com/vrsandeep/mango-chapters/internal/util"
)

// WeebCentralProvider implements the Provider interface for WeebCentral.
type WeebCentralProvider struct {
	client  *http.Client
	baseURL string
}

func New() *WeebCentralProvider {
	return NewWithBaseURL("https://weebcentral.com")
}

// NewWithBaseURL points the provider at another host, such as a test server.
func NewWithBaseURL(baseURL string) *WeebCentralProvider {
	return &WeebCentralProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (p *WeebCentralProvider) GetInfo() models.ProviderInfo {
	return models.ProviderInfo{
		ID:   "weebcentral",
		Name: "WeebCentral",
	}
}

// fetch performs an htmx request and parses the HTML fragment it returns.
func (p *WeebCentralProvider) fetch(req *http.Request) (*goquery.Document, error) {
	req.Header.Set("HX-Request", "true")
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weebcentral: %s returned %s", req.URL.Path, resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

func (p *WeebCentralProvider) Search(query string) ([]models.SearchResult, error) {
	searchURL := fmt.Sprintf("%s/search/simple?location=main", p.baseURL)
	form := url.Values{}
	form.Set("text", query)

	req, err := http.NewRequest("POST", searchURL, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Trigger", "quick-search-input")
	req.Header.Set("HX-Trigger-Name", "text")
	req.Header.Set("HX-Target", "quick-search-result")
	req.Header.Set("HX-Current-URL", p.baseURL+"/")

	doc, err := p.fetch(req)
	if err != nil {
		return nil, err
	}

	var results []models.SearchResult
	doc.Find("#quick-search-result > div > a").Each(func(i int, s *goquery.Selection) {
		link, exists := s.Attr("href")
		if !exists {
			return
		}
		id := idAfter(link, "/series/")
		if id == "" {
			return
		}
		var image string
		if src, ok := s.Find("source").Attr("srcset"); ok {
			image = src
		} else if src, ok := s.Find("img").Attr("src"); ok {
			image = src
		}
		results = append(results, models.SearchResult{
			Title:      strings.TrimSpace(s.Find(".flex-1").Text()),
			CoverURL:   image,
			Identifier: id,
		})
	})
	if len(results) == 0 {
		return nil, errors.New("no results found")
	}
	return results, nil
}

// GetChapters scrapes the full chapter list of a series. Chapter numbers are
// recognised from the listed titles with seriesTitle as context, and the
// result is returned in reading order.
func (p *WeebCentralProvider) GetChapters(seriesIdentifier, seriesTitle string) ([]models.ChapterResult, error) {
	seriesURL := fmt.Sprintf("%s/series/%s", p.baseURL, url.PathEscape(seriesIdentifier))
	req, err := http.NewRequest("GET", seriesURL+"/full-chapter-list", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("HX-Target", "chapter-list")
	req.Header.Set("HX-Current-URL", seriesURL)
	req.Header.Set("Referer", seriesURL)

	doc, err := p.fetch(req)
	if err != nil {
		return nil, err
	}

	var chapters []models.ChapterResult
	doc.Find("div.flex.items-center").Each(func(i int, s *goquery.Selection) {
		a := s.Find("a")
		link, exists := a.Attr("href")
		if !exists {
			return
		}
		title := strings.TrimSpace(a.Find("span.grow > span").First().Text())

		var publishedAt time.Time
		if datetime, ok := s.Find("time").Attr("datetime"); ok {
			if parsed, err := time.Parse(time.RFC3339, datetime); err == nil {
				publishedAt = parsed
			}
		}

		chapters = append(chapters, models.ChapterResult{
			Identifier:  idAfter(link, "/chapters/"),
			Title:       title,
			Number:      chapter.ParseNumber(seriesTitle, title),
			PublishedAt: publishedAt,
		})
	})
	if len(chapters) == 0 {
		return nil, errors.New("no chapters found")
	}
	util.SortChapterResults(chapters)
	return chapters, nil
}

// idAfter returns the path segment that follows marker in link.
func idAfter(link, marker string) string {
	_, rest, found := strings.Cut(link, marker)
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

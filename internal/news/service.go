package news

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"redmedicos-be/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	feedBaseURL = "https://news.google.com/rss/search"
	searchQuery = "화장품 뷰티"
	maxItems    = 6

	cacheKey = "news:cosmetics"
	cacheTTL = time.Hour
)

type Service interface {
	Fetch(ctx context.Context) (*Response, error)
}

type service struct {
	feedURL    string
	httpClient *http.Client
	rdb        *redis.Client
}

// NewService builds the feed service. rdb may be nil; the cache is then
// skipped entirely.
func NewService(rdb *redis.Client) Service {
	return &service{
		feedURL: fmt.Sprintf("%s?q=%s&hl=ko&gl=KR&ceid=KR:ko",
			feedBaseURL, url.QueryEscape(searchQuery)),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		rdb: rdb,
	}
}

type rssDoc struct {
	Items []rssItem `xml:"channel>item"`
}

type rssItem struct {
	Title   string `xml:"title"`
	Link    string `xml:"link"`
	PubDate string `xml:"pubDate"`
	Source  string `xml:"source"`
}

// Google News titles come as "제목 - 출처"; strip the trailing source.
func cleanTitle(title string) string {
	parts := strings.Split(title, " - ")
	if len(parts) > 1 {
		parts = parts[:len(parts)-1]
		return strings.TrimSpace(strings.Join(parts, " - "))
	}
	return strings.TrimSpace(title)
}

func extractSource(title string) string {
	parts := strings.Split(title, " - ")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return ""
}

func (s *service) Fetch(ctx context.Context) (*Response, error) {
	log := logger.FromCtx(ctx)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var res Response
			if err := json.Unmarshal([]byte(cached), &res); err == nil {
				return &res, nil
			}
		}
	}

	items, err := s.fetchFeed(ctx)
	if err != nil {
		log.Error("news fetch failed", zap.Error(err))
		return &Response{
			News:        []Item{},
			Error:       "Failed to fetch news",
			LastUpdated: time.Now().UTC().Format(time.RFC3339),
		}, err
	}

	res := &Response{
		News:        items,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}

	if s.rdb != nil {
		if body, err := json.Marshal(res); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, body, cacheTTL).Err(); err != nil {
				log.Warn("news cache write failed", zap.Error(err))
			}
		}
	}

	return res, nil
}

func (s *service) fetchFeed(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", s.feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; NewsBot/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rss fetch failed: status %d", resp.StatusCode)
	}

	var doc rssDoc
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("rss parse failed: %w", err)
	}

	items := make([]Item, 0, maxItems)
	for _, it := range doc.Items {
		if len(items) >= maxItems {
			break
		}

		title := cleanTitle(it.Title)
		if title == "" || it.Link == "" {
			continue
		}

		source := strings.TrimSpace(it.Source)
		if source == "" {
			source = extractSource(it.Title)
		}

		items = append(items, Item{
			Title:       title,
			Link:        strings.TrimSpace(it.Link),
			Description: title, // the feed carries no separate description
			PubDate:     strings.TrimSpace(it.PubDate),
			Source:      source,
		})
	}

	return items, nil
}

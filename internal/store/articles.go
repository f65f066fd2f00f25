package store

import (
	"context"
	"net/url"
	"time"

	"github.com/jonesrussell/cardcrawl/internal/logger"
)

// tableArticles is auxiliary storage for the separate article-scraping
// concern. It is outside the card pipeline but preserved as an external
// table.
const tableArticles = "scraped_articles"

// Article is a row in the scraped_articles table.
type Article struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Summary   string `json:"summary"`
	Topic     string `json:"topic"`
	ScrapedAt string `json:"scraped_at"`
}

// ArticleRepository handles scraped_articles reads and writes.
type ArticleRepository struct {
	client *Client
	log    logger.Interface
	now    func() time.Time
}

// NewArticleRepository creates a new article repository.
func NewArticleRepository(client *Client, log logger.Interface) *ArticleRepository {
	return &ArticleRepository{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// ExistingURLs returns the set of article URLs already stored. The url
// column is unique, so this is the duplicate filter.
func (r *ArticleRepository) ExistingURLs(ctx context.Context) (map[string]bool, error) {
	var rows []struct {
		URL string `json:"url"`
	}
	query := url.Values{}
	query.Set("select", "url")
	if err := r.client.Select(ctx, tableArticles, query, &rows); err != nil {
		return nil, err
	}

	existing := make(map[string]bool, len(rows))
	for _, row := range rows {
		existing[row.URL] = true
	}
	return existing, nil
}

// InsertNew uploads only articles whose URL is not already present.
// Returns the number of rows inserted.
func (r *ArticleRepository) InsertNew(ctx context.Context, articles []Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	existing, err := r.ExistingURLs(ctx)
	if err != nil {
		return 0, err
	}

	fresh := make([]Article, 0, len(articles))
	for _, a := range articles {
		if existing[a.URL] {
			continue
		}
		if a.ScrapedAt == "" {
			a.ScrapedAt = r.now().UTC().Format(time.RFC3339)
		}
		fresh = append(fresh, a)
	}
	if len(fresh) == 0 {
		r.log.Info("no new articles to upload", "skipped", len(articles))
		return 0, nil
	}

	if err := r.client.Insert(ctx, tableArticles, fresh, nil); err != nil {
		return 0, err
	}
	r.log.Info("articles uploaded", "count", len(fresh), "skipped", len(articles)-len(fresh))
	return len(fresh), nil
}

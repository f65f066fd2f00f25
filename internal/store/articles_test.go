package store_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/store"
)

func newArticleRepository(t *testing.T) (*store.ArticleRepository, *fakeStore) {
	t.Helper()
	fake := newFakeStore()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := store.NewClient(store.Config{URL: srv.URL, Key: "test-key"}, logger.NewNoOp())
	return store.NewArticleRepository(client, logger.NewNoOp()), fake
}

func TestInsertNewSkipsExistingURLs(t *testing.T) {
	t.Parallel()

	repo, fake := newArticleRepository(t)
	ctx := context.Background()

	first := []store.Article{
		{URL: "https://example.com/a", Title: "A", Topic: "credit-cards"},
		{URL: "https://example.com/b", Title: "B", Topic: "credit-cards"},
	}
	n, err := repo.InsertNew(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	second := []store.Article{
		{URL: "https://example.com/b", Title: "B", Topic: "credit-cards"},
		{URL: "https://example.com/c", Title: "C", Topic: "credit-cards"},
	}
	n, err = repo.InsertNew(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Len(t, fake.rows("scraped_articles"), 3)
}

func TestInsertNewStampsScrapedAt(t *testing.T) {
	t.Parallel()

	repo, fake := newArticleRepository(t)

	n, err := repo.InsertNew(context.Background(), []store.Article{
		{URL: "https://example.com/a", Title: "A"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	rows := fake.rows("scraped_articles")
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0]["scraped_at"])
}

func TestInsertNewEmptyInput(t *testing.T) {
	t.Parallel()

	repo, _ := newArticleRepository(t)
	n, err := repo.InsertNew(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

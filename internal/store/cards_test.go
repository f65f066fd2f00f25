package store_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/cardcrawl/internal/domain"
	"github.com/jonesrussell/cardcrawl/internal/logger"
	"github.com/jonesrussell/cardcrawl/internal/store"
)

// fakeStore is an in-memory PostgREST stand-in: rows are loose maps,
// filters support the eq. operator, and POST honours
// Prefer: return=representation.
type fakeStore struct {
	mu      sync.Mutex
	tables  map[string][]map[string]any
	failKey string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tables: map[string][]map[string]any{}}
}

func (f *fakeStore) rows(table string) []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.tables[table]...)
}

func (f *fakeStore) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")

		f.mu.Lock()
		defer f.mu.Unlock()

		filters := map[string]string{}
		for k, vs := range r.URL.Query() {
			if k == "select" {
				continue
			}
			filters[k] = strings.TrimPrefix(vs[0], "eq.")
		}
		match := func(row map[string]any) bool {
			for k, v := range filters {
				if fmt.Sprint(row[k]) != v {
					return false
				}
			}
			return true
		}

		switch r.Method {
		case http.MethodGet:
			out := []map[string]any{}
			for _, row := range f.tables[table] {
				if match(row) {
					out = append(out, row)
				}
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(out)

		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			var rows []map[string]any
			if err := json.Unmarshal(body, &rows); err != nil {
				var row map[string]any
				if err := json.Unmarshal(body, &row); err != nil {
					http.Error(w, err.Error(), http.StatusBadRequest)
					return
				}
				rows = []map[string]any{row}
			}
			if f.failKey != "" {
				for _, row := range rows {
					if fmt.Sprint(row["card_key"]) == f.failKey {
						http.Error(w, "simulated store failure", http.StatusInternalServerError)
						return
					}
				}
			}
			f.tables[table] = append(f.tables[table], rows...)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			if strings.Contains(r.Header.Get("Prefer"), "return=representation") {
				_ = json.NewEncoder(w).Encode(rows)
			}

		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			var patch map[string]any
			if err := json.Unmarshal(body, &patch); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			for i, row := range f.tables[table] {
				if match(row) {
					for k, v := range patch {
						row[k] = v
					}
					f.tables[table][i] = row
				}
			}
			w.WriteHeader(http.StatusNoContent)

		case http.MethodDelete:
			kept := f.tables[table][:0]
			for _, row := range f.tables[table] {
				if !match(row) {
					kept = append(kept, row)
				}
			}
			f.tables[table] = kept
			w.WriteHeader(http.StatusNoContent)

		default:
			http.Error(w, "unsupported", http.StatusMethodNotAllowed)
		}
	})
}

func newTestRepository(t *testing.T) (*store.CardRepository, *fakeStore) {
	t.Helper()
	fake := newFakeStore()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	client := store.NewClient(store.Config{URL: srv.URL, Key: "test-key"}, logger.NewNoOp())
	return store.NewCardRepository(client, logger.NewNoOp()), fake
}

func cobaltCard() domain.Card {
	return domain.Card{
		CardKey:        "amex-cobalt",
		Name:           "American Express Cobalt Card",
		Issuer:         "American Express",
		RewardProgram:  "Membership Rewards",
		RewardCurrency: domain.CurrencyPoints,
		PointValuation: 2.0,
		AnnualFee:      156,
		BaseRewardRate: 1.0,
		BaseRewardUnit: domain.UnitMultiplier,
		CategoryRewards: []domain.CategoryReward{
			{Category: domain.CategoryDining, Multiplier: 5, RewardUnit: domain.UnitMultiplier},
			{Category: domain.CategoryGroceries, Multiplier: 5, RewardUnit: domain.UnitMultiplier},
		},
		SignupBonus: &domain.SignupBonus{
			BonusAmount:      30000,
			BonusCurrency:    domain.CurrencyPoints,
			SpendRequirement: 3000,
			TimeframeDays:    90,
		},
	}
}

func TestUploadIsIdempotent(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t)
	ctx := context.Background()
	cards := []domain.Card{cobaltCard()}

	first := repo.Upload(ctx, cards)
	assert.Empty(t, first.Errors)
	assert.Equal(t, 1, first.CardsInserted)
	assert.Equal(t, 0, first.CardsUpdated)
	assert.Equal(t, 2, first.CategoryRewards)
	assert.Equal(t, 1, first.SignupBonuses)

	second := repo.Upload(ctx, cards)
	assert.Empty(t, second.Errors)
	assert.Equal(t, 0, second.CardsInserted)
	assert.Equal(t, 1, second.CardsUpdated)

	// Re-running must not duplicate rows in any table.
	assert.Len(t, fake.rows("cards"), 1)
	assert.Len(t, fake.rows("category_rewards"), 2)
	assert.Len(t, fake.rows("signup_bonuses"), 1)
}

func TestUploadUpdatesExistingCard(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t)
	ctx := context.Background()

	card := cobaltCard()
	repo.Upload(ctx, []domain.Card{card})

	card.AnnualFee = 170
	card.CategoryRewards = card.CategoryRewards[:1]
	results := repo.Upload(ctx, []domain.Card{card})
	assert.Empty(t, results.Errors)

	rows := fake.rows("cards")
	require.Len(t, rows, 1)
	assert.Equal(t, 170.0, rows[0]["annual_fee"])
	assert.Len(t, fake.rows("category_rewards"), 1)
}

func TestUploadFailedCardDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t)
	fake.failKey = "boom-card"
	ctx := context.Background()

	bad := cobaltCard()
	bad.CardKey = "boom-card"
	good := cobaltCard()

	results := repo.Upload(ctx, []domain.Card{bad, good})
	assert.Equal(t, 1, results.CardsInserted)
	require.Len(t, results.Errors, 1)
	assert.Equal(t, "boom-card", results.Errors[0].CardKey)

	require.Len(t, fake.rows("cards"), 1)
	assert.Equal(t, "amex-cobalt", fake.rows("cards")[0]["card_key"])
}

func TestReplaceSignupBonusNilClears(t *testing.T) {
	t.Parallel()

	repo, fake := newTestRepository(t)
	ctx := context.Background()

	card := cobaltCard()
	repo.Upload(ctx, []domain.Card{card})
	require.Len(t, fake.rows("signup_bonuses"), 1)

	card.SignupBonus = nil
	results := repo.Upload(ctx, []domain.Card{card})
	assert.Empty(t, results.Errors)
	assert.Empty(t, fake.rows("signup_bonuses"))
}

func TestListCardsAndRewardCounts(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)
	ctx := context.Background()

	withRewards := cobaltCard()
	bare := cobaltCard()
	bare.CardKey = "rbc-bare-card"
	bare.Name = "RBC Bare Card"
	bare.Issuer = "RBC"
	bare.CategoryRewards = nil
	bare.SignupBonus = nil

	repo.Upload(ctx, []domain.Card{withRewards, bare})

	cards, err := repo.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	counts, err := repo.CardIDsWithRewards(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 1)

	for _, c := range cards {
		switch c.CardKey {
		case "amex-cobalt":
			assert.Equal(t, 2, counts[c.ID])
		case "rbc-bare-card":
			assert.Zero(t, counts[c.ID])
		}
	}
}

func TestSelectErrorSurfacesAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	client := store.NewClient(store.Config{URL: srv.URL, Key: "bad-key"}, logger.NewNoOp())
	repo := store.NewCardRepository(client, logger.NewNoOp())

	_, err := repo.ListCards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

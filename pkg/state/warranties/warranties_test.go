package warranties

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/auth"
	"github.com/jbadilla/finanzas-go/pkg/domain"
)

const listBody = `[
	{"id":3,"name":"Laptop","price":1200,"purchaseDate":"2024-01-10","expirationDate":"2026-01-10","icon":"laptop","isExpired":false,"daysRemaining":300,"createdAt":"2024-01-10"},
	{"id":7,"name":"Refri","price":900,"purchaseDate":"2020-05-01","expirationDate":"2021-05-01","icon":"refri","isExpired":true,"daysRemaining":-800,"createdAt":"2020-05-01"}
]`

func newManager(t *testing.T, handler http.Handler) *Manager {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := apiclient.New(server.URL, time.Second, auth.NewContext(), logger)
	return New(api, logger)
}

func downManager(t *testing.T) *Manager {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := apiclient.New("http://127.0.0.1:1", time.Second, auth.NewContext(), logger)
	return New(api, logger)
}

func TestLoadReplacesItems(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/warranty", r.URL.Path)
		_, _ = w.Write([]byte(listBody))
	}))

	items, err := mgr.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, domain.SyncSynced, items[0].SyncStatus)

	snap := mgr.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Err)
}

func TestCreateDegradedAppendsLocalEntity(t *testing.T) {
	mgr := downManager(t)
	seed(mgr, domain.Warranty{ID: 3}, domain.Warranty{ID: 7})

	in := domain.Warranty{
		Name:           "Tele",
		Price:          500,
		PurchaseDate:   time.Now().AddDate(0, -1, 0),
		ExpirationDate: time.Now().AddDate(1, 0, 0),
		Icon:           "tv",
	}
	created, err := mgr.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSavedLocally))
	require.NotNil(t, created)

	assert.Equal(t, 8, created.ID, "id must be max existing + 1")
	assert.Equal(t, domain.SyncLocalOnly, created.SyncStatus)
	assert.False(t, created.IsExpired)
	assert.Greater(t, created.DaysRemaining, 300)

	snap := mgr.Snapshot()
	assert.Len(t, snap.Items, 3)
	assert.NotEmpty(t, snap.Err)
}

func TestCreateDegradedOnEmptyCacheStartsAtOne(t *testing.T) {
	mgr := downManager(t)
	created, err := mgr.Create(context.Background(), domain.Warranty{
		Name:           "Reloj",
		Price:          100,
		PurchaseDate:   time.Now(),
		ExpirationDate: time.Now().AddDate(0, 6, 0),
	})
	require.ErrorIs(t, err, ErrSavedLocally)
	assert.Equal(t, 1, created.ID)
	assert.Len(t, mgr.Snapshot().Items, 1)
}

func TestCreateSuccessAppendsServerEntity(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Tele", body["name"])
		_, _ = w.Write([]byte(`{"id":42,"name":"Tele","price":500,"purchaseDate":"2024-01-01","expirationDate":"2025-01-01","icon":"tv","isExpired":false,"daysRemaining":100,"createdAt":"2024-01-01"}`))
	}))

	created, err := mgr.Create(context.Background(), domain.Warranty{Name: "Tele", Price: 500})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)
	assert.Equal(t, domain.SyncSynced, created.SyncStatus)
	assert.Empty(t, mgr.Snapshot().Err)
}

func TestUpdateDegradedEditsLocallyAsPending(t *testing.T) {
	mgr := downManager(t)
	seed(mgr, domain.Warranty{ID: 3, Name: "Laptop", CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)})

	updated, err := mgr.Update(context.Background(), 3, domain.Warranty{
		Name:           "Laptop Pro",
		Price:          1500,
		PurchaseDate:   time.Now().AddDate(0, -2, 0),
		ExpirationDate: time.Now().AddDate(2, 0, 0),
	})
	require.ErrorIs(t, err, ErrSavedLocally)
	assert.Equal(t, 3, updated.ID)
	assert.Equal(t, domain.SyncPending, updated.SyncStatus)
	assert.Equal(t, 2024, updated.CreatedAt.Year(), "keeps original creation date")

	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "Laptop Pro", snap.Items[0].Name)
}

func TestDeleteRemovesLocallyOnSuccess(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	seed(mgr, domain.Warranty{ID: 3}, domain.Warranty{ID: 7})

	require.NoError(t, mgr.Delete(context.Background(), 3))
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 7, snap.Items[0].ID)
	assert.Empty(t, snap.Err)
}

func TestDeleteRemovesLocallyOnFailureToo(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	seed(mgr, domain.Warranty{ID: 3}, domain.Warranty{ID: 7})

	err := mgr.Delete(context.Background(), 3)
	require.Error(t, err)
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 7, snap.Items[0].ID)
	assert.Equal(t, "server error", snap.Err)
}

func TestLoadByIDFallsBackToCache(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	seed(mgr, domain.Warranty{ID: 3, Name: "Laptop"})

	got, err := mgr.LoadByID(context.Background(), 3)
	require.NoError(t, err, "stale cache is served instead of failing")
	assert.Equal(t, "Laptop", got.Name)

	snap := mgr.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 3, snap.Selected.ID)
	assert.Equal(t, "server error", snap.Err)
}

func TestLoadByIDMissEverywhereFails(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	_, err := mgr.LoadByID(context.Background(), 99)
	require.Error(t, err)
	assert.Nil(t, mgr.Snapshot().Selected)
}

func TestBulkDeleteRemovesAllLocally(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	seed(mgr, domain.Warranty{ID: 1}, domain.Warranty{ID: 2}, domain.Warranty{ID: 3})

	err := mgr.BulkDelete(context.Background(), []int{1, 3})
	require.Error(t, err)
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].ID)
}

func TestLoadExpiringSoonPath(t *testing.T) {
	var gotPath, gotQuery string
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	_, err := mgr.LoadExpiringSoon(context.Background(), 30)
	require.NoError(t, err)
	assert.Equal(t, "/api/warranty/expiring-soon", gotPath)
	assert.Equal(t, "days=30", gotQuery)
}

func TestLoadExpiredReplacesItems(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/warranty/expired", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":7,"name":"Refri","price":900,"purchaseDate":"2020-05-01","expirationDate":"2021-05-01","icon":"refri","isExpired":true,"daysRemaining":-800,"createdAt":"2020-05-01"}
		]`))
	}))
	seed(mgr, domain.Warranty{ID: 3}, domain.Warranty{ID: 7})

	items, err := mgr.LoadExpired(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsExpired)

	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1, "filtered load replaces the cached list")
	assert.Equal(t, 7, snap.Items[0].ID)
}

func TestLoadStatistics(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/warranty/statistics", r.URL.Path)
		_, _ = w.Write([]byte(`{"total":12,"active":8,"expired":3,"expiringSoon":1,"totalValue":45800.50}`))
	}))

	stats, err := mgr.LoadStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.Total)
	assert.Equal(t, 1, stats.ExpiringSoon)
	assert.InDelta(t, 45800.50, stats.TotalValue, 1e-9)

	snap := mgr.Snapshot()
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 8, snap.Stats.Active)
}

func TestLoadStatisticsFailureKeepsPrevious(t *testing.T) {
	fail := false
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"total":12,"active":8,"expired":3,"expiringSoon":1,"totalValue":45800.50}`))
	}))

	_, err := mgr.LoadStatistics(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = mgr.LoadStatistics(context.Background())
	require.Error(t, err)

	snap := mgr.Snapshot()
	require.NotNil(t, snap.Stats, "stale aggregate stays renderable")
	assert.Equal(t, 12, snap.Stats.Total)
	assert.Equal(t, "server error", snap.Err)
}

// seed plants items directly in the cache, as a prior successful load
// would have.
func seed(m *Manager, items ...domain.Warranty) {
	m.mu.Lock()
	m.items = append(m.items, items...)
	m.mu.Unlock()
}

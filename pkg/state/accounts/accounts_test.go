package accounts

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/auth"
	"github.com/jbadilla/finanzas-go/pkg/domain"
)

// fakeBackend keeps accounts in memory so create-then-load round trips
// behave like the real server.
type fakeBackend struct {
	mu     sync.Mutex
	nextID int
	items  []map[string]any
}

func (f *fakeBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(f.items)
		case http.MethodPost:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.nextID++
			body["id"] = f.nextID
			f.items = append(f.items, body)
			_ = json.NewEncoder(w).Encode(body)
		}
	})
}

func newManager(t *testing.T, handler http.Handler) *Manager {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := apiclient.New(server.URL, time.Second, auth.NewContext(), logger)
	return New(api, logger)
}

func TestCreateThenLoadReturnsServerAssignedID(t *testing.T) {
	backend := &fakeBackend{}
	mgr := newManager(t, backend.handler())

	created, err := mgr.Create(context.Background(), domain.Account{
		Name:        "Ahorros",
		AccountType: domain.AccountTypeSavings,
		Balance:     50000,
		Currency:    domain.CurrencyCRC,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	items, err := mgr.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Ahorros", items[0].Name)
	assert.Equal(t, domain.AccountTypeSavings, items[0].AccountType)
	assert.Equal(t, 1, items[0].ID)
	assert.InDelta(t, 50000, items[0].Balance, 1e-9)
}

func TestLoadFailureKeepsItemsAndSetsError(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	_, err := mgr.Load(context.Background())
	require.Error(t, err)
	snap := mgr.Snapshot()
	assert.False(t, snap.Loading)
	assert.Equal(t, "unauthorized", snap.Err)
}

func TestDeleteIsLocallyOptimistic(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	mgr.mu.Lock()
	mgr.items = []domain.Account{{ID: 1, Name: "Ahorros"}, {ID: 2, Name: "Efectivo"}}
	mgr.mu.Unlock()

	err := mgr.Delete(context.Background(), 1)
	require.Error(t, err)
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].ID)
	assert.Equal(t, "server error", snap.Err)
}

func TestUpdateReplacesCachedItem(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/account/1", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1,"name":"Ahorros CR","accountType":"Cuenta de ahorros","balance":60000,"currency":"CRC"}`))
	}))
	mgr.mu.Lock()
	mgr.items = []domain.Account{{ID: 1, Name: "Ahorros"}}
	mgr.mu.Unlock()

	updated, err := mgr.Update(context.Background(), 1, domain.Account{Name: "Ahorros CR"})
	require.NoError(t, err)
	assert.Equal(t, "Ahorros CR", updated.Name)
	assert.Equal(t, "Ahorros CR", mgr.Snapshot().Items[0].Name)
}

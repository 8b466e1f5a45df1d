package movements

import (
	"context"
	"encoding/json"
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

func newManager(t *testing.T, handler http.Handler) *Manager {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := apiclient.New(server.URL, time.Second, auth.NewContext(), logger)
	return New(api, logger)
}

func TestLoadByAccountPath(t *testing.T) {
	var gotPath string
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"id":7,"amount":12500,"description":"super","date":"2025-01-10","type":"expense","paymentMethod":"card","categoryId":3,"accountId":1}]`))
	}))

	items, err := mgr.LoadByAccount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/api/movement/account/1", gotPath)
	require.Len(t, items, 1)
	assert.Equal(t, "super", items[0].Description)
}

func TestCreateSerializesDateAsDayOnly(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-03-05", body["date"], "wire dates carry no time component")
		_, _ = w.Write([]byte(`{"id":8,"amount":9900,"description":"cine","date":"2025-03-05","type":"expense","paymentMethod":"cash","categoryId":4,"accountId":1}`))
	}))

	mov, err := mgr.Create(context.Background(), domain.Movement{
		Amount:        9900,
		Description:   "cine",
		Date:          time.Date(2025, 3, 5, 18, 45, 12, 0, time.UTC),
		Type:          "expense",
		PaymentMethod: "cash",
		CategoryID:    4,
		AccountID:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, mov.ID)
	assert.Len(t, mgr.Snapshot().Items, 1)
}

func TestDeleteFailureStillRemoves(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	mgr.mu.Lock()
	mgr.items = []domain.Movement{{ID: 7}, {ID: 8}}
	mgr.mu.Unlock()

	err := mgr.Delete(context.Background(), 7)
	require.Error(t, err)
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 8, snap.Items[0].ID)
	assert.Equal(t, "server error", snap.Err)
}

func TestLoadByIDSelects(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/movement/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"amount":12500,"description":"super","date":"2025-01-10","type":"expense","paymentMethod":"card","categoryId":3,"accountId":1}`))
	}))

	mov, err := mgr.LoadByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, mov.ID)

	snap := mgr.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "super", snap.Selected.Description)

	mgr.ClearSelected()
	assert.Nil(t, mgr.Snapshot().Selected)
}

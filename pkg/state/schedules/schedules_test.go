package schedules

import (
	"context"
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

func TestLoadDropdownDataJoinsBothFetches(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/account":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Ahorros","accountType":"Cuenta de ahorros","balance":50000,"currency":"CRC"}]`))
		case "/api/category":
			_, _ = w.Write([]byte(`[{"id":10,"name":"Servicios","icon":"bolt"},{"id":11,"name":"Hogar","icon":"home"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	data, err := mgr.LoadDropdownData(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Accounts, 1)
	require.Len(t, data.Categories, 2)
	assert.Equal(t, "Ahorros", data.Accounts[0].Name)
	assert.Equal(t, "Servicios", data.Categories[0].Name)

	snap := mgr.Snapshot()
	assert.Len(t, snap.Dropdown.Accounts, 1)
	assert.Len(t, snap.Dropdown.Categories, 2)
}

func TestLoadDropdownDataOneFailureFailsWhole(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/account" {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := mgr.LoadDropdownData(context.Background())
	require.Error(t, err)
	snap := mgr.Snapshot()
	assert.Empty(t, snap.Dropdown.Accounts, "no partial data on failure")
	assert.Empty(t, snap.Dropdown.Categories)
	assert.NotEmpty(t, snap.Err)
}

func TestCreateAppendsServerEntity(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/scheduledPayment", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"paymentName":"Internet","accountId":1,"accountName":"Ahorros","categoryId":10,"categoryName":"Servicios","amount":25000,"paymentMethod":"card","frequency":"monthly","startDate":"2025-02-01"}`))
	}))

	sp, err := mgr.Create(context.Background(), domain.ScheduledPayment{
		PaymentName: "Internet",
		AccountID:   1,
		CategoryID:  10,
		Amount:      25000,
		Frequency:   domain.FrequencyMonthly,
		StartDate:   time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, sp.ID)
	assert.Equal(t, "Ahorros", sp.AccountName, "denormalized names come from the server")
	assert.Equal(t, domain.FrequencyMonthly, sp.Frequency)
}

func TestDeleteIsLocallyOptimistic(t *testing.T) {
	mgr := newManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	mgr.mu.Lock()
	mgr.items = []domain.ScheduledPayment{{ID: 5}, {ID: 6}}
	mgr.mu.Unlock()

	err := mgr.Delete(context.Background(), 5)
	require.Error(t, err)
	snap := mgr.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 6, snap.Items[0].ID)
}

// Package dashboard fetches the read-only statistics aggregate.
package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
)

const basePath = "/api/statistics/dashboard"

// Manager caches the last fetched dashboard. The aggregate is never
// mutated client-side.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu        sync.Mutex
	data      *domain.Dashboard
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Data    *domain.Dashboard
	Loading bool
	Err     string
}

// New creates a dashboard manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{Loading: m.loading, Err: m.lastError}
	if m.data != nil {
		d := *m.data
		s.Data = &d
	}
	return s
}

// Load fetches the aggregate and replaces the cached copy.
func (m *Manager) Load(ctx context.Context) (*domain.Dashboard, error) {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()

	var out dto.DashboardRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.logger.Warn("dashboard load failed, keeping previous aggregate", "error", err)
		m.mu.Lock()
		m.loading = false
		m.lastError = apiclient.UserMessage(err)
		m.mu.Unlock()
		return nil, err
	}
	data := mapper.DashboardToDomain(out)
	m.mu.Lock()
	m.data = &data
	m.loading = false
	m.mu.Unlock()
	return &data, nil
}

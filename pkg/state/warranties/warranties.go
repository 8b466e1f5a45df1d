// Package warranties owns the warranty collection. Unlike the other
// resources it keeps working when the backend is down: failed creates
// and updates are applied to the local cache with an explicit sync tag,
// so the list diverges from server state until the next successful load.
package warranties

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
)

const basePath = "/api/warranty"

// ErrSavedLocally reports a degraded-mode write: the mutation was
// applied to the local cache only. The entity is still usable; callers
// show a softened message instead of a hard failure.
var ErrSavedLocally = errors.New("saved locally, sync with server failed")

// savedLocallyMessage is what screens display for degraded writes.
const savedLocallyMessage = "saved locally, sync failed"

// Manager caches the warranty list, the detail selection and the
// backend's statistics aggregate.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu        sync.Mutex
	items     []domain.Warranty
	selected  *domain.Warranty
	stats     *domain.WarrantyStats
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Items    []domain.Warranty
	Selected *domain.Warranty
	Stats    *domain.WarrantyStats
	Loading  bool
	Err      string
}

// New creates a warranty manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items:   append([]domain.Warranty(nil), m.items...),
		Loading: m.loading,
		Err:     m.lastError,
	}
	if m.selected != nil {
		sel := *m.selected
		s.Selected = &sel
	}
	if m.stats != nil {
		st := *m.stats
		s.Stats = &st
	}
	return s
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.loading = true
	m.lastError = ""
	m.mu.Unlock()
}

func (m *Manager) finish(errMsg string) {
	m.mu.Lock()
	m.loading = false
	m.lastError = errMsg
	m.mu.Unlock()
}

// Load replaces the cached list with the server's collection. A
// successful full load is the only thing that reconciles local-only
// records away.
func (m *Manager) Load(ctx context.Context) ([]domain.Warranty, error) {
	m.begin()
	var out []dto.WarrantyRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.WarrantiesToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadExpired fetches only the already-expired warranties.
func (m *Manager) LoadExpired(ctx context.Context) ([]domain.Warranty, error) {
	return m.loadFiltered(ctx, basePath+"/expired")
}

// LoadExpiringSoon fetches warranties expiring within the given days.
func (m *Manager) LoadExpiringSoon(ctx context.Context, days int) ([]domain.Warranty, error) {
	return m.loadFiltered(ctx, fmt.Sprintf("%s/expiring-soon?days=%d", basePath, days))
}

func (m *Manager) loadFiltered(ctx context.Context, path string) ([]domain.Warranty, error) {
	m.begin()
	var out []dto.WarrantyRead
	if err := m.api.Get(ctx, path, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.WarrantiesToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadStatistics fetches the backend's warranty aggregate.
func (m *Manager) LoadStatistics(ctx context.Context) (*domain.WarrantyStats, error) {
	m.begin()
	var out dto.WarrantyStatsRead
	if err := m.api.Get(ctx, basePath+"/statistics", &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	stats := mapper.WarrantyStatsToDomain(out)
	m.mu.Lock()
	m.stats = &stats
	m.mu.Unlock()
	m.finish("")
	return &stats, nil
}

// LoadByID fetches one warranty and selects it. When the request fails
// the manager falls back to the cached list, tolerating stale data so
// the detail screen still has something to show.
func (m *Manager) LoadByID(ctx context.Context, id int) (*domain.Warranty, error) {
	m.begin()
	var out dto.WarrantyRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &out); err != nil {
		m.mu.Lock()
		for i := range m.items {
			if m.items[i].ID == id {
				cached := m.items[i]
				m.selected = &cached
				m.mu.Unlock()
				m.finish(apiclient.UserMessage(err))
				m.logger.Warn("detail fetch failed, serving cached warranty", "id", id)
				sel := cached
				return &sel, nil
			}
		}
		m.mu.Unlock()
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	w := mapper.WarrantyToDomain(out)
	m.mu.Lock()
	m.selected = &w
	m.mu.Unlock()
	m.finish("")
	return &w, nil
}

// nextLocalID picks max existing id + 1 for a client-only record.
// Callers must hold the lock.
func (m *Manager) nextLocalID() int {
	maxID := 0
	for _, w := range m.items {
		if w.ID > maxID {
			maxID = w.ID
		}
	}
	return maxID + 1
}

// Create posts the warranty. On success the server-canonical entity is
// appended. On failure a synthetic local-only entity is appended anyway
// and ErrSavedLocally is returned along with it.
func (m *Manager) Create(ctx context.Context, in domain.Warranty) (*domain.Warranty, error) {
	m.begin()
	var out dto.WarrantyRead
	if err := m.api.Post(ctx, basePath, mapper.WarrantyToWrite(in), &out); err != nil {
		local := in
		local.CreatedAt = time.Now()
		local.SyncStatus = domain.SyncLocalOnly
		local.Refresh(time.Now())
		m.mu.Lock()
		local.ID = m.nextLocalID()
		m.items = append(m.items, local)
		m.mu.Unlock()
		m.finish(savedLocallyMessage)
		m.logger.Warn("create failed, warranty saved locally", "id", local.ID, "error", err)
		return &local, ErrSavedLocally
	}
	w := mapper.WarrantyToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, w)
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("warranty created", "id", w.ID, "name", w.Name)
	return &w, nil
}

// Update puts the warranty. On failure the edit is applied to the cached
// item anyway, tagged pending, and ErrSavedLocally is returned.
func (m *Manager) Update(ctx context.Context, id int, in domain.Warranty) (*domain.Warranty, error) {
	m.begin()
	var out dto.WarrantyRead
	if err := m.api.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), mapper.WarrantyToWrite(in), &out); err != nil {
		local := in
		local.ID = id
		local.SyncStatus = domain.SyncPending
		local.Refresh(time.Now())
		m.mu.Lock()
		for i := range m.items {
			if m.items[i].ID == id {
				local.CreatedAt = m.items[i].CreatedAt
				m.items[i] = local
				break
			}
		}
		if m.selected != nil && m.selected.ID == id {
			m.selected = &local
		}
		m.mu.Unlock()
		m.finish(savedLocallyMessage)
		m.logger.Warn("update failed, warranty edited locally", "id", id, "error", err)
		return &local, ErrSavedLocally
	}
	w := mapper.WarrantyToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = w
			break
		}
	}
	if m.selected != nil && m.selected.ID == id {
		m.selected = &w
	}
	m.mu.Unlock()
	m.finish("")
	return &w, nil
}

// Delete removes the warranty locally regardless of the server outcome.
func (m *Manager) Delete(ctx context.Context, id int) error {
	m.begin()
	err := m.api.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id), nil)
	m.removeLocal(id)
	if err != nil {
		m.logger.Warn("server delete failed, removed locally", "id", id, "error", err)
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

// BulkDelete removes several warranties in one call, with the same
// locally-optimistic removal as Delete.
func (m *Manager) BulkDelete(ctx context.Context, ids []int) error {
	m.begin()
	err := m.api.DeleteWithBody(ctx, basePath, dto.WarrantyBulkDelete{IDs: ids}, nil)
	for _, id := range ids {
		m.removeLocal(id)
	}
	if err != nil {
		m.logger.Warn("server bulk delete failed, removed locally", "count", len(ids), "error", err)
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

func (m *Manager) removeLocal(id int) {
	m.mu.Lock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	if m.selected != nil && m.selected.ID == id {
		m.selected = nil
	}
	m.mu.Unlock()
}

// ClearSelected drops the detail selection.
func (m *Manager) ClearSelected() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

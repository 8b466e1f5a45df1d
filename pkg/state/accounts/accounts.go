// Package accounts owns the in-memory account collection and its CRUD
// operations against the backend.
package accounts

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
)

const basePath = "/api/account"

// Manager caches the account list. It exclusively owns its state;
// screens read it through Snapshot.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu        sync.Mutex
	items     []domain.Account
	selected  *domain.Account
	loading   bool
	lastError string
}

// Snapshot is a copy of the manager state for rendering.
type Snapshot struct {
	Items    []domain.Account
	Selected *domain.Account
	Loading  bool
	Err      string
}

// New creates an account manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items:   append([]domain.Account(nil), m.items...),
		Loading: m.loading,
		Err:     m.lastError,
	}
	if m.selected != nil {
		sel := *m.selected
		s.Selected = &sel
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

// Load replaces the cached list with the server's collection.
func (m *Manager) Load(ctx context.Context) ([]domain.Account, error) {
	m.begin()
	var out []dto.AccountRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.AccountsToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadByID fetches one account and selects it.
func (m *Manager) LoadByID(ctx context.Context, id int) (*domain.Account, error) {
	m.begin()
	var out dto.AccountRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	acc := mapper.AccountToDomain(out)
	m.mu.Lock()
	m.selected = &acc
	m.mu.Unlock()
	m.finish("")
	return &acc, nil
}

// Create posts the account and appends the server-canonical entity, with
// its assigned id, to the cache.
func (m *Manager) Create(ctx context.Context, in domain.Account) (*domain.Account, error) {
	m.begin()
	body := dto.AccountWrite{
		Name:        in.Name,
		AccountType: in.AccountType,
		Balance:     in.Balance,
		Currency:    in.Currency,
	}
	var out dto.AccountRead
	if err := m.api.Post(ctx, basePath, body, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	acc := mapper.AccountToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, acc)
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("account created", "id", acc.ID, "name", acc.Name)
	return &acc, nil
}

// Update puts the account and replaces the matching cached item.
func (m *Manager) Update(ctx context.Context, id int, in domain.Account) (*domain.Account, error) {
	m.begin()
	body := dto.AccountWrite{
		Name:        in.Name,
		AccountType: in.AccountType,
		Balance:     in.Balance,
		Currency:    in.Currency,
	}
	var out dto.AccountRead
	if err := m.api.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), body, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	acc := mapper.AccountToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = acc
			break
		}
	}
	m.mu.Unlock()
	m.finish("")
	return &acc, nil
}

// Delete removes the account locally whether or not the server call
// succeeds; a failed server delete only surfaces as an error message.
func (m *Manager) Delete(ctx context.Context, id int) error {
	m.begin()
	err := m.api.Delete(ctx, fmt.Sprintf("%s/%d", basePath, id), nil)
	m.mu.Lock()
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	m.items = kept
	m.mu.Unlock()
	if err != nil {
		m.logger.Warn("server delete failed, removed locally", "id", id, "error", err)
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

// ClearSelected drops the detail selection when its screen closes.
func (m *Manager) ClearSelected() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

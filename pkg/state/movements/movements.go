// Package movements owns the in-memory movement collection.
package movements

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

const basePath = "/api/movement"

// Manager caches the movement list and the detail selection.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu        sync.Mutex
	items     []domain.Movement
	selected  *domain.Movement
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Items    []domain.Movement
	Selected *domain.Movement
	Loading  bool
	Err      string
}

// New creates a movement manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items:   append([]domain.Movement(nil), m.items...),
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

func toWrite(in domain.Movement) dto.MovementWrite {
	return dto.MovementWrite{
		Amount:               in.Amount,
		Description:          in.Description,
		Date:                 dto.NewApiDate(in.Date),
		Time:                 in.Time,
		Type:                 in.Type,
		PaymentMethod:        in.PaymentMethod,
		Warranty:             in.WarrantyMonths,
		State:                in.State,
		Location:             in.Location,
		CategoryID:           in.CategoryID,
		AccountID:            in.AccountID,
		DestinationAccountID: in.DestinationAccountID,
	}
}

// Load replaces the cached list with the server's collection.
func (m *Manager) Load(ctx context.Context) ([]domain.Movement, error) {
	m.begin()
	var out []dto.MovementRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.MovementsToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadByAccount fetches only the movements of one account.
func (m *Manager) LoadByAccount(ctx context.Context, accountID int) ([]domain.Movement, error) {
	m.begin()
	var out []dto.MovementRead
	path := fmt.Sprintf("%s/account/%d", basePath, accountID)
	if err := m.api.Get(ctx, path, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.MovementsToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadByID fetches one movement and selects it.
func (m *Manager) LoadByID(ctx context.Context, id int) (*domain.Movement, error) {
	m.begin()
	var out dto.MovementRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	mov := mapper.MovementToDomain(out)
	m.mu.Lock()
	m.selected = &mov
	m.mu.Unlock()
	m.finish("")
	return &mov, nil
}

// Create posts the movement and appends the server-canonical entity.
// Transfer destination validation is the form's job; the backend accepts
// what it is sent.
func (m *Manager) Create(ctx context.Context, in domain.Movement) (*domain.Movement, error) {
	m.begin()
	var out dto.MovementRead
	if err := m.api.Post(ctx, basePath, toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	mov := mapper.MovementToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, mov)
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("movement created", "id", mov.ID, "type", mov.Type, "amount", mov.Amount)
	return &mov, nil
}

// Update puts the movement and replaces the matching cached item.
func (m *Manager) Update(ctx context.Context, id int, in domain.Movement) (*domain.Movement, error) {
	m.begin()
	var out dto.MovementRead
	if err := m.api.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	mov := mapper.MovementToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = mov
			break
		}
	}
	m.mu.Unlock()
	m.finish("")
	return &mov, nil
}

// Delete removes the movement locally regardless of the server outcome.
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

// ClearSelected drops the detail selection.
func (m *Manager) ClearSelected() {
	m.mu.Lock()
	m.selected = nil
	m.mu.Unlock()
}

// Package schedules owns the scheduled-payment collection and the
// dropdown data used by its create/edit forms.
package schedules

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
)

const (
	basePath       = "/api/scheduledPayment"
	accountsPath   = "/api/account"
	categoriesPath = "/api/category"
)

// DropdownData feeds the account and category selectors.
type DropdownData struct {
	Accounts   []domain.Account
	Categories []domain.Category
}

// Manager caches the scheduled payments and the latest dropdown data.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu        sync.Mutex
	items     []domain.ScheduledPayment
	selected  *domain.ScheduledPayment
	dropdown  DropdownData
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Items    []domain.ScheduledPayment
	Selected *domain.ScheduledPayment
	Dropdown DropdownData
	Loading  bool
	Err      string
}

// New creates a scheduled-payment manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items: append([]domain.ScheduledPayment(nil), m.items...),
		Dropdown: DropdownData{
			Accounts:   append([]domain.Account(nil), m.dropdown.Accounts...),
			Categories: append([]domain.Category(nil), m.dropdown.Categories...),
		},
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

func toWrite(in domain.ScheduledPayment) dto.ScheduledPaymentWrite {
	return dto.ScheduledPaymentWrite{
		PaymentName:   in.PaymentName,
		AccountID:     in.AccountID,
		CategoryID:    in.CategoryID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Frequency:     string(in.Frequency),
		StartDate:     dto.NewApiDate(in.StartDate),
	}
}

// Load replaces the cached list with the server's collection.
func (m *Manager) Load(ctx context.Context) ([]domain.ScheduledPayment, error) {
	m.begin()
	var out []dto.ScheduledPaymentRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.ScheduledPaymentsToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadDropdownData fetches accounts and categories concurrently and
// joins both before updating state. Either sub-request failing fails the
// whole operation with a single aggregated error; no partial data is
// stored.
func (m *Manager) LoadDropdownData(ctx context.Context) (DropdownData, error) {
	m.begin()
	var (
		accs []dto.AccountRead
		cats []dto.CategoryRead
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return m.api.Get(gctx, accountsPath, &accs)
	})
	g.Go(func() error {
		return m.api.Get(gctx, categoriesPath, &cats)
	})
	if err := g.Wait(); err != nil {
		m.finish(apiclient.UserMessage(err))
		return DropdownData{}, err
	}
	data := DropdownData{
		Accounts:   mapper.AccountsToDomain(accs),
		Categories: mapper.CategoriesToDomain(cats),
	}
	m.mu.Lock()
	m.dropdown = data
	m.mu.Unlock()
	m.finish("")
	return data, nil
}

// LoadByID fetches one scheduled payment and selects it for the edit
// form.
func (m *Manager) LoadByID(ctx context.Context, id int) (*domain.ScheduledPayment, error) {
	m.begin()
	var out dto.ScheduledPaymentRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%d", basePath, id), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	sp := mapper.ScheduledPaymentToDomain(out)
	m.mu.Lock()
	m.selected = &sp
	m.mu.Unlock()
	m.finish("")
	return &sp, nil
}

// Create posts the scheduled payment and appends the server-canonical
// entity. Start-date-not-in-the-past is the form's responsibility.
func (m *Manager) Create(ctx context.Context, in domain.ScheduledPayment) (*domain.ScheduledPayment, error) {
	m.begin()
	var out dto.ScheduledPaymentRead
	if err := m.api.Post(ctx, basePath, toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	sp := mapper.ScheduledPaymentToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, sp)
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("scheduled payment created", "id", sp.ID, "name", sp.PaymentName)
	return &sp, nil
}

// Update puts the scheduled payment and replaces the cached item.
func (m *Manager) Update(ctx context.Context, id int, in domain.ScheduledPayment) (*domain.ScheduledPayment, error) {
	m.begin()
	var out dto.ScheduledPaymentRead
	if err := m.api.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	sp := mapper.ScheduledPaymentToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = sp
			break
		}
	}
	m.mu.Unlock()
	m.finish("")
	return &sp, nil
}

// Delete removes the scheduled payment locally regardless of the server
// outcome.
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

// Package exchangerates owns the backend's stored exchange rates and
// fronts the external rate-board aggregator.
package exchangerates

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
	"github.com/jbadilla/finanzas-go/pkg/rates"
)

const basePath = "/api/ExchangeRate"

// Manager caches the stored rates and the last external board.
type Manager struct {
	api        *apiclient.Client
	aggregator *rates.Aggregator
	logger     *slog.Logger

	mu        sync.Mutex
	items     []domain.ExchangeRate
	board     *domain.RateBoard
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Items   []domain.ExchangeRate
	Board   *domain.RateBoard
	Loading bool
	Err     string
}

// New creates an exchange-rate manager.
func New(api *apiclient.Client, aggregator *rates.Aggregator, logger *slog.Logger) *Manager {
	return &Manager{api: api, aggregator: aggregator, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items:   append([]domain.ExchangeRate(nil), m.items...),
		Loading: m.loading,
		Err:     m.lastError,
	}
	if m.board != nil {
		b := *m.board
		s.Board = &b
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

// Load replaces the cached stored-rate list.
func (m *Manager) Load(ctx context.Context) ([]domain.ExchangeRate, error) {
	m.begin()
	var out []dto.ExchangeRateRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.ExchangeRatesToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadCurrent fetches the backend's current rate.
func (m *Manager) LoadCurrent(ctx context.Context) (*domain.ExchangeRate, error) {
	m.begin()
	var out dto.ExchangeRateRead
	if err := m.api.Get(ctx, basePath+"/current", &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	r := mapper.ExchangeRateToDomain(out)
	m.finish("")
	return &r, nil
}

// LoadPair fetches the stored rate for one currency pair.
func (m *Manager) LoadPair(ctx context.Context, from, to string) (*domain.ExchangeRate, error) {
	m.begin()
	var out dto.ExchangeRateRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%s/%s", basePath, from, to), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	r := mapper.ExchangeRateToDomain(out)
	m.finish("")
	return &r, nil
}

// LoadBoard refreshes the external buy/sell board via the aggregator.
// The EUR side may be approximate when the secondary source is down;
// that is not surfaced as an error.
func (m *Manager) LoadBoard(ctx context.Context) (domain.RateBoard, error) {
	m.begin()
	board, err := m.aggregator.Board(ctx)
	if err != nil {
		m.finish(apiclient.UserMessage(err))
		return domain.RateBoard{}, err
	}
	m.mu.Lock()
	m.board = &board
	m.mu.Unlock()
	m.finish("")
	return board, nil
}

// Create posts a stored rate and appends the server-canonical entity.
func (m *Manager) Create(ctx context.Context, in domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m.begin()
	body := dto.ExchangeRateWrite{
		FromCurrency: in.FromCurrency,
		ToCurrency:   in.ToCurrency,
		Rate:         in.Rate,
		Date:         dto.NewApiDate(in.Date),
	}
	var out dto.ExchangeRateRead
	if err := m.api.Post(ctx, basePath, body, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	r := mapper.ExchangeRateToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, r)
	m.mu.Unlock()
	m.finish("")
	return &r, nil
}

// Update puts a stored rate and replaces the cached item.
func (m *Manager) Update(ctx context.Context, id int, in domain.ExchangeRate) (*domain.ExchangeRate, error) {
	m.begin()
	body := dto.ExchangeRateWrite{
		FromCurrency: in.FromCurrency,
		ToCurrency:   in.ToCurrency,
		Rate:         in.Rate,
		Date:         dto.NewApiDate(in.Date),
	}
	var out dto.ExchangeRateRead
	if err := m.api.Put(ctx, fmt.Sprintf("%s/%d", basePath, id), body, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	r := mapper.ExchangeRateToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = r
			break
		}
	}
	m.mu.Unlock()
	m.finish("")
	return &r, nil
}

// Delete removes the stored rate locally regardless of the server
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

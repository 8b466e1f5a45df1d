// Package goals owns the savings-goal collection, the status-tab
// filtering and the append-only contribution flow.
package goals

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
)

const basePath = "/api/goal"

// Manager caches the goal list, the detail selection and the selected
// goal's contributions.
type Manager struct {
	api    *apiclient.Client
	logger *slog.Logger

	mu            sync.Mutex
	items         []domain.Goal
	selected      *domain.Goal
	contributions []domain.GoalContribution
	loading       bool
	lastError     string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	Items         []domain.Goal
	Selected      *domain.Goal
	Contributions []domain.GoalContribution
	Loading       bool
	Err           string
}

// New creates a goal manager.
func New(api *apiclient.Client, logger *slog.Logger) *Manager {
	return &Manager{api: api, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Items:         append([]domain.Goal(nil), m.items...),
		Contributions: append([]domain.GoalContribution(nil), m.contributions...),
		Loading:       m.loading,
		Err:           m.lastError,
	}
	if m.selected != nil {
		sel := *m.selected
		s.Selected = &sel
	}
	return s
}

// ByState filters the cached goals for the status tabs. Pure local
// filtering; no request is made.
func (m *Manager) ByState(state domain.GoalState) []domain.Goal {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Goal
	for _, g := range m.items {
		if g.State == state {
			out = append(out, g)
		}
	}
	return out
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

func toWrite(in domain.Goal) dto.GoalWrite {
	return dto.GoalWrite{
		Name:     in.Name,
		Quantity: in.Quantity,
		GoalDate: dto.NewApiDate(in.GoalDate),
		Icon:     in.Icon,
		State:    string(in.State),
		Note:     in.Note,
	}
}

// Load replaces the cached list with the server's collection.
func (m *Manager) Load(ctx context.Context) ([]domain.Goal, error) {
	m.begin()
	var out []dto.GoalRead
	if err := m.api.Get(ctx, basePath, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	items := mapper.GoalsToDomain(out)
	m.mu.Lock()
	m.items = items
	m.mu.Unlock()
	m.finish("")
	return items, nil
}

// LoadByID fetches one goal and selects it.
func (m *Manager) LoadByID(ctx context.Context, id string) (*domain.Goal, error) {
	m.begin()
	var out dto.GoalRead
	if err := m.api.Get(ctx, basePath+"/"+id, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	g := mapper.GoalToDomain(out)
	m.mu.Lock()
	m.selected = &g
	m.mu.Unlock()
	m.finish("")
	return &g, nil
}

// LoadContributions fetches the selected goal's contribution history.
func (m *Manager) LoadContributions(ctx context.Context, goalID string) ([]domain.GoalContribution, error) {
	m.begin()
	var out []dto.ContributionRead
	if err := m.api.Get(ctx, fmt.Sprintf("%s/%s/contributions", basePath, goalID), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	contribs := mapper.ContributionsToDomain(out)
	m.mu.Lock()
	m.contributions = contribs
	m.mu.Unlock()
	m.finish("")
	return contribs, nil
}

// AddContribution posts an additive contribution dated now. On success
// the returned contribution is prepended and the selected goal is
// replaced with the server echo: the server is authoritative for the
// recomputed CurrentQuantity, the client never adds locally.
func (m *Manager) AddContribution(ctx context.Context, goalID string, amount float64, description string) (*domain.GoalContribution, error) {
	m.begin()
	body := dto.ContributionWrite{
		Amount:      amount,
		Date:        dto.NewApiDate(time.Now()),
		Description: description,
	}
	var out dto.ContributionResult
	if err := m.api.Post(ctx, fmt.Sprintf("%s/%s/contributions", basePath, goalID), body, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	contrib := mapper.ContributionToDomain(out.Contribution)
	updated := mapper.GoalToDomain(out.Goal)
	m.mu.Lock()
	m.contributions = append([]domain.GoalContribution{contrib}, m.contributions...)
	m.selected = &updated
	for i := range m.items {
		if m.items[i].ID == updated.ID {
			m.items[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("contribution added", "goal", goalID, "amount", amount,
		"current", updated.CurrentQuantity)
	return &contrib, nil
}

// Create posts the goal and appends the server-canonical entity.
func (m *Manager) Create(ctx context.Context, in domain.Goal) (*domain.Goal, error) {
	m.begin()
	var out dto.GoalRead
	if err := m.api.Post(ctx, basePath, toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	g := mapper.GoalToDomain(out)
	m.mu.Lock()
	m.items = append(m.items, g)
	m.mu.Unlock()
	m.finish("")
	m.logger.Info("goal created", "id", g.ID, "name", g.Name)
	return &g, nil
}

// Update puts the goal and replaces the matching cached item.
func (m *Manager) Update(ctx context.Context, id string, in domain.Goal) (*domain.Goal, error) {
	m.begin()
	var out dto.GoalRead
	if err := m.api.Put(ctx, basePath+"/"+id, toWrite(in), &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	g := mapper.GoalToDomain(out)
	m.mu.Lock()
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i] = g
			break
		}
	}
	if m.selected != nil && m.selected.ID == id {
		m.selected = &g
	}
	m.mu.Unlock()
	m.finish("")
	return &g, nil
}

// Delete removes the goal locally regardless of the server outcome.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.begin()
	err := m.api.Delete(ctx, basePath+"/"+id, nil)
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
	if err != nil {
		m.logger.Warn("server delete failed, removed locally", "id", id, "error", err)
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

// ClearSelected drops the detail selection and its contributions.
func (m *Manager) ClearSelected() {
	m.mu.Lock()
	m.selected = nil
	m.contributions = nil
	m.mu.Unlock()
}

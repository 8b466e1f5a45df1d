// Package session drives the auth endpoints and owns the logged-in user
// state. Login stores the bearer token in the auth context; every other
// manager picks it up through the shared transport client.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jbadilla/finanzas-go/pkg/apiclient"
	"github.com/jbadilla/finanzas-go/pkg/auth"
	"github.com/jbadilla/finanzas-go/pkg/domain"
	"github.com/jbadilla/finanzas-go/pkg/dto"
	"github.com/jbadilla/finanzas-go/pkg/mapper"
	"github.com/jbadilla/finanzas-go/pkg/validation"
)

const basePath = "/api/user"

// Manager owns the current user and the auth context lifecycle.
type Manager struct {
	api    *apiclient.Client
	tokens *auth.Context
	logger *slog.Logger

	mu        sync.Mutex
	user      *domain.User
	loading   bool
	lastError string
}

// Snapshot is a copy of the current state for rendering.
type Snapshot struct {
	User    *domain.User
	Loading bool
	Err     string
}

// New creates a session manager around the shared auth context.
func New(api *apiclient.Client, tokens *auth.Context, logger *slog.Logger) *Manager {
	return &Manager{api: api, tokens: tokens, logger: logger}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{Loading: m.loading, Err: m.lastError}
	if m.user != nil {
		u := *m.user
		s.User = &u
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

// Register validates the form and submits it as multipart text fields,
// the one endpoint that is not JSON.
func (m *Manager) Register(ctx context.Context, in dto.RegisterWrite) (*domain.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	m.begin()
	fields := map[string]string{
		"Name":            in.Name,
		"Email":           in.Email,
		"Password":        in.Password,
		"ConfirmPassword": in.ConfirmPassword,
	}
	var out dto.UserRead
	if err := m.api.PostMultipart(ctx, basePath+"/register", fields, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	u := mapper.UserToDomain(out)
	m.storeSession(u)
	m.finish("")
	m.logger.Info("user registered", "email", u.Email)
	return &u, nil
}

// Login authenticates and stores the returned bearer token.
func (m *Manager) Login(ctx context.Context, email, password string) (*domain.User, error) {
	in := dto.LoginWrite{Email: email, Password: password}
	if err := validation.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	m.begin()
	var out dto.UserRead
	if err := m.api.Post(ctx, basePath+"/login", in, &out); err != nil {
		m.finish(apiclient.UserMessage(err))
		return nil, err
	}
	u := mapper.UserToDomain(out)
	m.storeSession(u)
	m.finish("")
	m.logger.Info("user logged in", "email", u.Email)
	return &u, nil
}

func (m *Manager) storeSession(u domain.User) {
	name := u.Name
	if claims, err := auth.ClaimsFromToken(u.Token); err == nil && claims.Name != "" {
		name = claims.Name
	}
	m.tokens.SetSession(u.Token, name)
	m.mu.Lock()
	m.user = &u
	m.mu.Unlock()
}

// SendResetCode requests a password-reset code by email.
func (m *Manager) SendResetCode(ctx context.Context, email string) error {
	in := dto.SendCodeWrite{Email: email}
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	m.begin()
	if err := m.api.Post(ctx, basePath+"/send-code", in, nil); err != nil {
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

// ResetPassword submits the emailed code with the new password.
func (m *Manager) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	in := dto.ResetPasswordWrite{Email: email, Code: code, NewPassword: newPassword}
	if err := validation.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	m.begin()
	if err := m.api.Post(ctx, basePath+"/reset-password", in, nil); err != nil {
		m.finish(apiclient.UserMessage(err))
		return err
	}
	m.finish("")
	return nil
}

// Logout clears the session; purely local, no request is made.
func (m *Manager) Logout() {
	m.tokens.Clear()
	m.mu.Lock()
	m.user = nil
	m.lastError = ""
	m.mu.Unlock()
	m.logger.Info("user logged out")
}

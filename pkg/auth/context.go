// Package auth holds the session state attached to outgoing requests.
// It is an explicit object handed to the transport client, set on login
// and cleared on logout; there is no package-level mutable state.
package auth

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Context is the process-wide bearer-token holder. Safe for concurrent
// use by in-flight requests.
type Context struct {
	mu       sync.RWMutex
	token    string
	username string
}

// NewContext returns an empty, logged-out context.
func NewContext() *Context {
	return &Context{}
}

// SetSession stores the bearer token and display name after login.
func (c *Context) SetSession(token, username string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.username = username
}

// Clear drops the session on logout.
func (c *Context) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.username = ""
}

// Token returns the bearer token and whether one is present.
func (c *Context) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Username returns the display name captured at login.
func (c *Context) Username() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.username
}

// Claims are the display-relevant fields of the session token.
type Claims struct {
	Name      string
	Email     string
	ExpiresAt time.Time
}

// ClaimsFromToken decodes the token payload without verifying the
// signature. The client has no signing key; verification is the server's
// job, this is only for showing name/expiry in the UI.
func ClaimsFromToken(token string) (Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, err
	}
	mc, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenMalformed
	}
	var c Claims
	if v, ok := mc["name"].(string); ok {
		c.Name = v
	}
	if v, ok := mc["email"].(string); ok {
		c.Email = v
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

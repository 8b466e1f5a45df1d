package domain

import "time"

// SyncStatus tags how a warranty relates to server state. The client can
// keep working when the backend is unreachable, so records may exist only
// locally until the next successful full load.
type SyncStatus string

const (
	// SyncSynced means the record mirrors a server-confirmed entity.
	SyncSynced SyncStatus = "synced"
	// SyncPending means a local edit has not reached the server yet.
	SyncPending SyncStatus = "pending"
	// SyncLocalOnly means the record was created locally after a failed
	// create call and has no server counterpart.
	SyncLocalOnly SyncStatus = "local-only"
)

// Warranty is a purchased item's guarantee. IsExpired and DaysRemaining
// are derived from ExpirationDate and refreshed on every mutation.
type Warranty struct {
	ID             int
	Name           string
	Price          float64
	PurchaseDate   time.Time
	ExpirationDate time.Time
	Icon           string
	IsExpired      bool
	DaysRemaining  int
	CreatedAt      time.Time
	SyncStatus     SyncStatus
}

// Refresh recomputes the derived expiry fields against now. DaysRemaining
// goes negative once the warranty has expired.
func (w *Warranty) Refresh(now time.Time) {
	w.IsExpired = w.ExpirationDate.Before(now)
	w.DaysRemaining = int(w.ExpirationDate.Sub(now).Hours() / 24)
}

// WarrantyStats is the backend's aggregate view over the user's warranties.
type WarrantyStats struct {
	Total        int
	Active       int
	Expired      int
	ExpiringSoon int
	TotalValue   float64
}

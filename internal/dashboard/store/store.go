package store

import (
	"context"
	"errors"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite
// today, postgres if the hosted backend ever moves in-house) implement
// this. Sub-repositories keep concerns tidy and let services depend on
// only the tables they touch.
type Store interface {
	OTPCodes() OTPCodes
	TeamKeys() TeamKeys
	Members() Members
	Accounts() Accounts
	EndUsers() EndUsers
	Transactions() Transactions
	Reports() Reports
	Activity() Activity
	PushTokens() PushTokens
	Notifications() Notifications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn
	// returns nil and rolling back otherwise. This is the recommended
	// way to run multi-step writes (key consumption, membership
	// insert) atomically.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repos plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type OTPCodes interface {
	// CreateCode inserts a freshly issued code (id is ULID, code_hash
	// is a SHA-256 fingerprint of the plaintext digits).
	CreateCode(ctx context.Context, c domain.OTPCode) error

	// GetNewestCodeByHash returns the most recently issued row
	// matching (email, code_hash, purpose).
	GetNewestCodeByHash(ctx context.Context, email, codeHash string, purpose domain.OTPPurpose) (domain.OTPCode, error)

	// DeleteCode removes a single row by id (single-use consumption,
	// or stale-row removal on a failed verification).
	DeleteCode(ctx context.Context, id string) error

	// DeleteCodesForEmail removes every row for (email, purpose).
	// Called when a new code supersedes older ones and after a
	// completed password reset.
	DeleteCodesForEmail(ctx context.Context, email string, purpose domain.OTPPurpose) error

	// DeleteExpiredCodes is housekeeping for abandoned flows.
	DeleteExpiredCodes(ctx context.Context) error

	// CountCodesForEmail reports outstanding rows for (email, purpose).
	CountCodesForEmail(ctx context.Context, email string, purpose domain.OTPPurpose) (int, error)
}

type TeamKeys interface {
	// CreateKey inserts a provisioned key (admin tooling only).
	CreateKey(ctx context.Context, k domain.TeamKey) error

	// GetKeyByCode fetches a key regardless of usability, so callers
	// can tell an unknown key from an inactive/expired/spent one.
	GetKeyByCode(ctx context.Context, keyCode string) (domain.TeamKey, error)

	// ConsumeKey atomically increments current_uses iff the key is
	// active, under quota and unexpired as of now. Returns false when
	// the conditional update matched no row. This single conditional
	// UPDATE is what makes quota-boundary races resolve to exactly
	// one winner.
	ConsumeKey(ctx context.Context, keyCode string, now time.Time) (bool, error)

	// ReleaseKey decrements current_uses, never below zero. Used as
	// the compensating action when a later signup step fails.
	ReleaseKey(ctx context.Context, keyID string) error

	// SetCreatedByIfUnset records the first consumer's account id.
	SetCreatedByIfUnset(ctx context.Context, keyID, accountID string) error

	// ListKeys returns all keys newest-first (admin tooling).
	ListKeys(ctx context.Context) ([]domain.TeamKey, error)
}

type Members interface {
	CreateMember(ctx context.Context, m domain.Member) error
	GetMemberByAccountID(ctx context.Context, accountID string) (domain.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (domain.Member, error)

	// TouchLogin refreshes last_login and flips is_active on. Runs on
	// every authenticated request, not just login.
	TouchLogin(ctx context.Context, memberID string, at time.Time) error

	// SetActive flips the is_active flag (deactivation path; rows are
	// never deleted).
	SetActive(ctx context.Context, memberID string, active bool) error
}

// Accounts backs the local identity provider. Unused when an external
// identity service is configured.
type Accounts interface {
	CreateAccount(ctx context.Context, a domain.Account) error
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	UpdatePasswordHash(ctx context.Context, accountID, newHash string) error
}

type EndUsers interface {
	ListEndUsers(ctx context.Context) ([]domain.EndUser, error)
	GetEndUserByID(ctx context.Context, id string) (domain.EndUser, error)
	UpdateAccountStatus(ctx context.Context, userID, status string) error
}

type Transactions interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

type Reports interface {
	ListUserReports(ctx context.Context) ([]domain.UserReport, error)
	ListBlockedUsers(ctx context.Context) ([]domain.BlockedUser, error)
}

type Activity interface {
	InsertActivity(ctx context.Context, e domain.ActivityEntry) error

	// ListRecentActivity returns up to limit rows newest-first,
	// restricted to the given activity types when types is non-empty.
	ListRecentActivity(ctx context.Context, types []string, limit int) ([]domain.ActivityEntry, error)
}

type PushTokens interface {
	// ListActiveTokens returns every active device token.
	ListActiveTokens(ctx context.Context) ([]domain.PushToken, error)

	// ListActiveTokensForUsers returns active tokens for the given
	// end-user ids.
	ListActiveTokensForUsers(ctx context.Context, userIDs []string) ([]domain.PushToken, error)

	// DeactivateToken flips a token off after the gateway reports the
	// device unregistered.
	DeactivateToken(ctx context.Context, token string) error
}

type Notifications interface {
	InsertNotification(ctx context.Context, n domain.Notification) error
	ListNotifications(ctx context.Context, limit int) ([]domain.Notification, error)
}

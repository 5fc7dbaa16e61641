package store

import (
	"context"
	"errors"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrDuplicateEmail reports a violation of the "at most one unconsumed
	// invitation per email" constraint, enforced by a partial unique index
	// rather than a read-before-write.
	ErrDuplicateEmail = errors.New("store: unconsumed invitation already exists for email")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Invitations() Invitations
	Sequences() Sequences
	Clients() Clients
	Employees() Employees
	Shows() Shows
	AdSlots() AdSlots
	LeaveRequests() LeaveRequests
	Announcements() Announcements
	Invoices() Invoices

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Preferred over Tx for multi-step
	// operations that must be atomic (e.g. invitation acceptance).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate-account checks.
	// Email comparison is case-insensitive.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name and department, bumping updated_at.
	UpdateProfile(ctx context.Context, userID, name, department string) error

	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetTOTPSecret stages a TOTP secret for a user without enabling it.
	SetTOTPSecret(ctx context.Context, userID, secret string) error

	// EnableTOTP marks the second factor active (sets totp_enabled_at).
	EnableTOTP(ctx context.Context, userID string) error

	// DisableTOTP clears both the secret and the enabled timestamp.
	DisableTOTP(ctx context.Context, userID string) error

	// ListUsers returns all accounts, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty reports whether no accounts exist yet (bootstrap gate).
	IsEmpty(ctx context.Context) (bool, error)
}

type Invitations interface {
	// CreateInvitation inserts a new invitation. Returns ErrDuplicateEmail
	// when an unconsumed invitation for the email already exists (partial
	// unique index), ErrAlreadyExists on a token fingerprint collision.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByTokenHash returns the invitation regardless of state;
	// redeemability classification happens in the service.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// ReplaceToken overwrites the token fingerprint and expiry (resend).
	// The previous token stops resolving once this returns.
	ReplaceToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error

	// MarkAccepted sets accepted_at, guarded on accepted_at IS NULL so the
	// terminal transition can never be repeated. Returns ErrNotFound when
	// the guard fails.
	MarkAccepted(ctx context.Context, id string, at time.Time) error

	// ListInvitations returns all invitations, newest first.
	ListInvitations(ctx context.Context) ([]domain.Invitation, error)

	DeleteInvitation(ctx context.Context, id string) error

	// DeleteExpiredInvitations purges unconsumed invitations that expired
	// before the cutoff (housekeeping).
	DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) error
}

type Sequences interface {
	// Next atomically increments and returns the counter for (kind, year).
	// The first call for a pair returns 1. Safe under concurrent callers;
	// call it inside the same transaction that inserts the numbered row.
	Next(ctx context.Context, kind string, year int) (int, error)
}

type Clients interface {
	CreateClient(ctx context.Context, c domain.Client) error
	GetClientByID(ctx context.Context, id string) (domain.Client, error)

	// GetClientByEmail resolves the directory record that matches an
	// account email. Comparison is case-insensitive.
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	ListClients(ctx context.Context) ([]domain.Client, error)

	// UpdateClient rewrites the mutable contact/contract fields. The
	// display ID and financial totals are never touched here.
	UpdateClient(ctx context.Context, c domain.Client) error

	UpdateClientStatus(ctx context.Context, id string, status domain.ClientStatus) error

	// AddToTotals adjusts the lifetime billed/paid counters (invoicing).
	AddToTotals(ctx context.Context, id string, billedDelta, paidDelta int64) error

	DeleteClient(ctx context.Context, id string) error
}

type Employees interface {
	CreateEmployee(ctx context.Context, e domain.Employee) error
	GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error)

	// GetEmployeeByEmail resolves the directory record that matches an
	// account email. Comparison is case-insensitive.
	GetEmployeeByEmail(ctx context.Context, email string) (domain.Employee, error)

	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, e domain.Employee) error
	UpdateEmployeeStatus(ctx context.Context, id string, status domain.EmployeeStatus) error
	DeleteEmployee(ctx context.Context, id string) error
}

type Shows interface {
	CreateShow(ctx context.Context, s domain.Show) error
	GetShowByID(ctx context.Context, id string) (domain.Show, error)

	// ListShows returns shows filtered by status; pass "" for all.
	ListShows(ctx context.Context, status domain.ShowStatus) ([]domain.Show, error)

	UpdateShow(ctx context.Context, s domain.Show) error
	UpdateShowStatus(ctx context.Context, id string, status domain.ShowStatus) error
	DeleteShow(ctx context.Context, id string) error
}

type AdSlots interface {
	CreateAdSlot(ctx context.Context, a domain.AdSlot) error
	GetAdSlotByID(ctx context.Context, id string) (domain.AdSlot, error)
	ListAdSlots(ctx context.Context) ([]domain.AdSlot, error)
	ListAdSlotsByClient(ctx context.Context, clientID string) ([]domain.AdSlot, error)
	UpdateAdSlotStatus(ctx context.Context, id string, status domain.AdSlotStatus) error
	DeleteAdSlot(ctx context.Context, id string) error
}

type LeaveRequests interface {
	CreateLeaveRequest(ctx context.Context, lr domain.LeaveRequest) error
	GetLeaveRequestByID(ctx context.Context, id string) (domain.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)
	ListLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// ReviewLeaveRequest flips a pending request to approved/rejected,
	// guarded on status='pending'. Returns ErrNotFound when the guard
	// fails so double reviews surface cleanly.
	ReviewLeaveRequest(ctx context.Context, id string, status domain.LeaveStatus, reviewedBy, note string, at time.Time) error
}

type Announcements interface {
	CreateAnnouncement(ctx context.Context, a domain.Announcement) error
	GetAnnouncementByID(ctx context.Context, id string) (domain.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	// DeleteExpiredAnnouncements purges entries expired before the cutoff.
	DeleteExpiredAnnouncements(ctx context.Context, cutoff time.Time) error
}

type Invoices interface {
	CreateInvoice(ctx context.Context, inv domain.Invoice) error
	GetInvoiceByID(ctx context.Context, id string) (domain.Invoice, error)
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
	ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id string, status domain.InvoiceStatus) error

	// ApplyPayment sets the new paid total and status together.
	ApplyPayment(ctx context.Context, id string, paidCents int64, status domain.InvoiceStatus) error
}

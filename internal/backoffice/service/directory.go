package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/displayid"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidDirectoryRequest = errors.New("invalid directory request")
	ErrClientNotFound          = errors.New("client not found")
	ErrEmployeeNotFound        = errors.New("employee not found")
)

// DirectoryService manages the client (advertiser) and employee
// registers. Display IDs (C24001, S23006) are allocated from the atomic
// per-(kind, year) sequence inside the same transaction that inserts the
// row, so concurrent creations can never collide or skip.
type DirectoryService struct {
	Store store.Store
}

// CreateClient registers an advertiser and assigns its display ID from
// the creation year's sequence.
func (s *DirectoryService) CreateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Client{}, ErrInvalidDirectoryRequest
	}
	if c.Status == "" {
		c.Status = domain.ClientActive
	}

	now := time.Now().UTC()
	c.ID = idx.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	// 2. Allocate the display ID and insert atomically.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		seq, err := tx.Sequences().Next(ctx, displayid.KindClient.String(), now.Year())
		if err != nil {
			return err
		}
		c.DisplayID = displayid.Format(displayid.KindClient, now.Year(), seq)
		return tx.Clients().CreateClient(ctx, c)
	})
	if err != nil {
		log.Error("failed to create client", slog.Any("error", err))
		return domain.Client{}, err
	}

	log.Info("client created",
		slog.String("client_id", c.ID),
		slog.String("display_id", c.DisplayID),
	)
	return c, nil
}

func (s *DirectoryService) GetClient(ctx context.Context, id string) (domain.Client, error) {
	c, err := s.Store.Clients().GetClientByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

func (s *DirectoryService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.Store.Clients().ListClients(ctx)
}

// ClientForUser resolves the advertiser record belonging to an account.
// The link is the account email; a client-role login with no matching
// directory entry gets ErrClientNotFound.
func (s *DirectoryService) ClientForUser(ctx context.Context, userID string) (domain.Client, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}

	c, err := s.Store.Clients().GetClientByEmail(ctx, u.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return c, nil
}

// EmployeeForUser resolves the staff directory record belonging to an
// account, matched by email. Returns ErrEmployeeNotFound when the
// account has no directory entry.
func (s *DirectoryService) EmployeeForUser(ctx context.Context, userID string) (domain.Employee, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}

	e, err := s.Store.Employees().GetEmployeeByEmail(ctx, u.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return e, nil
}

// UpdateClient rewrites contact/contract fields. The display ID is
// assigned once at creation and never regenerated.
func (s *DirectoryService) UpdateClient(ctx context.Context, c domain.Client) (domain.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Client{}, ErrInvalidDirectoryRequest
	}
	if err := s.Store.Clients().UpdateClient(ctx, c); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Client{}, ErrClientNotFound
		}
		return domain.Client{}, err
	}
	return s.GetClient(ctx, c.ID)
}

func (s *DirectoryService) UpdateClientStatus(ctx context.Context, id string, status domain.ClientStatus) error {
	switch status {
	case domain.ClientActive, domain.ClientOverdue, domain.ClientInactive:
	default:
		return ErrInvalidDirectoryRequest
	}
	if err := s.Store.Clients().UpdateClientStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

func (s *DirectoryService) DeleteClient(ctx context.Context, id string) error {
	if err := s.Store.Clients().DeleteClient(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return err
	}
	return nil
}

// CreateEmployee registers a staff member. The display ID year comes from
// the hire date, not the creation date, so back-dated hires land in the
// right cohort (S23xxx for a 2023 hire entered in 2024).
func (s *DirectoryService) CreateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" || e.HireDate.IsZero() {
		return domain.Employee{}, ErrInvalidDirectoryRequest
	}
	if e.EmploymentType == "" {
		e.EmploymentType = domain.EmploymentFullTime
	}
	if e.Status == "" {
		e.Status = domain.EmployeeActive
	}

	now := time.Now().UTC()
	e.ID = idx.New().String()
	e.CreatedAt = now
	e.UpdatedAt = now

	// 2. Allocate the display ID and insert atomically.
	year := e.HireDate.Year()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		seq, err := tx.Sequences().Next(ctx, displayid.KindEmployee.String(), year)
		if err != nil {
			return err
		}
		e.DisplayID = displayid.Format(displayid.KindEmployee, year, seq)
		return tx.Employees().CreateEmployee(ctx, e)
	})
	if err != nil {
		log.Error("failed to create employee", slog.Any("error", err))
		return domain.Employee{}, err
	}

	log.Info("employee created",
		slog.String("employee_id", e.ID),
		slog.String("display_id", e.DisplayID),
	)
	return e, nil
}

func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return e, nil
}

func (s *DirectoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.Store.Employees().ListEmployees(ctx)
}

func (s *DirectoryService) UpdateEmployee(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return domain.Employee{}, ErrInvalidDirectoryRequest
	}
	if err := s.Store.Employees().UpdateEmployee(ctx, e); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrEmployeeNotFound
		}
		return domain.Employee{}, err
	}
	return s.GetEmployee(ctx, e.ID)
}

func (s *DirectoryService) UpdateEmployeeStatus(ctx context.Context, id string, status domain.EmployeeStatus) error {
	switch status {
	case domain.EmployeeActive, domain.EmployeeInactive:
	default:
		return ErrInvalidDirectoryRequest
	}
	if err := s.Store.Employees().UpdateEmployeeStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

func (s *DirectoryService) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.Store.Employees().DeleteEmployee(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

package sqlite

import (
	"context"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, display_id, name, company, email, phone, address, contact_person, payment_terms, status, billed_cents, paid_cents, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var (
		c      domain.Client
		status string
	)
	err := row.Scan(
		&c.ID, &c.DisplayID, &c.Name, &c.Company, &c.Email, &c.Phone,
		&c.Address, &c.ContactPerson, &c.PaymentTerms, &status,
		&c.BilledCents, &c.PaidCents, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.Status = domain.ClientStatus(status)
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, display_id, name, company, email, phone, address, contact_person, payment_terms, status, billed_cents, paid_cents, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.DisplayID, c.Name, c.Company, c.Email, c.Phone, c.Address,
		c.ContactPerson, c.PaymentTerms, string(c.Status),
		c.BilledCents, c.PaidCents, c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	// The column has no NOCASE collation; account emails are folded here.
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE email = ? COLLATE NOCASE ORDER BY created_at, id LIMIT 1`, email)
	c, err := scanClient(row)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET name = ?, company = ?, email = ?, phone = ?, address = ?, contact_person = ?, payment_terms = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, c.Company, c.Email, c.Phone, c.Address, c.ContactPerson,
		c.PaymentTerms, time.Now().UTC(), c.ID,
	)
	return affectedOrNotFound(res, err)
}

func (r *clientsRepo) UpdateClientStatus(ctx context.Context, id string, status domain.ClientStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *clientsRepo) AddToTotals(ctx context.Context, id string, billedDelta, paidDelta int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET billed_cents = billed_cents + ?, paid_cents = paid_cents + ?, updated_at = ? WHERE id = ?`,
		billedDelta, paidDelta, time.Now().UTC(), id)
	return affectedOrNotFound(res, err)
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

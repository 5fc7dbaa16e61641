package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, email, role, department, token_hash, invited_by, expires_at, accepted_at, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var (
		inv      domain.Invitation
		role     string
		accepted sql.NullTime
	)
	err := row.Scan(
		&inv.ID, &inv.Email, &role, &inv.Department, &inv.TokenHash,
		&inv.InvitedBy, &inv.ExpiresAt, &accepted, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return domain.Invitation{}, err
	}
	inv.Role = domain.Role(role)
	inv.AcceptedAt = mapNullTimePtr(accepted)
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invitations (id, email, role, department, token_hash, invited_by, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.Email, string(inv.Role), inv.Department, inv.TokenHash,
		inv.InvitedBy, inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = ?`, hash)
	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ReplaceToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET token_hash = ?, expires_at = ?, updated_at = ? WHERE id = ? AND accepted_at IS NULL`,
		tokenHash, expiresAt, time.Now().UTC(), id)
	if err != nil {
		return mapConstraint(err)
	}
	return affectedOrNotFound(res, nil)
}

func (r *invitationsRepo) MarkAccepted(ctx context.Context, id string, at time.Time) error {
	// Guarded on accepted_at IS NULL so acceptance stays single-shot even
	// under concurrent redeemers.
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET accepted_at = ?, updated_at = ? WHERE id = ? AND accepted_at IS NULL`,
		at, at, id)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) ListInvitations(ctx context.Context) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invitations WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM invitations WHERE accepted_at IS NULL AND expires_at < ?`, cutoff)
	return err
}

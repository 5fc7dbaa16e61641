package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

type announcementsRepo struct {
	db dbtx
}

const announcementColumns = `id, title, content, category, priority, published_by, published_at, expires_at, target_roles`

func scanAnnouncement(row interface{ Scan(...any) error }) (domain.Announcement, error) {
	var (
		a        domain.Announcement
		category string
		priority string
		expires  sql.NullTime
		roles    string
	)
	err := row.Scan(
		&a.ID, &a.Title, &a.Content, &category, &priority,
		&a.PublishedBy, &a.PublishedAt, &expires, &roles,
	)
	if err != nil {
		return domain.Announcement{}, err
	}
	a.Category = domain.AnnouncementCategory(category)
	a.Priority = domain.AnnouncementPriority(priority)
	a.ExpiresAt = mapNullTimePtr(expires)
	a.TargetRoles = decodeRoles(roles)
	return a, nil
}

func (r *announcementsRepo) CreateAnnouncement(ctx context.Context, a domain.Announcement) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO announcements (id, title, content, category, priority, published_by, published_at, expires_at, target_roles)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Title, a.Content, string(a.Category), string(a.Priority),
		a.PublishedBy, a.PublishedAt, mapOptionalTime(a.ExpiresAt),
		encodeRoles(a.TargetRoles),
	)
	return mapConstraint(err)
}

func (r *announcementsRepo) GetAnnouncementByID(ctx context.Context, id string) (domain.Announcement, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements WHERE id = ?`, id)
	a, err := scanAnnouncement(row)
	if err != nil {
		return domain.Announcement{}, mapNotFound(err)
	}
	return a, nil
}

func (r *announcementsRepo) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+announcementColumns+` FROM announcements ORDER BY published_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *announcementsRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func (r *announcementsRepo) DeleteExpiredAnnouncements(ctx context.Context, cutoff time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM announcements WHERE expires_at IS NOT NULL AND expires_at < ?`, cutoff)
	return err
}

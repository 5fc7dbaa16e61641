package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidAnnouncement  = errors.New("invalid announcement")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

type AnnouncementService struct {
	Store store.Store
}

func (s *AnnouncementService) CreateAnnouncement(ctx context.Context, a domain.Announcement) (domain.Announcement, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	if a.Title == "" || a.Content == "" {
		return domain.Announcement{}, ErrInvalidAnnouncement
	}
	if a.Category == "" {
		a.Category = domain.AnnouncementGeneral
	}
	if a.Priority == "" {
		a.Priority = domain.PriorityMedium
	}
	for _, r := range a.TargetRoles {
		if !r.Valid() {
			return domain.Announcement{}, ErrInvalidAnnouncement
		}
	}

	a.ID = idx.New().String()
	a.PublishedAt = time.Now().UTC()

	// 2. Store.
	if err := s.Store.Announcements().CreateAnnouncement(ctx, a); err != nil {
		log.Error("failed to create announcement", slog.Any("error", err))
		return domain.Announcement{}, err
	}

	log.Info("announcement published",
		slog.String("announcement_id", a.ID),
		slog.String("priority", string(a.Priority)),
	)
	return a, nil
}

// ListAnnouncementsFor returns the announcements visible to the given
// role right now: unexpired, and either untargeted or targeting the role.
func (s *AnnouncementService) ListAnnouncementsFor(ctx context.Context, role domain.Role) ([]domain.Announcement, error) {
	all, err := s.Store.Announcements().ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := make([]domain.Announcement, 0, len(all))
	for _, a := range all {
		if a.VisibleTo(role, now) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// ListAllAnnouncements returns everything, expired included, for
// moderation views.
func (s *AnnouncementService) ListAllAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.Store.Announcements().ListAnnouncements(ctx)
}

func (s *AnnouncementService) DeleteAnnouncement(ctx context.Context, id string) error {
	if err := s.Store.Announcements().DeleteAnnouncement(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAnnouncementNotFound
		}
		return err
	}
	return nil
}

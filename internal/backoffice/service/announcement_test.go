package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

func TestCreateAnnouncement(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &AnnouncementService{Store: st}

	t.Run("fills defaults", func(t *testing.T) {
		a, err := svc.CreateAnnouncement(ctx, domain.Announcement{
			Title:       "Studio B maintenance",
			Content:     "Studio B is offline on Saturday morning.",
			PublishedBy: admin.ID,
		})
		require.NoError(t, err)
		require.Equal(t, domain.AnnouncementGeneral, a.Category)
		require.Equal(t, domain.PriorityMedium, a.Priority)
		require.False(t, a.PublishedAt.IsZero())
	})

	t.Run("rejects empty bodies and bad roles", func(t *testing.T) {
		_, err := svc.CreateAnnouncement(ctx, domain.Announcement{Title: "x", PublishedBy: admin.ID})
		require.ErrorIs(t, err, ErrInvalidAnnouncement)

		_, err = svc.CreateAnnouncement(ctx, domain.Announcement{
			Title:       "x",
			Content:     "y",
			PublishedBy: admin.ID,
			TargetRoles: []domain.Role{domain.Role("visitor")},
		})
		require.ErrorIs(t, err, ErrInvalidAnnouncement)
	})
}

func TestListAnnouncementsForRole(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	admin := seedUser(t, st, domain.RoleAdmin, "admin@sweetfm.example")

	svc := &AnnouncementService{Store: st}

	everyone, err := svc.CreateAnnouncement(ctx, domain.Announcement{
		Title:       "All-hands",
		Content:     "Friday 3pm in the big studio.",
		PublishedBy: admin.ID,
	})
	require.NoError(t, err)

	staffOnly, err := svc.CreateAnnouncement(ctx, domain.Announcement{
		Title:       "Payroll cutoff",
		Content:     "Submit timesheets by Thursday.",
		PublishedBy: admin.ID,
		TargetRoles: []domain.Role{domain.RoleEmployee, domain.RoleManager},
	})
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	expired, err := svc.CreateAnnouncement(ctx, domain.Announcement{
		Title:       "Old news",
		Content:     "This already happened.",
		PublishedBy: admin.ID,
		ExpiresAt:   &past,
	})
	require.NoError(t, err)

	t.Run("employees see general and staff-targeted", func(t *testing.T) {
		got, err := svc.ListAnnouncementsFor(ctx, domain.RoleEmployee)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, a := range got {
			ids = append(ids, a.ID)
		}
		require.ElementsMatch(t, []string{everyone.ID, staffOnly.ID}, ids)
	})

	t.Run("clients only see untargeted", func(t *testing.T) {
		got, err := svc.ListAnnouncementsFor(ctx, domain.RoleClient)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, everyone.ID, got[0].ID)
	})

	t.Run("moderation view includes expired", func(t *testing.T) {
		all, err := svc.ListAllAnnouncements(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteAnnouncement(ctx, expired.ID))
		require.ErrorIs(t, svc.DeleteAnnouncement(ctx, expired.ID), ErrAnnouncementNotFound)
	})
}

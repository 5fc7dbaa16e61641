package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

func TestCreateShowValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ScheduleService{Store: st}

	base := domain.Show{
		Name:       "Morning Drive",
		Presenter:  "Dana DJ",
		DaysOfWeek: []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		StartTime:  "06:00",
		EndTime:    "09:00",
		StartDate:  time.Now().UTC(),
	}

	t.Run("fills defaults", func(t *testing.T) {
		show, err := svc.CreateShow(ctx, base)
		require.NoError(t, err)
		require.Equal(t, domain.ShowOther, show.Category)
		require.Equal(t, domain.ShowActive, show.Status)
		require.NotEmpty(t, show.ID)
	})

	t.Run("rejects bad wall-clock times", func(t *testing.T) {
		bad := base
		bad.StartTime = "6am"
		_, err := svc.CreateShow(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidScheduleRequest)

		bad = base
		bad.EndTime = "25:00"
		_, err = svc.CreateShow(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidScheduleRequest)
	})

	t.Run("requires at least one weekday", func(t *testing.T) {
		bad := base
		bad.DaysOfWeek = nil
		_, err := svc.CreateShow(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidScheduleRequest)
	})
}

func TestCreateAdSlot(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	client := seedClient(t, st, "Acme Soda")
	svc := &ScheduleService{Store: st}

	start := time.Now().UTC()
	base := domain.AdSlot{
		ClientID:        client.ID,
		Title:           "Acme Summer Promo",
		DaysOfWeek:      []time.Weekday{time.Monday, time.Tuesday},
		AirTime:         "07:30",
		DurationSeconds: 30,
		StartDate:       start,
		EndDate:         start.AddDate(0, 1, 0),
		CostCents:       25_000,
	}

	t.Run("books a spot", func(t *testing.T) {
		slot, err := svc.CreateAdSlot(ctx, base)
		require.NoError(t, err)
		require.Equal(t, domain.SpotAd, slot.SpotType)
		require.Equal(t, domain.AdSlotScheduled, slot.Status)
	})

	t.Run("requires an existing client", func(t *testing.T) {
		bad := base
		bad.ClientID = "missing"
		_, err := svc.CreateAdSlot(ctx, bad)
		require.ErrorIs(t, err, ErrClientNotFound)
	})

	t.Run("rejects inverted campaign windows", func(t *testing.T) {
		bad := base
		bad.EndDate = start.AddDate(0, 0, -1)
		_, err := svc.CreateAdSlot(ctx, bad)
		require.ErrorIs(t, err, ErrInvalidScheduleRequest)
	})
}

func TestWeekGrid(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	client := seedClient(t, st, "Acme Soda")
	svc := &ScheduleService{Store: st}

	now := time.Now().UTC()

	mondayShow, err := svc.CreateShow(ctx, domain.Show{
		Name:       "Morning Drive",
		DaysOfWeek: []time.Weekday{time.Monday, time.Friday},
		StartTime:  "06:00",
		EndTime:    "09:00",
		StartDate:  now,
	})
	require.NoError(t, err)

	inactive, err := svc.CreateShow(ctx, domain.Show{
		Name:       "Old Gold",
		DaysOfWeek: []time.Weekday{time.Monday},
		StartTime:  "20:00",
		EndTime:    "22:00",
		StartDate:  now,
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateShowStatus(ctx, inactive.ID, domain.ShowInactive))

	slot, err := svc.CreateAdSlot(ctx, domain.AdSlot{
		ClientID:        client.ID,
		Title:           "Acme Promo",
		DaysOfWeek:      []time.Weekday{time.Monday},
		AirTime:         "07:30",
		DurationSeconds: 30,
		StartDate:       now,
		EndDate:         now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	cancelled, err := svc.CreateAdSlot(ctx, domain.AdSlot{
		ClientID:        client.ID,
		Title:           "Cancelled Promo",
		DaysOfWeek:      []time.Weekday{time.Monday},
		AirTime:         "08:00",
		DurationSeconds: 15,
		StartDate:       now,
		EndDate:         now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAdSlotStatus(ctx, cancelled.ID, domain.AdSlotCancelled))

	grid, err := svc.WeekGrid(ctx)
	require.NoError(t, err)
	require.Len(t, grid, 7)

	monday := grid[int(time.Monday)]
	require.Equal(t, time.Monday, monday.Day)
	require.Len(t, monday.Shows, 1, "inactive shows stay off the grid")
	require.Equal(t, mondayShow.ID, monday.Shows[0].ID)
	require.Len(t, monday.AdSlots, 1, "cancelled slots stay off the grid")
	require.Equal(t, slot.ID, monday.AdSlots[0].ID)

	friday := grid[int(time.Friday)]
	require.Len(t, friday.Shows, 1)
	require.Empty(t, friday.AdSlots)

	require.Empty(t, grid[int(time.Sunday)].Shows)
}

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
	ErrInvalidScheduleRequest = errors.New("invalid schedule request")
	ErrShowNotFound           = errors.New("show not found")
	ErrAdSlotNotFound         = errors.New("ad slot not found")
)

// ScheduleService manages the broadcast programme: recurring shows and
// booked advertisement slots.
type ScheduleService struct {
	Store store.Store
}

// ScheduleDay is one column of the week grid.
type ScheduleDay struct {
	Day     time.Weekday
	Shows   []domain.Show
	AdSlots []domain.AdSlot
}

func (s *ScheduleService) CreateShow(ctx context.Context, show domain.Show) (domain.Show, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	show.Name = strings.TrimSpace(show.Name)
	if show.Name == "" || len(show.DaysOfWeek) == 0 {
		return domain.Show{}, ErrInvalidScheduleRequest
	}
	if !validClock(show.StartTime) || !validClock(show.EndTime) {
		return domain.Show{}, ErrInvalidScheduleRequest
	}
	if show.Category == "" {
		show.Category = domain.ShowOther
	}
	if show.Status == "" {
		show.Status = domain.ShowActive
	}

	now := time.Now().UTC()
	show.ID = idx.New().String()
	show.CreatedAt = now
	show.UpdatedAt = now

	// 2. Store.
	if err := s.Store.Shows().CreateShow(ctx, show); err != nil {
		log.Error("failed to create show", slog.Any("error", err))
		return domain.Show{}, err
	}

	log.Info("show created", slog.String("show_id", show.ID))
	return show, nil
}

func (s *ScheduleService) GetShow(ctx context.Context, id string) (domain.Show, error) {
	show, err := s.Store.Shows().GetShowByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Show{}, ErrShowNotFound
		}
		return domain.Show{}, err
	}
	return show, nil
}

func (s *ScheduleService) ListShows(ctx context.Context, status domain.ShowStatus) ([]domain.Show, error) {
	return s.Store.Shows().ListShows(ctx, status)
}

func (s *ScheduleService) UpdateShow(ctx context.Context, show domain.Show) (domain.Show, error) {
	show.Name = strings.TrimSpace(show.Name)
	if show.Name == "" || len(show.DaysOfWeek) == 0 {
		return domain.Show{}, ErrInvalidScheduleRequest
	}
	if !validClock(show.StartTime) || !validClock(show.EndTime) {
		return domain.Show{}, ErrInvalidScheduleRequest
	}
	if err := s.Store.Shows().UpdateShow(ctx, show); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Show{}, ErrShowNotFound
		}
		return domain.Show{}, err
	}
	return s.GetShow(ctx, show.ID)
}

func (s *ScheduleService) UpdateShowStatus(ctx context.Context, id string, status domain.ShowStatus) error {
	switch status {
	case domain.ShowActive, domain.ShowInactive, domain.ShowArchived:
	default:
		return ErrInvalidScheduleRequest
	}
	if err := s.Store.Shows().UpdateShowStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrShowNotFound
		}
		return err
	}
	return nil
}

func (s *ScheduleService) DeleteShow(ctx context.Context, id string) error {
	if err := s.Store.Shows().DeleteShow(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrShowNotFound
		}
		return err
	}
	return nil
}

// CreateAdSlot books a spot for a client. The campaign window must be
// ordered and the client must exist.
func (s *ScheduleService) CreateAdSlot(ctx context.Context, slot domain.AdSlot) (domain.AdSlot, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	slot.Title = strings.TrimSpace(slot.Title)
	if slot.Title == "" || len(slot.DaysOfWeek) == 0 || !validClock(slot.AirTime) {
		return domain.AdSlot{}, ErrInvalidScheduleRequest
	}
	if slot.DurationSeconds <= 0 || slot.EndDate.Before(slot.StartDate) {
		return domain.AdSlot{}, ErrInvalidScheduleRequest
	}
	if slot.SpotType == "" {
		slot.SpotType = domain.SpotAd
	}
	if slot.Status == "" {
		slot.Status = domain.AdSlotScheduled
	}

	// 2. The advertiser must exist.
	if _, err := s.Store.Clients().GetClientByID(ctx, slot.ClientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdSlot{}, ErrClientNotFound
		}
		return domain.AdSlot{}, err
	}

	now := time.Now().UTC()
	slot.ID = idx.New().String()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	// 3. Store.
	if err := s.Store.AdSlots().CreateAdSlot(ctx, slot); err != nil {
		log.Error("failed to create ad slot", slog.Any("error", err))
		return domain.AdSlot{}, err
	}

	log.Info("ad slot created",
		slog.String("ad_slot_id", slot.ID),
		slog.String("client_id", slot.ClientID),
	)
	return slot, nil
}

func (s *ScheduleService) GetAdSlot(ctx context.Context, id string) (domain.AdSlot, error) {
	slot, err := s.Store.AdSlots().GetAdSlotByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.AdSlot{}, ErrAdSlotNotFound
		}
		return domain.AdSlot{}, err
	}
	return slot, nil
}

func (s *ScheduleService) ListAdSlots(ctx context.Context) ([]domain.AdSlot, error) {
	return s.Store.AdSlots().ListAdSlots(ctx)
}

func (s *ScheduleService) ListAdSlotsByClient(ctx context.Context, clientID string) ([]domain.AdSlot, error) {
	return s.Store.AdSlots().ListAdSlotsByClient(ctx, clientID)
}

func (s *ScheduleService) UpdateAdSlotStatus(ctx context.Context, id string, status domain.AdSlotStatus) error {
	switch status {
	case domain.AdSlotScheduled, domain.AdSlotActive, domain.AdSlotCompleted, domain.AdSlotCancelled:
	default:
		return ErrInvalidScheduleRequest
	}
	if err := s.Store.AdSlots().UpdateAdSlotStatus(ctx, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdSlotNotFound
		}
		return err
	}
	return nil
}

func (s *ScheduleService) DeleteAdSlot(ctx context.Context, id string) error {
	if err := s.Store.AdSlots().DeleteAdSlot(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAdSlotNotFound
		}
		return err
	}
	return nil
}

// WeekGrid renders the 7-day programme: for each weekday, the active
// shows and live ad slots whose day set contains it, ordered by start
// time (the store already sorts by time).
func (s *ScheduleService) WeekGrid(ctx context.Context) ([]ScheduleDay, error) {
	shows, err := s.Store.Shows().ListShows(ctx, domain.ShowActive)
	if err != nil {
		return nil, err
	}
	slots, err := s.Store.AdSlots().ListAdSlots(ctx)
	if err != nil {
		return nil, err
	}

	grid := make([]ScheduleDay, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := ScheduleDay{Day: d}
		for _, show := range shows {
			if show.AirsOn(d) {
				day.Shows = append(day.Shows, show)
			}
		}
		for _, slot := range slots {
			if slot.Status == domain.AdSlotCancelled || slot.Status == domain.AdSlotCompleted {
				continue
			}
			if slot.AirsOn(d) {
				day.AdSlots = append(day.AdSlots, slot)
			}
		}
		grid[int(d)] = day
	}
	return grid, nil
}

// validClock reports whether s is a 24h wall-clock "HH:MM" string.
func validClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

package domain

import "time"

type ShowCategory string

const (
	ShowMusic         ShowCategory = "music"
	ShowTalk          ShowCategory = "talk"
	ShowNews          ShowCategory = "news"
	ShowSports        ShowCategory = "sports"
	ShowEntertainment ShowCategory = "entertainment"
	ShowReligious     ShowCategory = "religious"
	ShowEducational   ShowCategory = "educational"
	ShowOther         ShowCategory = "other"
)

type ShowStatus string

const (
	ShowActive   ShowStatus = "active"
	ShowInactive ShowStatus = "inactive"
	ShowArchived ShowStatus = "archived"
)

// Show is a recurring programme. It airs on every weekday in DaysOfWeek
// between StartTime and EndTime (wall-clock, "HH:MM").
type Show struct {
	ID          string
	Name        string
	Presenter   string
	Description string
	Category    ShowCategory
	DaysOfWeek  []time.Weekday
	StartTime   string // "HH:MM"
	EndTime     string // "HH:MM"
	StartDate   time.Time
	EndDate     *time.Time // nil for open-ended runs
	Color       string
	Status      ShowStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SpotType string

const (
	SpotAd          SpotType = "spot"
	SpotSponsorship SpotType = "sponsorship"
	SpotPromo       SpotType = "promo"
	SpotPSA         SpotType = "psa"
)

type AdSlotStatus string

const (
	AdSlotScheduled AdSlotStatus = "scheduled"
	AdSlotActive    AdSlotStatus = "active"
	AdSlotCompleted AdSlotStatus = "completed"
	AdSlotCancelled AdSlotStatus = "cancelled"
)

// AdSlot is a booked advertisement airing on every weekday in DaysOfWeek
// at AirTime for the duration of the campaign window.
type AdSlot struct {
	ID              string
	ClientID        string
	Title           string
	SpotType        SpotType
	DaysOfWeek      []time.Weekday
	AirTime         string // "HH:MM"
	DurationSeconds int
	StartDate       time.Time
	EndDate         time.Time
	ShowID          string // optional: tie the spot to a programme
	CostCents       int64
	Status          AdSlotStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AirsOn reports whether the slot airs on the given weekday.
func (a AdSlot) AirsOn(day time.Weekday) bool {
	for _, d := range a.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// AirsOn reports whether the show airs on the given weekday.
func (s Show) AirsOn(day time.Weekday) bool {
	for _, d := range s.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

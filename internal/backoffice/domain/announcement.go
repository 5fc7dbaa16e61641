package domain

import "time"

type AnnouncementCategory string

const (
	AnnouncementGeneral  AnnouncementCategory = "general"
	AnnouncementUrgent   AnnouncementCategory = "urgent"
	AnnouncementEvent    AnnouncementCategory = "event"
	AnnouncementPolicy   AnnouncementCategory = "policy"
	AnnouncementSchedule AnnouncementCategory = "schedule"
)

type AnnouncementPriority string

const (
	PriorityLow    AnnouncementPriority = "low"
	PriorityMedium AnnouncementPriority = "medium"
	PriorityHigh   AnnouncementPriority = "high"
	PriorityUrgent AnnouncementPriority = "urgent"
)

type Announcement struct {
	ID          string
	Title       string
	Content     string
	Category    AnnouncementCategory
	Priority    AnnouncementPriority
	PublishedBy string // user ID of the author
	PublishedAt time.Time
	ExpiresAt   *time.Time // nil means never expires
	TargetRoles []Role     // empty means visible to everyone
}

// VisibleTo reports whether the announcement should be shown to the given
// role at the given time.
func (a Announcement) VisibleTo(role Role, now time.Time) bool {
	if a.ExpiresAt != nil && !now.Before(*a.ExpiresAt) {
		return false
	}
	if len(a.TargetRoles) == 0 {
		return true
	}
	for _, r := range a.TargetRoles {
		if r == role {
			return true
		}
	}
	return false
}

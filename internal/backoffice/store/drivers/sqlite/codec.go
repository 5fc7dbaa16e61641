package sqlite

import (
	"strconv"
	"strings"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
)

// Weekday and role lists are persisted as comma-separated values. SQLite
// has no array type and the lists are tiny, so a CSV column beats a join
// table here.

func encodeWeekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(s string) []time.Weekday {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]time.Weekday, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 6 {
			continue
		}
		out = append(out, time.Weekday(n))
	}
	return out
}

func encodeRoles(roles []domain.Role) string {
	if len(roles) == 0 {
		return ""
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}

func decodeRoles(s string) []domain.Role {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.Role, 0, len(parts))
	for _, part := range parts {
		r := domain.Role(strings.TrimSpace(part))
		if r.Valid() {
			out = append(out, r)
		}
	}
	return out
}

package aspire

import (
	"strings"
	"time"
)

// ParseDate разбирает ISO дату Aspire (2024-01-15T00:00:00Z или 2024-01-15).
// Пустая или кривая строка — nil.
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// NormalizeStatus приводит статус Aspire к нашему словарю.
// Неизвестные значения проходят как есть — классификатор их переварит.
func NormalizeStatus(s string) string {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "won", "active", "current":
		return "Active"
	case "unsigned", "pending signature":
		return "Unsigned"
	default:
		return strings.TrimSpace(s)
	}
}

package types

import "time"

const dateLayout = "2006-01-02"

// DateOf отбрасывает время и зону: календарная дата t как полночь UTC.
// Так даты хранятся в колонках DATE.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate парсит "YYYY-MM-DD" в полночь UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// AddDays сдвигает календарную дату
func AddDays(date time.Time, days int) time.Time {
	return DateOf(date).AddDate(0, 0, days)
}

// SameDate сравнивает только календарные даты
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

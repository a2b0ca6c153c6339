package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout каноническое строковое представление календарного дня
const DateLayout = "2006-01-02"

// Date календарный день без времени суток в форме YYYY-MM-DD.
// Строковое представление сортируется лексикографически в хронологическом порядке.
type Date string

// ParseDate разбирает день в форме YYYY-MM-DD.
// Строки с временем (RFC3339, "2024-01-05T00:00:00.000Z") обрезаются до дня:
// так сервер может отдавать DATE колонки в любом формате.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && (s[len(DateLayout)] == 'T' || s[len(DateLayout)] == ' ') {
		s = s[:len(DateLayout)]
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}

	return Date(t.Format(DateLayout)), nil
}

// MustParseDate как ParseDate, но паникует на ошибке. Только для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf возвращает календарный день момента t в его собственной локации
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// String реализует fmt.Stringer
func (d Date) String() string {
	return string(d)
}

// IsZero сообщает, пустая ли дата
func (d Date) IsZero() bool {
	return d == ""
}

// Time возвращает полночь этого дня в указанной локации
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, string(d), loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// DaysSince возвращает количество календарных дней от other до d
func (d Date) DaysSince(other Date) int {
	diff := d.Time(time.UTC).Sub(other.Time(time.UTC))
	return int(diff.Hours() / 24)
}

// Weekday возвращает день недели (Sunday = 0)
func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// Year возвращает год даты
func (d Date) Year() int {
	return d.Time(time.UTC).Year()
}

// YearDay возвращает порядковый номер дня в году (1..366)
func (d Date) YearDay() int {
	return d.Time(time.UTC).YearDay()
}

// Before сообщает, раньше ли d чем other
func (d Date) Before(other Date) bool {
	return d < other
}

// After сообщает, позже ли d чем other
func (d Date) After(other Date) bool {
	return d > other
}

// UnmarshalJSON нормализует дату при декодировании
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = ""
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	hoursPerDay = 24
)

var (
	// ErrInvalidDateFormat возвращается при некорректной строке даты
	ErrInvalidDateFormat = errors.New("invalid date string format")

	// ErrInvalidMonthFormat возвращается при некорректной строке месяца
	ErrInvalidMonthFormat = errors.New("invalid month string format")
)

// Date календарная дата без времени и часового пояса.
// Вся арифметика ведётся по календарным дням, а не по моментам времени,
// поэтому переход через полночь в локальном поясе не сдвигает дату.
// Нулевое значение Date{} означает "дата не задана".
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate создаёт дату с нормализацией (31 февраля -> 3 марта и т.д.)
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DateOf возвращает календарную дату момента t в его собственном часовом поясе
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return DateOf(t), nil
}

// MustParseDate как ParseDate, но паникует при ошибке (для тестов и констант)
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseMonth парсит месяц в формате YYYY-MM
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse(monthLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMonthFormat, s)
	}
	return t.Year(), t.Month(), nil
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d == Date{} }
func (d Date) Equal(o Date) bool  { return d == o }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// Compare возвращает -1, 0 или 1
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return sign(d.year - o.year)
	case d.month != o.month:
		return sign(int(d.month) - int(o.month))
	default:
		return sign(d.day - o.day)
	}
}

// AddDays сдвигает дату на n календарных дней (n может быть отрицательным)
func (d Date) AddDays(n int) Date {
	return NewDate(d.year, d.month, d.day+n)
}

// Time возвращает полночь этой даты в UTC
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// In возвращает полночь этой даты в указанном поясе
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// StartOfMonth возвращает первое число месяца даты
func (d Date) StartOfMonth() Date {
	return NewDate(d.year, d.month, 1)
}

// EndOfMonth возвращает последнее число месяца даты
func (d Date) EndOfMonth() Date {
	return NewDate(d.year, d.month, DaysInMonth(d.year, d.month))
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// DaysInMonth возвращает количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysBetween возвращает количество дней от a до b (b - a)
// В UTC нет перевода часов, поэтому деление на 24 часа точное
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / hoursPerDay)
}

// NightsOf возвращает ночи проживания: полуинтервал [checkIn, checkOut).
// Дата выезда не входит. Если checkOut <= checkIn - пустой слайс,
// вызывающий код обязан считать такое проживание некорректным.
func NightsOf(checkIn, checkOut Date) []Date {
	n := DaysBetween(checkIn, checkOut)
	if n <= 0 {
		return []Date{}
	}

	nights := make([]Date, 0, n)
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		nights = append(nights, d)
	}
	return nights
}

// EachDay возвращает все даты закрытого интервала [start, end]
func EachDay(start, end Date) []Date {
	if end.Before(start) {
		return []Date{}
	}
	return NightsOf(start, end.AddDays(1))
}

// MonthWindow возвращает первый и последний день месяца
func MonthWindow(year int, month time.Month) (Date, Date) {
	start := NewDate(year, month, 1)
	return start, start.EndOfMonth()
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON принимает "YYYY-MM-DD" или null
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDateFormat, err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner для колонок типа DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("types.Date: cannot scan %T", src)
	}
}

func (d *Date) scanString(s string) error {
	// драйверы могут вернуть DATE как "2025-02-20" или "2025-02-20T00:00:00Z"
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer: дата передаётся строкой, без часового пояса
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

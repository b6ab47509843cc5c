package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Weekday counts from Monday = 0 to Sunday = 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// TimeOfDay is the offset from midnight.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second)
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(t.Nanosecond())
}

// ParseTimeOfDay accepts "HH:MM", "HH:MM:SS" and "HH:MM:SS.ffffff".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, errors.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, errors.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, errors.Wrapf(ErrInvalidTimeOfDay, "%q", s)
	}
	var seconds float64
	if len(parts) == 3 {
		seconds, err = strconv.ParseFloat(parts[2], 64)
		if err != nil || seconds < 0 || seconds >= 60 {
			return 0, errors.Wrapf(ErrInvalidTimeOfDay, "%q", s)
		}
	}
	return NewTimeOfDay(hour, minute, 0) + TimeOfDay(seconds*float64(time.Second)), nil
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan reads a MySQL TIME column, which the driver hands over as text.
func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return t.UnmarshalText(v)
	case string:
		return t.UnmarshalText([]byte(v))
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	}
	return errors.Newf("cannot scan %T into TimeOfDay", src)
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// OpenTime is a range during which a facility is open, possibly spanning several days.
type OpenTime struct {
	Id         int64
	ScheduleId int64
	StartDay   Weekday
	StartTime  TimeOfDay
	EndDay     Weekday
	EndTime    TimeOfDay
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpenAt must be given now in the campus time zone. Both ends of the range are inclusive.
func (o OpenTime) IsOpenAt(now time.Time) bool {
	today := WeekdayOf(now)
	currentTime := TimeOfDayOf(now)

	if o.StartDay <= o.EndDay {
		if o.StartDay == today {
			if o.StartTime > currentTime {
				return false
			}
		} else if o.StartDay > today {
			return false
		}
		if o.EndDay == today {
			if o.EndTime < currentTime {
				return false
			}
		} else if o.EndDay < today {
			return false
		}
		return true
	}

	// the range wraps around the end of the week
	if o.StartDay == today && o.StartTime > currentTime {
		return false
	}
	if o.EndDay == today && o.EndTime < currentTime {
		return false
	}
	if o.EndDay < today && today < o.StartDay {
		return false
	}
	return true
}

func (o OpenTime) String() string {
	return fmt.Sprintf("%s %s to %s %s", o.StartDay, o.StartTime, o.EndDay, o.EndTime)
}

type CreateOpenTimeInput struct {
	ScheduleId int64
	StartDay   Weekday
	StartTime  TimeOfDay
	EndDay     Weekday
	EndTime    TimeOfDay
}

func (input CreateOpenTimeInput) Validate() error {
	if !input.StartDay.IsValid() || !input.EndDay.IsValid() {
		return ErrInvalidWeekday
	}
	return nil
}

type UpdateOpenTimeInput struct {
	Id        int64
	StartDay  *Weekday
	StartTime *TimeOfDay
	EndDay    *Weekday
	EndTime   *TimeOfDay
}

func (input UpdateOpenTimeInput) Validate() error {
	if input.StartDay != nil && !input.StartDay.IsValid() {
		return ErrInvalidWeekday
	}
	if input.EndDay != nil && !input.EndDay.IsValid() {
		return ErrInvalidWeekday
	}
	return nil
}

type OpenTimeFilters struct {
	ScheduleId int64
}

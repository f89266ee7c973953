package horizon

import (
	"time"

	"github.com/rickar/cal/v2"
)

// Stepper advances a time point by a whole number of series steps. It
// captures the timestamp arithmetic appropriate to a series' frequency.
type Stepper interface {
	Step(t time.Time, n int) time.Time
}

// FixedStep advances by a constant duration per step. This covers evenly
// sampled series such as minutely or hourly data.
type FixedStep time.Duration

func (s FixedStep) Step(t time.Time, n int) time.Time {
	return t.Add(time.Duration(s) * time.Duration(n))
}

// BusinessDayStep advances by workdays honoring a business calendar, skipping
// weekends and any configured holidays.
type BusinessDayStep struct {
	Calendar *cal.BusinessCalendar
}

// NewBusinessDayStep returns a stepper over a default Monday through Friday
// business calendar with no holidays.
func NewBusinessDayStep() *BusinessDayStep {
	return &BusinessDayStep{Calendar: cal.NewBusinessCalendar()}
}

func (s *BusinessDayStep) Step(t time.Time, n int) time.Time {
	return s.Calendar.WorkdaysFrom(t, n)
}

package services

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// ScheduleService answers working-day questions for project timelines.
// Construction schedules count business days, not calendar days.
type ScheduleService struct {
	calendar *cal.BusinessCalendar
}

func NewScheduleService() *ScheduleService {
	c := cal.NewBusinessCalendar()
	c.Name = "Project schedule"
	c.AddHoliday(us.Holidays...)
	return &ScheduleService{calendar: c}
}

// IsWorkday reports whether work is scheduled on the given date.
func (s *ScheduleService) IsWorkday(t time.Time) bool {
	return s.calendar.IsWorkday(t)
}

// WorkdaysBetween counts scheduled working days in [from, to).
func (s *ScheduleService) WorkdaysBetween(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return s.calendar.WorkdaysInRange(from, to.AddDate(0, 0, -1))
}

// WorkdaysUntil counts working days from today up to the deadline.
// Past deadlines yield zero.
func (s *ScheduleService) WorkdaysUntil(deadline time.Time, now time.Time) int {
	return s.WorkdaysBetween(now, deadline)
}

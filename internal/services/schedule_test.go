package services

import (
	"testing"
	"time"
)

func TestScheduleService_IsWorkday(t *testing.T) {
	svc := NewScheduleService()

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"regular wednesday", time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), true},
		{"saturday", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), false},
		{"sunday", time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC), false},
		{"independence day", time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.IsWorkday(tt.date); got != tt.want {
				t.Errorf("IsWorkday(%v) = %v, expected %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestScheduleService_WorkdaysBetween(t *testing.T) {
	svc := NewScheduleService()

	// Mon 2024-03-11 through Fri 2024-03-15: five working days
	from := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	if got := svc.WorkdaysBetween(from, to); got != 5 {
		t.Errorf("WorkdaysBetween(full week) = %d, expected 5", got)
	}

	// Deadline in the past yields zero
	if got := svc.WorkdaysBetween(to, from); got != 0 {
		t.Errorf("WorkdaysBetween(reversed) = %d, expected 0", got)
	}
}
